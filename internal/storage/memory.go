// Package storage provides recipe store implementations.
package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeStore = (*MemoryStore)(nil)

// MemoryStore is an append-only, in-memory recipe store. Safe for
// concurrent access so the terminal UI can read while the session writes.
type MemoryStore struct {
	mu      sync.RWMutex
	recipes []*domain.Recipe
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory recipe store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{log: log}
}

// Add appends a recipe. Duplicate names are kept.
func (s *MemoryStore) Add(ctx context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recipes = append(s.recipes, recipe)
	s.log.Debug("stored recipe %q (ingredients=%d, steps=%d, total=%d)",
		recipe.Name, len(recipe.Ingredients), len(recipe.Steps), len(s.recipes))
	return nil
}

// Find returns the first recipe whose name matches exactly.
func (s *MemoryStore) Find(ctx context.Context, name string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.recipes {
		if r.Name == name {
			return r, nil
		}
	}
	s.log.Debug("recipe not found: %q", name)
	return nil, domain.ErrNotFound
}

// Names returns all recipe names in ascending byte order. Equal names
// keep their insertion order.
func (s *MemoryStore) Names(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = r.Name
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i] < out[j] })
	s.log.Debug("listing recipe names, count=%d", len(out))
	return out, nil
}

// List returns the recipes in insertion order.
func (s *MemoryStore) List(ctx context.Context) ([]*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

// Len returns the number of stored recipes.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes)
}
