package display

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/storage"
)

func seededStore(t *testing.T) domain.RecipeStore {
	t.Helper()
	store := storage.NewMemoryStore(logger.New(logger.LevelOff, nil))
	ctx := context.Background()
	recipes := []*domain.Recipe{
		{Name: "Toast", Ingredients: []domain.Ingredient{{Name: "Bread", Calories: 150}}},
		{Name: "Feast", Ingredients: []domain.Ingredient{{Name: "Steak", Calories: 250}, {Name: "Fries", Calories: 100}}},
	}
	for _, r := range recipes {
		if err := store.Add(ctx, r); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return store
}

func TestCollectStats(t *testing.T) {
	s := collectStats(seededStore(t), domain.StateListing)
	if s.recipes != 2 {
		t.Fatalf("expected 2 recipes, got %d", s.recipes)
	}
	if s.over != 1 {
		t.Fatalf("expected 1 recipe over the threshold, got %d", s.over)
	}
	if s.state != domain.StateListing {
		t.Fatalf("expected listing state, got %s", s.state)
	}
}

func TestStatusBar(t *testing.T) {
	m := model{stats: bookStats{recipes: 2, over: 1, state: domain.StateEntering}, width: 100}
	bar := m.renderBar()
	for _, want := range []string{"recipes: ", "2", "over 300 kcal: ", "1", "entering"} {
		if !strings.Contains(bar, want) {
			t.Errorf("bar %q missing %q", bar, want)
		}
	}

	m.stats = bookStats{recipes: 1}
	if strings.Contains(m.renderBar(), "over 300") {
		t.Errorf("bar should hide the over-threshold count when zero")
	}
	if got := m.titleStr(); got != "RecipeBook: 1 recipe" {
		t.Errorf("title = %q", got)
	}
}

func TestEnterDeliversLine(t *testing.T) {
	ch := make(chan string, 2)
	u := &UI{inputCh: ch, quitCh: make(chan struct{})}

	var echoed []string
	m := model{input: textinput.New(), inputCh: ch, echoFn: func(v string) { echoed = append(echoed, v) }}
	m.input.SetValue("Toast")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected echo command")
	}
	cmd()

	// Empty lines are answers too (a recipe name may be blank).
	next.(model).Update(tea.KeyMsg{Type: tea.KeyEnter})

	ctx := context.Background()
	for _, want := range []string{"Toast", ""} {
		got, err := u.ReadLine(ctx)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
	if len(echoed) != 1 || echoed[0] != "Toast" {
		t.Fatalf("unexpected echo %q", echoed)
	}
}

func TestReadLineAfterQuit(t *testing.T) {
	u := NewUI(seededStore(t))
	close(u.quitCh)

	if _, err := u.ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	u2 := NewUI(seededStore(t))
	if _, err := u2.ReadLine(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderBanner(t *testing.T) {
	out := renderBanner(200)
	if !strings.Contains(out, Tagline) {
		t.Fatalf("banner missing tagline: %q", out)
	}
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line != "" && !strings.HasPrefix(line, " ") {
			t.Fatalf("expected centred line, got %q", line)
		}
	}
}
