// Package engine implements the interactive recipe book session.
package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
	"github.com/hammamikhairi/recipebook/internal/recipe"
)

// Console messages.
const (
	MsgInvalidInput     = "Invalid input. Please enter a number."
	MsgInvalidChoice    = "Invalid choice. Please enter a number between 1 and 3."
	MsgNoRecipes        = "No recipes entered yet."
	MsgAskRecipeName    = "Enter the name of the recipe to display:"
	MsgRecipeNotFound   = "Recipe not found."
	MsgCaloriesExceeded = "Warning: Total calories exceed 300!"
)

// MenuLines is the main menu, printed before every choice.
var MenuLines = []string{
	"1. Enter recipe",
	"2. Display recipes",
	"3. Exit",
}

// Option configures the engine.
type Option func(*Engine)

// WithStateObserver registers fn to be called on every state change.
func WithStateObserver(fn func(domain.SessionState)) Option {
	return func(e *Engine) {
		e.onState = fn
	}
}

// Engine drives the menu loop. It depends only on interfaces and is
// fully testable with an in-memory console.
type Engine struct {
	store    domain.RecipeStore
	console  domain.Console
	parser   domain.ChoiceParser
	notifier domain.Notifier
	log      *logger.Logger
	state    domain.SessionState
	onState  func(domain.SessionState)
}

// New creates a session engine with the given dependencies and options.
func New(store domain.RecipeStore, console domain.Console, parser domain.ChoiceParser,
	notifier domain.Notifier, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		console:  console,
		parser:   parser,
		notifier: notifier,
		log:      log,
		state:    domain.StateMenuPrompt,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current session state.
func (e *Engine) State() domain.SessionState { return e.state }

// Run loops over the menu until the user exits or input ends, in which
// case it returns nil. A failed recipe entry ends the loop with that
// error; the partial recipe is not stored.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Info("session started")
	for {
		done, err := e.Step(ctx)
		if err != nil {
			e.setState(domain.StateTerminated)
			return err
		}
		if done {
			e.log.Info("session ended, %d recipe(s) entered", e.store.Len())
			return nil
		}
	}
}

// Step prints the menu, reads one choice and carries it out. It reports
// done once the session reaches StateTerminated.
func (e *Engine) Step(ctx context.Context) (done bool, err error) {
	e.setState(domain.StateMenuPrompt)
	for _, line := range MenuLines {
		e.console.Println(line)
	}

	input, err := e.console.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		e.log.Debug("input closed at menu")
		e.setState(domain.StateTerminated)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading menu choice: %w", err)
	}

	choice, err := e.parser.ParseChoice(input)
	if errors.Is(err, domain.ErrInvalidInput) {
		e.console.Println(MsgInvalidInput)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("parsing menu choice: %w", err)
	}

	switch choice {
	case domain.ChoiceEnter:
		return false, e.enterRecipe(ctx)
	case domain.ChoiceDisplay:
		return e.displayRecipes(ctx)
	case domain.ChoiceExit:
		e.setState(domain.StateTerminated)
		return true, nil
	default:
		e.console.Println(MsgInvalidChoice)
		return false, nil
	}
}

func (e *Engine) enterRecipe(ctx context.Context) error {
	e.setState(domain.StateEntering)

	entry := recipe.NewEntry(e.console, e.log)
	entry.OnCaloriesExceeded(func(ctx context.Context, r *domain.Recipe) {
		e.log.Warn("recipe %q has %d calories", r.Name, r.TotalCalories())
		if err := e.notifier.NotifyUrgent(ctx, MsgCaloriesExceeded); err != nil {
			e.log.Error("calorie warning: %v", err)
		}
	})

	r, err := entry.Enter(ctx)
	if err != nil {
		e.log.Error("recipe entry aborted: %v", err)
		return fmt.Errorf("entering recipe: %w", err)
	}

	if err := e.store.Add(ctx, r); err != nil {
		return fmt.Errorf("storing recipe: %w", err)
	}
	e.log.Info("recipe %q added (%d ingredients, %d steps, %d calories)",
		r.Name, len(r.Ingredients), len(r.Steps), r.TotalCalories())
	return nil
}

func (e *Engine) displayRecipes(ctx context.Context) (bool, error) {
	if e.store.Len() == 0 {
		e.console.Println(MsgNoRecipes)
		return false, nil
	}
	e.setState(domain.StateListing)

	names, err := e.store.Names(ctx)
	if err != nil {
		return false, fmt.Errorf("listing recipes: %w", err)
	}
	for _, name := range names {
		e.console.Println(recipe.ListingLine(name))
	}

	e.console.Println(MsgAskRecipeName)
	name, err := e.console.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		e.log.Debug("input closed at recipe selection")
		e.setState(domain.StateTerminated)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading recipe name: %w", err)
	}

	r, err := e.store.Find(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		e.console.Println(MsgRecipeNotFound)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("finding recipe %q: %w", name, err)
	}

	for _, line := range recipe.Detail(r) {
		e.console.Println(line)
	}
	return false, nil
}

func (e *Engine) setState(s domain.SessionState) {
	if s == e.state {
		return
	}
	e.log.Debug("session state %s -> %s", e.state, s)
	e.state = s
	if e.onState != nil {
		e.onState(s)
	}
}
