package domain

import "context"

// RecipeStore holds the recipes entered during a run. Implementations
// keep insertion order and allow duplicate names.
type RecipeStore interface {
	Add(ctx context.Context, recipe *Recipe) error
	// Find returns the first recipe, in insertion order, whose name
	// equals name exactly.
	Find(ctx context.Context, name string) (*Recipe, error)
	// Names returns every recipe name sorted ascending.
	Names(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]*Recipe, error)
	Len() int
}

// Console is the line-oriented surface the session talks through.
// Implementations can wrap plain stdin/stdout or a terminal UI.
type Console interface {
	Println(a ...interface{})
	// ReadLine blocks for the next line of input. It returns io.EOF once
	// the input is exhausted.
	ReadLine(ctx context.Context) (string, error)
}

// Notifier delivers messages to the user. Implementations can write to
// the console or also play a sound.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// ChoiceParser converts a raw menu line into a MenuChoice.
// Non-numeric input yields an error wrapping ErrInvalidInput; numbers
// outside the menu yield ChoiceUnknown.
type ChoiceParser interface {
	ParseChoice(input string) (MenuChoice, error)
}
