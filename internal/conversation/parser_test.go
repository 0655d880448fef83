package conversation

import (
	"errors"
	"testing"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

func TestMenuParser(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	parser := NewMenuParser(log)

	tests := []struct {
		input      string
		wantChoice domain.MenuChoice
		wantErr    bool
	}{
		// Menu entries.
		{"1", domain.ChoiceEnter, false},
		{"2", domain.ChoiceDisplay, false},
		{"3", domain.ChoiceExit, false},

		// Whitespace and signs.
		{" 2 ", domain.ChoiceDisplay, false},
		{"+3", domain.ChoiceExit, false},
		{"01", domain.ChoiceEnter, false},

		// Numbers outside the menu.
		{"0", domain.ChoiceUnknown, false},
		{"4", domain.ChoiceUnknown, false},
		{"-1", domain.ChoiceUnknown, false},

		// Not numbers.
		{"", domain.ChoiceUnknown, true},
		{"one", domain.ChoiceUnknown, true},
		{"1.5", domain.ChoiceUnknown, true},
		{"99999999999", domain.ChoiceUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			choice, err := parser.ParseChoice(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidInput) {
					t.Fatalf("input=%q: expected ErrInvalidInput, got %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("input=%q: unexpected error: %v", tt.input, err)
			}
			if choice != tt.wantChoice {
				t.Errorf("input=%q: got %s, want %s", tt.input, choice, tt.wantChoice)
			}
		})
	}
}
