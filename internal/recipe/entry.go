// Package recipe implements interactive recipe entry, recipe rendering
// and the built-in sample recipes.
package recipe

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// DoneSentinel ends ingredient collection when typed as an ingredient
// name, in any letter case.
const DoneSentinel = "done"

// ThresholdHandler is invoked when an entered recipe goes over
// domain.CalorieThreshold.
type ThresholdHandler func(ctx context.Context, r *domain.Recipe)

// Entry collects one recipe field by field from a console.
// Use a fresh Entry per recipe.
type Entry struct {
	console  domain.Console
	log      *logger.Logger
	handlers []ThresholdHandler
}

// NewEntry creates an entry session reading from console.
func NewEntry(console domain.Console, log *logger.Logger) *Entry {
	return &Entry{console: console, log: log}
}

// OnCaloriesExceeded registers h. Handlers run synchronously, in
// registration order, after the recipe has been fully entered.
func (e *Entry) OnCaloriesExceeded(h ThresholdHandler) {
	e.handlers = append(e.handlers, h)
}

// Enter prompts for a recipe name, ingredients until "done", and a
// counted list of steps.
//
// A numeric field holding anything but an integer aborts the entry with
// a *domain.ParseError and the partial recipe is dropped. No re-prompt
// happens.
func (e *Entry) Enter(ctx context.Context) (*domain.Recipe, error) {
	r := &domain.Recipe{}

	name, err := e.ask(ctx, "Enter recipe name:")
	if err != nil {
		return nil, err
	}
	r.Name = name

	for {
		ingName, err := e.ask(ctx, "Enter ingredient name (or 'done' to finish):")
		if err != nil {
			return nil, err
		}
		if strings.ToLower(ingName) == DoneSentinel {
			break
		}

		ing := domain.Ingredient{Name: ingName}
		if ing.Quantity, err = e.askInt(ctx, "Enter quantity:", "quantity"); err != nil {
			return nil, err
		}
		if ing.Unit, err = e.ask(ctx, "Enter unit of measurement:"); err != nil {
			return nil, err
		}
		if ing.Calories, err = e.askInt(ctx, "Enter calories:", "calories"); err != nil {
			return nil, err
		}
		if ing.FoodGroup, err = e.ask(ctx, "Enter food group:"); err != nil {
			return nil, err
		}

		r.Ingredients = append(r.Ingredients, ing)
		e.log.Debug("recipe %q: added ingredient %q (%d calories)", r.Name, ing.Name, ing.Calories)
	}

	n, err := e.askInt(ctx, "Enter the number of steps:", "number of steps")
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		step, err := e.ask(ctx, fmt.Sprintf("Enter description of step %d:", j+1))
		if err != nil {
			return nil, err
		}
		r.Steps = append(r.Steps, step)
	}

	if total := r.TotalCalories(); total > domain.CalorieThreshold {
		e.log.Debug("recipe %q: %d calories exceeds %d, notifying %d handler(s)",
			r.Name, total, domain.CalorieThreshold, len(e.handlers))
		for _, h := range e.handlers {
			h(ctx, r)
		}
	}

	return r, nil
}

func (e *Entry) ask(ctx context.Context, prompt string) (string, error) {
	e.console.Println(prompt)
	line, err := e.console.ReadLine(ctx)
	if err != nil {
		return "", fmt.Errorf("reading answer to %q: %w", prompt, err)
	}
	return line, nil
}

func (e *Entry) askInt(ctx context.Context, prompt, field string) (int, error) {
	line, err := e.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return ParseInt(field, line)
}

// ParseInt parses a 32-bit signed integer, ignoring surrounding
// whitespace. Failures are reported as *domain.ParseError.
func ParseInt(field, input string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		return 0, &domain.ParseError{Field: field, Input: input, Err: err}
	}
	return int(n), nil
}
