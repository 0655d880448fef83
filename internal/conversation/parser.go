// Package conversation provides menu parsing, line consoles and
// user notification implementations.
package conversation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/recipebook/internal/domain"
	"github.com/hammamikhairi/recipebook/internal/logger"
)

// Compile-time interface check.
var _ domain.ChoiceParser = (*MenuParser)(nil)

// MenuParser maps the numbered main menu to choices.
type MenuParser struct {
	log     *logger.Logger
	choices map[int]domain.MenuChoice
}

// NewMenuParser creates a parser for the "1. Enter / 2. Display / 3. Exit" menu.
func NewMenuParser(log *logger.Logger) *MenuParser {
	return &MenuParser{
		log: log,
		choices: map[int]domain.MenuChoice{
			1: domain.ChoiceEnter,
			2: domain.ChoiceDisplay,
			3: domain.ChoiceExit,
		},
	}
}

// ParseChoice converts menu input into a choice. Surrounding whitespace
// is ignored; the number must fit in 32 bits.
func (p *MenuParser) ParseChoice(input string) (domain.MenuChoice, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 32)
	if err != nil {
		p.log.Debug("menu input %q is not a number", input)
		return domain.ChoiceUnknown, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, input)
	}

	choice, ok := p.choices[int(n)]
	if !ok {
		p.log.Debug("menu number %d out of range", n)
		return domain.ChoiceUnknown, nil
	}
	p.log.Debug("menu choice: %s", choice)
	return choice, nil
}
