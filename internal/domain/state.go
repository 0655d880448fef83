package domain

// MenuChoice is a selection made at the main menu.
type MenuChoice int

const (
	ChoiceUnknown MenuChoice = iota
	ChoiceEnter
	ChoiceDisplay
	ChoiceExit
)

// String returns a human-readable menu choice.
func (c MenuChoice) String() string {
	switch c {
	case ChoiceEnter:
		return "enter"
	case ChoiceDisplay:
		return "display"
	case ChoiceExit:
		return "exit"
	default:
		return "unknown"
	}
}

// SessionState is a state of the interactive session loop.
type SessionState int

const (
	StateMenuPrompt SessionState = iota
	StateEntering
	StateListing
	StateTerminated
)

// String returns a human-readable session state.
func (s SessionState) String() string {
	switch s {
	case StateMenuPrompt:
		return "menu"
	case StateEntering:
		return "entering"
	case StateListing:
		return "listing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
