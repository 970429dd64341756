// Package workflow models the payment-status lifecycle of invoices and
// purchase bills as a small state machine.
package workflow

// State represents a document payment state
type State string

const (
	StateUnpaid  State = "UNPAID"
	StatePaid    State = "PAID"
	StateOverdue State = "OVERDUE"
)

var validStates = map[State]bool{
	StateUnpaid:  true,
	StatePaid:    true,
	StateOverdue: true,
}

// Overdue accepts no further triggers; documents already paid can never
// become overdue.
var terminalStates = map[State]bool{
	StateOverdue: true,
}

// IsValid returns true if the state is a known payment state
func (s State) IsValid() bool {
	return validStates[s]
}

// IsTerminal returns true if no transitions leave the state
func (s State) IsTerminal() bool {
	return terminalStates[s]
}

// String returns the string representation of the state
func (s State) String() string {
	return string(s)
}
