package workflow

import "fmt"

// Machine tracks a document's payment state and validates transitions.
type Machine struct {
	current     State
	transitions map[State]map[Trigger]State
}

// paymentTransitions is the full transition table: the unpaid/paid toggle is
// bidirectional and unrestricted, overdue is reachable only from unpaid.
var paymentTransitions = map[State]map[Trigger]State{
	StateUnpaid: {
		TriggerMarkPaid:    StatePaid,
		TriggerMarkOverdue: StateOverdue,
	},
	StatePaid: {
		TriggerMarkUnpaid: StateUnpaid,
	},
}

// NewMachine creates a payment-status machine positioned at initialState.
func NewMachine(initialState State) (*Machine, error) {
	if !initialState.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, initialState)
	}
	return &Machine{
		current:     initialState,
		transitions: paymentTransitions,
	}, nil
}

// State returns the current state
func (m *Machine) State() State {
	return m.current
}

// CanFire returns true if the trigger is permitted in the current state
func (m *Machine) CanFire(trigger Trigger) bool {
	_, ok := m.transitions[m.current][trigger]
	return ok
}

// Fire executes the trigger, moving to the target state if the transition
// is permitted
func (m *Machine) Fire(trigger Trigger) error {
	next, ok := m.transitions[m.current][trigger]
	if !ok {
		return fmt.Errorf("%w: cannot fire %s from %s", ErrInvalidTransition, trigger, m.current)
	}
	m.current = next
	return nil
}

// PermittedTriggers returns all triggers that can fire in the current state
func (m *Machine) PermittedTriggers() []Trigger {
	triggers := make([]Trigger, 0, len(m.transitions[m.current]))
	for trigger := range m.transitions[m.current] {
		triggers = append(triggers, trigger)
	}
	return triggers
}
