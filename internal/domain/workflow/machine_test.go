package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_IsValid(t *testing.T) {
	assert.True(t, StateUnpaid.IsValid())
	assert.True(t, StatePaid.IsValid())
	assert.True(t, StateOverdue.IsValid())
	assert.False(t, State("CANCELLED").IsValid())
	assert.False(t, State("").IsValid())
}

func TestState_IsTerminal(t *testing.T) {
	assert.False(t, StateUnpaid.IsTerminal())
	assert.False(t, StatePaid.IsTerminal())
	assert.True(t, StateOverdue.IsTerminal())
}

func TestNewMachine_RejectsInvalidState(t *testing.T) {
	_, err := NewMachine(State("DRAFT"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidState))
}

func TestMachine_PaidToggle(t *testing.T) {
	m, err := NewMachine(StateUnpaid)
	require.NoError(t, err)

	require.NoError(t, m.Fire(TriggerMarkPaid))
	assert.Equal(t, StatePaid, m.State())

	require.NoError(t, m.Fire(TriggerMarkUnpaid))
	assert.Equal(t, StateUnpaid, m.State())

	// Toggling repeatedly stays legal in both directions.
	require.NoError(t, m.Fire(TriggerMarkPaid))
	require.NoError(t, m.Fire(TriggerMarkUnpaid))
	assert.Equal(t, StateUnpaid, m.State())
}

func TestMachine_OverdueOnlyFromUnpaid(t *testing.T) {
	m, err := NewMachine(StateUnpaid)
	require.NoError(t, err)

	require.NoError(t, m.Fire(TriggerMarkOverdue))
	assert.Equal(t, StateOverdue, m.State())
}

func TestMachine_PaidNeverBecomesOverdue(t *testing.T) {
	m, err := NewMachine(StatePaid)
	require.NoError(t, err)

	err = m.Fire(TriggerMarkOverdue)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, StatePaid, m.State())
}

func TestMachine_OverdueIsTerminal(t *testing.T) {
	m, err := NewMachine(StateOverdue)
	require.NoError(t, err)

	for _, trigger := range []Trigger{TriggerMarkPaid, TriggerMarkUnpaid, TriggerMarkOverdue} {
		err := m.Fire(trigger)
		assert.True(t, errors.Is(err, ErrInvalidTransition), "trigger %s", trigger)
	}
	assert.Empty(t, m.PermittedTriggers())
}

func TestMachine_CanFire(t *testing.T) {
	m, err := NewMachine(StateUnpaid)
	require.NoError(t, err)

	assert.True(t, m.CanFire(TriggerMarkPaid))
	assert.True(t, m.CanFire(TriggerMarkOverdue))
	assert.False(t, m.CanFire(TriggerMarkUnpaid))
}

func TestMachine_PermittedTriggers(t *testing.T) {
	m, err := NewMachine(StateUnpaid)
	require.NoError(t, err)

	triggers := m.PermittedTriggers()
	assert.ElementsMatch(t, []Trigger{TriggerMarkPaid, TriggerMarkOverdue}, triggers)
}
