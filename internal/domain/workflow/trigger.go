package workflow

// Trigger represents an event that can cause a payment-state transition
type Trigger string

const (
	TriggerMarkPaid    Trigger = "MARK_PAID"
	TriggerMarkUnpaid  Trigger = "MARK_UNPAID"
	TriggerMarkOverdue Trigger = "MARK_OVERDUE"
)

// String returns the string representation of the trigger
func (t Trigger) String() string {
	return string(t)
}
