package workflow

import "errors"

var (
	// ErrInvalidTransition is returned when a trigger is not permitted in
	// the current state
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidState is returned for states outside the payment lifecycle
	ErrInvalidState = errors.New("invalid status")
)
