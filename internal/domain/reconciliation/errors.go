package reconciliation

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation marks data that must never reach the engine. A run that
// hits it produces no result at all.
var ErrInvariantViolation = errors.New("reconciliation invariant violated")

// InvariantError describes which record broke which rule.
type InvariantError struct {
	LineItemID string
	Reason     string
}

func (e *InvariantError) Error() string {
	if e.LineItemID == "" {
		return fmt.Sprintf("%s: %s", ErrInvariantViolation, e.Reason)
	}
	return fmt.Sprintf("%s: line %q: %s", ErrInvariantViolation, e.LineItemID, e.Reason)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

func violation(lineItemID, format string, args ...any) error {
	return &InvariantError{LineItemID: lineItemID, Reason: fmt.Sprintf(format, args...)}
}
