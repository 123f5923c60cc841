package model

import "fmt"

// ValidationError reports an invalid input field. Validation runs before
// any computation so the engine never sees a profile that could produce
// NaN or negative results.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
