package types

import "fmt"

// ValidationError reports a query spec that cannot be rendered safely.
type ValidationError struct {
	Field  string // Which part of the spec failed: table, column, filter, limit...
	Value  string // Offending input, if any
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
