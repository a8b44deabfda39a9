package render

import "time"

// Dialect supplies the dialect-specific pieces of a rendered query.
// The clause layout itself is shared and lives in Select.
type Dialect interface {
	// Name is the dialect's display name, used in errors.
	Name() string

	// Capabilities reports the dialect's feature set.
	Capabilities() Capabilities

	// QuoteTable renders a validated, dataset-qualified table reference.
	QuoteTable(segments []string) string

	// QuoteString renders a string literal with the dialect's escaping.
	QuoteString(s string) string

	// DateLiteral renders a YYYY-MM-DD date literal.
	DateLiteral(date string) string

	// BoolLiteral renders a boolean literal.
	BoolLiteral(b bool) string

	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder(n int) string

	// BindDate converts a date to the driver argument for a placeholder.
	BindDate(t time.Time) any
}
