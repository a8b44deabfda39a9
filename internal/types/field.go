package types

// Wildcard selects every column.
const Wildcard = "*"

// Column represents a validated column reference.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Column struct {
	Name string
}

// GetName returns the column name.
func (c Column) GetName() string {
	return c.Name
}

// IsWildcard reports whether c is the "*" column.
func (c Column) IsWildcard() bool {
	return c.Name == Wildcard
}

// Validate checks the column against the identifier allow-list.
func (c Column) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "column", Reason: "column name is required"}
	}
	if !c.IsWildcard() && !IsValidColumn(c.Name) {
		return &ValidationError{Field: "column", Value: c.Name, Reason: "must be '*' or dot-separated identifiers"}
	}
	return nil
}
