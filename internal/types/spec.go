package types

import "fmt"

// QuerySpec is the structured description of a SELECT, prior to rendering.
// It is a plain value: build one per run and pass it by value.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type QuerySpec struct {
	Table    Table
	Columns  []Column // Empty selects *
	Filters  []Filter
	Limit    *int
	Distinct bool
}

// Clone returns a deep copy of the spec.
func (s QuerySpec) Clone() QuerySpec {
	out := s
	if s.Columns != nil {
		out.Columns = append([]Column(nil), s.Columns...)
	}
	if s.Filters != nil {
		out.Filters = append([]Filter(nil), s.Filters...)
	}
	if s.Limit != nil {
		n := *s.Limit
		out.Limit = &n
	}
	return out
}

// ActiveFilters returns the filters that render into the WHERE clause.
func (s QuerySpec) ActiveFilters() []Filter {
	var active []Filter
	for _, f := range s.Filters {
		if !f.Skipped() {
			active = append(active, f)
		}
	}
	return active
}

// Validate performs identifier and shape validation on the spec.
func (s QuerySpec) Validate() error {
	if err := s.Table.Validate(); err != nil {
		return err
	}
	for _, c := range s.Columns {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for i, f := range s.Filters {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("filter %d: %w", i, err)
		}
	}
	if s.Limit != nil && *s.Limit < 1 {
		return &ValidationError{Field: "limit", Value: fmt.Sprint(*s.Limit), Reason: "must be a positive integer"}
	}
	return nil
}
