package types

import "fmt"

// Filter represents one WHERE-clause predicate.
// Filters are combined with AND only, in the order given.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Filter struct {
	Column   Column
	Operator Operator
	Value    Value
}

// Skipped reports whether the filter is dropped from the WHERE clause:
// an absent value (or an empty IN list) means "no constraint", except for
// the null-check operators which never take a value.
func (f Filter) Skipped() bool {
	if f.Operator.NullCheck() {
		return false
	}
	if f.Value.IsAbsent() {
		return true
	}
	return f.Operator == IN && f.Value.Kind() == KindList && f.Value.Len() == 0
}

// Validate checks the filter's column, operator and value shape.
// Skipped filters only have their column and operator checked.
func (f Filter) Validate() error {
	if err := f.Column.Validate(); err != nil {
		return err
	}
	if f.Column.IsWildcard() {
		return &ValidationError{Field: "filter", Value: f.Column.Name, Reason: "cannot filter on '*'"}
	}
	if !f.Operator.Valid() {
		return &ValidationError{Field: "operator", Value: string(f.Operator), Reason: "unsupported operator"}
	}
	if f.Skipped() || f.Operator.NullCheck() {
		return nil
	}
	if err := f.Value.validate(); err != nil {
		return f.invalid(err.Error())
	}

	kind := f.Value.Kind()
	switch f.Operator {
	case EQ, NE, GT, GE, LT, LE:
		if kind == KindList {
			return f.invalid(fmt.Sprintf("%s takes a single value, got a list", f.Operator))
		}
	case LIKE:
		if kind != KindString && kind != KindNumber {
			return f.invalid(fmt.Sprintf("LIKE takes a string, got %s", kind))
		}
	case BETWEEN:
		if kind != KindList || f.Value.Len() != 2 {
			return f.invalid("BETWEEN takes a two-element [low, high] list")
		}
		elem, err := f.Value.ElementKind()
		if err != nil {
			return f.invalid("BETWEEN bounds must share a kind: " + err.Error())
		}
		if elem == KindBool {
			return f.invalid("BETWEEN bounds cannot be booleans")
		}
	case IN:
		if kind == KindList {
			if _, err := f.Value.ElementKind(); err != nil {
				return f.invalid("IN values must share a kind: " + err.Error())
			}
		}
	}
	return nil
}

func (f Filter) invalid(reason string) error {
	return &ValidationError{Field: "filter", Value: f.Column.Name + " " + string(f.Operator), Reason: reason}
}
