package types

import (
	"fmt"
	"strings"
)

// Operator represents a filter comparison operator.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	LIKE      Operator = "LIKE"
	BETWEEN   Operator = "BETWEEN"
	IN        Operator = "IN"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
)

// Operators lists the closed operator set in display order.
var Operators = []Operator{EQ, NE, GT, LT, GE, LE, LIKE, BETWEEN, IN, IsNull, IsNotNull}

// Valid reports whether op belongs to the operator set.
func (op Operator) Valid() bool {
	for _, known := range Operators {
		if op == known {
			return true
		}
	}
	return false
}

// NullCheck reports whether op is IS NULL or IS NOT NULL, the only
// operators that take no value.
func (op Operator) NullCheck() bool {
	return op == IsNull || op == IsNotNull
}

// Comparison reports whether op is one of the ordering operators.
func (op Operator) Comparison() bool {
	switch op {
	case GT, GE, LT, LE:
		return true
	default:
		return false
	}
}

// ParseOperator resolves an operator from its textual form. Matching is
// case-insensitive and tolerates repeated spaces; "<>" is accepted for !=.
func ParseOperator(s string) (Operator, error) {
	norm := strings.ToUpper(strings.Join(strings.Fields(s), " "))
	if norm == "<>" {
		return NE, nil
	}
	op := Operator(norm)
	if !op.Valid() {
		return "", &ValidationError{Field: "operator", Value: s, Reason: fmt.Sprintf("must be one of %s", operatorList())}
	}
	return op, nil
}

func operatorList() string {
	names := make([]string, len(Operators))
	for i, op := range Operators {
		names[i] = string(op)
	}
	return strings.Join(names, ", ")
}
