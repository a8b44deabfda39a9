package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindList
)

// DateLayout is the textual form of date values.
const DateLayout = "2006-01-02"

var kindNames = [...]string{
	KindAbsent: "absent",
	KindString: "string",
	KindNumber: "number",
	KindBool:   "bool",
	KindDate:   "date",
	KindList:   "list",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Value is a filter operand. The zero Value is absent.
// Values are immutable once constructed; List copies its items.
//
//nolint:govet // fieldalignment: variant fields are grouped by kind
type Value struct {
	kind    Kind
	str     string
	integer int64
	float   float64
	isFloat bool
	boolean bool
	date    time.Time
	items   []Value
}

// StringValue creates a string value.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IntValue creates an integral number value.
func IntValue(i int64) Value {
	return Value{kind: KindNumber, integer: i}
}

// FloatValue creates a floating point number value.
func FloatValue(f float64) Value {
	return Value{kind: KindNumber, float: f, isFloat: true}
}

// BoolValue creates a boolean value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// DateValue creates a date value from the calendar date of t.
// The time of day and location are discarded.
func DateValue(t time.Time) Value {
	y, m, d := t.Date()
	return Value{kind: KindDate, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDateValue parses a YYYY-MM-DD date.
func ParseDateValue(s string) (Value, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Value{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return DateValue(t), nil
}

// ListValue creates a list value holding a copy of items.
func ListValue(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{kind: KindList, items: copied}
}

// Kind returns the variant of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v carries no value.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Str returns the string payload.
func (v Value) Str() string {
	return v.str
}

// Bool returns the boolean payload.
func (v Value) Bool() bool {
	return v.boolean
}

// Date returns the date payload at midnight UTC.
func (v Value) Date() time.Time {
	return v.date
}

// IsFloat reports whether a number value was built from a float64.
func (v Value) IsFloat() bool {
	return v.isFloat
}

// Int returns the integral payload of a number value.
func (v Value) Int() int64 {
	return v.integer
}

// Float returns the number payload as float64.
func (v Value) Float() float64 {
	if v.isFloat {
		return v.float
	}
	return float64(v.integer)
}

// Number returns the native Go number, int64 or float64.
func (v Value) Number() any {
	if v.isFloat {
		return v.float
	}
	return v.integer
}

// Items returns a copy of the list payload.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	items := make([]Value, len(v.items))
	copy(items, v.items)
	return items
}

// Len returns the number of list items.
func (v Value) Len() int {
	return len(v.items)
}

// Text returns the unquoted textual form of a scalar value.
// Numbers print without exponent, dates as YYYY-MM-DD, booleans as true/false.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.isFloat {
			return strconv.FormatFloat(v.float, 'f', -1, 64)
		}
		return strconv.FormatInt(v.integer, 10)
	case KindBool:
		return strconv.FormatBool(v.boolean)
	case KindDate:
		return v.date.Format(DateLayout)
	case KindList:
		parts := make([]string, len(v.items))
		for i, item := range v.items {
			parts[i] = item.Text()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindAbsent {
		return "<absent>"
	}
	return v.Text()
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindAbsent:
		return true
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.isFloat == o.isFloat && v.integer == o.integer && v.float == o.float
	case KindBool:
		return v.boolean == o.boolean
	case KindDate:
		return v.date.Equal(o.date)
	case KindList:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// ElementKind returns the shared kind of all list items.
// It fails when items are of different kinds or are themselves lists.
func (v Value) ElementKind() (Kind, error) {
	if v.kind != KindList {
		return v.kind, nil
	}
	if len(v.items) == 0 {
		return KindAbsent, nil
	}
	first := v.items[0].kind
	for i, item := range v.items {
		if item.kind == KindList {
			return KindAbsent, fmt.Errorf("item %d is a nested list", i)
		}
		if item.kind == KindAbsent {
			return KindAbsent, fmt.Errorf("item %d is absent", i)
		}
		if item.kind != first {
			return KindAbsent, fmt.Errorf("item %d is %s, expected %s", i, item.kind, first)
		}
	}
	return first, nil
}

// validate checks payload invariants that constructors cannot enforce.
func (v Value) validate() error {
	switch v.kind {
	case KindNumber:
		if v.isFloat && (math.IsNaN(v.float) || math.IsInf(v.float, 0)) {
			return fmt.Errorf("number %v is not finite", v.float)
		}
	case KindList:
		for i, item := range v.items {
			if err := item.validate(); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
	}
	return nil
}
