package wareql

import (
	"time"

	"github.com/zoobzio/wareql/internal/types"
)

// String creates a string value.
func String(s string) types.Value {
	return types.StringValue(s)
}

// Int creates an integral number value.
func Int(i int64) types.Value {
	return types.IntValue(i)
}

// Float creates a floating point number value.
// NaN and infinities are rejected when the spec is validated.
func Float(f float64) types.Value {
	return types.FloatValue(f)
}

// Bool creates a boolean value.
func Bool(b bool) types.Value {
	return types.BoolValue(b)
}

// Date creates a date value from the calendar date of t.
func Date(t time.Time) types.Value {
	return types.DateValue(t)
}

// TryDate parses a YYYY-MM-DD date value, returning an error if invalid.
func TryDate(s string) (types.Value, error) {
	return types.ParseDateValue(s)
}

// MustDate parses a YYYY-MM-DD date value.
func MustDate(s string) types.Value {
	v, err := TryDate(s)
	if err != nil {
		panic(err)
	}
	return v
}

// List creates a list value for IN and BETWEEN.
func List(items ...types.Value) types.Value {
	return types.ListValue(items...)
}

// Strings creates a list of string values.
func Strings(items ...string) types.Value {
	values := make([]types.Value, len(items))
	for i, s := range items {
		values[i] = types.StringValue(s)
	}
	return types.ListValue(values...)
}

// Ints creates a list of integral number values.
func Ints(items ...int64) types.Value {
	values := make([]types.Value, len(items))
	for i, n := range items {
		values[i] = types.IntValue(n)
	}
	return types.ListValue(values...)
}

// Absent returns the absent value. Filters holding it are skipped.
func Absent() types.Value {
	return types.Value{}
}
