package wareql

import (
	"fmt"

	"github.com/zoobzio/wareql/internal/types"
)

// TryC creates a validated filter, returning an error if invalid.
// An absent value is accepted and yields a filter that is skipped at render time.
func TryC(c types.Column, op types.Operator, v types.Value) (types.Filter, error) {
	f := types.Filter{Column: c, Operator: op, Value: v}
	if err := f.Validate(); err != nil {
		return types.Filter{}, fmt.Errorf("invalid condition: %w", err)
	}
	return f, nil
}

// C creates a validated filter.
func C(c types.Column, op types.Operator, v types.Value) types.Filter {
	f, err := TryC(c, op, v)
	if err != nil {
		panic(err)
	}
	return f
}

// Null creates an IS NULL filter.
func Null(c types.Column) types.Filter {
	return types.Filter{Column: c, Operator: types.IsNull}
}

// NotNull creates an IS NOT NULL filter.
func NotNull(c types.Column) types.Filter {
	return types.Filter{Column: c, Operator: types.IsNotNull}
}

// Like creates a substring match filter; the pattern is wrapped in % on both sides.
func Like(c types.Column, substr string) types.Filter {
	return types.Filter{Column: c, Operator: types.LIKE, Value: types.StringValue(substr)}
}

// TryBetween creates an inclusive range filter, returning an error if the
// bounds are of different kinds.
func TryBetween(c types.Column, lo, hi types.Value) (types.Filter, error) {
	return TryC(c, types.BETWEEN, types.ListValue(lo, hi))
}

// Between creates an inclusive range filter.
func Between(c types.Column, lo, hi types.Value) types.Filter {
	f, err := TryBetween(c, lo, hi)
	if err != nil {
		panic(err)
	}
	return f
}

// TryIn creates a set membership filter, returning an error if the values
// are of different kinds. An empty set is skipped at render time.
func TryIn(c types.Column, values ...types.Value) (types.Filter, error) {
	return TryC(c, types.IN, types.ListValue(values...))
}

// In creates a set membership filter.
func In(c types.Column, values ...types.Value) types.Filter {
	f, err := TryIn(c, values...)
	if err != nil {
		panic(err)
	}
	return f
}
