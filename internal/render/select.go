package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/wareql/internal/types"
)

// renderContext tracks bind arguments while rendering one query.
type renderContext struct {
	dialect       Dialect
	args          []any
	parameterized bool
}

// newRenderContext creates a new render context.
func newRenderContext(d Dialect, parameterized bool) *renderContext {
	return &renderContext{dialect: d, parameterized: parameterized}
}

// Select renders spec as a SELECT statement in dialect d.
// Clauses are emitted in the fixed order SELECT, FROM, WHERE, LIMIT.
// When parameterized is set, every literal is replaced by a placeholder and
// its value appended to QueryResult.Args.
func Select(spec types.QuerySpec, d Dialect, parameterized bool) (*types.QueryResult, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	caps := d.Capabilities()
	ctx := newRenderContext(d, parameterized)

	var sql strings.Builder
	sql.WriteString("SELECT ")
	if spec.Distinct {
		sql.WriteString("DISTINCT ")
	}
	if spec.Limit != nil && caps.Limit == LimitTop {
		fmt.Fprintf(&sql, "TOP (%d) ", *spec.Limit)
	}
	sql.WriteString(renderColumns(spec.Columns))

	sql.WriteString(" FROM ")
	sql.WriteString(d.QuoteTable(spec.Table.Segments()))

	if active := spec.ActiveFilters(); len(active) > 0 {
		predicates := make([]string, len(active))
		for i, f := range active {
			predicates[i] = ctx.predicate(f)
		}
		sql.WriteString(" WHERE ")
		sql.WriteString(strings.Join(predicates, " AND "))
	}

	if spec.Limit != nil && caps.Limit == LimitClause {
		fmt.Fprintf(&sql, " LIMIT %d", *spec.Limit)
	}

	return &types.QueryResult{
		SQL:  sql.String(),
		Args: ctx.args,
	}, nil
}

func renderColumns(columns []types.Column) string {
	if len(columns) == 0 {
		return types.Wildcard
	}
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return strings.Join(names, ", ")
}

// predicate renders one validated, non-skipped filter.
func (ctx *renderContext) predicate(f types.Filter) string {
	col := f.Column.Name

	switch f.Operator {
	case types.IsNull:
		return col + " IS NULL"
	case types.IsNotNull:
		return col + " IS NOT NULL"
	case types.LIKE:
		// Substring match only; % and _ inside the value keep their wildcard meaning.
		pattern := types.StringValue("%" + f.Value.Text() + "%")
		return fmt.Sprintf("%s LIKE %s", col, ctx.literal(pattern))
	case types.BETWEEN:
		bounds := f.Value.Items()
		return fmt.Sprintf("%s BETWEEN %s AND %s", col, ctx.literal(bounds[0]), ctx.literal(bounds[1]))
	case types.IN:
		items := []types.Value{f.Value}
		if f.Value.Kind() == types.KindList {
			items = f.Value.Items()
		}
		rendered := make([]string, len(items))
		for i, item := range items {
			rendered[i] = ctx.literal(item)
		}
		return fmt.Sprintf("%s IN (%s)", col, strings.Join(rendered, ", "))
	default:
		return fmt.Sprintf("%s %s %s", col, f.Operator, ctx.literal(f.Value))
	}
}

// literal renders a scalar value inline, or binds it and returns its placeholder.
func (ctx *renderContext) literal(v types.Value) string {
	if ctx.parameterized {
		ctx.args = append(ctx.args, ctx.bind(v))
		return ctx.dialect.Placeholder(len(ctx.args))
	}

	switch v.Kind() {
	case types.KindString:
		return ctx.dialect.QuoteString(v.Str())
	case types.KindNumber:
		return v.Text()
	case types.KindBool:
		return ctx.dialect.BoolLiteral(v.Bool())
	case types.KindDate:
		return ctx.dialect.DateLiteral(v.Text())
	default:
		return "NULL" // fallback, validation rejects lists and absent values here
	}
}

func (ctx *renderContext) bind(v types.Value) any {
	switch v.Kind() {
	case types.KindString:
		return v.Str()
	case types.KindNumber:
		return v.Number()
	case types.KindBool:
		return v.Bool()
	case types.KindDate:
		return ctx.dialect.BindDate(v.Date())
	default:
		return nil
	}
}
