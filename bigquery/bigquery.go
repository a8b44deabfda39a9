// Package bigquery provides the BigQuery dialect renderer for wareql.
//
// Tables render as a single backtick-quoted qualified name
// (`project.dataset.table`), dates as DATE 'YYYY-MM-DD' literals and
// parameters as @p1, @p2, ...
package bigquery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

// Renderer implements the BigQuery dialect renderer.
type Renderer struct {
	parameterized bool
}

// New creates a BigQuery renderer that inlines literals.
func New() *Renderer {
	return &Renderer{}
}

// NewParameterized creates a BigQuery renderer that binds literals as @pN parameters.
func NewParameterized() *Renderer {
	return &Renderer{parameterized: true}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return "BigQuery"
}

// Parameterized reports whether literals are bound as parameters.
func (r *Renderer) Parameterized() bool {
	return r.parameterized
}

// Render converts a QuerySpec to BigQuery SQL.
func (r *Renderer) Render(spec types.QuerySpec) (*types.QueryResult, error) {
	return render.Select(spec, r, r.parameterized)
}

// RenderColumns renders the column introspection query for table:
//
//	SELECT column_name, data_type FROM `dataset.INFORMATION_SCHEMA.COLUMNS` WHERE table_name = 'short'
//
// where short is the table name with any dataset prefix stripped.
func (r *Renderer) RenderColumns(table types.Table) (*types.QueryResult, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	dataset := table.Dataset
	if dataset == "" {
		dataset = table.Schema()
	}
	if dataset == "" {
		return nil, &types.ValidationError{Field: "dataset", Reason: "dataset is required for INFORMATION_SCHEMA lookups"}
	}

	from := r.QuoteTable([]string{dataset, "INFORMATION_SCHEMA", "COLUMNS"})
	short := table.Short()
	if r.parameterized {
		return &types.QueryResult{
			SQL:  fmt.Sprintf("SELECT column_name, data_type FROM %s WHERE table_name = %s", from, r.Placeholder(1)),
			Args: []any{short},
		}, nil
	}
	return &types.QueryResult{
		SQL: fmt.Sprintf("SELECT column_name, data_type FROM %s WHERE table_name = %s", from, r.QuoteString(short)),
	}, nil
}

// QuoteTable wraps the whole qualified name in one pair of backticks.
func (r *Renderer) QuoteTable(segments []string) string {
	return render.QuoteIdentifier(strings.Join(segments, "."), '`', '`')
}

// QuoteString renders a BigQuery string literal; backslash is the escape character.
func (r *Renderer) QuoteString(s string) string {
	return render.QuoteStringBackslash(s)
}

// DateLiteral renders a DATE literal.
func (r *Renderer) DateLiteral(date string) string {
	return "DATE '" + date + "'"
}

// BoolLiteral renders TRUE or FALSE.
func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Placeholder renders @pN.
func (r *Renderer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

// BindDate passes dates through as time.Time at midnight UTC.
func (r *Renderer) BindDate(t time.Time) any {
	return t
}

// Capabilities returns the SQL features supported by BigQuery.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		DateLiteral:   true,
		BoolLiteral:   true,
		Limit:         render.LimitClause,
		TableQuoting:  render.QuoteWholeName,
		NamedParams:   true,
		Introspection: true,
	}
}
