// Package sqlite provides the SQLite dialect renderer for wareql.
//
// SQLite has no DATE type; dates render and bind as 'YYYY-MM-DD' text,
// which orders correctly against ISO-8601 text columns.
package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	parameterized bool
}

// New creates a SQLite renderer that inlines literals.
func New() *Renderer {
	return &Renderer{}
}

// NewParameterized creates a SQLite renderer that binds literals as ? parameters.
func NewParameterized() *Renderer {
	return &Renderer{parameterized: true}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return "SQLite"
}

// Parameterized reports whether literals are bound as parameters.
func (r *Renderer) Parameterized() bool {
	return r.parameterized
}

// Render converts a QuerySpec to SQLite SQL.
func (r *Renderer) Render(spec types.QuerySpec) (*types.QueryResult, error) {
	return render.Select(spec, r, r.parameterized)
}

// RenderColumns lists the table's columns through pragma_table_info.
// The dataset is an attached schema name and defaults to main.
func (r *Renderer) RenderColumns(table types.Table) (*types.QueryResult, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	schema := table.Schema()
	if schema == "" {
		schema = "main"
	}
	if strings.Contains(schema, ".") {
		return nil, render.NewUnsupportedFeatureError(r.Name(), fmt.Sprintf("multi-part dataset %q", schema), "use an attached schema name")
	}

	const query = "SELECT name AS column_name, type AS data_type FROM pragma_table_info(%s, %s) ORDER BY cid"
	if r.parameterized {
		return &types.QueryResult{
			SQL:  fmt.Sprintf(query, r.Placeholder(1), r.Placeholder(2)),
			Args: []any{table.Short(), schema},
		}, nil
	}
	return &types.QueryResult{
		SQL: fmt.Sprintf(query, r.QuoteString(table.Short()), r.QuoteString(schema)),
	}, nil
}

// QuoteTable quotes each segment with double quotes.
func (r *Renderer) QuoteTable(segments []string) string {
	return render.QuoteSegments(segments, '"', '"')
}

// QuoteString renders a standard SQL string literal.
func (r *Renderer) QuoteString(s string) string {
	return render.QuoteStringANSI(s)
}

// DateLiteral renders a date as a text literal.
func (r *Renderer) DateLiteral(date string) string {
	return "'" + date + "'"
}

// BoolLiteral renders TRUE or FALSE (SQLite 3.23+).
func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// Placeholder renders ?.
func (r *Renderer) Placeholder(_ int) string {
	return "?"
}

// BindDate binds dates as YYYY-MM-DD text.
func (r *Renderer) BindDate(t time.Time) any {
	return t.Format(types.DateLayout)
}

// Capabilities returns the SQL features supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		DateLiteral:   false,
		BoolLiteral:   true,
		Limit:         render.LimitClause,
		TableQuoting:  render.QuotePerSegment,
		Introspection: true,
	}
}
