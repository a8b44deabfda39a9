// Package duckdb provides the DuckDB dialect renderer for wareql.
package duckdb

import (
	"strconv"
	"time"

	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

var columnsQuery = render.InfoSchema{
	View:           "information_schema.columns",
	Select:         "column_name, data_type",
	MaxSchemaParts: 2,
}

// Renderer implements the DuckDB dialect renderer.
type Renderer struct {
	parameterized bool
}

// New creates a DuckDB renderer that inlines literals.
func New() *Renderer {
	return &Renderer{}
}

// NewParameterized creates a DuckDB renderer that binds literals as $N parameters.
func NewParameterized() *Renderer {
	return &Renderer{parameterized: true}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return "DuckDB"
}

// Parameterized reports whether literals are bound as parameters.
func (r *Renderer) Parameterized() bool {
	return r.parameterized
}

// Render converts a QuerySpec to DuckDB SQL.
func (r *Renderer) Render(spec types.QuerySpec) (*types.QueryResult, error) {
	return render.Select(spec, r, r.parameterized)
}

// RenderColumns lists the table's columns from information_schema.
// A two-part dataset is read as catalog.schema.
func (r *Renderer) RenderColumns(table types.Table) (*types.QueryResult, error) {
	return columnsQuery.Render(r, table, r.parameterized)
}

// QuoteTable quotes each segment with double quotes.
func (r *Renderer) QuoteTable(segments []string) string {
	return render.QuoteSegments(segments, '"', '"')
}

// QuoteString renders a standard SQL string literal.
func (r *Renderer) QuoteString(s string) string {
	return render.QuoteStringANSI(s)
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

// Placeholder renders $N.
func (r *Renderer) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

// BindDate passes dates through as time.Time; the driver binds them as timestamps
// which DuckDB compares against DATE columns by implicit cast.
func (r *Renderer) BindDate(t time.Time) any {
	return t
}

// Capabilities returns the SQL features supported by DuckDB.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		DateLiteral:   true,
		BoolLiteral:   true,
		Limit:         render.LimitClause,
		TableQuoting:  render.QuotePerSegment,
		Introspection: true,
	}
}
