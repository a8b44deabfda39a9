// Package mssql provides the SQL Server dialect renderer for wareql.
//
// SQL Server has no LIMIT clause; row limits render as SELECT TOP (n).
// Booleans render as 1/0 and dates as CAST('YYYY-MM-DD' AS DATE).
package mssql

import (
	"strconv"
	"time"

	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

var columnsQuery = render.InfoSchema{
	View:           "INFORMATION_SCHEMA.COLUMNS",
	Select:         "COLUMN_NAME AS column_name, DATA_TYPE AS data_type",
	MaxSchemaParts: 2,
}

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	parameterized bool
}

// New creates a SQL Server renderer that inlines literals.
func New() *Renderer {
	return &Renderer{}
}

// NewParameterized creates a SQL Server renderer that binds literals as @pN parameters.
func NewParameterized() *Renderer {
	return &Renderer{parameterized: true}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return "SQL Server"
}

// Parameterized reports whether literals are bound as parameters.
func (r *Renderer) Parameterized() bool {
	return r.parameterized
}

// Render converts a QuerySpec to T-SQL.
func (r *Renderer) Render(spec types.QuerySpec) (*types.QueryResult, error) {
	return render.Select(spec, r, r.parameterized)
}

// RenderColumns lists the table's columns from INFORMATION_SCHEMA.
// A two-part dataset is read as database.schema.
func (r *Renderer) RenderColumns(table types.Table) (*types.QueryResult, error) {
	return columnsQuery.Render(r, table, r.parameterized)
}

// QuoteTable quotes each segment with square brackets.
func (r *Renderer) QuoteTable(segments []string) string {
	return render.QuoteSegments(segments, '[', ']')
}

// QuoteString renders a standard SQL string literal.
func (r *Renderer) QuoteString(s string) string {
	return render.QuoteStringANSI(s)
}

// DateLiteral renders a date as CAST('YYYY-MM-DD' AS DATE).
func (r *Renderer) DateLiteral(date string) string {
	return "CAST('" + date + "' AS DATE)"
}

// BoolLiteral renders 1 or 0 for BIT columns.
func (r *Renderer) BoolLiteral(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Placeholder renders @pN, the ordinal form go-mssqldb binds positionally.
func (r *Renderer) Placeholder(n int) string {
	return "@p" + strconv.Itoa(n)
}

// BindDate passes dates through as time.Time.
func (r *Renderer) BindDate(t time.Time) any {
	return t
}

// Capabilities returns the SQL features supported by SQL Server.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		DateLiteral:   false,
		BoolLiteral:   false,
		Limit:         render.LimitTop,
		TableQuoting:  render.QuotePerSegment,
		NamedParams:   true,
		Introspection: true,
	}
}
