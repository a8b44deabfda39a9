// Package mysql provides the MySQL and MariaDB dialect renderer for wareql.
package mysql

import (
	"strings"
	"time"

	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

// MySQL labels information_schema columns in upper case; alias them back.
var columnsQuery = render.InfoSchema{
	View:           "information_schema.columns",
	Select:         "column_name AS column_name, data_type AS data_type",
	MaxSchemaParts: 1,
}

// Renderer implements the MySQL dialect renderer.
type Renderer struct {
	parameterized bool
}

// New creates a MySQL renderer that inlines literals.
func New() *Renderer {
	return &Renderer{}
}

// NewParameterized creates a MySQL renderer that binds literals as ? parameters.
func NewParameterized() *Renderer {
	return &Renderer{parameterized: true}
}

// Name returns the dialect name.
func (r *Renderer) Name() string {
	return "MySQL"
}

// Parameterized reports whether literals are bound as parameters.
func (r *Renderer) Parameterized() bool {
	return r.parameterized
}

// Render converts a QuerySpec to MySQL SQL.
func (r *Renderer) Render(spec types.QuerySpec) (*types.QueryResult, error) {
	return render.Select(spec, r, r.parameterized)
}

// RenderColumns lists the table's columns from information_schema.
// The dataset is the database name.
func (r *Renderer) RenderColumns(table types.Table) (*types.QueryResult, error) {
	return columnsQuery.Render(r, table, r.parameterized)
}

// QuoteTable quotes each segment with backticks.
func (r *Renderer) QuoteTable(segments []string) string {
	return render.QuoteSegments(segments, '`', '`')
}

// QuoteString renders a string literal for the default sql_mode, where
// backslash is an escape character.
func (r *Renderer) QuoteString(s string) string {
	return render.QuoteStringANSI(strings.ReplaceAll(s, `\`, `\\`))
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

// Placeholder renders ?.
func (r *Renderer) Placeholder(_ int) string {
	return "?"
}

// BindDate binds dates as YYYY-MM-DD text, which MySQL casts to DATE.
func (r *Renderer) BindDate(t time.Time) any {
	return t.Format(types.DateLayout)
}

// Capabilities returns the SQL features supported by MySQL.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		DateLiteral:   true,
		BoolLiteral:   true,
		Limit:         render.LimitClause,
		TableQuoting:  render.QuotePerSegment,
		Introspection: true,
	}
}
