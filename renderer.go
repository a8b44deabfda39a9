package wareql

import (
	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations convert a QuerySpec into dialect SQL, with literals either
// inlined or bound as driver arguments.
type Renderer interface {
	// Name returns the human-readable dialect name.
	Name() string

	// Render converts a QuerySpec to a QueryResult with dialect-specific SQL.
	Render(spec types.QuerySpec) (*types.QueryResult, error)

	// RenderColumns renders the column introspection query for a table.
	// Rows carry (column_name, data_type).
	RenderColumns(table types.Table) (*types.QueryResult, error)

	// Capabilities reports the SQL features the dialect supports.
	Capabilities() render.Capabilities
}
