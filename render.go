package wareql

import (
	"github.com/zoobzio/wareql/bigquery"
	"github.com/zoobzio/wareql/internal/types"
)

// BuildQuery renders spec as BigQuery SQL with inline literals, the form
// shown to users before a run.
func BuildQuery(spec types.QuerySpec) (string, error) {
	result, err := bigquery.New().Render(spec)
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}

// ColumnsQuery renders the BigQuery column introspection query for a table.
// Any dataset prefix on table is stripped before it is matched against
// INFORMATION_SCHEMA.COLUMNS.table_name.
func ColumnsQuery(dataset, table string) (string, error) {
	result, err := bigquery.New().RenderColumns(types.Table{Dataset: dataset, Name: table})
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}

// MustBuildQuery renders spec with BuildQuery and panics on error.
func MustBuildQuery(spec types.QuerySpec) string {
	sql, err := BuildQuery(spec)
	if err != nil {
		panic(err)
	}
	return sql
}
