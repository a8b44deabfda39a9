// Package wareql builds read-only SELECT queries for analytical warehouses.
//
// A QuerySpec describes one table, an ordered column list, AND-combined
// filters, an optional LIMIT and an optional DISTINCT. Specs are plain
// values: build one per run and hand it to a dialect renderer.
//
// # Basic Usage
//
//	spec, err := wareql.Select(wareql.T("bigquery-public-data.fcc_political_ads", "broadcast_tv_radio_station")).
//		Columns(wareql.F("station_id"), wareql.F("call_sign")).
//		Where(wareql.C(wareql.F("community_state"), wareql.EQ, wareql.String("CA"))).
//		Limit(1000).
//		Build()
//
//	sql, err := wareql.BuildQuery(spec)
//	// SELECT station_id, call_sign FROM `bigquery-public-data.fcc_political_ads.broadcast_tv_radio_station`
//	//   WHERE community_state = 'CA' LIMIT 1000
//
// # Values
//
// Filter operands are a closed set of kinds: String, Int/Float (numbers),
// Bool, Date and List. A filter whose value is Absent is dropped from the
// WHERE clause, so an empty form field means "no constraint". IS NULL and
// IS NOT NULL never take a value.
//
// # Dialects
//
// BigQuery is the canonical dialect. DuckDB, PostgreSQL, MySQL, SQLite and
// SQL Server renderers are provided for executing the same spec against
// local or relational warehouses. Every dialect renders either inline
// literals (New) or bound parameters (NewParameterized).
//
//	r, err := wareql.NewRenderer("duckdb", true)
//	result, err := r.Render(spec)
//	rows, err := db.QueryContext(ctx, result.SQL, result.Args...)
//
// # Validation
//
// Identifiers are checked against a conservative allow-list and literals are
// escaped by the dialect, so user-entered values cannot change the shape of
// the statement. Malformed specs fail with *ValidationError.
//
// For schema-checked column names, create a Schema from a DBML project:
//
//	schema, err := wareql.NewFromDBML(project)
//	col := schema.F("call_sign")
package wareql

import (
	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

// QuerySpec is the structured description of a SELECT.
type QuerySpec = types.QuerySpec

// QueryResult contains the rendered SQL and any bound arguments.
type QueryResult = types.QueryResult

// Table is a dataset-qualified table reference.
type Table = types.Table

// Column is a selected or filtered column reference.
type Column = types.Column

// Filter is one AND-combined WHERE predicate.
type Filter = types.Filter

// Value is a tagged filter operand.
type Value = types.Value

// Kind identifies the variant held by a Value.
type Kind = types.Kind

// Re-export value kinds for public API.
const (
	KindAbsent = types.KindAbsent
	KindString = types.KindString
	KindNumber = types.KindNumber
	KindBool   = types.KindBool
	KindDate   = types.KindDate
	KindList   = types.KindList
)

// DateLayout is the textual form of date values.
const DateLayout = types.DateLayout

// Wildcard selects every column.
const Wildcard = types.Wildcard

// Operator represents a filter operator.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	// Comparison operators.
	EQ = types.EQ
	NE = types.NE
	GT = types.GT
	GE = types.GE
	LT = types.LT
	LE = types.LE

	// Pattern, range and set operators.
	LIKE    = types.LIKE
	BETWEEN = types.BETWEEN
	IN      = types.IN

	// Null checks.
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull
)

// Operators lists every supported operator in display order.
var Operators = types.Operators

// ValidationError reports a spec that cannot be rendered safely.
type ValidationError = types.ValidationError

// Capabilities describes the SQL features a dialect supports.
type Capabilities = render.Capabilities

// UnsupportedFeatureError indicates a query shape a dialect cannot express.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// IsUnsupported reports whether err wraps an UnsupportedFeatureError.
func IsUnsupported(err error) bool {
	return render.IsUnsupported(err)
}

// ParseOperator resolves the textual form of an operator, e.g. ">=" or "is not null".
func ParseOperator(s string) (Operator, error) {
	return types.ParseOperator(s)
}
