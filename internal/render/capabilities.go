package render

// LimitStyle indicates how a dialect caps the number of returned rows.
type LimitStyle int

const (
	LimitClause LimitStyle = iota // ... LIMIT n
	LimitTop                      // SELECT TOP (n) ...
)

// TableQuoting indicates how a qualified table name is quoted.
type TableQuoting int

const (
	QuoteWholeName  TableQuoting = iota // `project.dataset.table`
	QuotePerSegment                     // "dataset"."table"
)

// Capabilities describes the SQL features supported by a dialect.
type Capabilities struct {
	DateLiteral   bool         // DATE 'YYYY-MM-DD' typed literal
	BoolLiteral   bool         // TRUE / FALSE keywords
	Limit         LimitStyle   // LIMIT clause or TOP
	TableQuoting  TableQuoting // Qualified table quoting
	NamedParams   bool         // @p1 style placeholders
	Introspection bool         // Column introspection query available
}
