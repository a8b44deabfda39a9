package types

// QueryResult contains the rendered SQL and, for parameterized renders,
// the driver arguments in placeholder order.
type QueryResult struct {
	SQL  string
	Args []any
}

// String returns the SQL text.
func (r *QueryResult) String() string {
	return r.SQL
}
