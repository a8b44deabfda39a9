package warehouse

// ResultSet is a fully materialized query result.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// Len returns the number of rows.
func (r *ResultSet) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Record returns row i as a column name to value mapping.
func (r *ResultSet) Record(i int) map[string]any {
	record := make(map[string]any, len(r.Columns))
	for j, col := range r.Columns {
		record[col] = r.Rows[i][j]
	}
	return record
}

// Records returns every row as a column name to value mapping.
func (r *ResultSet) Records() []map[string]any {
	records := make([]map[string]any, r.Len())
	for i := range records {
		records[i] = r.Record(i)
	}
	return records
}

// Column returns the values of the named column, or false if it is missing.
func (r *ResultSet) Column(name string) ([]any, bool) {
	idx := -1
	for i, col := range r.Columns {
		if col == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false
	}
	values := make([]any, len(r.Rows))
	for i, row := range r.Rows {
		values[i] = row[idx]
	}
	return values, true
}

// normalize converts driver-specific cell types into stable Go values.
// Text columns read through some drivers arrive as []byte.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
