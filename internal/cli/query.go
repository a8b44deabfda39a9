package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/internal/queryfile"
)

// queryFlags collect a query spec from a query file and/or flags.
// Flags override the file; --filter rows are appended to the file's rows.
type queryFlags struct {
	file     string
	dataset  string
	table    string
	columns  string
	filters  []string
	limit    int
	distinct bool
}

func (q *queryFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&q.file, "file", "f", "", "Query file (YAML)")
	fs.StringVar(&q.dataset, "dataset", "", "Dataset (or project.dataset) containing the table")
	fs.StringVar(&q.table, "table", "", "Table name")
	fs.StringVar(&q.columns, "columns", "", "Comma-separated columns (default *)")
	fs.StringArrayVar(&q.filters, "filter", nil, `Filter row in YAML flow syntax, e.g. '{column: state, op: "=", value: TX}' (repeatable)`)
	fs.IntVar(&q.limit, "limit", 0, "Maximum number of rows")
	fs.BoolVar(&q.distinct, "distinct", false, "Select distinct rows")
}

func (q *queryFlags) spec(fs *pflag.FlagSet) (wareql.QuerySpec, error) {
	file := &queryfile.File{}
	if q.file != "" {
		loaded, err := queryfile.Load(q.file)
		if err != nil {
			return wareql.QuerySpec{}, err
		}
		file = loaded
	}

	dataset, table := file.Dataset, file.Table
	if fs.Changed("dataset") {
		dataset = q.dataset
	}
	if fs.Changed("table") {
		table = q.table
	}
	t, err := wareql.TryT(dataset, table)
	if err != nil {
		return wareql.QuerySpec{}, err
	}

	var columns []wareql.Column
	if fs.Changed("columns") {
		columns, err = queryfile.ParseColumns(q.columns)
	} else {
		columns, err = file.ColumnList()
	}
	if err != nil {
		return wareql.QuerySpec{}, err
	}

	filters, err := file.Conditions()
	if err != nil {
		return wareql.QuerySpec{}, err
	}
	for _, raw := range q.filters {
		filter, ok, err := queryfile.ParseFilter(raw)
		if err != nil {
			return wareql.QuerySpec{}, fmt.Errorf("--filter: %w", err)
		}
		if ok {
			filters = append(filters, filter)
		}
	}

	b := wareql.Select(t).Columns(columns...).Where(filters...)
	switch {
	case fs.Changed("limit"):
		b = b.Limit(q.limit)
	case file.Limit != nil:
		b = b.Limit(*file.Limit)
	}
	if q.distinct || file.Distinct {
		b = b.Distinct()
	}
	return b.Build()
}
