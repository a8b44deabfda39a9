package warehouse

import (
	"context"
	"fmt"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/wareql"
)

// ColumnInfo describes one column returned by introspection.
type ColumnInfo struct {
	Name string
	Type string
}

// TableColumns pairs a table's short name with its columns.
type TableColumns struct {
	Table   string
	Columns []ColumnInfo
}

// Describe lists the columns of table using the dialect's introspection query.
func (c *Client) Describe(ctx context.Context, table wareql.Table) ([]ColumnInfo, error) {
	r, err := c.Renderer(true)
	if err != nil {
		return nil, err
	}
	q, err := r.RenderColumns(table)
	if err != nil {
		return nil, err
	}
	rs, err := c.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to describe %s: %w", table.Qualified(), err)
	}
	return Columns(rs)
}

// Columns converts an introspection result with column_name and data_type
// columns into ColumnInfo values, in row order.
func Columns(rs *ResultSet) ([]ColumnInfo, error) {
	names, ok := rs.Column("column_name")
	if !ok {
		return nil, fmt.Errorf("introspection result has no column_name column")
	}
	types, ok := rs.Column("data_type")
	if !ok {
		return nil, fmt.Errorf("introspection result has no data_type column")
	}

	columns := make([]ColumnInfo, len(names))
	for i := range names {
		columns[i] = ColumnInfo{Name: fmt.Sprint(names[i]), Type: fmt.Sprint(types[i])}
	}
	return columns, nil
}

// DescribeSchema introspects each table and assembles a DBML project, ready
// for wareql.NewFromDBML.
func (c *Client) DescribeSchema(ctx context.Context, name string, tables ...wareql.Table) (*dbml.Project, error) {
	described := make([]TableColumns, 0, len(tables))
	for _, t := range tables {
		columns, err := c.Describe(ctx, t)
		if err != nil {
			return nil, err
		}
		if len(columns) == 0 {
			return nil, fmt.Errorf("table %s not found or has no columns", t.Qualified())
		}
		described = append(described, TableColumns{Table: t.Short(), Columns: columns})
	}
	return Project(name, described...), nil
}

// Project builds a DBML project from introspected tables.
func Project(name string, tables ...TableColumns) *dbml.Project {
	project := dbml.NewProject(name)
	for _, t := range tables {
		table := dbml.NewTable(t.Table)
		for _, col := range t.Columns {
			table.AddColumn(dbml.NewColumn(col.Name, col.Type))
		}
		project.AddTable(table)
	}
	return project
}
