package sqlite

import (
	"testing"

	"github.com/zoobzio/wareql/internal/render"
	"github.com/zoobzio/wareql/internal/types"
)

func TestRender_DatesAsText(t *testing.T) {
	d, _ := types.ParseDateValue("2023-06-01")
	n := 3
	spec := types.QuerySpec{
		Table:   types.Table{Name: "events"},
		Columns: []types.Column{{Name: "id"}},
		Filters: []types.Filter{
			{Column: types.Column{Name: "day"}, Operator: types.EQ, Value: d},
			{Column: types.Column{Name: "done"}, Operator: types.EQ, Value: types.BoolValue(true)},
		},
		Limit: &n,
	}

	result, err := New().Render(spec)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	expected := `SELECT id FROM "events" WHERE day = '2023-06-01' AND done = TRUE LIMIT 3`
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
}

func TestRender_Parameterized(t *testing.T) {
	d, _ := types.ParseDateValue("2023-06-01")
	spec := types.QuerySpec{
		Table:   types.Table{Dataset: "main", Name: "events"},
		Filters: []types.Filter{{Column: types.Column{Name: "day"}, Operator: types.LE, Value: d}},
	}

	result, err := NewParameterized().Render(spec)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result.SQL != `SELECT * FROM "main"."events" WHERE day <= ?` {
		t.Errorf("SQL = %q", result.SQL)
	}
	if len(result.Args) != 1 || result.Args[0] != "2023-06-01" {
		t.Errorf("Args = %v, want [2023-06-01]", result.Args)
	}
}

func TestRenderColumns(t *testing.T) {
	tests := []struct {
		name     string
		table    types.Table
		expected string
	}{
		{"default schema", types.Table{Name: "events"}, "SELECT name AS column_name, type AS data_type FROM pragma_table_info('events', 'main') ORDER BY cid"},
		{"attached schema", types.Table{Dataset: "aux", Name: "events"}, "SELECT name AS column_name, type AS data_type FROM pragma_table_info('events', 'aux') ORDER BY cid"},
		{"prefixed name", types.Table{Name: "aux.events"}, "SELECT name AS column_name, type AS data_type FROM pragma_table_info('events', 'aux') ORDER BY cid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().RenderColumns(tt.table)
			if err != nil {
				t.Fatalf("RenderColumns() error = %v", err)
			}
			if result.SQL != tt.expected {
				t.Errorf("SQL = %q, want %q", result.SQL, tt.expected)
			}
		})
	}
}

func TestRenderColumns_Parameterized(t *testing.T) {
	result, err := NewParameterized().RenderColumns(types.Table{Name: "events"})
	if err != nil {
		t.Fatalf("RenderColumns() error = %v", err)
	}
	if result.SQL != "SELECT name AS column_name, type AS data_type FROM pragma_table_info(?, ?) ORDER BY cid" {
		t.Errorf("SQL = %q", result.SQL)
	}
	if len(result.Args) != 2 || result.Args[0] != "events" || result.Args[1] != "main" {
		t.Errorf("Args = %v", result.Args)
	}
}

func TestRenderColumns_MultiPart(t *testing.T) {
	_, err := New().RenderColumns(types.Table{Dataset: "a.b", Name: "events"})
	if !render.IsUnsupported(err) {
		t.Errorf("RenderColumns() error = %v, want unsupported", err)
	}
}

func TestCapabilities(t *testing.T) {
	if New().Capabilities().DateLiteral {
		t.Error("SQLite has no DATE literal")
	}
}
