// Package queryfile reads query specs from YAML, the way the form front-end
// collects them: a table, a column list, typed filter rows and a limit.
//
// Filter values take their kind from the YAML node, so `value: 5` is a
// number and `value: "5"` is a string.
package queryfile

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zoobzio/wareql"
	"gopkg.in/yaml.v3"
)

// File is a parsed query file.
type File struct {
	Dataset  string    `yaml:"dataset"`
	Table    string    `yaml:"table"`
	Columns  yaml.Node `yaml:"columns"`
	Limit    *int      `yaml:"limit"`
	Distinct bool      `yaml:"distinct"`
	Filters  []Row     `yaml:"filters"`
}

// Row is one filter row as entered.
type Row struct {
	Column string    `yaml:"column"`
	Op     string    `yaml:"op"`
	Value  yaml.Node `yaml:"value"`
}

// Load reads and parses a query file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses query file content.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse query file: %w", err)
	}
	return &f, nil
}

// ColumnList returns the selected columns. The node may be a comma-separated
// string or a sequence of names; missing selects *.
func (f *File) ColumnList() ([]wareql.Column, error) {
	switch f.Columns.Kind {
	case 0:
		return nil, nil
	case yaml.ScalarNode:
		if f.Columns.ShortTag() == "!!null" {
			return nil, nil
		}
		return ParseColumns(f.Columns.Value)
	case yaml.SequenceNode:
		names := make([]string, 0, len(f.Columns.Content))
		for _, item := range f.Columns.Content {
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: column names must be scalars", item.Line)
			}
			names = append(names, item.Value)
		}
		return ParseColumns(strings.Join(names, ","))
	default:
		return nil, fmt.Errorf("line %d: columns must be a string or a list", f.Columns.Line)
	}
}

// Conditions converts the filter rows. Rows without a column are ignored.
func (f *File) Conditions() ([]wareql.Filter, error) {
	var filters []wareql.Filter
	for i := range f.Filters {
		filter, ok, err := f.Filters[i].Filter()
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		if ok {
			filters = append(filters, filter)
		}
	}
	return filters, nil
}

// Spec assembles and validates the query spec.
func (f *File) Spec() (wareql.QuerySpec, error) {
	table, err := wareql.TryT(f.Dataset, f.Table)
	if err != nil {
		return wareql.QuerySpec{}, err
	}
	columns, err := f.ColumnList()
	if err != nil {
		return wareql.QuerySpec{}, err
	}
	filters, err := f.Conditions()
	if err != nil {
		return wareql.QuerySpec{}, err
	}

	b := wareql.Select(table).Columns(columns...).Where(filters...)
	if f.Limit != nil {
		b = b.Limit(*f.Limit)
	}
	if f.Distinct {
		b = b.Distinct()
	}
	return b.Build()
}

// Filter converts the row. It reports false for a row with an empty column.
// A missing operator means "=".
func (r *Row) Filter() (wareql.Filter, bool, error) {
	name := strings.TrimSpace(r.Column)
	if name == "" {
		return wareql.Filter{}, false, nil
	}
	col, err := wareql.TryF(name)
	if err != nil {
		return wareql.Filter{}, false, err
	}

	op := wareql.EQ
	if strings.TrimSpace(r.Op) != "" {
		if op, err = wareql.ParseOperator(r.Op); err != nil {
			return wareql.Filter{}, false, err
		}
	}

	value, err := ParseValue(&r.Value)
	if err != nil {
		return wareql.Filter{}, false, fmt.Errorf("column %s: %w", name, err)
	}
	if op == wareql.IsNull || op == wareql.IsNotNull {
		value = wareql.Absent()
	}

	filter, err := wareql.TryC(col, op, value)
	if err != nil {
		return wareql.Filter{}, false, err
	}
	return filter, true, nil
}

// ParseColumns splits a comma-separated column list.
func ParseColumns(list string) ([]wareql.Column, error) {
	return wareql.TryFields(list)
}

// ParseFilter parses a filter row in YAML flow syntax, for example
// `{column: state, op: "=", value: TX}`.
func ParseFilter(s string) (wareql.Filter, bool, error) {
	var r Row
	if err := yaml.Unmarshal([]byte(s), &r); err != nil {
		return wareql.Filter{}, false, fmt.Errorf("invalid filter %q: %w", s, err)
	}
	return r.Filter()
}

// ParseValue classifies a YAML node into a filter value.
// A missing node, null, or empty string is absent. Absent list items are dropped.
func ParseValue(node *yaml.Node) (wareql.Value, error) {
	if node == nil || node.Kind == 0 {
		return wareql.Absent(), nil
	}
	switch node.Kind {
	case yaml.AliasNode:
		return ParseValue(node.Alias)
	case yaml.SequenceNode:
		items := make([]wareql.Value, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind == yaml.SequenceNode {
				return wareql.Value{}, fmt.Errorf("line %d: nested lists are not supported", child.Line)
			}
			v, err := ParseValue(child)
			if err != nil {
				return wareql.Value{}, err
			}
			if !v.IsAbsent() {
				items = append(items, v)
			}
		}
		return wareql.List(items...), nil
	case yaml.ScalarNode:
		return scalar(node)
	default:
		return wareql.Value{}, fmt.Errorf("line %d: value must be a scalar or a list", node.Line)
	}
}

func scalar(node *yaml.Node) (wareql.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return wareql.Absent(), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return wareql.Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return wareql.Int(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return wareql.Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return wareql.Float(f), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return wareql.Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return wareql.Bool(b), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return wareql.Value{}, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return wareql.Date(t), nil
	case "!!str":
		if node.Value == "" {
			return wareql.Absent(), nil
		}
		return wareql.String(node.Value), nil
	default:
		return wareql.Value{}, fmt.Errorf("line %d: unsupported value tag %s", node.Line, node.ShortTag())
	}
}
