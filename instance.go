package wareql

import (
	"fmt"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/wareql/internal/types"
)

// Schema validates table and column names against a DBML project.
// Tables are matched by their short name, the last segment of the table
// identifier, since warehouse datasets are not part of DBML.
type Schema struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> column -> definition
}

// NewFromDBML creates a new Schema from a DBML project.
func NewFromDBML(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.fields[table.Name][col.Name] = col
		}
	}

	return s, nil
}

// Project returns the underlying DBML project.
func (s *Schema) Project() *dbml.Project {
	return s.project
}

// HasTable reports whether a table with the given short name exists.
func (s *Schema) HasTable(name string) bool {
	_, ok := s.tables[name]
	return ok
}

// validateTable checks if a table exists in the schema.
func (s *Schema) validateTable(t types.Table) error {
	if _, ok := s.tables[t.Short()]; !ok {
		return fmt.Errorf("table '%s' not found in schema", t.Short())
	}
	return nil
}

// validateField checks if a column exists in any table in the schema.
func (s *Schema) validateField(name string) error {
	for _, tableFields := range s.fields {
		if _, ok := tableFields[name]; ok {
			return nil
		}
	}
	return fmt.Errorf("field '%s' not found in schema", name)
}

// validateTableField checks if a column exists in the given table.
func (s *Schema) validateTableField(t types.Table, name string) error {
	if _, ok := s.fields[t.Short()][name]; !ok {
		return fmt.Errorf("field '%s' not found in table '%s'", name, t.Short())
	}
	return nil
}

// TryT creates a schema-checked table reference, returning an error if invalid.
func (s *Schema) TryT(dataset, name string) (types.Table, error) {
	t, err := TryT(dataset, name)
	if err != nil {
		return types.Table{}, err
	}
	if err := s.validateTable(t); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return t, nil
}

// T creates a schema-checked table reference.
func (s *Schema) T(dataset, name string) types.Table {
	t, err := s.TryT(dataset, name)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a schema-checked column reference, returning an error if invalid.
func (s *Schema) TryF(name string) (types.Column, error) {
	c, err := TryF(name)
	if err != nil {
		return types.Column{}, err
	}
	if c.IsWildcard() {
		return c, nil
	}
	if err := s.validateField(name); err != nil {
		return types.Column{}, fmt.Errorf("invalid field: %w", err)
	}
	return c, nil
}

// F creates a schema-checked column reference.
func (s *Schema) F(name string) types.Column {
	c, err := s.TryF(name)
	if err != nil {
		panic(err)
	}
	return c
}

// TryC creates a schema-checked filter, returning an error if invalid.
func (s *Schema) TryC(c types.Column, op types.Operator, v types.Value) (types.Filter, error) {
	if err := s.validateField(c.Name); err != nil {
		return types.Filter{}, err
	}
	return TryC(c, op, v)
}

// C creates a schema-checked filter.
func (s *Schema) C(c types.Column, op types.Operator, v types.Value) types.Filter {
	f, err := s.TryC(c, op, v)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate checks that spec's table exists and that every selected and
// filtered column belongs to it, after the usual shape validation.
func (s *Schema) Validate(spec types.QuerySpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	if err := s.validateTable(spec.Table); err != nil {
		return err
	}
	for _, c := range spec.Columns {
		if c.IsWildcard() {
			continue
		}
		if err := s.validateTableField(spec.Table, c.Name); err != nil {
			return err
		}
	}
	for i, f := range spec.Filters {
		if err := s.validateTableField(spec.Table, f.Column.Name); err != nil {
			return fmt.Errorf("filter %d: %w", i, err)
		}
	}
	return nil
}
