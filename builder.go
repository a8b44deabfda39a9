package wareql

import (
	"fmt"

	"github.com/zoobzio/wareql/internal/types"
)

// Builder provides a fluent API for constructing a QuerySpec.
// The first error encountered is kept and returned by Build.
type Builder struct {
	spec types.QuerySpec
	err  error
}

// GetSpec returns the spec under construction.
func (b *Builder) GetSpec() types.QuerySpec {
	return b.spec
}

// GetError returns the internal error.
func (b *Builder) GetError() error {
	return b.err
}

// Select creates a new SELECT builder for table t.
func Select(t types.Table) *Builder {
	return &Builder{spec: types.QuerySpec{Table: t}}
}

// From creates a builder from an existing spec. The spec is copied.
func From(spec types.QuerySpec) *Builder {
	return &Builder{spec: spec.Clone()}
}

// Columns appends columns to the SELECT list. No columns selects *.
func (b *Builder) Columns(columns ...types.Column) *Builder {
	if b.err != nil {
		return b
	}
	b.spec.Columns = append(b.spec.Columns, columns...)
	if len(b.spec.Columns) > 1 {
		for _, c := range b.spec.Columns {
			if c.IsWildcard() {
				b.err = fmt.Errorf("'*' cannot be combined with other columns")
				return b
			}
		}
	}
	return b
}

// Where appends filters. Filters are combined with AND in the order added.
func (b *Builder) Where(filters ...types.Filter) *Builder {
	if b.err != nil {
		return b
	}
	b.spec.Filters = append(b.spec.Filters, filters...)
	return b
}

// WhereField appends a filter built from its parts.
func (b *Builder) WhereField(c types.Column, op types.Operator, v types.Value) *Builder {
	return b.Where(types.Filter{Column: c, Operator: op, Value: v})
}

// Limit sets the maximum number of rows.
func (b *Builder) Limit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	if limit < 1 {
		b.err = fmt.Errorf("LIMIT must be a positive integer, got %d", limit)
		return b
	}
	b.spec.Limit = &limit
	return b
}

// Distinct adds DISTINCT to the SELECT.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	b.spec.Distinct = true
	return b
}

// Build validates and returns a copy of the spec. Later builder calls do
// not affect a spec already returned.
func (b *Builder) Build() (types.QuerySpec, error) {
	if b.err != nil {
		return types.QuerySpec{}, b.err
	}
	if err := b.spec.Validate(); err != nil {
		return types.QuerySpec{}, err
	}
	return b.spec.Clone(), nil
}

// MustBuild builds the spec and panics on error.
func (b *Builder) MustBuild() types.QuerySpec {
	spec, err := b.Build()
	if err != nil {
		panic(err)
	}
	return spec
}

// Render builds the spec and renders it with r.
func (b *Builder) Render(r Renderer) (*QueryResult, error) {
	spec, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(spec)
}

// MustRender builds and renders the spec and panics on error.
func (b *Builder) MustRender(r Renderer) *QueryResult {
	result, err := b.Render(r)
	if err != nil {
		panic(err)
	}
	return result
}
