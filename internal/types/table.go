package types

import "strings"

// Table represents a dataset-qualified table reference.
// This is exported from the internal package so dialects can use it,
// but external users cannot import this package.
type Table struct {
	Dataset string
	Name    string
}

// GetDataset returns the dataset.
func (t Table) GetDataset() string {
	return t.Dataset
}

// GetName returns the table name as given.
func (t Table) GetName() string {
	return t.Name
}

// Qualified returns "dataset.table", or the table alone when no dataset is set.
func (t Table) Qualified() string {
	if t.Dataset == "" {
		return t.Name
	}
	return t.Dataset + "." + t.Name
}

// Segments returns the dot-separated parts of the qualified name.
func (t Table) Segments() []string {
	return strings.Split(t.Qualified(), ".")
}

// Short returns the table identifier with any dataset-qualifying prefix
// stripped: the last dot-separated segment of Name.
func (t Table) Short() string {
	if i := strings.LastIndexByte(t.Name, '.'); i != -1 {
		return t.Name[i+1:]
	}
	return t.Name
}

// Schema returns the dataset a Short name lives in: Dataset extended by any
// qualifying prefix carried in Name.
func (t Table) Schema() string {
	i := strings.LastIndexByte(t.Name, '.')
	if i == -1 {
		return t.Dataset
	}
	if t.Dataset == "" {
		return t.Name[:i]
	}
	return t.Dataset + "." + t.Name[:i]
}

// Validate checks the table reference against the identifier allow-list.
func (t Table) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "table", Reason: "table name is required"}
	}
	if t.Dataset != "" && !IsValidPath(t.Dataset) {
		return &ValidationError{Field: "dataset", Value: t.Dataset, Reason: "must be dot-separated segments of letters, digits, '_' or '-'"}
	}
	if !IsValidPath(t.Name) {
		return &ValidationError{Field: "table", Value: t.Name, Reason: "must be dot-separated segments of letters, digits, '_' or '-'"}
	}
	return nil
}
