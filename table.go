package wareql

import (
	"fmt"

	"github.com/zoobzio/wareql/internal/types"
)

// TryT creates a validated table reference, returning an error if invalid.
// The dataset may itself be qualified, e.g. "project.dataset".
func TryT(dataset, name string) (types.Table, error) {
	t := types.Table{Dataset: dataset, Name: name}
	if err := t.Validate(); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return t, nil
}

// T creates a validated table reference.
func T(dataset, name string) types.Table {
	table, err := TryT(dataset, name)
	if err != nil {
		panic(err)
	}
	return table
}
