package wareql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/wareql/internal/types"
)

// TryF creates a validated column reference, returning an error if invalid.
func TryF(name string) (types.Column, error) {
	c := types.Column{Name: name}
	if err := c.Validate(); err != nil {
		return types.Column{}, fmt.Errorf("invalid field: %w", err)
	}
	return c, nil
}

// F creates a validated column reference.
func F(name string) types.Column {
	c, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return c
}

// TryFields parses a comma-separated column list such as
// "station_id, facility_id, call_sign". Entries are trimmed and empty
// entries dropped; an empty list selects every column.
func TryFields(list string) ([]types.Column, error) {
	var columns []types.Column
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		c, err := TryF(name)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}

// Fields parses a comma-separated column list.
func Fields(list string) []types.Column {
	columns, err := TryFields(list)
	if err != nil {
		panic(err)
	}
	return columns
}
