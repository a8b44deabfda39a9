package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/wareql/internal/types"
)

// InfoSchema describes an information_schema style column listing.
type InfoSchema struct {
	View           string // Relation to read, e.g. information_schema.columns
	Select         string // Select list yielding (column_name, data_type)
	MaxSchemaParts int    // 1: schema only, 2: catalog.schema
}

// Render renders the column listing for table t in dialect d.
// The dataset (plus any prefix carried in the table name) selects the
// schema; the last table segment selects the table.
func (q InfoSchema) Render(d Dialect, t types.Table, parameterized bool) (*types.QueryResult, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	ctx := newRenderContext(d, parameterized)
	var conditions []string

	if schema := t.Schema(); schema != "" {
		parts := strings.Split(schema, ".")
		if len(parts) > q.MaxSchemaParts {
			return nil, NewUnsupportedFeatureError(d.Name(), fmt.Sprintf("%d-part dataset %q", len(parts), schema),
				fmt.Sprintf("at most %d part(s) allowed", q.MaxSchemaParts))
		}
		if len(parts) == 2 {
			conditions = append(conditions, "table_catalog = "+ctx.literal(types.StringValue(parts[0])))
		}
		conditions = append(conditions, "table_schema = "+ctx.literal(types.StringValue(parts[len(parts)-1])))
	}
	conditions = append(conditions, "table_name = "+ctx.literal(types.StringValue(t.Short())))

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY ordinal_position",
		q.Select, q.View, strings.Join(conditions, " AND "))

	return &types.QueryResult{SQL: sql, Args: ctx.args}, nil
}
