package wareql

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/wareql/bigquery"
	"github.com/zoobzio/wareql/duckdb"
	"github.com/zoobzio/wareql/mssql"
	"github.com/zoobzio/wareql/mysql"
	"github.com/zoobzio/wareql/postgres"
	"github.com/zoobzio/wareql/sqlite"
)

type dialectFactory struct {
	inline        func() Renderer
	parameterized func() Renderer
}

var dialects = map[string]dialectFactory{
	"bigquery": {
		inline:        func() Renderer { return bigquery.New() },
		parameterized: func() Renderer { return bigquery.NewParameterized() },
	},
	"duckdb": {
		inline:        func() Renderer { return duckdb.New() },
		parameterized: func() Renderer { return duckdb.NewParameterized() },
	},
	"postgres": {
		inline:        func() Renderer { return postgres.New() },
		parameterized: func() Renderer { return postgres.NewParameterized() },
	},
	"mysql": {
		inline:        func() Renderer { return mysql.New() },
		parameterized: func() Renderer { return mysql.NewParameterized() },
	},
	"sqlite": {
		inline:        func() Renderer { return sqlite.New() },
		parameterized: func() Renderer { return sqlite.NewParameterized() },
	},
	"mssql": {
		inline:        func() Renderer { return mssql.New() },
		parameterized: func() Renderer { return mssql.NewParameterized() },
	},
}

var dialectAliases = map[string]string{
	"bq":         "bigquery",
	"postgresql": "postgres",
	"pg":         "postgres",
	"pgx":        "postgres",
	"mariadb":    "mysql",
	"sqlite3":    "sqlite",
	"sqlserver":  "mssql",
}

// CanonicalDialect resolves a dialect name or alias to its canonical name.
func CanonicalDialect(name string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := dialectAliases[key]; ok {
		key = canonical
	}
	if _, ok := dialects[key]; !ok {
		return "", fmt.Errorf("unknown dialect %q (available: %s)", name, strings.Join(Dialects(), ", "))
	}
	return key, nil
}

// NewRenderer returns the renderer for a dialect name such as "bigquery" or
// "postgres". When parameterized is set, literals are bound as arguments.
func NewRenderer(name string, parameterized bool) (Renderer, error) {
	key, err := CanonicalDialect(name)
	if err != nil {
		return nil, err
	}
	factory := dialects[key]
	if parameterized {
		return factory.parameterized(), nil
	}
	return factory.inline(), nil
}

// Dialects returns the canonical dialect names, sorted.
func Dialects() []string {
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
