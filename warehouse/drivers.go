package warehouse

import (
	"fmt"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql"  // MySQL / MariaDB driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "github.com/marcboeker/go-duckdb" // DuckDB driver
	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	_ "modernc.org/sqlite"              // SQLite driver
)

// driverInfo maps a warehouse driver to its database/sql name and the
// dialect that renders queries for it.
type driverInfo struct {
	sqlName string
	dialect string
}

var drivers = map[string]driverInfo{
	"duckdb":    {sqlName: "duckdb", dialect: "duckdb"},
	"sqlite":    {sqlName: "sqlite", dialect: "sqlite"},
	"postgres":  {sqlName: "pgx", dialect: "postgres"},
	"mysql":     {sqlName: "mysql", dialect: "mysql"},
	"sqlserver": {sqlName: "sqlserver", dialect: "mssql"},
}

var driverAliases = map[string]string{
	"postgresql": "postgres",
	"pgx":        "postgres",
	"mariadb":    "mysql",
	"sqlite3":    "sqlite",
	"mssql":      "sqlserver",
}

// resolveDriver maps a user-facing driver name to its canonical name.
func resolveDriver(name string) (string, driverInfo, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := driverAliases[key]; ok {
		key = canonical
	}
	info, ok := drivers[key]
	if !ok {
		return "", driverInfo{}, fmt.Errorf("unsupported warehouse driver %q (available: %s)", name, strings.Join(Drivers(), ", "))
	}
	return key, info, nil
}

// Drivers returns the canonical driver names, sorted.
func Drivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DialectFor returns the dialect name used to render queries for driver.
func DialectFor(driver string) (string, error) {
	_, info, err := resolveDriver(driver)
	if err != nil {
		return "", err
	}
	return info.dialect, nil
}
