// Package warehouse executes rendered queries against a SQL warehouse over
// database/sql and materializes the results.
//
// Supported drivers are duckdb, sqlite, postgres, mysql and sqlserver. Each
// call is a single blocking round trip; nothing is retried.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/internal/errors"
)

// Config holds warehouse connection settings.
type Config struct {
	// Driver is one of duckdb, sqlite, postgres, mysql, sqlserver.
	Driver string
	// DSN is passed to the driver unchanged. Empty opens an in-memory
	// database for duckdb and sqlite.
	DSN string
	// Timeout bounds each query. Zero means no limit beyond the caller's context.
	Timeout time.Duration
	// MaxOpenConns caps the connection pool. Zero leaves the driver default.
	MaxOpenConns int
}

// Client runs queries against one warehouse connection pool.
type Client struct {
	db      *sql.DB
	driver  string
	dialect string
	timeout time.Duration
	logger  zerolog.Logger
}

// Open opens a connection pool for cfg and verifies it with a ping.
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (*Client, error) {
	driver, info, err := resolveDriver(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if dsn == "" {
		switch driver {
		case "duckdb":
			// empty DSN is an in-memory database
		case "sqlite":
			dsn = ":memory:"
		default:
			return nil, fmt.Errorf("driver %s requires a DSN", driver)
		}
	}

	db, err := sql.Open(info.sqlName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s warehouse: %w", driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if driver == "sqlite" && dsn == ":memory:" {
		// Every pooled connection would otherwise get its own empty database.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s warehouse: %w", driver, err)
	}

	logger.Debug().Str("driver", driver).Msg("Warehouse connection opened")

	return &Client{
		db:      db,
		driver:  driver,
		dialect: info.dialect,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// New wraps an existing connection pool opened for driver.
func New(db *sql.DB, driver string, logger zerolog.Logger) (*Client, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	name, info, err := resolveDriver(driver)
	if err != nil {
		return nil, err
	}
	return &Client{db: db, driver: name, dialect: info.dialect, logger: logger}, nil
}

// DB returns the underlying connection pool.
func (c *Client) DB() *sql.DB {
	return c.db
}

// Driver returns the canonical driver name.
func (c *Client) Driver() string {
	return c.driver
}

// Dialect returns the name of the dialect that renders queries for this warehouse.
func (c *Client) Dialect() string {
	return c.dialect
}

// Renderer returns the dialect renderer for this warehouse.
func (c *Client) Renderer(parameterized bool) (wareql.Renderer, error) {
	return wareql.NewRenderer(c.dialect, parameterized)
}

// Close closes the connection pool.
func (c *Client) Close() error {
	return c.db.Close()
}

// Query executes q and reads every row into memory.
func (c *Client) Query(ctx context.Context, q *wareql.QueryResult) (*ResultSet, error) {
	if q == nil || q.SQL == "" {
		return nil, fmt.Errorf("query cannot be empty")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	rows, err := c.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer errors.DeferClose(c.logger, rows, "failed to close query rows")

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	result := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i := range values {
			values[i] = normalize(values[i])
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	c.logger.Debug().
		Str("driver", c.driver).
		Int("rows", result.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Query executed")

	return result, nil
}
