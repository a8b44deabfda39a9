package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/cache"
	"github.com/zoobzio/wareql/export"
	"github.com/zoobzio/wareql/internal/config"
	"github.com/zoobzio/wareql/internal/errors"
	"github.com/zoobzio/wareql/warehouse"
)

// source runs the bound query, optionally through the result cache.
type source interface {
	Query(ctx context.Context, q *wareql.QueryResult, refresh bool) (*warehouse.ResultSet, error)
}

type direct struct {
	client *warehouse.Client
}

func (d direct) Query(ctx context.Context, q *wareql.QueryResult, _ bool) (*warehouse.ResultSet, error) {
	return d.client.Query(ctx, q)
}

func newRunCmd(a *app) *cobra.Command {
	var q queryFlags
	var out string
	var refresh bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a query against the configured warehouse",
		Long: `Renders a query in the warehouse driver's dialect, prints it with inline
literals, runs it with bound parameters and prints or exports the rows.

Results are cached when a cache backend is configured; --refresh bypasses
the cached copy and replaces it.

Examples:
  wareql run -f stations.yaml --driver duckdb --dsn analytics.duckdb
  wareql run -f stations.yaml --out warehouse_data.xlsx --cache redis --refresh`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			spec, err := q.spec(cmd.Flags())
			if err != nil {
				return err
			}

			client, closeClient, err := a.openWarehouse(ctx)
			if err != nil {
				return err
			}
			defer closeClient()

			shown, err := render(client, spec, false)
			if err != nil {
				return err
			}
			bound, err := render(client, spec, true)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, shown.SQL)

			src, closeSource := a.openSource(ctx, client)
			defer closeSource()

			rs, err := src.Query(ctx, bound, refresh)
			if err != nil {
				return err
			}

			if out != "" {
				path, err := export.WriteFile(out, rs, a.logger)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "Saved %s\n", path)
			} else {
				fmt.Fprintln(w)
				if err := printTable(w, rs); err != nil {
					return err
				}
			}
			fmt.Fprintf(w, "Fetched %d rows\n", rs.Len())
			return nil
		},
	}

	q.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "Export rows to a .csv or .xlsx file instead of printing (bare --out writes "+export.DefaultFileName+")")
	cmd.Flags().Lookup("out").NoOptDefVal = export.DefaultFileName
	cmd.Flags().BoolVar(&refresh, "refresh", false, "Ignore and replace any cached result")
	return cmd
}

func render(client *warehouse.Client, spec wareql.QuerySpec, parameterized bool) (*wareql.QueryResult, error) {
	r, err := client.Renderer(parameterized)
	if err != nil {
		return nil, err
	}
	return r.Render(spec)
}

// openWarehouse connects to the configured warehouse.
func (a *app) openWarehouse(ctx context.Context) (*warehouse.Client, func(), error) {
	client, err := warehouse.Open(ctx, a.cfg.WarehouseOptions(), a.logger)
	if err != nil {
		return nil, nil, err
	}
	return client, func() {
		errors.DeferClose(a.logger, client, "failed to close warehouse connection")
	}, nil
}

// openSource wraps client with the configured cache. A cache that cannot be
// reached is logged and skipped.
func (a *app) openSource(ctx context.Context, client *warehouse.Client) (source, func()) {
	noop := func() {}

	var store cache.Store
	closeStore := noop
	switch a.cfg.Cache.Backend {
	case config.CacheMemory:
		store = cache.NewMemory()
	case config.CacheRedis:
		r, err := cache.DialRedis(ctx, cache.RedisConfig{
			Addr:     a.cfg.Cache.Redis.Addr,
			Password: a.cfg.Cache.Redis.Password,
			DB:       a.cfg.Cache.Redis.DB,
			Prefix:   a.cfg.Cache.Redis.Prefix,
			TTL:      a.cfg.Cache.TTL,
		})
		if err != nil {
			a.logger.Warn().Err(err).Msg("Result cache unavailable, querying warehouse directly")
			return direct{client: client}, noop
		}
		store = r
		closeStore = func() { errors.DeferClose(a.logger, r, "failed to close redis client") }
	default:
		return direct{client: client}, noop
	}

	namespace := client.Driver() + "|" + a.cfg.Warehouse.DSN
	cached, err := cache.New(client, store, namespace, a.logger)
	if err != nil {
		closeStore()
		a.logger.Warn().Err(err).Msg("Result cache unavailable, querying warehouse directly")
		return direct{client: client}, noop
	}
	return cached, func() {
		a.logger.Debug().
			Int64("hits", cached.Hits()).
			Int64("misses", cached.Misses()).
			Msg("Result cache closed")
		cached.Close()
		closeStore()
	}
}
