// Package cli implements the wareql command line.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zoobzio/wareql/internal/config"
	"github.com/zoobzio/wareql/internal/logging"
)

// app carries state shared by subcommands once the root has loaded config.
type app struct {
	configPath string
	dialect    string
	driver     string
	dsn        string
	cache      string
	logLevel   string

	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the wareql command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "wareql",
		Short: "Build and run warehouse queries from typed filters",
		Long: `wareql assembles a SELECT from a table, a column list, typed filter rows,
a limit and a distinct flag, renders it for a SQL dialect and optionally runs
it against a warehouse.

Filter values keep their YAML kind: 5 is a number, "5" is a string and
2023-01-01 is a date. Query files use the same rows:

  dataset: bigquery-public-data.fcc_political_ads
  table: broadcast_tv_radio_station
  columns: station_id, call_sign
  limit: 1000
  filters:
    - {column: community_state, op: "=", value: TX}`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ./wareql.yaml or $WAREQL_CONFIG)")
	flags.StringVar(&a.dialect, "dialect", "", "SQL dialect for rendering (bigquery, duckdb, postgres, mysql, sqlite, mssql)")
	flags.StringVar(&a.driver, "driver", "", "Warehouse driver (duckdb, sqlite, postgres, mysql, sqlserver)")
	flags.StringVar(&a.dsn, "dsn", "", "Warehouse data source name")
	flags.StringVar(&a.cache, "cache", "", "Result cache backend (none, memory, redis)")
	flags.StringVar(&a.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newColumnsCmd(a))
	cmd.AddCommand(newRunCmd(a))

	return cmd
}

// setup loads configuration and applies flag overrides.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dialect") {
		cfg.Dialect = a.dialect
	}
	if flags.Changed("driver") {
		cfg.Warehouse.Driver = a.driver
	}
	if flags.Changed("dsn") {
		cfg.Warehouse.DSN = a.dsn
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend = a.cache
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logCfg := cfg.Logging()
	logCfg.Output = cmd.ErrOrStderr()
	a.cfg = cfg
	a.logger = logging.New(logCfg)
	return nil
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}
