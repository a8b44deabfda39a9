package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zoobzio/wareql"
)

func newColumnsCmd(a *app) *cobra.Command {
	var exec bool

	cmd := &cobra.Command{
		Use:   "columns <dataset> <table>",
		Short: "Show the column introspection query, or run it",
		Long: `Prints the query that lists a table's columns and data types.

With --exec the query is run against the configured warehouse, in the
warehouse driver's dialect, and the columns are printed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := wareql.TryT(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !exec {
				r, err := wareql.NewRenderer(a.cfg.Dialect, false)
				if err != nil {
					return err
				}
				q, err := r.RenderColumns(table)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, q.SQL)
				return nil
			}

			client, closeClient, err := a.openWarehouse(cmd.Context())
			if err != nil {
				return err
			}
			defer closeClient()

			columns, err := client.Describe(cmd.Context(), table)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMN\tTYPE")
			for _, col := range columns {
				fmt.Fprintf(w, "%s\t%s\n", col.Name, col.Type)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n(%d columns)\n", len(columns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&exec, "exec", false, "Run the query against the configured warehouse")
	return cmd
}
