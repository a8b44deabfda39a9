package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/wareql"
	"github.com/zoobzio/wareql/export"
)

func newRenderCmd(a *app) *cobra.Command {
	var q queryFlags
	var params bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the SQL for a query",
		Long: `Renders a query for --dialect (default bigquery) and prints it.

With --params, literals are bound as placeholders and the arguments are
listed after the statement.

Examples:
  wareql render -f stations.yaml
  wareql render --dataset sales --table orders --columns id,total \
    --filter '{column: status, op: in, value: [paid, shipped]}' --dialect postgres --params`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := q.spec(cmd.Flags())
			if err != nil {
				return err
			}
			r, err := wareql.NewRenderer(a.cfg.Dialect, params)
			if err != nil {
				return err
			}
			result, err := r.Render(spec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, result.SQL)
			for i, arg := range result.Args {
				fmt.Fprintf(out, "-- arg %d: %s (%T)\n", i+1, export.FormatCell(arg), arg)
			}
			return nil
		},
	}

	q.register(cmd.Flags())
	cmd.Flags().BoolVar(&params, "params", false, "Bind literals as placeholders")
	return cmd
}
