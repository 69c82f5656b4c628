package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/spf13/cobra"
)

func viewIDs() []string {
	ids := make([]string, len(insight.Views))
	for i, id := range insight.Views {
		ids[i] = string(id)
	}
	return ids
}

func newViewCmd(app *App) *cobra.Command {
	var (
		facets facetFlags
		theme  themeFlag
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:       "view <view-id>",
		Short:     "Show one dashboard view",
		Long:      "Show one dashboard view. Views: " + joinValues(insight.Views),
		Args:      cobra.ExactArgs(1),
		ValidArgs: viewIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := insight.ParseViewID(args[0])
			if err != nil {
				return err
			}
			f, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}
			view, err := app.Dashboard.View(cmd.Context(), service.ViewRequest{
				View:    id,
				Filters: f,
				Dark:    theme.dark(app),
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}
			fmt.Fprintln(out, formatter.FormatFilterBar(f))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatView(view, formatter.DefaultChartWidth))
			return nil
		},
	}
	facets.register(cmd.Flags())
	theme.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the chart series and table as JSON")
	return cmd
}

func newViewsCmd(app *App) *cobra.Command {
	var facets facetFlags

	cmd := &cobra.Command{
		Use:   "views",
		Short: "List the dashboard views with their row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}
			views, err := app.Dashboard.Views(cmd.Context(), f, app.Dark)
			if err != nil {
				return err
			}
			rows := make([][]string, len(views))
			for i, v := range views {
				rows[i] = []string{string(v.ID), v.Title, fmt.Sprintf("%d", len(v.Table.Rows))}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"ID", "Title", "Rows"}, rows))
			return nil
		},
	}
	facets.register(cmd.Flags())
	return cmd
}

// themeFlag selects the palette; unset flags fall back to the configured
// theme.
type themeFlag struct {
	isDark bool
	cmd    *cobra.Command
}

func (t *themeFlag) register(cmd *cobra.Command) {
	t.cmd = cmd
	cmd.Flags().BoolVar(&t.isDark, "dark", false, "Use the dark palette")
}

func (t *themeFlag) dark(app *App) bool {
	if t.cmd != nil && t.cmd.Flags().Changed("dark") {
		return t.isDark
	}
	return app.Dark
}
