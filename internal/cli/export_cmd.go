package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var (
		facets facetFlags
		theme  themeFlag
		all    bool
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "export [view-id]",
		Short: "Export a view (or every view) as CSV, JSON, PNG or SVG",
		Args: func(cmd *cobra.Command, args []string) error {
			if all && len(args) > 0 {
				return errors.New("pass a view id or --all, not both")
			}
			if !all && len(args) != 1 {
				return errors.New("a view id is required unless --all is set")
			}
			return nil
		},
		ValidArgs: viewIDs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			filters, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}
			dir := outDir
			if dir == "" {
				dir = app.ExportDir
			}
			sink := export.DirSink{Dir: dir}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if all {
				paths, err := app.Exports.ExportAll(ctx, filters, theme.dark(app), f, sink)
				if err != nil {
					return err
				}
				for _, p := range paths {
					fmt.Fprintln(out, p)
				}
				return nil
			}

			id, err := insight.ParseViewID(args[0])
			if err != nil {
				return err
			}
			path, err := app.Exports.ExportTo(ctx, service.ViewRequest{View: id, Filters: filters, Dark: theme.dark(app)}, f, sink)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, path)
			return nil
		},
	}
	facets.register(cmd.Flags())
	theme.register(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "Export every view")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv, json, png or svg")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write into (default from VISTA_EXPORT_DIR)")
	return cmd
}
