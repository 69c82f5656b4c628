package cli

import (
	"fmt"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRecordsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Import and list portfolio records",
	}
	cmd.AddCommand(
		newRecordsImportCmd(app),
		newRecordsListCmd(app),
	)
	return cmd
}

func newRecordsImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Records.Import(cmd.Context(), args[0], replace)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d records", res.Imported)
			if replace {
				fmt.Fprintf(out, " (replaced %d)", res.Replaced)
			}
			fmt.Fprintf(out, ". %d total.\n", res.Total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the current portfolio instead of appending")
	return cmd
}

func newRecordsListCmd(app *App) *cobra.Command {
	var facets facetFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			all, err := app.Dashboard.Records(ctx)
			if err != nil {
				return err
			}
			shown, err := app.Dashboard.Filtered(ctx, f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatFilterBar(f))
			fmt.Fprintln(out, formatter.Dim(formatter.FormatRecordSummary(len(shown), len(all))))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatRecords(shown))
			return nil
		},
	}
	facets.register(cmd.Flags())
	return cmd
}
