package cli

import (
	"fmt"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/spf13/cobra"
)

func newFiltersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Manage saved filters",
	}
	cmd.AddCommand(
		newFiltersListCmd(app),
		newFiltersShowCmd(app),
		newFiltersSaveCmd(app),
		newFiltersDefaultCmd(app),
		newFiltersDeleteCmd(app),
	)
	return cmd
}

func newFiltersListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Filters.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSavedFilters(list))
			return nil
		},
	}
}

func newFiltersShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show one saved filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := app.Filters.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSavedFilter(sf))
			return nil
		},
	}
}

func newFiltersSaveCmd(app *App) *cobra.Command {
	var facets facetFlags

	cmd := &cobra.Command{
		Use:   "save [name]",
		Short: "Save the filters given by flags under a name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facets.noDefault = true
			f, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" && app.interactive() {
				summary := domain.SavedFilter{Filters: f}.Describe()
				if err := filterNameForm(&name, summary).Run(); err != nil {
					return err
				}
			}

			sf, err := app.Filters.Save(cmd.Context(), name, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved filter %q [%s]%s\n", sf.Name, shortID(sf.ID), defaultSuffix(sf))
			return nil
		},
	}
	facets.register(cmd.Flags())
	return cmd
}

func newFiltersDefaultCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "default <id|name>",
		Short: "Make a saved filter the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sf, err := app.Filters.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if err := app.Filters.SetDefault(ctx, sf.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default filter is now %q\n", sf.Name)
			return nil
		},
	}
}

func newFiltersDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id|name>",
		Short: "Delete a saved filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			sf, err := app.Filters.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !yes && app.interactive() {
				ok := false
				if err := confirmForm(fmt.Sprintf("Delete saved filter %q?", sf.Name), &ok).Run(); err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}
			if err := app.Filters.Delete(ctx, sf.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted filter %q\n", sf.Name)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func defaultSuffix(sf domain.SavedFilter) string {
	if sf.IsDefault {
		return " (default)"
	}
	return ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
