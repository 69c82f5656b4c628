package cli

import (
	"time"

	"github.com/alexanderramin/vista/internal/filter"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	Dashboard service.DashboardService
	Exports   service.ExportService
	Filters   service.SavedFilterService
	Records   service.RecordService

	// Notices is the notifier the export service was built with. The
	// dashboard points it at its status line while it runs.
	Notices *NoticeRelay

	Logger         zerolog.Logger
	ExportDir      string
	Dark           bool
	Addr           string
	SearchDebounce time.Duration
	// Clock drives the search debounce; nil means the wall clock.
	Clock filter.Clock

	// IsInteractive reports whether stdin is a terminal. When it is, running
	// vista without a subcommand opens the dashboard.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "vista" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var facets facetFlags

	root := &cobra.Command{
		Use:           "vista",
		Short:         "Project portfolio dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			f, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}
			return runDashboard(cmd, app, f)
		},
	}
	facets.register(root.Flags())

	root.AddCommand(
		newRecordsCmd(app),
		newViewCmd(app),
		newViewsCmd(app),
		newExportCmd(app),
		newFiltersCmd(app),
		newServeCmd(app),
		newDashboardCmd(app),
	)

	return root
}
