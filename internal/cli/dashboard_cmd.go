package cli

import (
	"fmt"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var facets facetFlags

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := facets.resolve(cmd, app)
			if err != nil {
				return err
			}
			return runDashboard(cmd, app, f)
		},
	}
	facets.register(cmd.Flags())
	return cmd
}

// runDashboard runs the TUI until the user quits. Notices raised by services
// while it runs go to its status line.
func runDashboard(cmd *cobra.Command, app *App, initial domain.Filters) error {
	m := newAppModel(app, initial)
	defer m.close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	// Send blocks until the event loop takes the message, and posts can
	// originate inside Update, so deliver from a fresh goroutine.
	m.state.Post = func(msg tea.Msg) { go p.Send(msg) }

	if app.Notices != nil {
		restore := app.Notices.Redirect(service.NotifierFunc(func(n service.Notice) {
			m.state.post(noticeMsg{notice: n})
		}))
		defer restore()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
