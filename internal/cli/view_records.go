package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type recordsLoadedMsg struct {
	records []domain.ProjectRecord
	err     error
}

// recordsView shows the filtered records in a scrollable table.
type recordsView struct {
	state   *SharedState
	filters domain.Filters
	vp      viewport.Model
	count   int
	loaded  bool
	err     error
}

func newRecordsView(state *SharedState, f domain.Filters) *recordsView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight()-2)
	return &recordsView{state: state, filters: f, vp: vp}
}

func (v *recordsView) ID() ViewID    { return ViewRecords }
func (v *recordsView) Title() string { return "Projects" }

func (v *recordsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}

func (v *recordsView) Init() tea.Cmd {
	svc, f := v.state.App.Dashboard, v.filters
	return func() tea.Msg {
		records, err := svc.Filtered(context.Background(), f)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (v *recordsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		v.loaded = true
		v.err = msg.err
		v.count = len(msg.records)
		v.vp.SetContent(formatter.FormatRecords(msg.records))
		return v, nil
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight() - 2
		return v, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *recordsView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if !v.loaded {
		return "\n  " + formatter.Dim("Loading…")
	}
	caption := formatter.Bold(fmt.Sprintf("%d projects", v.count)) + "  " + formatter.FormatFilterBar(v.filters)
	return "\n  " + caption + "\n" + v.vp.View()
}
