package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type savedFiltersLoadedMsg struct {
	list []domain.SavedFilter
	err  error
}

// savedFiltersView lists saved filters. Enter applies one to the dashboard.
type savedFiltersView struct {
	state   *SharedState
	list    []domain.SavedFilter
	cursor  int
	loading bool
	status  string
	err     error
}

func newSavedFiltersView(state *SharedState) *savedFiltersView {
	return &savedFiltersView{state: state, loading: true}
}

func (v *savedFiltersView) ID() ViewID    { return ViewSavedFilters }
func (v *savedFiltersView) Title() string { return "Saved filters" }

func (v *savedFiltersView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "make default")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	}
}

func (v *savedFiltersView) Init() tea.Cmd {
	return v.load()
}

func (v *savedFiltersView) load() tea.Cmd {
	svc := v.state.App.Filters
	return func() tea.Msg {
		list, err := svc.List(context.Background())
		return savedFiltersLoadedMsg{list: list, err: err}
	}
}

// mutate runs fn against the selected filter, then reloads the list.
func (v *savedFiltersView) mutate(status string, fn func(ctx context.Context, id string) error) tea.Cmd {
	if v.cursor >= len(v.list) {
		return nil
	}
	id := v.list[v.cursor].ID
	v.status = status
	return func() tea.Msg {
		ctx := context.Background()
		if err := fn(ctx, id); err != nil {
			return savedFiltersLoadedMsg{err: err}
		}
		list, err := v.state.App.Filters.List(ctx)
		return savedFiltersLoadedMsg{list: list, err: err}
	}
}

func (v *savedFiltersView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedFiltersLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.list = msg.list
		}
		if v.cursor >= len(v.list) {
			v.cursor = max(len(v.list)-1, 0)
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.list)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.list) {
				sf := v.list[v.cursor]
				return v, tea.Batch(popView(), func() tea.Msg {
					return applyFiltersMsg{filters: sf.Filters, name: sf.Name}
				})
			}
		case "d":
			return v, v.mutate("Default updated.", v.state.App.Filters.SetDefault)
		case "x":
			return v, v.mutate("Deleted.", v.state.App.Filters.Delete)
		}
	}
	return v, nil
}

func (v *savedFiltersView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("SAVED FILTERS") + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Loading…") + "\n")
	case len(v.list) == 0:
		b.WriteString("  " + formatter.Dim("No saved filters. Press s on the dashboard to save one.") + "\n")
	}

	for i, sf := range v.list {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		star := " "
		if sf.IsDefault {
			star = formatter.StyleYellow.Render("★")
		}
		fmt.Fprintf(&b, "  %s%s %s  %s\n", cursor, star, sf.Name, formatter.Dim(sf.Describe()))
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	} else if v.status != "" {
		b.WriteString("\n  " + formatter.StyleGreen.Render(v.status) + "\n")
	}
	return b.String()
}
