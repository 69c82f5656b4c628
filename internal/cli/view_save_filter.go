package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type filterSavedMsg struct {
	saved domain.SavedFilter
	err   error
}

// saveFilterView asks for a name and saves the dashboard filters under it.
type saveFilterView struct {
	state   *SharedState
	filters domain.Filters
	input   textinput.Model
	err     error
}

func newSaveFilterView(state *SharedState, f domain.Filters) *saveFilterView {
	ti := textinput.New()
	ti.Prompt = "Name: "
	ti.Placeholder = "e.g. EU at risk"
	ti.CharLimit = 60
	return &saveFilterView{state: state, filters: f, input: ti}
}

func (v *saveFilterView) ID() ViewID          { return ViewSaveFilter }
func (v *saveFilterView) Title() string       { return "Save filter" }
func (v *saveFilterView) CapturesInput() bool { return true }

func (v *saveFilterView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *saveFilterView) Init() tea.Cmd {
	return v.input.Focus()
}

func (v *saveFilterView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case filterSavedMsg:
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		notice := service.Notice{Level: service.NoticeInfo, Message: fmt.Sprintf("Saved filter %q%s", msg.saved.Name, defaultSuffix(msg.saved))}
		return v, tea.Batch(popView(), func() tea.Msg { return noticeMsg{notice: notice} })

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return v, popView()
		case tea.KeyEnter:
			name := strings.TrimSpace(v.input.Value())
			if name == "" {
				v.err = service.ErrEmptyName
				return v, nil
			}
			return v, v.save(name)
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *saveFilterView) save(name string) tea.Cmd {
	svc, f := v.state.App.Filters, v.filters
	return func() tea.Msg {
		sf, err := svc.Save(context.Background(), name, f)
		return filterSavedMsg{saved: sf, err: err}
	}
}

func (v *saveFilterView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("SAVE FILTER") + "\n")
	b.WriteString("  " + formatter.Dim(domain.SavedFilter{Filters: v.filters}.Describe()) + "\n\n")
	b.WriteString("  " + v.input.View() + "\n")
	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	return b.String()
}
