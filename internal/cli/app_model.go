package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI. It owns the view stack,
// a scrollable output pane and the status line.
type appModel struct {
	state     *SharedState
	viewStack []View
	dashboard *dashboardView
	quitting  bool

	// Transient output, e.g. export results, shown over the active view.
	outputVP     viewport.Model
	outputActive bool

	// notice is the latest service notice, cleared by the next key press.
	notice *service.Notice
}

func newAppModel(app *App, initial domain.Filters) appModel {
	state := &SharedState{
		App:     app,
		Dark:    app.Dark,
		Filters: initial.Normalized(),
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = outputKeys

	dash := newDashboardView(state, initial)
	return appModel{
		state:     state,
		viewStack: []View{dash},
		dashboard: dash,
		outputVP:  vp,
	}
}

// close stops background work owned by the views.
func (m appModel) close() {
	m.dashboard.close()
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.outputVP.Width = msg.Width
		m.outputVP.Height = m.state.ContentHeight()
		return m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.clearOutput()
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case cmdOutputMsg:
		m.outputActive = true
		m.outputVP.SetContent(msg.output)
		m.outputVP.Width = m.state.Width
		m.outputVP.Height = m.state.ContentHeight()
		m.outputVP.GotoTop()
		return m, nil

	case noticeMsg:
		n := msg.notice
		m.notice = &n
		return m, nil
	}

	return m.broadcast(msg)
}

// broadcast delivers msg to every view on the stack, bottom to top, so views
// underneath still receive their async results.
func (m appModel) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}
	m.notice = nil

	if m.outputActive {
		if cmd, ok := m.scrollOutput(msg); ok {
			return m, cmd
		}
		m.clearOutput()
		if msg.Type == tea.KeyEsc || msg.Type == tea.KeyEnter {
			return m, nil
		}
	}

	v := m.activeView()
	if v == nil {
		return m, nil
	}
	if !viewCapturesInput(v) {
		switch msg.String() {
		case "q":
			if len(m.viewStack) > 1 {
				return m, popView()
			}
			m.quitting = true
			return m, tea.Quit
		case "esc":
			if len(m.viewStack) > 1 {
				return m, popView()
			}
			return m, nil
		}
	}

	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	body := ""
	switch v := m.activeView(); {
	case m.outputActive:
		body = m.outputVP.View()
	case v != nil:
		body = v.View()
	}
	screen := m.renderHeader() + "\n" + body + "\n" + m.renderStatusBar()

	// Pad to terminal height so the alt-screen renderer leaves no stale lines.
	if pad := m.state.Height - (strings.Count(screen, "\n") + 1); pad > 0 {
		screen += strings.Repeat("\n", pad)
	}
	return screen
}

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("vista")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	header := title
	if len(crumbs) > 0 {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}
	theme := "light"
	if m.state.Dark {
		theme = "dark"
	}
	header += "  " + formatter.Dim("["+theme+"]")

	return header + "\n" + m.rule()
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	switch {
	case m.notice != nil && m.notice.Level == service.NoticeError:
		hints = append(hints, formatter.StyleRed.Render(m.notice.Message))
	case m.notice != nil:
		hints = append(hints, formatter.StyleGreen.Render(m.notice.Message))
	case m.outputActive && m.outputVP.TotalLineCount() > m.outputVP.Height:
		hints = append(hints, scrollIndicator(m.outputVP), formatter.Dim("↑↓ pgup/pgdn: scroll"), formatter.Dim("esc: dismiss"))
	case m.outputActive:
		hints = append(hints, formatter.Dim("esc: dismiss"))
	default:
		if v := m.activeView(); v != nil {
			for _, b := range v.ShortHelp() {
				hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
			}
			if len(m.viewStack) > 1 && !viewCapturesInput(v) {
				hints = append(hints, formatter.Dim("esc: back"))
			}
		}
	}

	return m.rule() + "\n" + strings.Join(hints, "  ")
}

func (m *appModel) clearOutput() {
	m.outputActive = false
	m.outputVP.SetContent("")
}

// outputKeys scroll the output pane. Everything else dismisses it.
var outputKeys = viewport.KeyMap{
	Up:           key.NewBinding(key.WithKeys("up")),
	Down:         key.NewBinding(key.WithKeys("down")),
	PageUp:       key.NewBinding(key.WithKeys("pgup")),
	PageDown:     key.NewBinding(key.WithKeys("pgdown")),
	HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
}

var (
	outputTop    = key.NewBinding(key.WithKeys("home"))
	outputBottom = key.NewBinding(key.WithKeys("end"))
)

// scrollOutput reports whether msg was consumed as a scroll of the pane.
func (m *appModel) scrollOutput(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, outputTop):
		m.outputVP.GotoTop()
		return nil, true
	case key.Matches(msg, outputBottom):
		m.outputVP.GotoBottom()
		return nil, true
	case key.Matches(msg, outputKeys.Up, outputKeys.Down, outputKeys.PageUp,
		outputKeys.PageDown, outputKeys.HalfPageUp, outputKeys.HalfPageDown):
		var cmd tea.Cmd
		m.outputVP, cmd = m.outputVP.Update(msg)
		return cmd, true
	}
	return nil, false
}

// rule is the horizontal separator framing the content area.
func (m *appModel) rule() string {
	return lipgloss.NewStyle().Foreground(formatter.ColorDim).Render(strings.Repeat("─", max(m.state.Width, 20)))
}

func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
