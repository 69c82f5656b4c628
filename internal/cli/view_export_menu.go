package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// exportDoneMsg reports where an export went.
type exportDoneMsg struct {
	paths []string
	err   error
}

// exportMenuView picks a format and exports one view, or every view when
// view is empty.
type exportMenuView struct {
	state   *SharedState
	view    insight.ViewID
	cursor  int
	running bool
	err     error
}

// formatKeys are the single-key shortcuts, parallel to export.Formats.
var formatKeys = []string{"c", "j", "p", "s"}

func newExportMenuView(state *SharedState, view insight.ViewID) *exportMenuView {
	return &exportMenuView{state: state, view: view}
}

func (v *exportMenuView) ID() ViewID { return ViewExportMenu }

func (v *exportMenuView) Title() string {
	if v.view == "" {
		return "Export all"
	}
	return "Export"
}

func (v *exportMenuView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "export")),
		key.NewBinding(key.WithKeys("c", "j", "p", "s"), key.WithHelp("c/j/p/s", "csv/json/png/svg")),
	}
}

func (v *exportMenuView) Init() tea.Cmd { return nil }

func (v *exportMenuView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		v.running = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		out := "\n  " + formatter.Header(fmt.Sprintf("Exported %d file(s)", len(msg.paths))) + "\n"
		for _, p := range msg.paths {
			out += "  " + p + "\n"
		}
		return v, tea.Batch(popView(), showOutput(out))

	case tea.KeyMsg:
		if v.running {
			return v, nil
		}
		switch msg.String() {
		case "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down":
			if v.cursor < len(export.Formats)-1 {
				v.cursor++
			}
		case "enter":
			return v, v.run(export.Formats[v.cursor])
		default:
			for i, k := range formatKeys {
				if msg.String() == k {
					v.cursor = i
					return v, v.run(export.Formats[i])
				}
			}
		}
	}
	return v, nil
}

func (v *exportMenuView) run(f export.Format) tea.Cmd {
	v.running = true
	v.err = nil
	app := v.state.App
	filters, dark, id := v.state.Filters, v.state.Dark, v.view
	sink := export.DirSink{Dir: app.ExportDir}
	return func() tea.Msg {
		ctx := context.Background()
		if id == "" {
			paths, err := app.Exports.ExportAll(ctx, filters, dark, f, sink)
			return exportDoneMsg{paths: paths, err: err}
		}
		path, err := app.Exports.ExportTo(ctx, service.ViewRequest{View: id, Filters: filters, Dark: dark}, f, sink)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: []string{path}}
	}
}

func (v *exportMenuView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleHeader.Render("EXPORT") + "\n")
	what := "all views"
	if v.view != "" {
		what = insight.Title(v.view)
	}
	b.WriteString("  " + formatter.Dim("for ") + formatter.Bold(what) + formatter.Dim(" into "+exportDir(v.state.App)) + "\n\n")

	for i, f := range export.Formats {
		cursor := "  "
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		fmt.Fprintf(&b, "  %s%s %s\n", cursor, formatter.Dim("["+formatKeys[i]+"]"), strings.ToUpper(string(f)))
	}
	if v.running {
		b.WriteString("\n  " + formatter.Dim("Exporting…") + "\n")
	}
	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	}
	return b.String()
}

func exportDir(app *App) string {
	if app.ExportDir == "" {
		return "."
	}
	return app.ExportDir
}
