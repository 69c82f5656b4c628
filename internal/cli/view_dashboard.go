package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/filter"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Steps cycled by the m and n keys.
var (
	maxRiskSteps   = []float64{100, 75, 50, 25}
	minRewardSteps = []float64{0, 25, 50, 75}
)

// dashboardLoadedMsg carries one rebuild of the views. seq identifies the
// load so that results of superseded loads are dropped.
type dashboardLoadedMsg struct {
	seq   int
	views []insight.ChartView
	shown int
	total int
	err   error
}

// dashboardView is the home screen: the filter bar, the facet menus and the
// selected chart with its table.
type dashboardView struct {
	state   *SharedState
	session *filter.Session

	search    textinput.Model
	searching bool

	menuCursor int
	selected   int

	views     []insight.ChartView
	shown     int
	total     int
	requested domain.Filters
	seq       int
	loading   bool
	err       error
}

func newDashboardView(state *SharedState, initial domain.Filters) *dashboardView {
	app := state.App
	opts := []filter.SessionOption{filter.WithInitialFilters(initial)}
	if app.Clock != nil {
		opts = append(opts, filter.WithClock(app.Clock))
	}
	if app.SearchDebounce > 0 {
		opts = append(opts, filter.WithQuietPeriod(app.SearchDebounce))
	}

	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "name, owner or department"
	ti.CharLimit = 80
	ti.SetValue(initial.Search)

	return &dashboardView{
		state:  state,
		search: ti,
		// Every change is posted; Update drops the ones it already loaded.
		session: filter.NewSession(func(f domain.Filters) {
			state.post(filtersChangedMsg{filters: f})
		}, opts...),
	}
}

func (v *dashboardView) close() {
	v.session.Close()
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) CapturesInput() bool {
	return v.searching || v.session.Dropdown() != filter.DropdownClosed
}

func (v *dashboardView) ShortHelp() []key.Binding {
	switch {
	case v.searching:
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply now")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	case v.session.Dropdown() != filter.DropdownClosed:
		return []key.Binding{
			key.NewBinding(key.WithKeys("space"), key.WithHelp("space", "toggle")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "dept/region/status")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "date")),
		key.NewBinding(key.WithKeys("m", "n"), key.WithHelp("m/n", "risk/reward")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		key.NewBinding(key.WithKeys("e", "x"), key.WithHelp("e/x", "export/all")),
		key.NewBinding(key.WithKeys("s", "f"), key.WithHelp("s/f", "save/filters")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "projects")),
		key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "theme")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load(v.session.Filters())
}

// ── data loading ─────────────────────────────────────────────────────────────

// load rebuilds every view for f. Only the most recent load is kept.
func (v *dashboardView) load(f domain.Filters) tea.Cmd {
	v.seq++
	seq := v.seq
	v.requested = f
	v.state.Filters = f
	v.loading = true

	app, dark := v.state.App, v.state.Dark
	return func() tea.Msg {
		ctx := context.Background()
		all, err := app.Dashboard.Records(ctx)
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		shown, err := app.Dashboard.Filtered(ctx, f)
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		views, err := app.Dashboard.Views(ctx, f, dark)
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		return dashboardLoadedMsg{seq: seq, views: views, shown: len(shown), total: len(all)}
	}
}

func (v *dashboardView) reload() tea.Cmd {
	return v.load(v.session.Filters())
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.views = msg.views
			v.shown = msg.shown
			v.total = msg.total
		}
		return v, nil

	case filtersChangedMsg:
		// Posts can arrive late or out of order; resync from the session.
		cur := v.session.Filters()
		if cur.Equal(v.requested) {
			return v, nil
		}
		if !v.searching {
			v.search.SetValue(cur.Search)
		}
		return v, v.load(cur)

	case applyFiltersMsg:
		v.session.Load(msg.filters)
		v.search.SetValue(v.session.SearchInput())
		notice := service.Notice{Level: service.NoticeInfo, Message: fmt.Sprintf("Applied filter %q", msg.name)}
		return v, tea.Batch(v.reload(), func() tea.Msg { return noticeMsg{notice: notice} })

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	if v.searching {
		var cmd tea.Cmd
		v.search, cmd = v.search.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.searching {
		return v.handleSearchKey(msg)
	}
	if menu := v.session.Dropdown(); menu != filter.DropdownClosed {
		return v.handleMenuKey(msg, menu)
	}

	switch msg.String() {
	case "/":
		v.searching = true
		return v, v.search.Focus()
	case "1":
		v.openMenu(filter.DropdownDept)
	case "2":
		v.openMenu(filter.DropdownRegion)
	case "3":
		v.openMenu(filter.DropdownStatus)
	case "t":
		cur := v.session.Filters().DatePreset
		next := domain.DatePresets[(slices.Index(domain.DatePresets, cur)+1)%len(domain.DatePresets)]
		v.session.SetDatePreset(next)
		return v, v.reload()
	case "m", "n":
		f := v.session.Filters()
		if msg.String() == "m" {
			f.MaxRisk = nextStep(maxRiskSteps, f.MaxRisk)
		} else {
			f.MinReward = nextStep(minRewardSteps, f.MinReward)
		}
		v.session.SetRiskBounds(f.MaxRisk, f.MinReward)
		return v, v.reload()
	case "c":
		v.session.Clear()
		v.search.SetValue("")
		return v, v.reload()
	case "tab":
		v.selected = (v.selected + 1) % len(insight.Views)
	case "shift+tab":
		v.selected = (v.selected + len(insight.Views) - 1) % len(insight.Views)
	case "D":
		v.state.Dark = !v.state.Dark
		return v, v.reload()
	case "r":
		return v, v.reload()
	case "e":
		return v, pushView(newExportMenuView(v.state, insight.Views[v.selected]))
	case "x":
		return v, pushView(newExportMenuView(v.state, ""))
	case "s":
		return v, pushView(newSaveFilterView(v.state, v.session.Filters()))
	case "f":
		return v, pushView(newSavedFiltersView(v.state))
	case "p":
		return v, pushView(newRecordsView(v.state, v.session.Filters()))
	}
	return v, nil
}

func (v *dashboardView) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		v.session.FlushSearch()
		return v, v.reload()
	case tea.KeyEsc:
		// Leave the field; typed text still commits after the quiet period.
		v.searching = false
		v.search.Blur()
		return v, nil
	}

	prev := v.search.Value()
	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != prev {
		v.session.TypeSearch(v.search.Value())
	}
	return v, cmd
}

func (v *dashboardView) handleMenuKey(msg tea.KeyMsg, menu filter.Dropdown) (tea.Model, tea.Cmd) {
	items := menuItems(menu)
	switch msg.String() {
	case "up", "k":
		if v.menuCursor > 0 {
			v.menuCursor--
		}
	case "down", "j":
		if v.menuCursor < len(items)-1 {
			v.menuCursor++
		}
	case " ", "enter":
		v.toggleItem(menu, v.menuCursor)
		return v, v.reload()
	case "esc":
		v.session.CloseDropdown()
	case "1":
		v.openMenu(filter.DropdownDept)
	case "2":
		v.openMenu(filter.DropdownRegion)
	case "3":
		v.openMenu(filter.DropdownStatus)
	}
	return v, nil
}

// openMenu toggles menu, closing any other open one.
func (v *dashboardView) openMenu(menu filter.Dropdown) {
	v.session.ToggleDropdown(menu)
	v.menuCursor = 0
}

func (v *dashboardView) toggleItem(menu filter.Dropdown, i int) {
	switch menu {
	case filter.DropdownDept:
		v.session.ToggleDepartment(domain.Departments[i])
	case filter.DropdownRegion:
		v.session.ToggleRegion(domain.Regions[i])
	case filter.DropdownStatus:
		v.session.ToggleStatus(domain.Statuses[i])
	}
}

func menuItems(menu filter.Dropdown) []string {
	switch menu {
	case filter.DropdownDept:
		return valueStrings(domain.Departments)
	case filter.DropdownRegion:
		return valueStrings(domain.Regions)
	case filter.DropdownStatus:
		return valueStrings(domain.Statuses)
	}
	return nil
}

func menuChecked(menu filter.Dropdown, f domain.Filters, item string) bool {
	switch menu {
	case filter.DropdownDept:
		return slices.Contains(f.Departments, domain.Department(item))
	case filter.DropdownRegion:
		return slices.Contains(f.Regions, domain.Region(item))
	case filter.DropdownStatus:
		return slices.Contains(f.Statuses, domain.ProjectStatus(item))
	}
	return false
}

func valueStrings[T ~string](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = string(v)
	}
	return out
}

// nextStep advances to the step after cur, wrapping around. A value that is
// not one of the steps restarts the cycle.
func nextStep(steps []float64, cur float64) float64 {
	i := slices.Index(steps, cur)
	return steps[(i+1)%len(steps)]
}

// ── view ─────────────────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	f := v.session.Filters()
	var b strings.Builder

	b.WriteString("\n  " + formatter.FormatFilterBar(f) + "\n")
	search := v.search.View()
	if v.session.SearchPending() {
		search += formatter.Dim(" …")
	}
	b.WriteString("  " + search + "\n")

	if menu := v.session.Dropdown(); menu != filter.DropdownClosed {
		b.WriteString(v.renderMenu(menu, f))
	}

	summary := formatter.FormatRecordSummary(v.shown, v.total)
	if v.loading {
		summary += " " + formatter.Dim("(loading)")
	}
	b.WriteString("  " + formatter.Dim(summary) + "\n\n")

	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
		return b.String()
	}
	if !v.loading && v.total == 0 {
		b.WriteString("  " + formatter.Dim("No records imported. Run: vista records import <file>") + "\n")
		return b.String()
	}
	if v.selected < len(v.views) {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("‹ %d/%d ›", v.selected+1, len(v.views))) + "\n")
		b.WriteString(formatter.FormatView(v.views[v.selected], v.state.Width))
	}
	return b.String()
}

func (v *dashboardView) renderMenu(menu filter.Dropdown, f domain.Filters) string {
	var b strings.Builder
	for i, item := range menuItems(menu) {
		cursor := "  "
		if i == v.menuCursor {
			cursor = formatter.StyleHeader.Render("> ")
		}
		mark := "[ ]"
		if menuChecked(menu, f, item) {
			mark = formatter.StyleGreen.Render("[x]")
		}
		b.WriteString("    " + cursor + mark + " " + item + "\n")
	}
	return b.String()
}
