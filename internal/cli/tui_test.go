package cli

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_DashboardInitialRender(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	screen := d.Screen()
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, screen, "8 of 8 projects")
	assert.Contains(t, screen, "Dept: All Departments")
	assert.Contains(t, screen, "‹ 1/8 ›")
	assert.Contains(t, screen, "WORKFLOW STATUS")
	assert.Contains(t, screen, "[light]")
}

func TestTUI_EmptyPortfolio(t *testing.T) {
	d := NewTestDriver(t, testApp(t, false), domain.DefaultFilters())
	assert.Contains(t, d.Screen(), "No records imported")
}

func TestTUI_InitialFiltersApply(t *testing.T) {
	f := domain.DefaultFilters()
	f.Regions = []domain.Region{domain.RegionEurope}
	d := NewTestDriver(t, testApp(t, true), f)

	assert.Contains(t, d.Screen(), "3 of 8 projects")
	assert.Contains(t, d.Screen(), "Region: Europe")
}

func TestTUI_DepartmentMenuToggles(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("1")
	assert.Equal(t, filter.DropdownDept, d.appModel().dashboard.session.Dropdown())
	assert.Contains(t, d.Screen(), "[ ] Engineering")

	d.Press("space")
	assert.Equal(t, []domain.Department{domain.DeptEngineering}, d.Filters().Departments)
	assert.Contains(t, d.Screen(), "[x] Engineering")
	assert.Contains(t, d.Screen(), "3 of 8 projects")
	assert.Contains(t, d.Screen(), "Dept: Engineering")

	d.Press("down")
	d.Press("space")
	assert.Contains(t, d.Screen(), "Dept: 2 Departments")
	assert.Contains(t, d.Screen(), "5 of 8 projects")

	// Esc closes the menu instead of leaving the dashboard.
	d.Press("esc")
	assert.Equal(t, filter.DropdownClosed, d.appModel().dashboard.session.Dropdown())
	assert.Equal(t, 1, d.ViewStackLen())
	assert.False(t, d.Quitting)
}

func TestTUI_MenusAreMutuallyExclusive(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("1")
	d.Press("2")
	assert.Equal(t, filter.DropdownRegion, d.appModel().dashboard.session.Dropdown())
	screen := d.Screen()
	assert.Contains(t, screen, "[ ] Europe")
	assert.NotContains(t, screen, "[ ] Engineering")

	d.Press("2")
	assert.Equal(t, filter.DropdownClosed, d.appModel().dashboard.session.Dropdown())
}

func TestTUI_SearchIsDebounced(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("/")
	d.Type("dana")
	assert.Equal(t, "", d.Filters().Search)
	assert.Contains(t, d.Screen(), "8 of 8 projects")
	assert.Contains(t, d.Screen(), "…")

	d.Advance(testDebounce - 1)
	assert.Equal(t, "", d.Filters().Search)

	d.Advance(1)
	assert.Equal(t, "dana", d.Filters().Search)
	assert.Contains(t, d.Screen(), "2 of 8 projects")
}

func TestTUI_SearchEnterAppliesImmediately(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("/")
	d.Type("apollo")
	d.Press("enter")

	assert.Equal(t, "apollo", d.Filters().Search)
	assert.Contains(t, d.Screen(), "1 of 8 projects")
	assert.False(t, d.appModel().dashboard.searching)
}

func TestTUI_QInsideSearchIsText(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("/")
	d.Type("q")
	assert.False(t, d.Quitting)
	assert.Equal(t, "q", d.appModel().dashboard.session.SearchInput())
}

func TestTUI_ClearDropsPendingSearch(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("1")
	d.Press("space")
	d.Press("esc")
	d.Press("/")
	d.Type("dana")
	d.Press("esc")
	d.Press("c")
	d.Advance(testDebounce * 2)

	assert.True(t, d.Filters().Equal(domain.DefaultFilters()))
	assert.Contains(t, d.Screen(), "8 of 8 projects")
}

func TestTUI_TabCyclesViews(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("tab")
	assert.Contains(t, d.Screen(), "‹ 2/8 ›")
	assert.Contains(t, d.Screen(), "WORKLOAD BY DEPARTMENT")

	d.Press("shift+tab")
	d.Press("shift+tab")
	assert.Contains(t, d.Screen(), "‹ 8/8 ›")
	assert.Contains(t, d.Screen(), "TASK PHASE DISTRIBUTION")
}

func TestTUI_DatePresetAndBoundsCycle(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("t")
	assert.Equal(t, domain.PresetLast30, d.Filters().DatePreset)
	assert.Contains(t, d.Screen(), "Date: Last 30 days")

	d.Press("t")
	d.Press("t")
	d.Press("t")
	assert.Equal(t, domain.PresetAll, d.Filters().DatePreset)

	d.Press("m")
	d.Press("m")
	assert.Equal(t, 50.0, d.Filters().MaxRisk)
	assert.Contains(t, d.Screen(), "Risk ≤ 50")

	d.Press("n")
	assert.Equal(t, 25.0, d.Filters().MinReward)
}

func TestTUI_ThemeToggle(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("D")
	assert.True(t, d.State().Dark)
	assert.Contains(t, d.Screen(), "[dark]")
}

func TestTUI_SaveFilter(t *testing.T) {
	app := testApp(t, true)
	d := NewTestDriver(t, app, domain.DefaultFilters())

	d.Press("1")
	d.Press("space")
	d.Press("esc")
	d.Press("s")
	require.Equal(t, ViewSaveFilter, d.ActiveViewID())

	// Enter with no name keeps the form open.
	d.Press("enter")
	assert.Equal(t, ViewSaveFilter, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "name is required")

	d.Type("Eng q")
	d.Press("enter")
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.Screen(), `Saved filter "Eng q" (default)`)

	list, err := app.Filters.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []domain.Department{domain.DeptEngineering}, list[0].Filters.Departments)
}

func TestTUI_SaveFilterEscCancels(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("s")
	d.Press("esc")
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
}

func TestTUI_ApplySavedFilter(t *testing.T) {
	app := testApp(t, true)
	f := domain.DefaultFilters()
	f.Regions = []domain.Region{domain.RegionEurope}
	_, err := app.Filters.Save(context.Background(), "EU", f)
	require.NoError(t, err)

	d := NewTestDriver(t, app, domain.DefaultFilters())
	d.Press("f")
	require.Equal(t, ViewSavedFilters, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "EU")
	assert.Contains(t, d.Screen(), "1 region")

	d.Press("enter")
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.Contains(t, d.Screen(), "3 of 8 projects")
	assert.Contains(t, d.Screen(), `Applied filter "EU"`)
}

func TestTUI_SavedFiltersDefaultAndDelete(t *testing.T) {
	app := testApp(t, true)
	ctx := context.Background()
	_, err := app.Filters.Save(ctx, "First", domain.DefaultFilters())
	require.NoError(t, err)
	second, err := app.Filters.Save(ctx, "Second", domain.DefaultFilters())
	require.NoError(t, err)

	d := NewTestDriver(t, app, domain.DefaultFilters())
	d.Press("f")
	d.Press("down")
	d.Press("d")

	def, ok, err := app.Filters.Default(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second.ID, def.ID)

	d.Press("x")
	list, err := app.Filters.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "First", list[0].Name)
	assert.True(t, list[0].IsDefault)
	assert.Contains(t, d.Screen(), "Deleted.")
}

func TestTUI_ExportCurrentView(t *testing.T) {
	app := testApp(t, true)
	d := NewTestDriver(t, app, domain.DefaultFilters())

	d.Press("e")
	require.Equal(t, ViewExportMenu, d.ActiveViewID())
	d.Press("c")

	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	screen := d.Screen()
	assert.Contains(t, screen, "Exported 1 file(s)")
	assert.Contains(t, screen, "workflow-status_20260610.csv")

	_, err := os.Stat(app.ExportDir + "/workflow-status_20260610.csv")
	require.NoError(t, err)

	// Any key dismisses the output pane.
	d.Press("esc")
	assert.Contains(t, d.Screen(), "WORKFLOW STATUS")
}

func TestTUI_RecordsView(t *testing.T) {
	f := domain.DefaultFilters()
	f.Statuses = []domain.ProjectStatus{domain.StatusDelayed}
	d := NewTestDriver(t, testApp(t, true), f)

	d.Press("p")
	require.Equal(t, ViewRecords, d.ActiveViewID())
	screen := d.Screen()
	assert.Contains(t, screen, "2 projects")
	assert.Contains(t, screen, "Beacon Campaign")
	assert.NotContains(t, screen, "Apollo Platform")

	d.Press("q")
	assert.Equal(t, ViewDashboard, d.ActiveViewID())
	assert.False(t, d.Quitting)
}

func TestTUI_QuitKeys(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("esc")
	assert.False(t, d.Quitting)
	d.Press("q")
	assert.True(t, d.Quitting)
}

func TestTUI_CtrlCQuitsFromAnyView(t *testing.T) {
	d := NewTestDriver(t, testApp(t, true), domain.DefaultFilters())

	d.Press("s")
	d.Press("ctrl+c")
	assert.True(t, d.Quitting)
}

func TestDashboard_DropsSupersededLoads(t *testing.T) {
	app := testApp(t, true)
	state := &SharedState{App: app}
	v := newDashboardView(state, domain.DefaultFilters())
	defer v.close()

	europe := domain.DefaultFilters()
	europe.Regions = []domain.Region{domain.RegionEurope}

	first := v.load(domain.DefaultFilters())
	second := v.load(europe)

	v.Update(first())
	assert.True(t, v.loading)
	assert.Zero(t, v.shown)

	v.Update(second())
	assert.False(t, v.loading)
	assert.Equal(t, 3, v.shown)
	assert.True(t, state.Filters.Equal(europe))
}

func TestNextStep(t *testing.T) {
	assert.Equal(t, 75.0, nextStep(maxRiskSteps, 100))
	assert.Equal(t, 100.0, nextStep(maxRiskSteps, 25))
	assert.Equal(t, 100.0, nextStep(maxRiskSteps, 42))
}

func TestMenuItemsFollowCanonicalOrder(t *testing.T) {
	items := menuItems(filter.DropdownStatus)
	assert.Equal(t, "On Track", items[0])
	assert.Equal(t, "Blocked", items[len(items)-1])
	assert.Nil(t, menuItems(filter.DropdownClosed))
	assert.True(t, strings.HasPrefix(menuItems(filter.DropdownDept)[0], "Eng"))
}
