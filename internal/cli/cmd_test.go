package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/vista/internal/db"
	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/render"
	"github.com/alexanderramin/vista/internal/repository"
	"github.com/alexanderramin/vista/internal/service"
	"github.com/alexanderramin/vista/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june10 = time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB. The portfolio is
// seeded unless empty is set.
func testApp(t *testing.T, seed bool) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	records := repository.NewSQLiteRecordRepo(database)
	if seed {
		require.NoError(t, records.Insert(context.Background(), testutil.Portfolio()))
	}

	now := func() time.Time { return june10 }
	relay := &NoticeRelay{}
	dash := service.NewDashboardService(records, now)
	exporter := export.NewExporter(render.NewSnapshotter(), export.WithNow(now))

	return &App{
		Dashboard: dash,
		Exports:   service.NewExportService(dash, exporter, relay),
		Filters: service.NewSavedFilterService(
			repository.NewKVSavedFilterStore(repository.NewSQLiteKVStore(database)), zerolog.Nop()),
		Records:   service.NewRecordService(records, db.NewSQLiteUnitOfWork(database)),
		Notices:   relay,
		Logger:    zerolog.Nop(),
		ExportDir: t.TempDir(),
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func TestRootCmd_PrintsHelpWhenNotInteractive(t *testing.T) {
	out, err := executeCmd(t, testApp(t, false))
	require.NoError(t, err)
	assert.Contains(t, out, "Project portfolio dashboard")
	assert.Contains(t, out, "records")
	assert.Contains(t, out, "export")
}

func TestRecordsImport(t *testing.T) {
	app := testApp(t, false)

	out, err := executeCmd(t, app, "records", "import", "../importer/testdata/portfolio.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 records. 2 total.\n", out)

	out, err = executeCmd(t, app, "records", "import", "--replace", "../importer/testdata/portfolio.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Imported 2 records (replaced 2). 2 total.\n", out)
}

func TestRecordsImport_MissingFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t, false), "records", "import", "nope.yaml")
	require.Error(t, err)
}

func TestRecordsList_Facets(t *testing.T) {
	app := testApp(t, true)

	tests := []struct {
		name    string
		args    []string
		summary string
		has     []string
		hasNot  []string
	}{
		{
			name:    "unfiltered",
			args:    nil,
			summary: "8 of 8 projects",
			has:     []string{"Apollo Platform", "Helix Audit"},
		},
		{
			name:    "department is case-insensitive",
			args:    []string{"--dept", "engineering"},
			summary: "3 of 8 projects",
			has:     []string{"Apollo Platform", "Cobalt Migration", "Falcon Rollout"},
			hasNot:  []string{"Beacon Campaign"},
		},
		{
			name:    "departments OR, regions AND",
			args:    []string{"--dept", "Engineering", "--dept", "Finance", "--region", "Europe"},
			summary: "2 of 8 projects",
			has:     []string{"Cobalt Migration", "Helix Audit"},
		},
		{
			name:    "search",
			args:    []string{"--search", "dana"},
			summary: "2 of 8 projects",
			has:     []string{"Apollo Platform", "Delta Pipeline"},
		},
		{
			name:    "risk bound",
			args:    []string{"--max-risk", "20"},
			summary: "2 of 8 projects",
			has:     []string{"Delta Pipeline", "Echo Renewal"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCmd(t, app, append([]string{"records", "list"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.summary)
			for _, s := range tt.has {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.hasNot {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRecordsList_RejectsUnknownFacetValues(t *testing.T) {
	app := testApp(t, true)

	_, err := executeCmd(t, app, "records", "list", "--region", "Antarctica")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown value "Antarctica"`)

	_, err = executeCmd(t, app, "records", "list", "--max-risk", "120")
	require.Error(t, err)

	_, err = executeCmd(t, app, "records", "list", "--preset", "fortnight")
	require.Error(t, err)
}

func TestViewCmd_Table(t *testing.T) {
	out, err := executeCmd(t, testApp(t, true), "view", "workflow-status")
	require.NoError(t, err)
	assert.Contains(t, out, "WORKFLOW STATUS")
	assert.Contains(t, out, "On Track")
	assert.Contains(t, out, "37.5%")
}

func TestViewCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(t, true), "view", "task-phase", "--json", "--region", "Europe")
	require.NoError(t, err)

	var view insight.ChartView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, insight.ViewTaskPhase, view.ID)
	assert.Equal(t, insight.KindStacked, view.Series.Kind)
	assert.NotEmpty(t, view.Table.Rows)
}

func TestViewCmd_UnknownView(t *testing.T) {
	_, err := executeCmd(t, testApp(t, true), "view", "pie-of-the-month")
	require.ErrorIs(t, err, insight.ErrUnknownView)
}

func TestViewsCmd_ListsEveryView(t *testing.T) {
	out, err := executeCmd(t, testApp(t, true), "views")
	require.NoError(t, err)
	for _, id := range insight.Views {
		assert.Contains(t, out, string(id))
	}
}

func TestExportCmd_SingleView(t *testing.T) {
	app := testApp(t, true)
	dir := t.TempDir()

	out, err := executeCmd(t, app, "export", "workflow-status", "--format", "csv", "--out", dir, "--region", "Asia Pacific")
	require.NoError(t, err)

	path := filepath.Join(dir, "workflow-status_20260610.csv")
	assert.Equal(t, path+"\n", out)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Status,Count,Percentage\nOn Track,1,100.0%", string(b))
}

func TestExportCmd_AllDefaultsToExportDir(t *testing.T) {
	app := testApp(t, true)

	_, err := executeCmd(t, app, "export", "--all", "--format", "svg")
	require.NoError(t, err)

	entries, err := os.ReadDir(app.ExportDir)
	require.NoError(t, err)
	assert.Len(t, entries, len(insight.Views))
}

func TestExportCmd_ArgumentErrors(t *testing.T) {
	app := testApp(t, true)

	_, err := executeCmd(t, app, "export")
	require.Error(t, err)

	_, err = executeCmd(t, app, "export", "--all", "workflow-status")
	require.Error(t, err)

	_, err = executeCmd(t, app, "export", "workflow-status", "--format", "xlsx")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestFiltersCmd_Lifecycle(t *testing.T) {
	app := testApp(t, true)

	out, err := executeCmd(t, app, "filters", "save", "EU watch", "--region", "Europe")
	require.NoError(t, err)
	assert.Contains(t, out, `Saved filter "EU watch"`)
	assert.Contains(t, out, "(default)")

	_, err = executeCmd(t, app, "filters", "save", "Blocked", "--status", "blocked")
	require.NoError(t, err)

	out, err = executeCmd(t, app, "filters", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "EU watch")
	assert.Contains(t, out, "1 region")
	assert.Contains(t, out, "★")

	// The default saved filter applies unless overridden.
	out, err = executeCmd(t, app, "records", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "3 of 8 projects")

	out, err = executeCmd(t, app, "records", "list", "--no-default")
	require.NoError(t, err)
	assert.Contains(t, out, "8 of 8 projects")

	out, err = executeCmd(t, app, "records", "list", "--saved", "blocked")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 8 projects")

	out, err = executeCmd(t, app, "filters", "default", "Blocked")
	require.NoError(t, err)
	assert.Contains(t, out, `Default filter is now "Blocked"`)

	out, err = executeCmd(t, app, "filters", "show", "blocked")
	require.NoError(t, err)
	assert.Contains(t, out, "Blocked")

	out, err = executeCmd(t, app, "filters", "delete", "EU watch")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted filter "EU watch"`)

	_, err = executeCmd(t, app, "filters", "show", "EU watch")
	require.ErrorIs(t, err, service.ErrFilterNotFound)
}

func TestFiltersCmd_SaveRequiresNameWhenNotInteractive(t *testing.T) {
	_, err := executeCmd(t, testApp(t, true), "filters", "save")
	require.ErrorIs(t, err, service.ErrEmptyName)
}

func TestNoticeRelay_Redirect(t *testing.T) {
	var fallback, redirected []string
	relay := &NoticeRelay{Fallback: service.NotifierFunc(func(n service.Notice) { fallback = append(fallback, n.Message) })}

	relay.Notify(service.Notice{Message: "one"})
	restore := relay.Redirect(service.NotifierFunc(func(n service.Notice) { redirected = append(redirected, n.Message) }))
	relay.Notify(service.Notice{Message: "two"})
	restore()
	relay.Notify(service.Notice{Message: "three"})

	assert.Equal(t, []string{"one", "three"}, fallback)
	assert.Equal(t, []string{"two"}, redirected)
}
