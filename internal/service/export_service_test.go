package service

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExportService(t *testing.T, snap export.Snapshotter, n Notifier, obs ...UseCaseObserver) ExportService {
	t.Helper()
	repo, _ := seededRepo(t)
	dash := NewDashboardService(repo, fixedNow)
	return NewExportService(dash, export.NewExporter(snap, export.WithNow(fixedNow)), n, obs...)
}

func TestExportService_CSV(t *testing.T) {
	svc := newExportService(t, nil, nil)

	f := domain.DefaultFilters()
	f.Regions = []domain.Region{domain.RegionAsiaPacific}
	d, err := svc.Export(context.Background(), ViewRequest{View: insight.ViewWorkflowStatus, Filters: f}, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "workflow-status_20260610.csv", d.Filename)
	assert.Equal(t, "text/csv;charset=utf-8", d.MimeType)
	assert.Equal(t, "Status,Count,Percentage\nOn Track,1,100.0%", string(d.Content))
}

func TestExportService_ImageWithoutRendererNotifies(t *testing.T) {
	n := &recordingNotifier{}
	obs := &recordingObserver{}
	svc := newExportService(t, nil, n, obs)

	_, err := svc.Export(context.Background(), ViewRequest{View: insight.ViewTaskPhase, Filters: domain.DefaultFilters()}, export.FormatPNG)
	assert.ErrorIs(t, err, export.ErrSnapshotUnavailable)
	require.Len(t, n.errors(), 1)
	assert.Contains(t, n.errors()[0], "Export failed")
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestExportService_UnknownViewNotifies(t *testing.T) {
	n := &recordingNotifier{}
	svc := newExportService(t, render.NewSnapshotter(), n)

	_, err := svc.Export(context.Background(), ViewRequest{View: "nope", Filters: domain.DefaultFilters()}, export.FormatCSV)
	assert.ErrorIs(t, err, insight.ErrUnknownView)
	assert.Len(t, n.errors(), 1)
}

func TestExportService_ExportToDirSink(t *testing.T) {
	dir := t.TempDir()
	n := &recordingNotifier{}
	svc := newExportService(t, render.NewSnapshotter(), n)

	path, err := svc.ExportTo(context.Background(),
		ViewRequest{View: insight.ViewRiskReward, Filters: domain.DefaultFilters()},
		export.FormatSVG, export.DirSink{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "risk-vs-reward-analysis_20260610.svg"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
	assert.Empty(t, n.errors())
}

func TestExportService_ExportAllWritesEveryView(t *testing.T) {
	dir := t.TempDir()
	obs := &recordingObserver{}
	svc := newExportService(t, render.NewSnapshotter(), nil, obs)

	paths, err := svc.ExportAll(context.Background(), domain.DefaultFilters(), false, export.FormatPNG, export.DirSink{Dir: dir})
	require.NoError(t, err)
	require.Len(t, paths, len(insight.Views))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"budget-utilization-and-forecast_20260610.png",
		"delay-analysis_20260610.png",
		"efficiency-heatmap_20260610.png",
		"resource-allocation_20260610.png",
		"risk-vs-reward-analysis_20260610.png",
		"task-phase-distribution_20260610.png",
		"workflow-status_20260610.png",
		"workload-by-department_20260610.png",
	}, names)
	assert.Contains(t, obs.names(), "export-all")
}

func TestExportService_ExportAllSinkFailure(t *testing.T) {
	n := &recordingNotifier{}
	svc := newExportService(t, nil, n)

	// A regular file where the directory should be makes every save fail.
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := svc.ExportAll(context.Background(), domain.DefaultFilters(), false, export.FormatCSV, export.DirSink{Dir: blocker})
	assert.Error(t, err)
	assert.Len(t, n.errors(), 1)
}
