package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/filter"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_RightAlignsNumericColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"Status", "Count"},
		[][]string{{"On Track", "3"}, {"Blocked", "12"}},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Status    Count", lines[0])
	assert.Equal(t, "On Track      3", lines[2])
	assert.Equal(t, "Blocked      12", lines[3])
}

func TestRenderTable_EmptyHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"3", "-4.5", "100.0%", "$250,000"} {
		assert.True(t, isNumeric(s), s)
	}
	for _, s := range []string{"Q1", "On Track", ""} {
		assert.False(t, isNumeric(s), s)
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$250,000", Money(250000))
	assert.Equal(t, "$0", Money(0))
	assert.Equal(t, "$1,235", Money(1234.6))
}

func TestFormatRecords(t *testing.T) {
	out := stripANSI(FormatRecords(testutil.Portfolio()[:2]))

	assert.Contains(t, out, "Apollo Platform")
	assert.Contains(t, out, "$250,000")
	assert.Contains(t, out, "72.0%")
	assert.Contains(t, out, "2026-01-19")
}

func TestFormatRecords_Empty(t *testing.T) {
	assert.Contains(t, FormatRecords(nil), "No projects match")
}

func TestFormatRecordSummary(t *testing.T) {
	assert.Equal(t, "3 of 1,200 projects", FormatRecordSummary(3, 1200))
}

func TestFormatView_DrawsChartAndTable(t *testing.T) {
	view, err := insight.Build(insight.ViewWorkflowStatus, testutil.Portfolio(), insight.LightPalette())
	require.NoError(t, err)

	out := stripANSI(FormatView(view, 80))

	assert.Contains(t, out, "WORKFLOW STATUS")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "Percentage")
	assert.Contains(t, out, "37.5%")
}

func TestFormatView_EmptyTable(t *testing.T) {
	view, err := insight.Build(insight.ViewDelayAnalysis, nil, insight.LightPalette())
	require.NoError(t, err)

	assert.Contains(t, stripANSI(FormatView(view, 80)), "No data for the current filters.")
}

func TestFormatChart_EveryKindRenders(t *testing.T) {
	for _, view := range insight.BuildAll(testutil.Portfolio(), insight.DarkPalette()) {
		t.Run(string(view.ID), func(t *testing.T) {
			assert.NotEmpty(t, FormatChart(view.Series, 100))
		})
	}
}

func TestFormatChart_MissingValuesShowDash(t *testing.T) {
	s := insight.Series{
		Kind:       insight.KindLine,
		Categories: []string{"Jan", "Feb"},
		Datasets: []insight.Dataset{
			{Label: "Forecast", Values: []float64{0, 40}, Missing: []bool{true, false}},
		},
	}
	out := stripANSI(FormatChart(s, 60))
	assert.Contains(t, out, "Jan  –")
	assert.Contains(t, out, "40")
}

func TestFormatFilterBar(t *testing.T) {
	f := domain.DefaultFilters()
	out := stripANSI(FormatFilterBar(f))
	assert.Contains(t, out, "Dept: All Departments")
	assert.Contains(t, out, "Date: All")
	assert.NotContains(t, out, "Risk")

	f.Departments = []domain.Department{domain.DeptSales, domain.DeptHR}
	f.Search = "apollo"
	f.MaxRisk = 50
	out = stripANSI(FormatFilterBar(f))
	assert.Contains(t, out, "Dept: "+filter.DepartmentLabel(f))
	assert.Contains(t, out, `Search: "apollo"`)
	assert.Contains(t, out, "Risk ≤ 50")
}

func TestFormatSavedFilters(t *testing.T) {
	list := []domain.SavedFilter{
		{ID: "0123456789abcdef", Name: "EU watch", Filters: domain.DefaultFilters(), CreatedAt: time.Now().Add(-time.Hour), IsDefault: true},
	}
	out := stripANSI(FormatSavedFilters(list))
	assert.Contains(t, out, "★")
	assert.Contains(t, out, "01234567")
	assert.NotContains(t, out, "0123456789")
	assert.Contains(t, out, "All projects")
	assert.Contains(t, out, "1 hour ago")

	assert.Contains(t, FormatSavedFilters(nil), "No saved filters.")
}

func TestFormatSavedFilter(t *testing.T) {
	f := domain.DefaultFilters()
	f.Regions = []domain.Region{domain.RegionEurope}
	out := stripANSI(FormatSavedFilter(domain.SavedFilter{ID: "abc", Name: "EU", Filters: f}))
	assert.Contains(t, out, "Europe")
	assert.Contains(t, out, "Departments")
}
