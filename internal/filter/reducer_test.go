package filter

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var june10 = time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC)

func ids(records []domain.ProjectRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestApply_DefaultFiltersKeepEverything(t *testing.T) {
	portfolio := testutil.Portfolio()
	got := ApplyAt(portfolio, domain.DefaultFilters(), june10)
	assert.Equal(t, portfolio, got)
}

func TestApply_EmptyInputGivesEmptyNonNil(t *testing.T) {
	got := ApplyAt(nil, domain.DefaultFilters(), june10)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApply_MaxRiskOnly(t *testing.T) {
	f := domain.DefaultFilters()
	f.MaxRisk = 40
	got := ApplyAt(testutil.Portfolio(), f, june10)
	assert.Equal(t, []string{"p-01", "p-04", "p-05", "p-07", "p-08"}, ids(got))
}

func TestApply_MinRewardIsInclusive(t *testing.T) {
	f := domain.DefaultFilters()
	f.MinReward = 70
	got := ApplyAt(testutil.Portfolio(), f, june10)
	assert.Equal(t, []string{"p-01", "p-03", "p-06"}, ids(got))
}

func TestApply_FacetsAreAndedAcrossOredWithin(t *testing.T) {
	f := domain.DefaultFilters()
	f.Departments = []domain.Department{domain.DeptEngineering, domain.DeptMarketing}
	f.Statuses = []domain.ProjectStatus{domain.StatusDelayed}
	got := ApplyAt(testutil.Portfolio(), f, june10)
	assert.Equal(t, []string{"p-02", "p-06"}, ids(got))
}

func TestApply_SearchIsCaseInsensitiveOverNameOwnerDepartment(t *testing.T) {
	tests := []struct {
		search string
		want   []string
	}{
		{"dana", []string{"p-01", "p-04"}},
		{"FINANCE", []string{"p-05", "p-08"}},
		{"rollOUT", []string{"p-06"}},
		{"nothing matches", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			f := domain.DefaultFilters()
			f.Search = tt.search
			assert.Equal(t, tt.want, ids(ApplyAt(testutil.Portfolio(), f, june10)))
		})
	}
}

func TestApply_DatePresets(t *testing.T) {
	tests := []struct {
		preset domain.DatePreset
		want   []string
	}{
		// May 12 through Jun 10; Falcon started May 11.
		{domain.PresetLast30, []string{"p-08"}},
		// Mar 13 through Jun 10.
		{domain.PresetLast90, []string{"p-04", "p-06", "p-07", "p-08"}},
		{domain.PresetYTD, []string{"p-01", "p-02", "p-03", "p-04", "p-05", "p-06", "p-07", "p-08"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			f := domain.DefaultFilters()
			f.DatePreset = tt.preset
			assert.Equal(t, tt.want, ids(ApplyAt(testutil.Portfolio(), f, june10)))
		})
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	portfolio := testutil.Portfolio()
	before := slices.Clone(portfolio)

	f := domain.DefaultFilters()
	f.Regions = []domain.Region{domain.RegionEurope}
	_ = ApplyAt(portfolio, f, june10)

	assert.Equal(t, before, portfolio)
}

// oracle restates the filter rules independently of Predicate.
func oracle(r domain.ProjectRecord, f domain.Filters, now time.Time) bool {
	if len(f.Departments) > 0 && !slices.Contains(f.Departments, r.Department) {
		return false
	}
	if len(f.Regions) > 0 && !slices.Contains(f.Regions, r.Region) {
		return false
	}
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, r.Status) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Owner), q) &&
			!strings.Contains(strings.ToLower(string(r.Department)), q) {
			return false
		}
	}
	if f.DatePreset != domain.PresetAll {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		var from time.Time
		switch f.DatePreset {
		case domain.PresetLast30:
			from = today.AddDate(0, 0, -29)
		case domain.PresetLast90:
			from = today.AddDate(0, 0, -89)
		case domain.PresetYTD:
			from = time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		}
		if r.StartDate.Before(from) || r.StartDate.After(today) {
			return false
		}
	}
	return r.Risk <= f.MaxRisk && r.Reward >= f.MinReward
}

func TestApply_MatchesOracleAcrossFilterGrid(t *testing.T) {
	portfolio := testutil.Portfolio()

	deptSets := [][]domain.Department{{}, {domain.DeptEngineering}, {domain.DeptFinance, domain.DeptSales}}
	regionSets := [][]domain.Region{{}, {domain.RegionEurope}, {domain.RegionNorthAmerica, domain.RegionLatinAmerica}}
	statusSets := [][]domain.ProjectStatus{{}, {domain.StatusOnTrack}, {domain.StatusDelayed, domain.StatusBlocked}}
	searches := []string{"", "a", "park"}
	risks := []float64{100, 45, 0}
	rewards := []float64{0, 60}

	checked := 0
	for _, ds := range deptSets {
		for _, rs := range regionSets {
			for _, ss := range statusSets {
				for _, q := range searches {
					for _, preset := range domain.DatePresets {
						for _, maxRisk := range risks {
							for _, minReward := range rewards {
								f := domain.Filters{
									Departments: ds, Regions: rs, Statuses: ss,
									DatePreset: preset, Search: q,
									MaxRisk: maxRisk, MinReward: minReward,
								}
								got := ApplyAt(portfolio, f, june10)
								var want []string
								for _, r := range portfolio {
									if oracle(r, f, june10) {
										want = append(want, r.ID)
									}
								}
								if want == nil {
									want = []string{}
								}
								require.Equal(t, want, ids(got), "filters %+v", f)
								checked++
							}
						}
					}
				}
			}
		}
	}
	assert.Equal(t, 3*3*3*3*4*3*2, checked)
}

func TestWindow_ContainsUsesCalendarDay(t *testing.T) {
	w := WindowFor(domain.PresetLast30, june10)
	require.True(t, w.Bounded())

	est := time.FixedZone("EST", -5*3600)
	// 23:00 on May 12 in EST is already May 13 in UTC, but the calendar day is May 12.
	assert.True(t, w.Contains(time.Date(2026, time.May, 12, 23, 0, 0, 0, est)))
	assert.False(t, w.Contains(time.Date(2026, time.May, 11, 23, 0, 0, 0, est)))
	assert.True(t, w.Contains(time.Date(2026, time.June, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC)))
}

func TestWindow_AllIsUnbounded(t *testing.T) {
	w := WindowFor(domain.PresetAll, june10)
	assert.False(t, w.Bounded())
	assert.True(t, w.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)))
}
