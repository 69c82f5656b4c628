package insight

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/vista/internal/domain"
)

var ErrUnknownView = errors.New("unknown view")

type builder func([]domain.ProjectRecord, Palette) ChartView

var builders = map[ViewID]builder{
	ViewWorkflowStatus:    workflowStatus,
	ViewWorkloadDept:      workloadByDepartment,
	ViewBudgetTrend:       budgetTrendView,
	ViewDelayAnalysis:     delayAnalysis,
	ViewRiskReward:        riskReward,
	ViewEfficiencyHeatmap: efficiencyHeatmap,
	ViewResourceRadar:     resourceRadar,
	ViewTaskPhase:         taskPhase,
}

var titles = map[ViewID]string{
	ViewWorkflowStatus:    "Workflow Status",
	ViewWorkloadDept:      "Workload by Department",
	ViewBudgetTrend:       "Budget Utilization and Forecast",
	ViewDelayAnalysis:     "Delay Analysis",
	ViewRiskReward:        "Risk vs Reward Analysis",
	ViewEfficiencyHeatmap: "Efficiency Heatmap",
	ViewResourceRadar:     "Resource Allocation",
	ViewTaskPhase:         "Task Phase Distribution",
}

// ParseViewID validates a view identifier.
func ParseViewID(s string) (ViewID, error) {
	id := ViewID(s)
	if _, ok := builders[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
	}
	return id, nil
}

// Title returns the display title of a view, or "" for an unknown ID.
func Title(id ViewID) string {
	return titles[id]
}

// Build derives one view from records, which must already be filtered.
func Build(id ViewID, records []domain.ProjectRecord, p Palette) (ChartView, error) {
	b, ok := builders[id]
	if !ok {
		return ChartView{}, fmt.Errorf("%w: %q", ErrUnknownView, id)
	}
	return b(records, p), nil
}

// BuildAll derives every view in dashboard order.
func BuildAll(records []domain.ProjectRecord, p Palette) []ChartView {
	out := make([]ChartView, 0, len(Views))
	for _, id := range Views {
		out = append(out, builders[id](records, p))
	}
	return out
}

// RecordAt resolves the i-th scatter point of a risk/reward view back to its
// record. It returns false when the index is out of range or the record is no
// longer in records.
func RecordAt(view ChartView, i int, records []domain.ProjectRecord) (domain.ProjectRecord, bool) {
	if view.ID != ViewRiskReward || i < 0 || i >= len(view.Series.Points) {
		return domain.ProjectRecord{}, false
	}
	ref := view.Series.Points[i].Ref
	if ref == "" {
		return domain.ProjectRecord{}, false
	}
	for _, r := range records {
		if r.ID == ref {
			return r, true
		}
	}
	return domain.ProjectRecord{}, false
}
