package insight

import (
	"sort"

	"github.com/alexanderramin/vista/internal/domain"
)

// DelayTop is the number of projects the delay ranking keeps.
const DelayTop = 10

// mostDelayed returns up to DelayTop delayed records, longest delay first.
// Ties keep input order.
func mostDelayed(records []domain.ProjectRecord) []domain.ProjectRecord {
	var delayed []domain.ProjectRecord
	for _, r := range records {
		if r.DelayDays > 0 {
			delayed = append(delayed, r)
		}
	}
	sort.SliceStable(delayed, func(i, j int) bool { return delayed[i].DelayDays > delayed[j].DelayDays })
	if len(delayed) > DelayTop {
		delayed = delayed[:DelayTop]
	}
	return delayed
}

// delayAnalysis lists the ranking longest-first in the table and plots the
// same projects shortest-first so the line climbs left to right.
func delayAnalysis(records []domain.ProjectRecord, p Palette) ChartView {
	top := mostDelayed(records)

	table := Table{Title: "Delay Analysis", Headers: []string{"Project", "Delay Days", "Status", "Department"}, Rows: [][]any{}}
	for _, r := range top {
		table.Rows = append(table.Rows, []any{r.Name, r.DelayDays, string(r.Status), string(r.Department)})
	}

	series := Series{Kind: KindLine}
	ds := Dataset{Label: "Delay Days", Color: p.Danger}
	for i := len(top) - 1; i >= 0; i-- {
		series.Categories = append(series.Categories, top[i].Name)
		ds.Values = append(ds.Values, float64(top[i].DelayDays))
	}
	series.Datasets = []Dataset{ds}

	return ChartView{ID: ViewDelayAnalysis, Title: table.Title, Series: p.decorate(series), Table: table}
}

func riskReward(records []domain.ProjectRecord, p Palette) ChartView {
	series := Series{Kind: KindScatter, Max: 100}
	table := Table{
		Title:   "Risk vs Reward Analysis",
		Headers: []string{"Project", "Risk Score", "Reward Score", "Department", "Status"},
		Rows:    [][]any{},
	}
	for _, r := range records {
		series.Points = append(series.Points, Point{
			X: r.Risk, Y: r.Reward,
			Label: r.Name,
			Ref:   r.ID,
			Color: p.RiskColor(r.Risk),
		})
		table.Rows = append(table.Rows, []any{r.Name, r.Risk, r.Reward, string(r.Department), string(r.Status)})
	}
	return ChartView{ID: ViewRiskReward, Title: table.Title, Series: p.decorate(series), Table: table}
}
