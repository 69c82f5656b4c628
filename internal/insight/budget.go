package insight

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/vista/internal/domain"
)

const (
	// ForecastPoints is how many trailing points of the budget trend carry a
	// forecast.
	ForecastPoints = 5
	// ForecastGrowth is the per-step growth applied to the last actual spend.
	ForecastGrowth = 0.02
)

type budgetPoint struct {
	rec         domain.ProjectRecord
	utilization float64
	forecast    float64
	hasForecast bool
}

// budgetTrend sorts by start date (stable, so equal dates keep input order)
// and attaches a naive linear projection to the last ForecastPoints points:
// lastSpent * (1 + ForecastGrowth * k). The window always ends on the last
// point at k = ForecastPoints-1, so with fewer points k starts above 0.
func budgetTrend(records []domain.ProjectRecord) []budgetPoint {
	sorted := make([]domain.ProjectRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartDate.Before(sorted[j].StartDate) })

	n := len(sorted)
	start := max(0, n-ForecastPoints)
	var lastSpent float64
	if n > 0 {
		lastSpent = sorted[n-1].BudgetSpent
	}

	out := make([]budgetPoint, n)
	for i, r := range sorted {
		out[i] = budgetPoint{rec: r, utilization: round1(r.Utilization())}
		if i >= start {
			out[i].hasForecast = true
			out[i].forecast = round2(lastSpent * (1 + ForecastGrowth*float64(i-(n-ForecastPoints))))
		}
	}
	return out
}

func budgetTrendView(records []domain.ProjectRecord, p Palette) ChartView {
	points := budgetTrend(records)

	series := Series{Kind: KindLine}
	allocated := Dataset{Label: "Budget Allocated", Color: p.Cycle(0)}
	spent := Dataset{Label: "Budget Spent", Color: p.Success}
	forecast := Dataset{Label: "Forecast", Color: p.Warning, Dashed: true, Missing: make([]bool, len(points))}
	table := Table{
		Title:   "Budget Utilization and Forecast",
		Headers: []string{"Project", "Start Date", "Budget Allocated", "Budget Spent", "Utilization %", "Forecast"},
		Rows:    [][]any{},
	}
	for i, pt := range points {
		series.Categories = append(series.Categories, pt.rec.Name)
		allocated.Values = append(allocated.Values, pt.rec.BudgetAllocated)
		spent.Values = append(spent.Values, pt.rec.BudgetSpent)
		forecast.Values = append(forecast.Values, pt.forecast)
		forecast.Missing[i] = !pt.hasForecast

		var fc any
		if pt.hasForecast {
			fc = pt.forecast
		}
		table.Rows = append(table.Rows, []any{
			pt.rec.Name,
			pt.rec.StartDate.Format("2006-01-02"),
			pt.rec.BudgetAllocated,
			pt.rec.BudgetSpent,
			fmt.Sprintf("%.1f%%", pt.utilization),
			fc,
		})
	}
	series.Datasets = []Dataset{allocated, spent, forecast}

	return ChartView{ID: ViewBudgetTrend, Title: table.Title, Series: p.decorate(series), Table: table}
}
