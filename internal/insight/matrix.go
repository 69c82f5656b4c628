package insight

import (
	"math"

	"github.com/alexanderramin/vista/internal/domain"
)

type deptRegion struct {
	dept   domain.Department
	region domain.Region
}

// efficiencyHeatmap is sparse: only department/region pairs with at least
// one record produce a cell and a row.
func efficiencyHeatmap(records []domain.ProjectRecord, p Palette) ChartView {
	cells := newGroups[deptRegion, mean]()
	for _, r := range records {
		cells.at(deptRegion{r.Department, r.Region}).add(r.Efficiency)
	}
	depts := distinct(records, domain.Departments, func(r domain.ProjectRecord) domain.Department { return r.Department })
	regions := distinct(records, domain.Regions, func(r domain.ProjectRecord) domain.Region { return r.Region })

	series := Series{Kind: KindHeatmap, Categories: strs(depts), Rows: strs(regions), Colors: p.Heat, Max: 100}
	table := Table{
		Title:   "Efficiency Heatmap",
		Headers: []string{"Department", "Region", "Avg Efficiency %", "Project Count"},
		Rows:    [][]any{},
	}
	for x, d := range depts {
		for y, reg := range regions {
			m, ok := cells.lookup(deptRegion{d, reg})
			if !ok {
				continue
			}
			avg := int(math.Round(m.value()))
			series.Cells = append(series.Cells, HeatCell{X: x, Y: y, Value: float64(avg), Count: m.n})
			table.Rows = append(table.Rows, []any{string(d), string(reg), avg, m.n})
		}
	}
	return ChartView{ID: ViewEfficiencyHeatmap, Title: table.Title, Series: p.decorate(series), Table: table}
}

// RadarAxes are the five radar metrics in plotting order.
var RadarAxes = []string{"Progress", "Efficiency", "Low Risk", "Reward", "Budget Usage"}

type radarAcc struct {
	progress, efficiency, risk, reward, usage mean
}

// metrics returns the plotted values, each rounded to one decimal. Low Risk
// is 100 minus the mean risk.
func (a radarAcc) metrics() []float64 {
	return []float64{
		round1(a.progress.value()),
		round1(a.efficiency.value()),
		round1(100 - a.risk.value()),
		round1(a.reward.value()),
		round1(a.usage.value()),
	}
}

// resourceRadar is sparse: departments without records get no polygon.
func resourceRadar(records []domain.ProjectRecord, p Palette) ChartView {
	accs := newGroups[domain.Department, radarAcc]()
	for _, r := range records {
		a := accs.at(r.Department)
		a.progress.add(r.Progress)
		a.efficiency.add(r.Efficiency)
		a.risk.add(r.Risk)
		a.reward.add(r.Reward)
		a.usage.add(r.Utilization())
	}

	series := Series{Kind: KindRadar, Categories: append([]string(nil), RadarAxes...), Max: 100}
	table := Table{
		Title:   "Resource Allocation",
		Headers: []string{"Department", "Avg Progress %", "Avg Efficiency %", "Low Risk", "Avg Reward", "Avg Budget Usage %"},
		Rows:    [][]any{},
	}
	for i, d := range canonical(accs.keys, domain.Departments) {
		a, _ := accs.lookup(d)
		vals := a.metrics()
		series.Datasets = append(series.Datasets, Dataset{Label: string(d), Values: vals, Color: p.Cycle(i)})
		row := []any{string(d)}
		for _, v := range vals {
			row = append(row, v)
		}
		table.Rows = append(table.Rows, row)
	}
	return ChartView{ID: ViewResourceRadar, Title: table.Title, Series: p.decorate(series), Table: table}
}

// taskPhase is dense: every department present in records gets a count for
// every phase, zero when absent.
func taskPhase(records []domain.ProjectRecord, p Palette) ChartView {
	counts := newGroups[domain.Department, [4]int]()
	for _, r := range records {
		c := counts.at(r.Department)
		if i := domain.CanonicalIndex(domain.Phases, r.Phase); i >= 0 {
			c[i]++
		}
	}
	depts := canonical(counts.keys, domain.Departments)

	series := Series{Kind: KindStacked, Categories: strs(depts)}
	for i, ph := range domain.Phases {
		series.Datasets = append(series.Datasets, Dataset{Label: string(ph), Color: p.Cycle(i)})
	}
	table := Table{
		Title:   "Task Phase Distribution",
		Headers: append([]string{"Department"}, strs(domain.Phases)...),
		Rows:    [][]any{},
	}
	for _, d := range depts {
		c, _ := counts.lookup(d)
		row := []any{string(d)}
		for i := range domain.Phases {
			series.Datasets[i].Values = append(series.Datasets[i].Values, float64(c[i]))
			row = append(row, c[i])
		}
		table.Rows = append(table.Rows, row)
	}
	return ChartView{ID: ViewTaskPhase, Title: table.Title, Series: p.decorate(series), Table: table}
}
