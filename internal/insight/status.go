package insight

import (
	"fmt"

	"github.com/alexanderramin/vista/internal/domain"
)

type statusShare struct {
	status domain.ProjectStatus
	count  int
	share  float64 // percent of the filtered total, one decimal
}

func statusShares(records []domain.ProjectRecord) []statusShare {
	counts := newGroups[domain.ProjectStatus, int]()
	for _, r := range records {
		*counts.at(r.Status)++
	}
	total := float64(len(records))
	var out []statusShare
	for _, s := range canonical(counts.keys, domain.Statuses) {
		n, _ := counts.lookup(s)
		out = append(out, statusShare{
			status: s,
			count:  *n,
			share:  round1(domain.Ratio(float64(*n), total) * 100),
		})
	}
	return out
}

func workflowStatus(records []domain.ProjectRecord, p Palette) ChartView {
	shares := statusShares(records)

	series := Series{Kind: KindDonut}
	counts := Dataset{Label: "Count"}
	pct := Dataset{Label: "Percentage"}
	table := Table{Title: "Workflow Status", Headers: []string{"Status", "Count", "Percentage"}, Rows: [][]any{}}
	for _, s := range shares {
		series.Categories = append(series.Categories, string(s.status))
		series.Colors = append(series.Colors, p.StatusColor(s.status))
		counts.Values = append(counts.Values, float64(s.count))
		pct.Values = append(pct.Values, s.share)
		table.Rows = append(table.Rows, []any{string(s.status), s.count, fmt.Sprintf("%.1f%%", s.share)})
	}
	series.Datasets = []Dataset{counts, pct}

	return ChartView{ID: ViewWorkflowStatus, Title: table.Title, Series: p.decorate(series), Table: table}
}

func workloadByDepartment(records []domain.ProjectRecord, p Palette) ChartView {
	counts := newGroups[domain.Department, int]()
	for _, r := range records {
		*counts.at(r.Department)++
	}

	series := Series{Kind: KindBar}
	ds := Dataset{Label: "Projects", Color: p.Cycle(0)}
	table := Table{Title: "Workload by Department", Headers: []string{"Department", "Project Count"}, Rows: [][]any{}}
	for _, d := range canonical(counts.keys, domain.Departments) {
		n, _ := counts.lookup(d)
		series.Categories = append(series.Categories, string(d))
		ds.Values = append(ds.Values, float64(*n))
		table.Rows = append(table.Rows, []any{string(d), *n})
	}
	series.Datasets = []Dataset{ds}

	return ChartView{ID: ViewWorkloadDept, Title: table.Title, Series: p.decorate(series), Table: table}
}
