package formatter

import (
	"fmt"
	"math"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/dustin/go-humanize"
)

// Money renders a whole-dollar amount with thousands separators.
func Money(v float64) string {
	return "$" + humanize.Comma(int64(math.Round(v)))
}

// FormatRecords renders the record list as a table.
func FormatRecords(records []domain.ProjectRecord) string {
	if len(records) == 0 {
		return Dim("No projects match the current filters.") + "\n"
	}
	headers := []string{"ID", "Name", "Owner", "Department", "Region", "Status", "Progress", "Risk", "Reward", "Budget", "Spent", "Util", "Delay", "Start"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Dim(r.DisplayID()),
			r.Name,
			r.Owner,
			string(r.Department),
			string(r.Region),
			StatusStyle(r.Status).Render(string(r.Status)),
			fmt.Sprintf("%.0f%%", r.Progress),
			RiskStyle(r.Risk).Render(fmt.Sprintf("%.0f", r.Risk)),
			fmt.Sprintf("%.0f", r.Reward),
			Money(r.BudgetAllocated),
			Money(r.BudgetSpent),
			fmt.Sprintf("%.1f%%", r.Utilization()),
			fmt.Sprintf("%dd", r.DelayDays),
			r.StartDate.Format("2006-01-02"),
		})
	}
	return RenderTable(headers, rows)
}

// FormatRecordSummary is the one-line "N of M projects" caption.
func FormatRecordSummary(shown, total int) string {
	return fmt.Sprintf("%s of %s projects", humanize.Comma(int64(shown)), humanize.Comma(int64(total)))
}
