package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/filter"
	"github.com/dustin/go-humanize"
)

// FormatFilterBar renders the facet captions, date preset, search and bounds
// on one line.
func FormatFilterBar(f domain.Filters) string {
	parts := []string{
		Dim("Dept: ") + filter.DepartmentLabel(f),
		Dim("Region: ") + filter.RegionLabel(f),
		Dim("Status: ") + filter.StatusLabel(f),
		Dim("Date: ") + string(f.DatePreset),
	}
	if f.Search != "" {
		parts = append(parts, Dim("Search: ")+fmt.Sprintf("%q", f.Search))
	}
	if f.MaxRisk < domain.DefaultMaxRisk {
		parts = append(parts, Dim("Risk ≤ ")+formatValue(f.MaxRisk))
	}
	if f.MinReward > domain.DefaultMinReward {
		parts = append(parts, Dim("Reward ≥ ")+formatValue(f.MinReward))
	}
	return strings.Join(parts, Dim("  │  "))
}

// FormatSavedFilters lists saved filters, marking the default with a star.
func FormatSavedFilters(list []domain.SavedFilter) string {
	if len(list) == 0 {
		return Dim("No saved filters.") + "\n"
	}
	headers := []string{"", "ID", "Name", "Filters", "Created"}
	rows := make([][]string, 0, len(list))
	for _, sf := range list {
		mark := ""
		if sf.IsDefault {
			mark = StyleYellow.Render("★")
		}
		rows = append(rows, []string{
			mark,
			Dim(shortID(sf.ID)),
			sf.Name,
			sf.Describe(),
			humanize.Time(sf.CreatedAt),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSavedFilter shows one saved filter in detail.
func FormatSavedFilter(sf domain.SavedFilter) string {
	f := sf.Filters
	var b strings.Builder
	line := func(k, v string) { fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-12s", k)), v) }
	line("ID", sf.ID)
	line("Name", sf.Name)
	line("Default", fmt.Sprintf("%t", sf.IsDefault))
	line("Created", sf.CreatedAt.Format("2006-01-02 15:04")+" "+Dim("("+humanize.Time(sf.CreatedAt)+")"))
	line("Departments", joinOrAll(f.Departments))
	line("Regions", joinOrAll(f.Regions))
	line("Statuses", joinOrAll(f.Statuses))
	line("Date", string(f.DatePreset))
	line("Search", fmt.Sprintf("%q", f.Search))
	line("Max risk", formatValue(f.MaxRisk))
	line("Min reward", formatValue(f.MinReward))
	return RenderBox(sf.Name, strings.TrimRight(b.String(), "\n"))
}

func joinOrAll[T ~string](set []T) string {
	if len(set) == 0 {
		return Dim("all")
	}
	out := make([]string, len(set))
	for i, v := range set {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
