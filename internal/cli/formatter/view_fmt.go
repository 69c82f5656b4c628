package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/charmbracelet/lipgloss"
)

// DefaultChartWidth is used when the terminal width is unknown.
const DefaultChartWidth = 80

// FormatView renders a view as a terminal sketch of its chart followed by its
// export table.
func FormatView(view insight.ChartView, width int) string {
	var b strings.Builder
	b.WriteString(Header(view.Title) + "\n\n")
	if sketch := FormatChart(view.Series, width); sketch != "" {
		b.WriteString(sketch + "\n")
	}
	b.WriteString(FormatTable(view.Table))
	return b.String()
}

// FormatTable renders an export table with cells formatted as in CSV output.
func FormatTable(t insight.Table) string {
	if len(t.Rows) == 0 {
		return RenderTable(t.Headers, nil) + Dim("No data for the current filters.") + "\n"
	}
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = export.FormatCell(c)
		}
		rows[i] = cells
	}
	return RenderTable(t.Headers, rows)
}

// FormatChart draws a rough text version of a series.
func FormatChart(s insight.Series, width int) string {
	if width <= 0 {
		width = DefaultChartWidth
	}
	switch s.Kind {
	case insight.KindScatter:
		return scatterPlot(s, min(width-8, 60), 12)
	case insight.KindHeatmap:
		return heatGrid(s)
	default:
		return barChart(s, width)
	}
}

func barChart(s insight.Series, width int) string {
	if len(s.Categories) == 0 {
		return ""
	}
	labelW := 0
	for _, c := range s.Categories {
		labelW = max(labelW, lipgloss.Width(c))
	}
	ceiling := s.Max
	if ceiling <= 0 {
		for _, d := range s.Datasets {
			for i, v := range d.Values {
				if d.Has(i) {
					ceiling = math.Max(ceiling, v)
				}
			}
		}
	}
	barW := max(width-labelW-14, 10)

	var b strings.Builder
	for di, d := range s.Datasets {
		if len(s.Datasets) > 1 {
			if di > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Bold(d.Label) + "\n")
		}
		for i, c := range s.Categories {
			color := d.Color
			if s.Kind == insight.KindDonut && i < len(s.Colors) {
				color = s.Colors[i]
			}
			label := c + strings.Repeat(" ", labelW-lipgloss.Width(c))
			if !d.Has(i) {
				fmt.Fprintf(&b, "  %s  %s\n", label, Dim("–"))
				continue
			}
			v := d.Values[i]
			n := 0
			if ceiling > 0 {
				n = int(math.Round(v / ceiling * float64(barW)))
			}
			glyph := "█"
			if d.Dashed {
				glyph = "▒"
			}
			bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat(glyph, max(n, 0)))
			fmt.Fprintf(&b, "  %s  %s %s\n", label, bar, Dim(formatValue(v)))
		}
	}
	return b.String()
}

// scatterPlot places points on a 0..100 by 0..100 grid, x to the right and y
// upwards.
func scatterPlot(s insight.Series, w, h int) string {
	if len(s.Points) == 0 {
		return ""
	}
	w = max(w, 10)
	grid := make([][]string, h)
	for y := range grid {
		grid[y] = make([]string, w)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range s.Points {
		x := clampIndex(p.X/100*float64(w-1), w)
		y := h - 1 - clampIndex(p.Y/100*float64(h-1), h)
		grid[y][x] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Render("●")
	}
	var b strings.Builder
	for _, row := range grid {
		b.WriteString("  " + Dim("│") + strings.Join(row, "") + "\n")
	}
	b.WriteString("  " + Dim("└"+strings.Repeat("─", w)) + "\n")
	return b.String()
}

var shades = []string{"░", "▒", "▓", "█"}

// heatGrid renders one row per y label with a shaded block per populated
// cell. Empty cells stay blank.
func heatGrid(s insight.Series) string {
	if len(s.Rows) == 0 || len(s.Categories) == 0 {
		return ""
	}
	labelW := 0
	for _, r := range s.Rows {
		labelW = max(labelW, lipgloss.Width(r))
	}
	cells := make(map[[2]int]insight.HeatCell, len(s.Cells))
	for _, c := range s.Cells {
		cells[[2]int{c.X, c.Y}] = c
	}

	const cellW = 6
	var b strings.Builder
	b.WriteString("  " + strings.Repeat(" ", labelW))
	for _, c := range s.Categories {
		b.WriteString(" " + Dim(abbrev(c, cellW)))
	}
	b.WriteString("\n")
	for y, r := range s.Rows {
		b.WriteString("  " + r + strings.Repeat(" ", labelW-lipgloss.Width(r)))
		for x := range s.Categories {
			c, ok := cells[[2]int{x, y}]
			if !ok {
				b.WriteString(" " + strings.Repeat(" ", cellW))
				continue
			}
			shade := shades[clampIndex(c.Value/100*float64(len(shades)), len(shades))]
			b.WriteString(" " + strings.Repeat(shade, 2) + fmt.Sprintf("%4.0f", c.Value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func abbrev(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		r = r[:w]
	}
	return string(r) + strings.Repeat(" ", w-len(r))
}

func clampIndex(v float64, n int) int {
	i := int(math.Round(v))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func formatValue(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
