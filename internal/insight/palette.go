package insight

import "github.com/alexanderramin/vista/internal/domain"

// Palette holds the colors a view may stamp onto its series. Tables never
// read it.
type Palette struct {
	Dark       bool
	Text       string
	Subtext    string
	Background string
	Grid       string
	Primary    []string
	Success    string
	Warning    string
	Danger     string
	// Heat is the heatmap gradient from 0 to 100.
	Heat []string
}

var primary = []string{"#0ea5e9", "#8b5cf6", "#ec4899", "#f59e0b", "#10b981", "#6366f1"}

func LightPalette() Palette {
	return Palette{
		Text:       "#0f172a",
		Subtext:    "#475569",
		Background: "#ffffff",
		Grid:       "#e2e8f0",
		Primary:    primary,
		Success:    "#10b981",
		Warning:    "#f59e0b",
		Danger:     "#ef4444",
		Heat:       []string{"#ef4444", "#f59e0b", "#fbbf24", "#a3e635", "#10b981"},
	}
}

func DarkPalette() Palette {
	p := LightPalette()
	p.Dark = true
	p.Text = "#f1f5f9"
	p.Subtext = "#cbd5e1"
	p.Background = "#1e293b"
	p.Grid = "#334155"
	return p
}

// PaletteFor picks the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette()
	}
	return LightPalette()
}

// Cycle returns the i-th primary color, wrapping around.
func (p Palette) Cycle(i int) string {
	return p.Primary[i%len(p.Primary)]
}

// StatusColor maps a status to its semantic color.
func (p Palette) StatusColor(s domain.ProjectStatus) string {
	switch s {
	case domain.StatusOnTrack:
		return p.Success
	case domain.StatusDelayed:
		return p.Warning
	case domain.StatusBlocked:
		return p.Danger
	}
	return p.Primary[0]
}

// RiskColor grades a risk score: above 70 danger, above 40 warning.
func (p Palette) RiskColor(risk float64) string {
	switch {
	case risk > 70:
		return p.Danger
	case risk > 40:
		return p.Warning
	}
	return p.Success
}

func (p Palette) decorate(s Series) Series {
	s.Text = p.Text
	s.Grid = p.Grid
	s.Background = p.Background
	return s
}
