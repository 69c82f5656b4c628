// Package insight derives the eight dashboard views from a filtered record
// set. Each view builds one intermediate aggregation and projects it twice:
// into a Series for the renderer and into a Table for export. The two
// projections never recompute anything on their own.
package insight

type ViewID string

const (
	ViewWorkflowStatus    ViewID = "workflow-status"
	ViewWorkloadDept      ViewID = "workload-dept"
	ViewBudgetTrend       ViewID = "budget-trend"
	ViewDelayAnalysis     ViewID = "delay-analysis"
	ViewRiskReward        ViewID = "risk-reward"
	ViewEfficiencyHeatmap ViewID = "efficiency-heatmap"
	ViewResourceRadar     ViewID = "resource-radar"
	ViewTaskPhase         ViewID = "task-phase"
)

// Views lists every view in dashboard order.
var Views = []ViewID{
	ViewWorkflowStatus,
	ViewWorkloadDept,
	ViewBudgetTrend,
	ViewDelayAnalysis,
	ViewRiskReward,
	ViewEfficiencyHeatmap,
	ViewResourceRadar,
	ViewTaskPhase,
}

// ChartView pairs the renderer input with its tabular projection.
type ChartView struct {
	ID     ViewID `json:"id"`
	Title  string `json:"title"`
	Series Series `json:"series"`
	Table  Table  `json:"table"`
}

// Table is the renderer-agnostic projection used for export. Every row has
// exactly len(Headers) cells. Cells hold string, int or float64 values, or
// nil for an intentionally empty cell.
type Table struct {
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

type ChartKind string

const (
	KindDonut   ChartKind = "donut"
	KindBar     ChartKind = "bar"
	KindLine    ChartKind = "line"
	KindScatter ChartKind = "scatter"
	KindHeatmap ChartKind = "heatmap"
	KindRadar   ChartKind = "radar"
	KindStacked ChartKind = "stacked-bar"
)

// Series describes how to draw one chart. Which fields are populated depends
// on Kind:
//
//	donut, bar, line, radar, stacked-bar: Categories + Datasets
//	scatter:                              Points
//	heatmap:                              Categories (x), Rows (y), Cells
type Series struct {
	Kind       ChartKind  `json:"kind"`
	Categories []string   `json:"categories,omitempty"`
	Rows       []string   `json:"rows,omitempty"`
	Datasets   []Dataset  `json:"datasets,omitempty"`
	Points     []Point    `json:"points,omitempty"`
	Cells      []HeatCell `json:"cells,omitempty"`
	// Colors holds one color per category for the status donut, or the
	// low-to-high gradient stops for the heatmap.
	Colors []string `json:"colors,omitempty"`
	// Max is the value-axis ceiling when it is fixed (percent scales).
	Max        float64 `json:"max,omitempty"`
	Text       string  `json:"text"`
	Grid       string  `json:"grid"`
	Background string  `json:"background"`
}

// Dataset is one named line, bar group or radar polygon.
type Dataset struct {
	Label  string    `json:"label"`
	Values []float64 `json:"values"`
	// Missing marks positions without a value; nil means every value is set.
	Missing []bool `json:"missing,omitempty"`
	Color   string `json:"color"`
	Dashed  bool   `json:"dashed,omitempty"`
}

// Has reports whether position i carries a value.
func (d Dataset) Has(i int) bool {
	return i < len(d.Values) && (d.Missing == nil || !d.Missing[i])
}

// Point is one scatter marker. Ref is the ID of the record it stands for.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
	Ref   string  `json:"ref"`
	Color string  `json:"color"`
}

// HeatCell is one populated heatmap cell; X indexes Categories, Y indexes Rows.
type HeatCell struct {
	X     int     `json:"x"`
	Y     int     `json:"y"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}
