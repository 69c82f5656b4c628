// Package render draws a view's series as SVG or PNG. One layout pass emits
// primitive shapes to a canvas; the SVG and PNG backends only differ in how
// they put those shapes on the page.
package render

import (
	"math"

	"github.com/alexanderramin/vista/internal/insight"
)

type vec struct{ X, Y float64 }

// canvas receives shapes in painting order. Coordinates are pixels with the
// origin at the top left.
type canvas interface {
	Rect(x, y, w, h float64, fill string, opacity float64)
	Line(a, b vec, stroke string, width float64, dashed bool)
	Circle(c vec, r float64, fill string)
	Polygon(pts []vec, stroke, fill string, opacity float64)
	Wedge(c vec, inner, outer, from, to float64, fill string)
	Text(at vec, s, color, anchor string, size float64)
}

const (
	marginLeft   = 56.0
	marginRight  = 24.0
	marginTop    = 44.0
	marginBottom = 56.0
	labelMax     = 14
)

type plot struct {
	left, top, right, bottom float64
}

func (p plot) width() float64  { return p.right - p.left }
func (p plot) height() float64 { return p.bottom - p.top }

// draw lays out view on a w×h page.
func draw(c canvas, view insight.ChartView, w, h float64) {
	s := view.Series
	c.Rect(0, 0, w, h, orDefault(s.Background, "#ffffff"), 1)
	c.Text(vec{w / 2, 26}, view.Title, s.Text, "middle", 16)

	area := plot{left: marginLeft, top: marginTop, right: w - marginRight, bottom: h - marginBottom}
	switch s.Kind {
	case insight.KindDonut:
		drawDonut(c, s, area)
	case insight.KindBar:
		drawBars(c, s, area, false)
	case insight.KindStacked:
		drawBars(c, s, area, true)
	case insight.KindLine:
		drawLines(c, s, area)
	case insight.KindScatter:
		drawScatter(c, s, area)
	case insight.KindHeatmap:
		drawHeatmap(c, s, area)
	case insight.KindRadar:
		drawRadar(c, s, area)
	}
}

func drawAxes(c canvas, s insight.Series, area plot, top float64) {
	const ticks = 4
	for i := 0; i <= ticks; i++ {
		y := area.bottom - area.height()*float64(i)/ticks
		c.Line(vec{area.left, y}, vec{area.right, y}, s.Grid, 1, false)
		c.Text(vec{area.left - 6, y + 4}, trimFloat(top*float64(i)/ticks), s.Text, "end", 10)
	}
}

func drawCategoryLabels(c canvas, s insight.Series, area plot) {
	n := len(s.Categories)
	if n == 0 {
		return
	}
	slot := area.width() / float64(n)
	for i, cat := range s.Categories {
		c.Text(vec{area.left + slot*(float64(i)+0.5), area.bottom + 16}, truncate(cat, labelMax), s.Text, "middle", 10)
	}
}

func drawBars(c canvas, s insight.Series, area plot, stacked bool) {
	n := len(s.Categories)
	top := niceCeil(valueMax(s, stacked))
	drawAxes(c, s, area, top)
	drawCategoryLabels(c, s, area)
	if n == 0 {
		return
	}
	slot := area.width() / float64(n)
	barW := slot * 0.6
	for i := 0; i < n; i++ {
		x := area.left + slot*float64(i) + (slot-barW)/2
		base := area.bottom
		for j, ds := range s.Datasets {
			if !ds.Has(i) {
				continue
			}
			bh := ds.Values[i] / top * area.height()
			if stacked {
				c.Rect(x, base-bh, barW, bh, ds.Color, 1)
				base -= bh
				continue
			}
			w := barW / float64(len(s.Datasets))
			c.Rect(x+w*float64(j), area.bottom-bh, w, bh, ds.Color, 1)
		}
	}
	drawLegend(c, s, area)
}

func drawLines(c canvas, s insight.Series, area plot) {
	n := len(s.Categories)
	top := niceCeil(valueMax(s, false))
	drawAxes(c, s, area, top)
	drawCategoryLabels(c, s, area)
	if n == 0 {
		return
	}
	slot := area.width() / float64(n)
	at := func(i int, v float64) vec {
		return vec{area.left + slot*(float64(i)+0.5), area.bottom - v/top*area.height()}
	}
	for _, ds := range s.Datasets {
		for i := 0; i < n; i++ {
			if !ds.Has(i) {
				continue
			}
			p := at(i, ds.Values[i])
			if i > 0 && ds.Has(i-1) {
				c.Line(at(i-1, ds.Values[i-1]), p, ds.Color, 2, ds.Dashed)
			}
			c.Circle(p, 3, ds.Color)
		}
	}
	drawLegend(c, s, area)
}

func drawScatter(c canvas, s insight.Series, area plot) {
	top := orMax(s.Max, 100)
	drawAxes(c, s, area, top)
	for _, pt := range s.Points {
		p := vec{area.left + pt.X/top*area.width(), area.bottom - pt.Y/top*area.height()}
		c.Circle(p, 5, pt.Color)
	}
	c.Text(vec{(area.left + area.right) / 2, area.bottom + 34}, "Risk Score", s.Text, "middle", 11)
	c.Text(vec{area.left, area.top - 8}, "Reward Score", s.Text, "start", 11)
}

func drawHeatmap(c canvas, s insight.Series, area plot) {
	cols, rows := len(s.Categories), len(s.Rows)
	if cols == 0 || rows == 0 {
		return
	}
	cw, rh := area.width()/float64(cols), area.height()/float64(rows)
	for _, cell := range s.Cells {
		x := area.left + cw*float64(cell.X)
		y := area.top + rh*float64(cell.Y)
		c.Rect(x+1, y+1, cw-2, rh-2, gradient(s.Colors, cell.Value/orMax(s.Max, 100)), 1)
		c.Text(vec{x + cw/2, y + rh/2 + 4}, trimFloat(cell.Value), s.Text, "middle", 11)
	}
	for i, cat := range s.Categories {
		c.Text(vec{area.left + cw*(float64(i)+0.5), area.bottom + 16}, truncate(cat, labelMax), s.Text, "middle", 10)
	}
	for j, r := range s.Rows {
		c.Text(vec{area.left - 6, area.top + rh*(float64(j)+0.5) + 4}, truncate(r, 8), s.Text, "end", 10)
	}
}

func drawDonut(c canvas, s insight.Series, area plot) {
	if len(s.Datasets) == 0 {
		return
	}
	counts := s.Datasets[0].Values
	var total float64
	for _, v := range counts {
		total += v
	}
	center := vec{(area.left + area.right) / 2, (area.top + area.bottom) / 2}
	outer := math.Min(area.width(), area.height()) / 2
	inner := outer * 0.55
	if total == 0 {
		return
	}
	angle := -math.Pi / 2
	for i, v := range counts {
		sweep := v / total * 2 * math.Pi
		c.Wedge(center, inner, outer, angle, angle+sweep, colorAt(s.Colors, i))
		angle += sweep
	}
	for i, cat := range s.Categories {
		y := area.top + 14*float64(i)
		c.Rect(area.right-110, y-8, 8, 8, colorAt(s.Colors, i), 1)
		c.Text(vec{area.right - 98, y}, cat, s.Text, "start", 10)
	}
}

func drawRadar(c canvas, s insight.Series, area plot) {
	axes := len(s.Categories)
	if axes < 3 {
		return
	}
	top := orMax(s.Max, 100)
	center := vec{(area.left + area.right) / 2, (area.top + area.bottom) / 2}
	radius := math.Min(area.width(), area.height()) / 2
	spoke := func(i int, frac float64) vec {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(axes)
		return vec{center.X + radius*frac*math.Cos(a), center.Y + radius*frac*math.Sin(a)}
	}
	for ring := 1; ring <= 4; ring++ {
		pts := make([]vec, axes)
		for i := range pts {
			pts[i] = spoke(i, float64(ring)/4)
		}
		c.Polygon(pts, s.Grid, "", 0)
	}
	for i, name := range s.Categories {
		c.Line(center, spoke(i, 1), s.Grid, 1, false)
		c.Text(spoke(i, 1.12), name, s.Text, "middle", 10)
	}
	for _, ds := range s.Datasets {
		pts := make([]vec, axes)
		for i := range pts {
			var v float64
			if ds.Has(i) {
				v = ds.Values[i]
			}
			pts[i] = spoke(i, clamp01(v/top))
		}
		c.Polygon(pts, ds.Color, ds.Color, 0.3)
	}
	drawLegend(c, s, area)
}

func drawLegend(c canvas, s insight.Series, area plot) {
	x := area.left
	for _, ds := range s.Datasets {
		c.Rect(x, area.bottom+34, 10, 10, ds.Color, 1)
		c.Text(vec{x + 14, area.bottom + 43}, truncate(ds.Label, labelMax), s.Text, "start", 10)
		x += 24 + 7*float64(min(len(ds.Label), labelMax))
	}
}

func valueMax(s insight.Series, stacked bool) float64 {
	if s.Max > 0 {
		return s.Max
	}
	var top float64
	for i := range s.Categories {
		var sum float64
		for _, ds := range s.Datasets {
			if !ds.Has(i) {
				continue
			}
			if stacked {
				sum += ds.Values[i]
			} else {
				sum = math.Max(sum, ds.Values[i])
			}
		}
		top = math.Max(top, sum)
	}
	return top
}

// niceCeil rounds v up to 1, 2, 2.5 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 1
	}
	exp := math.Pow(10, math.Floor(math.Log10(v)))
	for _, m := range []float64{1, 2, 2.5, 5, 10} {
		if v <= m*exp {
			return m * exp
		}
	}
	return 10 * exp
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func orMax(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func colorAt(colors []string, i int) string {
	if len(colors) == 0 {
		return "#0ea5e9"
	}
	return colors[i%len(colors)]
}

// gradient picks the stop nearest to frac in [0,1].
func gradient(stops []string, frac float64) string {
	if len(stops) == 0 {
		return "#0ea5e9"
	}
	i := int(math.Round(clamp01(frac) * float64(len(stops)-1)))
	return stops[i]
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return formatInt(int64(v))
	}
	return formatFloat(v)
}
