package render

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/vista/internal/insight"
)

type svgCanvas struct {
	b strings.Builder
}

// SVG renders view as a standalone SVG document.
func SVG(view insight.ChartView, width, height int) []byte {
	c := &svgCanvas{}
	fmt.Fprintf(&c.b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif">`,
		width, height, width, height)
	c.b.WriteByte('\n')
	draw(c, view, float64(width), float64(height))
	c.b.WriteString("</svg>\n")
	return []byte(c.b.String())
}

func (c *svgCanvas) Rect(x, y, w, h float64, fill string, opacity float64) {
	fmt.Fprintf(&c.b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"%s/>`+"\n",
		num(x), num(y), num(math.Max(w, 0)), num(math.Max(h, 0)), attr(fill), opacityAttr("fill-opacity", opacity))
}

func (c *svgCanvas) Line(a, b vec, stroke string, width float64, dashed bool) {
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(&c.b, `<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"%s/>`+"\n",
		num(a.X), num(a.Y), num(b.X), num(b.Y), attr(stroke), num(width), dash)
}

func (c *svgCanvas) Circle(p vec, r float64, fill string) {
	fmt.Fprintf(&c.b, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n", num(p.X), num(p.Y), num(r), attr(fill))
}

func (c *svgCanvas) Polygon(pts []vec, stroke, fill string, opacity float64) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = num(p.X) + "," + num(p.Y)
	}
	if fill == "" {
		fill = "none"
	}
	fmt.Fprintf(&c.b, `<polygon points="%s" stroke="%s" fill="%s"%s/>`+"\n",
		strings.Join(coords, " "), attr(stroke), attr(fill), opacityAttr("fill-opacity", opacity))
}

func (c *svgCanvas) Wedge(p vec, inner, outer, from, to float64, fill string) {
	if to-from >= 2*math.Pi-1e-9 {
		// A full ring cannot be drawn as one arc.
		mid := from + math.Pi
		c.Wedge(p, inner, outer, from, mid, fill)
		c.Wedge(p, inner, outer, mid, to, fill)
		return
	}
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	o1 := polar(p, outer, from)
	o2 := polar(p, outer, to)
	i2 := polar(p, inner, to)
	i1 := polar(p, inner, from)
	fmt.Fprintf(&c.b, `<path d="M%s %s A%s %s 0 %d 1 %s %s L%s %s A%s %s 0 %d 0 %s %s Z" fill="%s"/>`+"\n",
		num(o1.X), num(o1.Y), num(outer), num(outer), large, num(o2.X), num(o2.Y),
		num(i2.X), num(i2.Y), num(inner), num(inner), large, num(i1.X), num(i1.Y), attr(fill))
}

func (c *svgCanvas) Text(at vec, s, color, anchor string, size float64) {
	fmt.Fprintf(&c.b, `<text x="%s" y="%s" fill="%s" font-size="%s" text-anchor="%s">%s</text>`+"\n",
		num(at.X), num(at.Y), attr(color), num(size), attr(anchor), html.EscapeString(s))
}

func polar(c vec, r, a float64) vec {
	return vec{c.X + r*math.Cos(a), c.Y + r*math.Sin(a)}
}

func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func attr(s string) string {
	return html.EscapeString(s)
}

func opacityAttr(name string, v float64) string {
	if v <= 0 || v >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, num(v))
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
