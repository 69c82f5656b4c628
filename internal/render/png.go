package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/vista/internal/insight"
)

// rasterCanvas paints shapes into an RGBA image. Text is skipped: the
// standard library has no font rasterizer.
type rasterCanvas struct {
	img *image.RGBA
}

// PNG renders view as a PNG image.
func PNG(view insight.ChartView, width, height int) ([]byte, error) {
	c := &rasterCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	draw(c, view, float64(width), float64(height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *rasterCanvas) blend(x, y int, col color.RGBA, alpha float64) {
	if !image.Pt(x, y).In(c.img.Rect) {
		return
	}
	if alpha >= 1 {
		c.img.SetRGBA(x, y, col)
		return
	}
	dst := c.img.RGBAAt(x, y)
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*alpha + float64(b)*(1-alpha)) }
	c.img.SetRGBA(x, y, color.RGBA{mix(col.R, dst.R), mix(col.G, dst.G), mix(col.B, dst.B), 255})
}

func (c *rasterCanvas) Rect(x, y, w, h float64, fill string, opacity float64) {
	col := parseHex(fill)
	for py := int(math.Round(y)); py < int(math.Round(y+h)); py++ {
		for px := int(math.Round(x)); px < int(math.Round(x+w)); px++ {
			c.blend(px, py, col, opacity)
		}
	}
}

func (c *rasterCanvas) Line(a, b vec, stroke string, width float64, dashed bool) {
	col := parseHex(stroke)
	length := math.Hypot(b.X-a.X, b.Y-a.Y)
	steps := int(math.Ceil(length))
	half := math.Max(width/2, 0.5)
	for i := 0; i <= steps; i++ {
		if dashed && (i/5)%2 == 1 {
			continue
		}
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		p := vec{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
		c.disc(p, half, col, 1)
	}
}

func (c *rasterCanvas) disc(p vec, r float64, col color.RGBA, alpha float64) {
	for y := int(math.Floor(p.Y - r)); y <= int(math.Ceil(p.Y+r)); y++ {
		for x := int(math.Floor(p.X - r)); x <= int(math.Ceil(p.X+r)); x++ {
			if math.Hypot(float64(x)-p.X, float64(y)-p.Y) <= r {
				c.blend(x, y, col, alpha)
			}
		}
	}
}

func (c *rasterCanvas) Circle(p vec, r float64, fill string) {
	c.disc(p, r, parseHex(fill), 1)
}

func (c *rasterCanvas) Polygon(pts []vec, stroke, fill string, opacity float64) {
	if len(pts) < 3 {
		return
	}
	if fill != "" && opacity > 0 {
		c.fillPolygon(pts, parseHex(fill), opacity)
	}
	if stroke != "" {
		for i := range pts {
			c.Line(pts[i], pts[(i+1)%len(pts)], stroke, 1.5, false)
		}
	}
}

// fillPolygon uses an even-odd scanline fill.
func (c *rasterCanvas) fillPolygon(pts []vec, col color.RGBA, alpha float64) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		fy := float64(y) + 0.5
		var xs []float64
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
				xs = append(xs, a.X+(fy-a.Y)/(b.Y-a.Y)*(b.X-a.X))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i] - 0.5)); x < int(math.Ceil(xs[i+1]-0.5)); x++ {
				c.blend(x, y, col, alpha)
			}
		}
	}
}

func (c *rasterCanvas) Wedge(p vec, inner, outer, from, to float64, fill string) {
	col := parseHex(fill)
	for y := int(p.Y - outer); y <= int(p.Y+outer); y++ {
		for x := int(p.X - outer); x <= int(p.X+outer); x++ {
			dx, dy := float64(x)-p.X, float64(y)-p.Y
			d := math.Hypot(dx, dy)
			if d < inner || d > outer {
				continue
			}
			a := math.Atan2(dy, dx)
			for a < from {
				a += 2 * math.Pi
			}
			if a <= to {
				c.blend(x, y, col, 1)
			}
		}
	}
}

func (c *rasterCanvas) Text(vec, string, string, string, float64) {}

// parseHex reads "#rrggbb" or "#rgb"; anything else is black.
func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
