package render

import (
	"fmt"

	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/insight"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 450
)

// Snapshotter renders views on demand for image exports.
type Snapshotter struct {
	Width  int
	Height int
}

// NewSnapshotter returns a snapshotter with the default page size.
func NewSnapshotter() *Snapshotter {
	return &Snapshotter{Width: DefaultWidth, Height: DefaultHeight}
}

func (s *Snapshotter) Snapshot(view insight.ChartView, f export.Format) ([]byte, error) {
	w, h := s.Width, s.Height
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("page %dx%d: %w", w, h, export.ErrSnapshotUnavailable)
	}
	switch f {
	case export.FormatSVG:
		return SVG(view, w, h), nil
	case export.FormatPNG:
		return PNG(view, w, h)
	}
	return nil, fmt.Errorf("%s: %w", f, export.ErrSnapshotUnavailable)
}
