package export

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/vista/internal/insight"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// Formats lists the formats in menu order.
var Formats = []Format{FormatCSV, FormatJSON, FormatPNG, FormatSVG}

var (
	ErrUnknownFormat       = errors.New("unknown export format")
	ErrSnapshotUnavailable = errors.New("chart snapshot unavailable")
)

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatCSV, FormatJSON, FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want csv, json, png or svg)", ErrUnknownFormat, s)
}

// MimeType returns the content type for f.
func (f Format) MimeType() string {
	switch f {
	case FormatCSV:
		return "text/csv;charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatPNG:
		return "image/png"
	case FormatSVG:
		return "image/svg+xml;charset=utf-8"
	}
	return "application/octet-stream"
}

// IsImage reports whether f is produced by a renderer snapshot.
func (f Format) IsImage() bool {
	return f == FormatPNG || f == FormatSVG
}

// Download is a finished export: what a browser would save.
type Download struct {
	Filename string
	MimeType string
	Content  []byte
}

// Snapshotter renders a series to image bytes. Implementations return
// ErrSnapshotUnavailable when they cannot produce the requested format.
type Snapshotter interface {
	Snapshot(view insight.ChartView, f Format) ([]byte, error)
}

// Exporter turns views into downloads.
type Exporter struct {
	snap Snapshotter
	now  func() time.Time
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithNow overrides the clock used for exportedAt and the filename stamp.
func WithNow(now func() time.Time) ExporterOption {
	return func(e *Exporter) { e.now = now }
}

// NewExporter creates an exporter. snap may be nil, in which case image
// formats fail with ErrSnapshotUnavailable.
func NewExporter(snap Snapshotter, opts ...ExporterOption) *Exporter {
	e := &Exporter{snap: snap, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export serializes view in format f.
func (e *Exporter) Export(ctx context.Context, view insight.ChartView, f Format) (Download, error) {
	if err := ctx.Err(); err != nil {
		return Download{}, err
	}
	at := e.now()
	d := Download{
		Filename: Filename(view.Table.Title, f, at),
		MimeType: f.MimeType(),
	}

	switch f {
	case FormatCSV:
		d.Content = []byte(ToCSV(view.Table))
	case FormatJSON:
		s, err := ToJSON(view.Table, at)
		if err != nil {
			return Download{}, fmt.Errorf("exporting %s as json: %w", view.ID, err)
		}
		d.Content = []byte(s)
	case FormatPNG, FormatSVG:
		if e.snap == nil {
			return Download{}, fmt.Errorf("exporting %s as %s: %w", view.ID, f, ErrSnapshotUnavailable)
		}
		b, err := e.snap.Snapshot(view, f)
		if err != nil {
			return Download{}, fmt.Errorf("exporting %s as %s: %w", view.ID, f, err)
		}
		if len(b) == 0 {
			return Download{}, fmt.Errorf("exporting %s as %s: %w", view.ID, f, ErrSnapshotUnavailable)
		}
		d.Content = b
	default:
		return Download{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return d, nil
}
