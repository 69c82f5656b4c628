package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/export"
	"github.com/alexanderramin/vista/internal/importer"
	"github.com/alexanderramin/vista/internal/insight"
)

var (
	ErrFilterNotFound = errors.New("saved filter not found")
	ErrEmptyName      = errors.New("saved filter name is required")
)

// ViewRequest selects one view of the filtered portfolio.
type ViewRequest struct {
	View    insight.ViewID
	Filters domain.Filters
	Dark    bool
}

type DashboardService interface {
	// Records returns the whole portfolio in import order.
	Records(ctx context.Context) ([]domain.ProjectRecord, error)
	Filtered(ctx context.Context, f domain.Filters) ([]domain.ProjectRecord, error)
	View(ctx context.Context, req ViewRequest) (insight.ChartView, error)
	// Views builds all eight views from one filtered snapshot.
	Views(ctx context.Context, f domain.Filters, dark bool) ([]insight.ChartView, error)
}

type ExportService interface {
	Export(ctx context.Context, req ViewRequest, f export.Format) (export.Download, error)
	// ExportTo exports one view and hands it to sink, returning where it went.
	ExportTo(ctx context.Context, req ViewRequest, f export.Format, sink export.Sink) (string, error)
	// ExportAll writes every view concurrently.
	ExportAll(ctx context.Context, filters domain.Filters, dark bool, f export.Format, sink export.Sink) ([]string, error)
}

type SavedFilterService interface {
	List(ctx context.Context) ([]domain.SavedFilter, error)
	// Get resolves an ID, or failing that a case-insensitive name.
	Get(ctx context.Context, idOrName string) (domain.SavedFilter, error)
	Default(ctx context.Context) (domain.SavedFilter, bool, error)
	Save(ctx context.Context, name string, f domain.Filters) (domain.SavedFilter, error)
	SetDefault(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// ImportResult holds the outcome of a record import.
type ImportResult struct {
	Imported int
	Replaced int
	Total    int
}

type RecordService interface {
	Import(ctx context.Context, path string, replace bool) (*ImportResult, error)
	ImportFile(ctx context.Context, file *importer.RecordFile, replace bool) (*ImportResult, error)
	Count(ctx context.Context) (int, error)
}
