package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/filter"
	"github.com/alexanderramin/vista/internal/insight"
	"github.com/alexanderramin/vista/internal/repository"
)

type dashboardService struct {
	records  repository.RecordRepo
	now      func() time.Time
	observer UseCaseObserver
}

// NewDashboardService builds views over the records in repo. now is the
// clock used for date-preset windows; nil means time.Now.
func NewDashboardService(records repository.RecordRepo, now func() time.Time, observers ...UseCaseObserver) DashboardService {
	if now == nil {
		now = time.Now
	}
	return &dashboardService{
		records:  records,
		now:      now,
		observer: combineObservers(observers),
	}
}

func (s *dashboardService) Records(ctx context.Context) ([]domain.ProjectRecord, error) {
	recs, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading records: %w", err)
	}
	return recs, nil
}

func (s *dashboardService) Filtered(ctx context.Context, f domain.Filters) ([]domain.ProjectRecord, error) {
	recs, err := s.Records(ctx)
	if err != nil {
		return nil, err
	}
	return filter.ApplyAt(recs, f.Normalized(), s.now()), nil
}

func (s *dashboardService) View(ctx context.Context, req ViewRequest) (view insight.ChartView, err error) {
	fields := map[string]any{"view": string(req.View)}
	defer observe(ctx, s.observer, "build-view", time.Now(), fields, &err)

	recs, err := s.Filtered(ctx, req.Filters)
	if err != nil {
		return insight.ChartView{}, err
	}
	fields["records"] = len(recs)
	return insight.Build(req.View, recs, insight.PaletteFor(req.Dark))
}

func (s *dashboardService) Views(ctx context.Context, f domain.Filters, dark bool) (views []insight.ChartView, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "build-views", time.Now(), fields, &err)

	recs, err := s.Filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	fields["records"] = len(recs)
	return insight.BuildAll(recs, insight.PaletteFor(dark)), nil
}
