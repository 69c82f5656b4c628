package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/export"
	"golang.org/x/sync/errgroup"
)

type exportService struct {
	dashboard DashboardService
	exporter  *export.Exporter
	notifier  Notifier
	observer  UseCaseObserver
}

// NewExportService wires the exporter to the dashboard. Failures are both
// returned and reported to notifier; they never touch filters or stored state.
func NewExportService(dashboard DashboardService, exporter *export.Exporter, notifier Notifier, observers ...UseCaseObserver) ExportService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &exportService{
		dashboard: dashboard,
		exporter:  exporter,
		notifier:  notifier,
		observer:  combineObservers(observers),
	}
}

func (s *exportService) Export(ctx context.Context, req ViewRequest, f export.Format) (d export.Download, err error) {
	fields := map[string]any{"view": string(req.View), "format": string(f)}
	defer observe(ctx, s.observer, "export-view", time.Now(), fields, &err)

	d, err = s.export(ctx, req, f)
	if err != nil {
		s.fail(err)
		return export.Download{}, err
	}
	fields["bytes"] = len(d.Content)
	return d, nil
}

func (s *exportService) ExportTo(ctx context.Context, req ViewRequest, f export.Format, sink export.Sink) (string, error) {
	d, err := s.Export(ctx, req, f)
	if err != nil {
		return "", err
	}
	path, err := sink.Save(d)
	if err != nil {
		s.fail(err)
		return "", err
	}
	s.notifier.Notify(Notice{Level: NoticeInfo, Message: "Exported " + path})
	return path, nil
}

func (s *exportService) ExportAll(ctx context.Context, filters domain.Filters, dark bool, f export.Format, sink export.Sink) (paths []string, err error) {
	fields := map[string]any{"format": string(f)}
	defer observe(ctx, s.observer, "export-all", time.Now(), fields, &err)

	views, err := s.dashboard.Views(ctx, filters, dark)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	paths = make([]string, len(views))
	g, gctx := errgroup.WithContext(ctx)
	for i, view := range views {
		g.Go(func() error {
			d, err := s.exporter.Export(gctx, view, f)
			if err != nil {
				return err
			}
			path, err := sink.Save(d)
			if err != nil {
				return err
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.fail(err)
		return nil, err
	}
	fields["files"] = len(paths)
	s.notifier.Notify(Notice{Level: NoticeInfo, Message: fmt.Sprintf("Exported %d views", len(paths))})
	return paths, nil
}

func (s *exportService) export(ctx context.Context, req ViewRequest, f export.Format) (export.Download, error) {
	view, err := s.dashboard.View(ctx, req)
	if err != nil {
		return export.Download{}, err
	}
	return s.exporter.Export(ctx, view, f)
}

func (s *exportService) fail(err error) {
	s.notifier.Notify(Notice{Level: NoticeError, Message: "Export failed: " + err.Error()})
}

