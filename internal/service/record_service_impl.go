package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/vista/internal/db"
	"github.com/alexanderramin/vista/internal/importer"
	"github.com/alexanderramin/vista/internal/repository"
)

type recordService struct {
	records  repository.RecordRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewRecordService(records repository.RecordRepo, uow db.UnitOfWork, observers ...UseCaseObserver) RecordService {
	return &recordService{
		records:  records,
		uow:      uow,
		observer: combineObservers(observers),
	}
}

func (s *recordService) Import(ctx context.Context, path string, replace bool) (*ImportResult, error) {
	file, err := importer.LoadRecordFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportFile(ctx, file, replace)
}

// ImportFile validates and converts file, then persists it atomically. With
// replace set, the existing portfolio is removed in the same transaction.
func (s *recordService) ImportFile(ctx context.Context, file *importer.RecordFile, replace bool) (result *ImportResult, err error) {
	fields := map[string]any{"replace": replace}
	defer observe(ctx, s.observer, "import-records", time.Now(), fields, &err)

	if errs := importer.ValidateRecordFile(file); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}
	recs, err := importer.Convert(file)
	if err != nil {
		return nil, fmt.Errorf("converting import file: %w", err)
	}

	result = &ImportResult{Imported: len(recs)}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteRecordRepo(tx)
		if replace {
			n, err := txRecords.Count(ctx)
			if err != nil {
				return err
			}
			if err := txRecords.DeleteAll(ctx); err != nil {
				return err
			}
			result.Replaced = n
		}
		if err := txRecords.Insert(ctx, recs); err != nil {
			return err
		}
		total, err := txRecords.Count(ctx)
		if err != nil {
			return err
		}
		result.Total = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["imported"] = result.Imported
	return result, nil
}

func (s *recordService) Count(ctx context.Context) (int, error) {
	return s.records.Count(ctx)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
