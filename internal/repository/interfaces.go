package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/vista/internal/domain"
)

// ErrMalformedStore is returned when persisted saved-filter data cannot be
// decoded.
var ErrMalformedStore = errors.New("malformed saved filter data")

// RecordRepo persists the portfolio. List returns records in import order.
type RecordRepo interface {
	Insert(ctx context.Context, records []domain.ProjectRecord) error
	DeleteAll(ctx context.Context) error
	List(ctx context.Context) ([]domain.ProjectRecord, error)
	Count(ctx context.Context) (int, error)
}

// KVStore is a text key-value medium. Get reports found=false for a missing
// key rather than an error.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// SavedFilterStore loads and saves the whole saved-filter list at once.
type SavedFilterStore interface {
	Load(ctx context.Context) ([]domain.SavedFilter, error)
	Save(ctx context.Context, filters []domain.SavedFilter) error
}
