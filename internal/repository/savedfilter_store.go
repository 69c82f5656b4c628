package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/vista/internal/domain"
)

// SavedFiltersKey is the key the saved-filter list lives under.
const SavedFiltersKey = "savedFilters"

// KVSavedFilterStore keeps the saved-filter list as one JSON array in a
// KVStore.
type KVSavedFilterStore struct {
	kv  KVStore
	key string
}

// NewKVSavedFilterStore creates a store under SavedFiltersKey.
func NewKVSavedFilterStore(kv KVStore) *KVSavedFilterStore {
	return &KVSavedFilterStore{kv: kv, key: SavedFiltersKey}
}

// Load returns the stored list, or an empty list when nothing has been saved.
// Undecodable data yields ErrMalformedStore.
func (s *KVSavedFilterStore) Load(ctx context.Context) ([]domain.SavedFilter, error) {
	raw, found, err := s.kv.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("loading saved filters: %w", err)
	}
	if !found || raw == "" {
		return []domain.SavedFilter{}, nil
	}
	var out []domain.SavedFilter
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}
	if out == nil {
		out = []domain.SavedFilter{}
	}
	for i := range out {
		out[i].Filters = out[i].Filters.Normalized()
	}
	return out, nil
}

func (s *KVSavedFilterStore) Save(ctx context.Context, filters []domain.SavedFilter) error {
	if filters == nil {
		filters = []domain.SavedFilter{}
	}
	b, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("encoding saved filters: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, string(b)); err != nil {
		return fmt.Errorf("saving saved filters: %w", err)
	}
	return nil
}
