package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type savedFilterService struct {
	mu       sync.Mutex
	store    repository.SavedFilterStore
	logger   zerolog.Logger
	now      func() time.Time
	observer UseCaseObserver
}

// NewSavedFilterService manages the saved-filter list in store. Every
// load-modify-save cycle runs under one mutex.
func NewSavedFilterService(store repository.SavedFilterStore, logger zerolog.Logger, observers ...UseCaseObserver) SavedFilterService {
	return &savedFilterService{
		store:    store,
		logger:   logger,
		now:      time.Now,
		observer: combineObservers(observers),
	}
}

func (s *savedFilterService) List(ctx context.Context) ([]domain.SavedFilter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

func (s *savedFilterService) Get(ctx context.Context, idOrName string) (domain.SavedFilter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return domain.SavedFilter{}, err
	}
	if i := indexByID(list, idOrName); i >= 0 {
		return list[i], nil
	}
	for _, sf := range list {
		if strings.EqualFold(sf.Name, strings.TrimSpace(idOrName)) {
			return sf, nil
		}
	}
	return domain.SavedFilter{}, fmt.Errorf("%w: %q", ErrFilterNotFound, idOrName)
}

func (s *savedFilterService) Default(ctx context.Context) (domain.SavedFilter, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return domain.SavedFilter{}, false, err
	}
	for _, sf := range list {
		if sf.IsDefault {
			return sf, true, nil
		}
	}
	return domain.SavedFilter{}, false, nil
}

// Save appends a snapshot of f under name. The first filter saved into an
// empty store becomes the default.
func (s *savedFilterService) Save(ctx context.Context, name string, f domain.Filters) (saved domain.SavedFilter, err error) {
	fields := map[string]any{"name": name}
	defer observe(ctx, s.observer, "save-filter", time.Now(), fields, &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return domain.SavedFilter{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return domain.SavedFilter{}, err
	}
	saved = domain.SavedFilter{
		ID:        uuid.New().String(),
		Name:      name,
		Filters:   f.Normalized(),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
		IsDefault: len(list) == 0,
	}
	fields["id"] = saved.ID
	if err := s.store.Save(ctx, append(list, saved)); err != nil {
		return domain.SavedFilter{}, err
	}
	return saved, nil
}

func (s *savedFilterService) SetDefault(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "set-default-filter", time.Now(), map[string]any{"id": id}, &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexByID(list, id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrFilterNotFound, id)
	}
	for j := range list {
		list[j].IsDefault = j == i
	}
	return s.store.Save(ctx, list)
}

// Delete removes a filter. When it was the default, the first remaining
// filter is promoted.
func (s *savedFilterService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-filter", time.Now(), map[string]any{"id": id}, &err)

	s.mu.Lock()
	defer s.mu.Unlock()
	list, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexByID(list, id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrFilterNotFound, id)
	}
	wasDefault := list[i].IsDefault
	list = append(list[:i:i], list[i+1:]...)
	if wasDefault && len(list) > 0 {
		list[0].IsDefault = true
	}
	return s.store.Save(ctx, list)
}

// load reads the store, treating undecodable data as an empty list.
func (s *savedFilterService) load(ctx context.Context) ([]domain.SavedFilter, error) {
	list, err := s.store.Load(ctx)
	if errors.Is(err, repository.ErrMalformedStore) {
		s.logger.Warn().Err(err).Msg("ignoring unreadable saved filters")
		return []domain.SavedFilter{}, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func indexByID(list []domain.SavedFilter, id string) int {
	for i, sf := range list {
		if sf.ID == id {
			return i
		}
	}
	return -1
}
