package filter

import (
	"sync"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
)

// Session owns the interactive filter state of one dashboard: the effective
// Filters, the raw search input, the debounced search scheduler and the
// dropdown menus. Every change to the effective filters is reported to
// onChange with an independent snapshot.
type Session struct {
	mu          sync.Mutex
	filters     domain.Filters
	dropdown    Dropdown
	searchInput string
	quiet       time.Duration
	clock       Clock
	search      *Scheduler[string]
	onChange    func(domain.Filters)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock injects the clock used by the search debounce.
func WithClock(c Clock) SessionOption {
	return func(s *Session) { s.clock = c }
}

// WithQuietPeriod overrides DefaultSearchQuiet.
func WithQuietPeriod(d time.Duration) SessionOption {
	return func(s *Session) { s.quiet = d }
}

// WithInitialFilters starts the session from f instead of the defaults.
func WithInitialFilters(f domain.Filters) SessionOption {
	return func(s *Session) {
		s.filters = f.Normalized()
		s.searchInput = s.filters.Search
	}
}

// NewSession creates a session starting from DefaultFilters.
func NewSession(onChange func(domain.Filters), opts ...SessionOption) *Session {
	s := &Session{
		filters:  domain.DefaultFilters(),
		quiet:    DefaultSearchQuiet,
		onChange: onChange,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = RealClock()
	}
	s.search = NewScheduler(s.clock, s.commitSearch)
	return s
}

// Filters returns a snapshot of the effective filters.
func (s *Session) Filters() domain.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

// Dropdown returns the menu state.
func (s *Session) Dropdown() Dropdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropdown
}

// SearchInput returns the raw, possibly not yet effective, search text.
func (s *Session) SearchInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchInput
}

// SearchPending reports whether typed search text is still waiting for its
// quiet period.
func (s *Session) SearchPending() bool {
	return s.search.Pending()
}

// ToggleDropdown opens menu, closing any other one, or closes it if open.
func (s *Session) ToggleDropdown(menu Dropdown) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropdown = s.dropdown.Toggle(menu)
}

// CloseDropdown closes whichever menu is open.
func (s *Session) CloseDropdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropdown = DropdownClosed
}

func (s *Session) ToggleDepartment(d domain.Department) {
	s.update(func(f *domain.Filters) { f.Departments = domain.Toggle(f.Departments, d) })
}

func (s *Session) ToggleRegion(r domain.Region) {
	s.update(func(f *domain.Filters) { f.Regions = domain.Toggle(f.Regions, r) })
}

func (s *Session) ToggleStatus(st domain.ProjectStatus) {
	s.update(func(f *domain.Filters) { f.Statuses = domain.Toggle(f.Statuses, st) })
}

// SetDatePreset replaces the date preset.
func (s *Session) SetDatePreset(p domain.DatePreset) {
	s.update(func(f *domain.Filters) { f.DatePreset = p })
}

// ApplyDateRange takes a picker range and keeps only its preset mapping.
func (s *Session) ApplyDateRange(r domain.DateRange) {
	s.SetDatePreset(r.DatePreset())
}

// SetRiskBounds replaces the numeric bounds.
func (s *Session) SetRiskBounds(maxRisk, minReward float64) {
	s.update(func(f *domain.Filters) {
		f.MaxRisk = maxRisk
		f.MinReward = minReward
	})
}

// TypeSearch records a keystroke-level search value. It becomes effective
// only after the quiet period passes with no newer input.
func (s *Session) TypeSearch(text string) Token {
	s.mu.Lock()
	s.searchInput = text
	quiet := s.quiet
	s.mu.Unlock()
	return s.search.Schedule(text, quiet)
}

// FlushSearch makes the raw search input effective immediately.
func (s *Session) FlushSearch() {
	s.search.Cancel()
	s.mu.Lock()
	text := s.searchInput
	s.mu.Unlock()
	s.commitSearch(text)
}

// Clear resets every facet and bound to its unrestricted value and drops any
// pending search input.
func (s *Session) Clear() {
	s.Load(domain.DefaultFilters())
}

// Load replaces the whole filter state, e.g. from a saved filter. Open menus
// close and pending search input is discarded.
func (s *Session) Load(f domain.Filters) {
	s.search.Cancel()
	s.mu.Lock()
	s.filters = f.Normalized()
	s.searchInput = s.filters.Search
	s.dropdown = DropdownClosed
	snap := s.filters.Clone()
	s.mu.Unlock()
	s.notify(snap)
}

// Close cancels pending work. The session stays usable.
func (s *Session) Close() {
	s.search.Cancel()
}

func (s *Session) commitSearch(text string) {
	s.update(func(f *domain.Filters) { f.Search = text })
}

func (s *Session) update(fn func(f *domain.Filters)) {
	s.mu.Lock()
	next := s.filters.Clone()
	fn(&next)
	s.filters = next
	snap := next.Clone()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Session) notify(f domain.Filters) {
	if s.onChange != nil {
		s.onChange(f)
	}
}
