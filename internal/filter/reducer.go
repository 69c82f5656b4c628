// Package filter turns a Filters value into a record predicate and keeps the
// interactive filter state (facet toggles, debounced search, dropdowns).
package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"golang.org/x/text/cases"
)

// Predicate is the compiled form of a Filters snapshot. It is bound to the
// "today" that was current when it was built, so repeated calls against the
// same records give the same answer.
type Predicate struct {
	filters domain.Filters
	window  Window
	needle  string
	fold    cases.Caser
}

// NewPredicate compiles f relative to now.
func NewPredicate(f domain.Filters, now time.Time) *Predicate {
	f = f.Normalized()
	fold := cases.Fold()
	return &Predicate{
		filters: f,
		window:  WindowFor(f.DatePreset, now),
		needle:  fold.String(f.Search),
		fold:    fold,
	}
}

// Apply returns the records matching f, in input order, evaluated against
// the current wall clock.
func Apply(records []domain.ProjectRecord, f domain.Filters) []domain.ProjectRecord {
	return ApplyAt(records, f, time.Now())
}

// ApplyAt is Apply with an explicit "today".
func ApplyAt(records []domain.ProjectRecord, f domain.Filters, now time.Time) []domain.ProjectRecord {
	return NewPredicate(f, now).Filter(records)
}

// Filter returns the matching subset, preserving order. The input slice is
// never modified; the result is always non-nil.
func (p *Predicate) Filter(records []domain.ProjectRecord) []domain.ProjectRecord {
	out := make([]domain.ProjectRecord, 0, len(records))
	for _, r := range records {
		if p.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r passes every rule.
func (p *Predicate) Matches(r domain.ProjectRecord) bool {
	f := p.filters
	if !facetAllows(f.Departments, r.Department) ||
		!facetAllows(f.Regions, r.Region) ||
		!facetAllows(f.Statuses, r.Status) {
		return false
	}
	if !p.searchMatches(r) {
		return false
	}
	if !p.window.Contains(r.StartDate) {
		return false
	}
	return r.Risk <= f.MaxRisk && r.Reward >= f.MinReward
}

// facetAllows implements the central rule: an empty set is no restriction.
func facetAllows[T comparable](set []T, v T) bool {
	return len(set) == 0 || slices.Contains(set, v)
}

func (p *Predicate) searchMatches(r domain.ProjectRecord) bool {
	if p.needle == "" {
		return true
	}
	for _, field := range []string{r.Name, r.Owner, string(r.Department)} {
		if strings.Contains(p.fold.String(field), p.needle) {
			return true
		}
	}
	return false
}
