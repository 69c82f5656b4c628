package filter

import (
	"time"

	"github.com/alexanderramin/vista/internal/domain"
)

// Window is a half-open time interval [From, Until). A zero Window is
// unbounded.
type Window struct {
	From    time.Time
	Until   time.Time
	bounded bool
}

// WindowFor returns the start-date window implied by preset. Last30 and
// Last90 cover today and the 29 or 89 days before it; YTD runs from Jan 1 of
// now's year. All windows end at the close of today.
func WindowFor(preset domain.DatePreset, now time.Time) Window {
	today := domain.StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	switch preset {
	case domain.PresetLast30:
		return Window{From: today.AddDate(0, 0, -29), Until: tomorrow, bounded: true}
	case domain.PresetLast90:
		return Window{From: today.AddDate(0, 0, -89), Until: tomorrow, bounded: true}
	case domain.PresetYTD:
		jan1 := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return Window{From: jan1, Until: tomorrow, bounded: true}
	}
	return Window{}
}

// Bounded reports whether the window restricts anything.
func (w Window) Bounded() bool { return w.bounded }

// Contains reports whether the calendar day of t falls inside the window.
// Start dates are calendar days, so t is compared by its own Y-M-D in the
// window's location rather than as an instant.
func (w Window) Contains(t time.Time) bool {
	if !w.bounded {
		return true
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, w.From.Location())
	return !day.Before(w.From) && day.Before(w.Until)
}
