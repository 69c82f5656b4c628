package filter

import (
	"sort"
	"sync"
	"time"
)

// DefaultSearchQuiet is how long search input must stay unchanged before it
// becomes part of the effective filters.
const DefaultSearchQuiet = 300 * time.Millisecond

// Timer is the part of *time.Timer the scheduler needs.
type Timer interface {
	Stop() bool
}

// Clock abstracts timer creation so that debounce behavior can be driven by a
// ManualClock in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

// RealClock returns a Clock backed by package time.
func RealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Token identifies one scheduled value. Only the most recent token is live.
type Token uint64

// Scheduler coalesces a stream of values: each Schedule call supersedes the
// previous one, and fire is called only for a value that stayed current for
// the whole quiet period.
type Scheduler[T any] struct {
	mu    sync.Mutex
	clock Clock
	fire  func(T)
	seq   Token
	timer Timer
}

// NewScheduler creates a scheduler that calls fire from the clock's timer
// goroutine.
func NewScheduler[T any](clock Clock, fire func(T)) *Scheduler[T] {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler[T]{clock: clock, fire: fire}
}

// Schedule arranges for v to be delivered after the quiet period and returns
// its token. Any earlier pending value is cancelled.
func (s *Scheduler[T]) Schedule(v T, after time.Duration) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	tok := s.seq
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = s.clock.AfterFunc(after, func() { s.deliver(tok, v) })
	return tok
}

// Valid reports whether tok is still the live token.
func (s *Scheduler[T]) Valid(tok Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tok == s.seq && s.timer != nil
}

// Pending reports whether a value is waiting for its quiet period to elapse.
func (s *Scheduler[T]) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}

// Cancel drops the pending value, if any.
func (s *Scheduler[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler[T]) deliver(tok Token, v T) {
	s.mu.Lock()
	if tok != s.seq {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	fire := s.fire
	s.mu.Unlock()

	if fire != nil {
		fire(v)
	}
}

// ManualClock is a Clock whose time only moves when Advance is called.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

// NewManualClock returns a ManualClock starting at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

type manualTimer struct {
	clock   *ManualClock
	at      time.Time
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward and runs every timer that became due, in
// deadline order, on the calling goroutine.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due, keep []*manualTimer
	for _, t := range c.timers {
		switch {
		case t.stopped:
		case !t.at.After(c.now):
			t.stopped = true
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	c.timers = keep
	c.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.f()
	}
}
