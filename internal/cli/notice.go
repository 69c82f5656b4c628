package cli

import (
	"sync"

	"github.com/alexanderramin/vista/internal/service"
)

// NoticeRelay forwards notices to a target that can be swapped at runtime.
// Commands print through Fallback; the dashboard redirects notices to its
// status line and restores the fallback on exit.
type NoticeRelay struct {
	Fallback service.Notifier

	mu     sync.Mutex
	target service.Notifier
}

func (r *NoticeRelay) Notify(n service.Notice) {
	r.mu.Lock()
	t := r.target
	if t == nil {
		t = r.Fallback
	}
	r.mu.Unlock()
	if t != nil {
		t.Notify(n)
	}
}

// Redirect sends notices to n until the returned restore func is called.
func (r *NoticeRelay) Redirect(n service.Notifier) (restore func()) {
	r.mu.Lock()
	prev := r.target
	r.target = n
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.target = prev
		r.mu.Unlock()
	}
}
