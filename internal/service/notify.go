package service

import (
	"fmt"
	"io"
	"sync"
)

type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeError
)

// Notice is a transient, user-facing message about an operation outcome.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notifier surfaces notices to whatever front-end is running.
type Notifier interface {
	Notify(n Notice)
}

// NoopNotifier drops every notice.
type NoopNotifier struct{}

func (NoopNotifier) Notify(Notice) {}

// WriterNotifier prints error notices to W, one per line, and info notices
// only when Verbose is set.
type WriterNotifier struct {
	W       io.Writer
	Verbose bool
	mu      sync.Mutex
}

func (n *WriterNotifier) Notify(notice Notice) {
	if notice.Level == NoticeInfo && !n.Verbose {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	prefix := ""
	if notice.Level == NoticeError {
		prefix = "Error: "
	}
	fmt.Fprintf(n.W, "%s%s\n", prefix, notice.Message)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notice)

func (f NotifierFunc) Notify(n Notice) { f(n) }
