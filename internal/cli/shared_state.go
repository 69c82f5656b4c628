package cli

import (
	"github.com/alexanderramin/vista/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Dark selects the chart palette for views and exports.
	Dark bool
	// Filters is the dashboard's effective filter state, kept current so
	// pushed views act on what the user sees.
	Filters domain.Filters

	// Terminal dimensions
	Width  int
	Height int

	// Post delivers a message from outside the update loop, e.g. from a
	// timer goroutine. It must not block.
	Post func(tea.Msg)
}

func (s *SharedState) post(msg tea.Msg) {
	if s.Post != nil {
		s.Post(msg)
	}
}

// ContentHeight is the height left for the active view after the header and
// status bar.
func (s *SharedState) ContentHeight() int {
	return max(s.Height-5, 3)
}
