package cli

import (
	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages are handled by appModel.

type pushViewMsg struct {
	view View
}

type popViewMsg struct{}

// cmdOutputMsg carries text to show in the scrollable output pane.
type cmdOutputMsg struct {
	output string
}

// noticeMsg carries a service notice to the status line.
type noticeMsg struct {
	notice service.Notice
}

// Dashboard messages. appModel delivers non-key messages to every view on
// the stack, so these reach the dashboard even while another view is on top.

// filtersChangedMsg reports that the filter session changed, possibly outside
// of Update, e.g. when a debounced search commits. filters is the snapshot at
// the time of the change.
type filtersChangedMsg struct {
	filters domain.Filters
}

// applyFiltersMsg replaces the dashboard filters, e.g. with a saved filter.
type applyFiltersMsg struct {
	filters domain.Filters
	name    string
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func showOutput(s string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}
