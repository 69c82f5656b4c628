package cli

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/alexanderramin/vista/internal/filter"
	"github.com/alexanderramin/vista/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

const testDebounce = 300 * time.Millisecond

// TestDriver wraps teatest.Driver with access to appModel internals and a
// manual clock for the search debounce. Messages the app posts from outside
// Update are queued until DeliverPosted.
type TestDriver struct {
	*teatest.Driver
	clock  *filter.ManualClock
	posted chan tea.Msg
}

func NewTestDriver(t *testing.T, app *App, initial domain.Filters) *TestDriver {
	t.Helper()
	clock := filter.NewManualClock(june10)
	app.Clock = clock
	app.SearchDebounce = testDebounce

	m := newAppModel(app, initial)
	posted := make(chan tea.Msg, 256)
	m.state.Post = func(msg tea.Msg) {
		select {
		case posted <- msg:
		default:
		}
	}
	t.Cleanup(m.close)

	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d, clock: clock, posted: posted}
}

// DeliverPosted feeds every queued posted message through the model.
func (d *TestDriver) DeliverPosted() {
	d.T.Helper()
	for {
		select {
		case msg := <-d.posted:
			d.Send(msg)
		default:
			return
		}
	}
}

// Advance moves the debounce clock and delivers whatever it triggered.
func (d *TestDriver) Advance(dur time.Duration) {
	d.T.Helper()
	d.clock.Advance(dur)
	d.DeliverPosted()
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Screen returns the rendered view without ANSI styling.
func (d *TestDriver) Screen() string {
	return stripANSI(d.View())
}

func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.activeView(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

func (d *TestDriver) Filters() domain.Filters {
	return d.appModel().dashboard.session.Filters()
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}
