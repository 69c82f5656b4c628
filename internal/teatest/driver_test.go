package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{}
type pongMsg struct{}

type counter struct {
	keys   []string
	pongs  int
	width  int
	quit   bool
	inited bool
}

func (c *counter) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{} }
}

func (c *counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case pingMsg:
		c.inited = true
		return c, tea.Batch(
			func() tea.Msg { return pongMsg{} },
			func() tea.Msg { time.Sleep(time.Second); return pongMsg{} },
		)
	case pongMsg:
		c.pongs++
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		if msg.String() == "q" {
			return c, tea.Quit
		}
	case tea.QuitMsg:
		c.quit = true
	}
	return c, nil
}

func (c *counter) View() string { return "" }

func TestDriver_DrainsInitAndSkipsSlowCmds(t *testing.T) {
	c := &counter{}
	d := New(t, c, WithSize(90, 20))
	d.DrainInit()

	assert.Equal(t, 90, c.width)
	assert.True(t, c.inited)
	assert.Equal(t, 1, c.pongs)
}

func TestDriver_KeysAndQuit(t *testing.T) {
	c := &counter{}
	d := New(t, c)

	d.Press("tab")
	d.Press("shift+tab")
	d.Type("ab")
	d.Press("q")
	d.Press("x")

	assert.Equal(t, []string{"tab", "shift+tab", "a", "b", "q"}, c.keys)
	assert.True(t, d.Quitting)
	assert.True(t, c.quit)
}

func TestKeyMsg_Names(t *testing.T) {
	for _, name := range []string{"enter", "esc", "tab", "up", "down", "backspace", "ctrl+c", "/", "D"} {
		assert.Equal(t, name, KeyMsg(name).String())
	}
	assert.Equal(t, " ", KeyMsg("space").String())
}
