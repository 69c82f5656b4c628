package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/vista/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// promptTheme styles huh prompts around accent: purple for ordinary
// questions, red for destructive ones.
func promptTheme(accent lipgloss.Color) *huh.Theme {
	fg := lipgloss.NewStyle().Foreground(formatter.ColorFg)
	dim := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	hi := lipgloss.NewStyle().Foreground(accent)

	t := huh.ThemeBase()
	t.Focused.Title = hi.Bold(true)
	t.Focused.Description = dim
	t.Focused.ErrorMessage = formatter.StyleRed
	t.Focused.ErrorIndicator = formatter.StyleRed
	t.Focused.FocusedButton = fg.Background(accent).Padding(0, 1)
	t.Focused.BlurredButton = dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = hi
	t.Focused.TextInput.Prompt = hi
	t.Focused.TextInput.Text = fg
	t.Focused.TextInput.Placeholder = dim
	t.Blurred = t.Focused
	t.Blurred.Title = dim
	return t
}

func validateFilterName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("name is required")
	}
	return nil
}

// filterNameForm asks for the name of a new saved filter.
func filterNameForm(name *string, summary string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Filter name").
				Description(summary).
				Placeholder("e.g. EU at risk").
				Value(name).
				Validate(validateFilterName),
		),
	).WithTheme(promptTheme(formatter.ColorPurple)).WithShowHelp(false)
}

// confirmForm asks before deleting something.
func confirmForm(title string, ok *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Delete").
				Negative("Keep").
				Value(ok),
		),
	).WithTheme(promptTheme(formatter.ColorRed)).WithShowHelp(false)
}
