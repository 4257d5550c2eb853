package cli

import (
	"github.com/jmikkola/dayplan/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// dayplanHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func dayplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirm runs a yes/no form and returns the answer. Non-interactive
// invocations always answer no.
func (a *App) confirm(title string) bool {
	if !a.interactive() {
		return false
	}

	var yes bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&yes),
		),
	).WithTheme(dayplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false
	}
	return yes
}
