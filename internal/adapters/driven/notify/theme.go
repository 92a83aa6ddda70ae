package notify

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette for the dialog.
type Theme struct {
	// Error is used for the message line.
	Error lipgloss.Color

	// Foreground is the detail text colour.
	Foreground lipgloss.Color

	// Muted is used for the key hint.
	Muted lipgloss.Color

	// Border is the box border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default dialog palette.
func DefaultTheme() *Theme {
	return &Theme{
		Error:      lipgloss.Color("#F38BA8"),
		Foreground: lipgloss.Color("#CDD6F4"),
		Muted:      lipgloss.Color("#6C7086"),
		Border:     lipgloss.Color("#45475A"),
	}
}

// dialogStyles are the lipgloss styles derived from a Theme.
type dialogStyles struct {
	Title  lipgloss.Style
	Detail lipgloss.Style
	Hint   lipgloss.Style
	Box    lipgloss.Style
}

func newDialogStyles(t *Theme) dialogStyles {
	return dialogStyles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Error),
		Detail: lipgloss.NewStyle().Foreground(t.Foreground),
		Hint:   lipgloss.NewStyle().Foreground(t.Muted),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2),
	}
}
