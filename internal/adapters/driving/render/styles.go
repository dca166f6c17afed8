package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette shared by the terminal renderer and
// the TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Accent marks highlighted query text.
	Accent lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Link is the URL colour.
	Link lipgloss.Color

	// Error indicates problems.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Accent:     lipgloss.Color("#F9E2AF"), // Yellow
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Link:       lipgloss.Color("#06B6D4"), // Cyan
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title styles a result title.
	Title lipgloss.Style

	// Snippet styles the excerpt under a title.
	Snippet lipgloss.Style

	// Mark styles highlighted query occurrences.
	Mark lipgloss.Style

	// URL styles the result destination.
	URL lipgloss.Style

	// Muted styles hints and placeholders.
	Muted lipgloss.Style

	// Selected styles the cursor row in the TUI.
	Selected lipgloss.Style

	// Error styles error messages.
	Error lipgloss.Style

	// InputField styles the TUI search box.
	InputField lipgloss.Style

	// Modal styles the TUI search overlay.
	Modal lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Snippet: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Mark: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		URL: lipgloss.NewStyle().
			Underline(true).
			Foreground(theme.Link),

		Muted: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(theme.Primary).
			PaddingLeft(1),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
