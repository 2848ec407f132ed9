package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the viewer.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Purple - app name, active values
	Secondary lipgloss.Color // Gold/orange - gradient end

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Values
	FgMuted  lipgloss.Color // Labels
	FgSubtle lipgloss.Color // Hints

	// Borders
	Border      lipgloss.Color // Sidebar and bar borders
	BorderFocus lipgloss.Color // Image window border

	// Status colors
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Label   lipgloss.Style // Info panel keys
	Value   lipgloss.Style // Info panel values
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Label:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Value:   lipgloss.NewStyle().Foreground(t.Primary),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
