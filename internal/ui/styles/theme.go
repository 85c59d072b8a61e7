package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Pink - active controls, drop target
	Secondary lipgloss.Color // Warm gold - record label

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Record and turntable
	Vinyl   lipgloss.Color
	Plinth  lipgloss.Color
	Tonearm lipgloss.Color

	// Hearts fade from Heart to HeartFade as they fall
	Heart     lipgloss.Color
	HeartFade lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Vinyl   lipgloss.Style
	Label   lipgloss.Style
	Plinth  lipgloss.Style
	Tonearm lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#ff6fa8"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Vinyl:   lipgloss.Color("#3a3a3a"),
	Plinth:  lipgloss.Color("#8b5e3c"),
	Tonearm: lipgloss.Color("#d0d0d0"),

	Heart:     lipgloss.Color("#ff4f9a"),
	HeartFade: lipgloss.Color("#5c2340"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#ff6fa8"),

	Success: lipgloss.Color("#42b883"),
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
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Playing: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Vinyl:   lipgloss.NewStyle().Foreground(t.Vinyl),
		Label:   lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Plinth:  lipgloss.NewStyle().Foreground(t.Plinth),
		Tonearm: lipgloss.NewStyle().Foreground(t.Tonearm),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
