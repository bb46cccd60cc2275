package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-diary-keeper/models"
)

type palette struct {
	text    lipgloss.TerminalColor
	faint   lipgloss.TerminalColor
	accent  lipgloss.TerminalColor
	success lipgloss.TerminalColor
	warning lipgloss.TerminalColor
	danger  lipgloss.TerminalColor
}

var (
	lightPalette = palette{
		text:    lipgloss.Color("#1f2328"),
		faint:   lipgloss.Color("#6e7781"),
		accent:  lipgloss.Color("#0969da"),
		success: lipgloss.Color("#1a7f37"),
		warning: lipgloss.Color("#9a6700"),
		danger:  lipgloss.Color("#cf222e"),
	}
	darkPalette = palette{
		text:    lipgloss.Color("#e6edf3"),
		faint:   lipgloss.Color("#7d8590"),
		accent:  lipgloss.Color("#58a6ff"),
		success: lipgloss.Color("#3fb950"),
		warning: lipgloss.Color("#d29922"),
		danger:  lipgloss.Color("#f85149"),
	}
	// systemPalette lets the terminal background pick between the two.
	systemPalette = palette{
		text:    lipgloss.AdaptiveColor{Light: "#1f2328", Dark: "#e6edf3"},
		faint:   lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#7d8590"},
		accent:  lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#58a6ff"},
		success: lipgloss.AdaptiveColor{Light: "#1a7f37", Dark: "#3fb950"},
		warning: lipgloss.AdaptiveColor{Light: "#9a6700", Dark: "#d29922"},
		danger:  lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"},
	}
)

type styles struct {
	app     lipgloss.Style
	title   lipgloss.Style
	text    lipgloss.Style
	help    lipgloss.Style
	online  lipgloss.Style
	offline lipgloss.Style
	saving  lipgloss.Style
	saved   lipgloss.Style
	failed  lipgloss.Style
	dirty   lipgloss.Style
	overlay lipgloss.Style
}

func stylesFor(theme models.Theme) styles {
	p := systemPalette
	switch theme {
	case models.ThemeLight:
		p = lightPalette
	case models.ThemeDark:
		p = darkPalette
	}

	return styles{
		app:     lipgloss.NewStyle().Padding(1, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		text:    lipgloss.NewStyle().Foreground(p.text),
		help:    lipgloss.NewStyle().Faint(true).Foreground(p.faint),
		online:  lipgloss.NewStyle().Foreground(p.success),
		offline: lipgloss.NewStyle().Foreground(p.warning),
		saving:  lipgloss.NewStyle().Foreground(p.accent),
		saved:   lipgloss.NewStyle().Foreground(p.success),
		failed:  lipgloss.NewStyle().Bold(true).Foreground(p.danger),
		dirty:   lipgloss.NewStyle().Foreground(p.warning),
		overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.accent).Padding(1, 2),
	}
}
