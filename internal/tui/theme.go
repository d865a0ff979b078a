package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/yidao/internal/config"
	"github.com/kingrea/yidao/internal/report"
)

// Palette is one colour scheme.
type Palette struct {
	Foreground lipgloss.Color
	Gold       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Accent     lipgloss.Color
	Danger     lipgloss.Color
	IsDark     bool
}

// MysticPalette is the dark scheme: amber on night blue.
func MysticPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#E2E8F0"),
		Gold:       lipgloss.Color("#FBBF24"),
		Muted:      lipgloss.Color("#64748B"),
		Border:     lipgloss.Color("#334155"),
		Accent:     lipgloss.Color("#EF4444"),
		Danger:     lipgloss.Color("#F87171"),
		IsDark:     true,
	}
}

// PaperPalette is the light scheme: cinnabar ink on rice paper.
func PaperPalette() Palette {
	return Palette{
		Foreground: lipgloss.Color("#1E293B"),
		Gold:       lipgloss.Color("#991B1B"),
		Muted:      lipgloss.Color("#94A3B8"),
		Border:     lipgloss.Color("#CBD5E1"),
		Accent:     lipgloss.Color("#B45309"),
		Danger:     lipgloss.Color("#B91C1C"),
		IsDark:     false,
	}
}

// PaletteFor maps a configured theme to its palette.
func PaletteFor(theme config.Theme) Palette {
	if theme.IsDark() {
		return MysticPalette()
	}
	return PaperPalette()
}

// glamourStyle picks the report style matching the palette.
func (p Palette) glamourStyle() string {
	if p.IsDark {
		return report.StyleDark
	}
	return report.StyleLight
}

// Styles holds the rendered components.
type Styles struct {
	Palette Palette

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Master   lipgloss.Style
}

// NewStyles builds styles for a palette.
func NewStyles(p Palette) Styles {
	return Styles{
		Palette:  p,
		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.Gold),
		Subtitle: lipgloss.NewStyle().Foreground(p.Muted),
		Body:     lipgloss.NewStyle().Foreground(p.Foreground),
		Help:     lipgloss.NewStyle().Foreground(p.Muted),
		Status:   lipgloss.NewStyle().Foreground(p.Accent),
		Error: lipgloss.NewStyle().
			Foreground(p.Danger).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.Danger).
			PaddingLeft(1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 2).
			Align(lipgloss.Center),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(p.Gold),
		Master: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Gold).
			Padding(0, 2).
			Align(lipgloss.Center),
	}
}
