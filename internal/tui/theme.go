package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin palettes: mocha (dark) and latte (light)
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

type palette struct {
	accent  lipgloss.Color
	focus   lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
	border  lipgloss.Color
	success lipgloss.Color
	warning lipgloss.Color
	errorC  lipgloss.Color
	info    lipgloss.Color
}

var palettes = map[string]palette{
	"mocha": {
		accent:  "#f5c2e7",
		focus:   "#b4befe",
		text:    "#cdd6f4",
		muted:   "#7f849c",
		border:  "#45475a",
		success: "#a6e3a1",
		warning: "#f9e2af",
		errorC:  "#f38ba8",
		info:    "#94e2d5",
	},
	"latte": {
		accent:  "#ea76cb",
		focus:   "#7287fd",
		text:    "#4c4f69",
		muted:   "#8c8fa1",
		border:  "#bcc0cc",
		success: "#40a02b",
		warning: "#df8e1d",
		errorC:  "#d20f39",
		info:    "#179299",
	},
}

type styles struct {
	title    lipgloss.Style
	selected lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	pane     lipgloss.Style
	info     lipgloss.Style
	warn     lipgloss.Style
	err      lipgloss.Style
	ok       lipgloss.Style
}

// stylesFor falls back to mocha for unknown themes.
func stylesFor(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["mocha"]
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.focus),
		text:     lipgloss.NewStyle().Foreground(p.text),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		pane:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1),
		info:     lipgloss.NewStyle().Foreground(p.info),
		warn:     lipgloss.NewStyle().Foreground(p.warning),
		err:      lipgloss.NewStyle().Foreground(p.errorC),
		ok:       lipgloss.NewStyle().Foreground(p.success),
	}
}
