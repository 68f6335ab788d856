package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme and styles for the TUI
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor
	Warning    lipgloss.AdaptiveColor
	Background lipgloss.AdaptiveColor

	// Component styles
	AppTitle     lipgloss.Style
	Selected     lipgloss.Style
	Item         lipgloss.Style
	ButtonIdle   lipgloss.Style
	ButtonCopied lipgloss.Style
	Help         lipgloss.Style
}

// palette holds the colors a theme is built from, as {light, dark} pairs
type palette struct {
	primary, accent, foreground, muted   [2]string
	errorC, success, warning, background [2]string
}

func adaptive(c [2]string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: c[0], Dark: c[1]}
}

var palettes = map[string]palette{
	"charm": {
		primary:    [2]string{"#5A56E0", "#7571F9"},
		accent:     [2]string{"#F780E2", "#F780E2"},
		foreground: [2]string{"235", "252"},
		muted:      [2]string{"243", "243"},
		errorC:     [2]string{"#FF4672", "#ED567A"},
		success:    [2]string{"#02BA84", "#02BF87"},
		warning:    [2]string{"#FFAA00", "#FFAA00"},
		background: [2]string{"254", "235"},
	},
	"dracula": {
		primary:    [2]string{"#bd93f9", "#bd93f9"},
		accent:     [2]string{"#ff79c6", "#ff79c6"},
		foreground: [2]string{"#282a36", "#f8f8f2"},
		muted:      [2]string{"#6272a4", "#6272a4"},
		errorC:     [2]string{"#ff5555", "#ff5555"},
		success:    [2]string{"#50fa7b", "#50fa7b"},
		warning:    [2]string{"#f1fa8c", "#f1fa8c"},
		background: [2]string{"#f8f8f2", "#282a36"},
	},
	"catppuccin": {
		primary:    [2]string{"#8839ef", "#cba6f7"},
		accent:     [2]string{"#ea76cb", "#f5c2e7"},
		foreground: [2]string{"#4c4f69", "#cdd6f4"},
		muted:      [2]string{"#9ca0b0", "#7f849c"},
		errorC:     [2]string{"#d20f39", "#f38ba8"},
		success:    [2]string{"#40a02b", "#a6e3a1"},
		warning:    [2]string{"#df8e1d", "#f9e2af"},
		background: [2]string{"#eff1f5", "#1e1e2e"},
	},
	"nord": {
		primary:    [2]string{"#5e81ac", "#88c0d0"},
		accent:     [2]string{"#b48ead", "#b48ead"},
		foreground: [2]string{"#2e3440", "#eceff4"},
		muted:      [2]string{"#4c566a", "#4c566a"},
		errorC:     [2]string{"#bf616a", "#bf616a"},
		success:    [2]string{"#a3be8c", "#a3be8c"},
		warning:    [2]string{"#ebcb8b", "#ebcb8b"},
		background: [2]string{"#eceff4", "#2e3440"},
	},
	"gruvbox": {
		primary:    [2]string{"#af3a03", "#fe8019"},
		accent:     [2]string{"#b16286", "#d3869b"},
		foreground: [2]string{"#3c3836", "#ebdbb2"},
		muted:      [2]string{"#7c6f64", "#928374"},
		errorC:     [2]string{"#9d0006", "#fb4934"},
		success:    [2]string{"#79740e", "#b8bb26"},
		warning:    [2]string{"#b57614", "#fabd2f"},
		background: [2]string{"#fbf1c7", "#282828"},
	},
}

// DefaultTheme is used when the configured name is unknown
const DefaultTheme = "charm"

func build(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    adaptive(p.primary),
		Accent:     adaptive(p.accent),
		Foreground: adaptive(p.foreground),
		Muted:      adaptive(p.muted),
		Error:      adaptive(p.errorC),
		Success:    adaptive(p.success),
		Warning:    adaptive(p.warning),
		Background: adaptive(p.background),
	}

	t.AppTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Item = lipgloss.NewStyle().
		Foreground(t.Foreground).
		PaddingLeft(2)

	t.Selected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		PaddingLeft(2)

	t.ButtonIdle = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Primary).
		Padding(0, 2)

	t.ButtonCopied = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Success).
		Bold(true).
		Padding(0, 2)

	t.Help = lipgloss.NewStyle().
		Foreground(t.Muted)

	return t
}

// GetTheme returns the theme with the given name, or the charm theme
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = DefaultTheme
		p = palettes[DefaultTheme]
	}
	return build(name, p)
}

// AvailableThemes returns the sorted list of theme names
func AvailableThemes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
