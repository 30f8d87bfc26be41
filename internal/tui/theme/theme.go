// Package theme defines color themes for the evm TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name        string
	Surface     lipgloss.Color // Card/panel backgrounds
	Border      lipgloss.Color // Subtle borders
	BorderFocus lipgloss.Color // Focused input border
	TextDim     lipgloss.Color // Hints, disabled
	TextMuted   lipgloss.Color // Labels
	TextPrimary lipgloss.Color // Values
	Accent      lipgloss.Color // Titles, on-track
	Green       lipgloss.Color // Ahead
	Yellow      lipgloss.Color // At risk
	Red         lipgloss.Color // Critical, invalid input
	PV          lipgloss.Color
	EV          lipgloss.Color
	AC          lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:        "flexoki-dark",
	Surface:     lipgloss.Color("#1C1B1A"),
	Border:      lipgloss.Color("#403E3C"),
	BorderFocus: lipgloss.Color("#3AA99F"),
	TextDim:     lipgloss.Color("#575653"),
	TextMuted:   lipgloss.Color("#878580"),
	TextPrimary: lipgloss.Color("#FFFCF0"),
	Accent:      lipgloss.Color("#3AA99F"),
	Green:       lipgloss.Color("#879A39"),
	Yellow:      lipgloss.Color("#D0A215"),
	Red:         lipgloss.Color("#D14D41"),
	PV:          lipgloss.Color("#4385BE"),
	EV:          lipgloss.Color("#879A39"),
	AC:          lipgloss.Color("#DA702C"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:        "catppuccin-mocha",
	Surface:     lipgloss.Color("#313244"),
	Border:      lipgloss.Color("#585B70"),
	BorderFocus: lipgloss.Color("#89B4FA"),
	TextDim:     lipgloss.Color("#6C7086"),
	TextMuted:   lipgloss.Color("#A6ADC8"),
	TextPrimary: lipgloss.Color("#CDD6F4"),
	Accent:      lipgloss.Color("#89B4FA"),
	Green:       lipgloss.Color("#A6E3A1"),
	Yellow:      lipgloss.Color("#F9E2AF"),
	Red:         lipgloss.Color("#F38BA8"),
	PV:          lipgloss.Color("#89B4FA"),
	EV:          lipgloss.Color("#A6E3A1"),
	AC:          lipgloss.Color("#FAB387"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:        "terminal",
	Surface:     lipgloss.Color("0"),
	Border:      lipgloss.Color("8"),
	BorderFocus: lipgloss.Color("6"),
	TextDim:     lipgloss.Color("8"),
	TextMuted:   lipgloss.Color("7"),
	TextPrimary: lipgloss.Color("15"),
	Accent:      lipgloss.Color("6"),
	Green:       lipgloss.Color("2"),
	Yellow:      lipgloss.Color("3"),
	Red:         lipgloss.Color("1"),
	PV:          lipgloss.Color("4"),
	EV:          lipgloss.Color("2"),
	AC:          lipgloss.Color("3"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
