package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Row       lipgloss.Style
	Running   lipgloss.Style
	Paused    lipgloss.Style
	Stopped   lipgloss.Style
	Alert     lipgloss.Style
	Locked    lipgloss.Style
	Input     lipgloss.Style
	Error     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Row:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Running:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Stopped:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Alert:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Bold(true),
		Locked:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("250"),
		Header:    lipgloss.NewStyle().Bold(true),
		Row:       lipgloss.NewStyle(),
		Running:   lipgloss.NewStyle().Bold(true),
		Paused:    lipgloss.NewStyle().Italic(true),
		Stopped:   lipgloss.NewStyle(),
		Alert:     lipgloss.NewStyle().Reverse(true).Bold(true),
		Locked:    lipgloss.NewStyle().Faint(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Width(50),
		Error:     lipgloss.NewStyle().Bold(true).Underline(true),
		Focused:   lipgloss.NewStyle().Bold(true).Underline(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: lipgloss.NewStyle().Reverse(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
