package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Border     lipgloss.Color
	Header     lipgloss.Style
	Tab        lipgloss.Style
	TabActive  lipgloss.Style
	Card       lipgloss.Style
	Label      lipgloss.Style
	Value      lipgloss.Style
	Selected   lipgloss.Style
	Dim        lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Marked     lipgloss.Style
	Today      lipgloss.Style
	Input      lipgloss.Style
	Category   lipgloss.Style
	FailedMark lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("63"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
		TabActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1).Underline(true),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 2),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Marked:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		Today:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Category:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		FailedMark: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	},
	"dracula": {
		Name:       "Dracula",
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Border:     lipgloss.Color("62"),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Tab:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Padding(0, 1),
		TabActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Padding(0, 1).Underline(true),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 2),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Success:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Marked:     lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Today:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Underline(true),
		Input:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Category:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		FailedMark: lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
