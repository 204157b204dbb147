package report

import "charm.land/lipgloss/v2"

// Report palette — restrained, legible on dark and light terminals
var (
	pass    = lipgloss.Color("#22C55E") // Green
	fail    = lipgloss.Color("#F43F5E") // Rose
	warn    = lipgloss.Color("#F97316") // Orange
	dim     = lipgloss.Color("#94A3B8") // Slate
	heading = lipgloss.Color("#8B5CF6") // Purple
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(heading)

	passStyle = lipgloss.NewStyle().Foreground(pass)
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(fail)
	warnStyle = lipgloss.NewStyle().Foreground(warn)
	dimStyle  = lipgloss.NewStyle().Foreground(dim)
)
