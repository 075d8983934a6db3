package cmd

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/saulo-duarte/lifeboard/internal/review"
)

var (
	muted    = lipgloss.Color("#6B7280")
	critical = lipgloss.Color("#EF4444")
	warning  = lipgloss.Color("#F59E0B")
	normal   = lipgloss.Color("#10B981")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().Foreground(muted)

	bucketStyle = lipgloss.NewStyle().Bold(true).Width(10)
)

func levelStyle(l review.Level) lipgloss.Style {
	switch l {
	case review.LevelCritical:
		return lipgloss.NewStyle().Foreground(critical).Bold(true).Width(9)
	case review.LevelWarning:
		return lipgloss.NewStyle().Foreground(warning).Width(9)
	default:
		return lipgloss.NewStyle().Foreground(normal).Width(9)
	}
}
