package main

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Gold      = lipgloss.Color("#C9A227")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
	Green     = lipgloss.Color("#10B981")
	Red       = lipgloss.Color("#EF4444")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	dimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	accentStyle = lipgloss.NewStyle().
			Foreground(Gold)

	errorStyle = lipgloss.NewStyle().
			Foreground(Red)

	successStyle = lipgloss.NewStyle().
			Foreground(Green)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Gold).
			Padding(0, 1)
)

// Raw status characters (unstyled)
const (
	cachedChar  = "✓"
	missingChar = "●"
)

// Pre-rendered status indicators
var (
	cachedMark  = successStyle.Render(cachedChar)
	missingMark = dimStyle.Render(missingChar)
)

func mark(ok bool) string {
	if ok {
		return cachedMark
	}
	return missingMark
}
