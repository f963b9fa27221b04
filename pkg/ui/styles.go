package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	HeadingColor = lipgloss.Color("12")
	TextColor    = lipgloss.Color("7")
	MutedColor   = lipgloss.Color("240")
	SuccessColor = lipgloss.Color("10")
	ErrorColor   = lipgloss.Color("9")
	GlobColor    = lipgloss.Color("11")
	PathColor    = lipgloss.Color("14")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	RuleNameStyle = lipgloss.NewStyle().
			Bold(true)

	GlobStyle = lipgloss.NewStyle().
			Foreground(GlobColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor).
			Italic(true)
)

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
