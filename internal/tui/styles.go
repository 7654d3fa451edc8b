package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	noticeStyle  = lipgloss.NewStyle().Faint(true)
	enabledMark  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("on")
	disabledMark = lipgloss.NewStyle().Faint(true).Render("off")
)
