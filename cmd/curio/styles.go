package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/curiolib/curio/library"
)

var (
	detailHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	urgentPriorityStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	highPriorityStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	overdueStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	doneStatusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func styledPriority(priority library.TaskPriority) string {
	switch priority {
	case library.PriorityUrgent:
		return urgentPriorityStyle.Render(string(priority))
	case library.PriorityHigh:
		return highPriorityStyle.Render(string(priority))
	default:
		return string(priority)
	}
}

func styledStatus(status library.TaskStatus) string {
	if status.IsOpen() {
		return string(status)
	}
	return doneStatusStyle.Render(string(status))
}
