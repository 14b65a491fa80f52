// Package ui provides terminal rendering helpers for tend.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tendhq/tend/task"
)

var (
	inboxStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// OverdueCell renders a table cell for a missed deadline.
func OverdueCell(value string) string {
	return overdueStyle.Render(value)
}

// StatusLabel renders the fixed label and glyph for a status. Color is
// applied when the terminal supports it; the text is stable either way.
func StatusLabel(s task.Status) string {
	switch s {
	case task.StatusInbox:
		return inboxStyle.Render("📮 Inbox")
	case task.StatusPending:
		return pendingStyle.Render("📅 Pending")
	case task.StatusActive:
		return activeStyle.Render("🕑 Active")
	case task.StatusComplete:
		return completeStyle.Render("📗 Complete")
	default:
		return string(s)
	}
}
