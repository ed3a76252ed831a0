package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mpawlowski/relay"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	User     lipgloss.Style
	ToolCall lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t relay.Theme) Styles {
	return Styles{
		User:     lipgloss.NewStyle().Foreground(ansiColor(t.User)).Bold(true),
		ToolCall: lipgloss.NewStyle().Foreground(ansiColor(t.ToolCall)),
		Error:    lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success:  lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:    lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
