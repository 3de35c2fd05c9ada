package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flowquest/internal/task"
)

// Flowquest theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconSpark   = "✨"
	IconTask    = "📋"
	IconFocus   = "⏱️"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconBolt    = "⚡"
	IconCoin    = "🪙"
	IconFlame   = "🔥"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconBreak   = "☕"
	IconScroll  = "📜"
	IconSubtask = "↳"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	TimerDigits = lipgloss.NewStyle().Bold(true).Foreground(cAccent)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status task.Status) string {
	switch status {
	case task.StatusCompleted:
		return Good.Render("done")
	case task.StatusInProgress:
		return H2.Render("in progress")
	case task.StatusTodo:
		return Warn.Render("todo")
	default:
		return Muted.Render(string(status))
	}
}

func PriorityText(p task.Priority) string {
	switch p {
	case task.PriorityUrgent:
		return Bad.Render("urgent")
	case task.PriorityHigh:
		return Warn.Render("high")
	case task.PriorityLow:
		return Muted.Render("low")
	default:
		return Dim.Render("medium")
	}
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := int(float64(value) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Clock formats remaining seconds as MM:SS.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
