package tui

import (
	"fmt"
	"strings"

	"flowquest/internal/task"
	"flowquest/internal/timer"
	"flowquest/internal/ui"
)

func (m appModel) View() string {
	header := m.renderHeader()
	var body string
	switch m.view {
	case viewTasks:
		body = m.renderTasks()
	case viewFocus:
		body = m.renderFocus()
	case viewStats:
		body = m.renderStats()
	default:
		body = m.renderDashboard()
	}
	return header + "\n\n" + body + "\n\n" + m.renderFooter()
}

func (m appModel) renderHeader() string {
	stats := m.coord.Stats()
	const barWidth = 24
	bar := ui.ProgressBar(int(stats.LevelProgress()*barWidth), barWidth, barWidth)

	var tabs []string
	for v := viewDashboard; v <= viewStats; v++ {
		label := fmt.Sprintf("%d:%s", int(v)+1, viewNames[v])
		if v == m.view {
			tabs = append(tabs, ui.SelectedRow.Render("["+label+"]"))
		} else {
			tabs = append(tabs, ui.Muted.Render(" "+label+" "))
		}
	}

	status := fmt.Sprintf("%s Lv %d  %s  %s %d XP  %s %d  %s %d day streak",
		ui.IconTrophy, stats.Level, bar,
		ui.IconBolt, stats.XP,
		ui.IconCoin, stats.Coins,
		ui.IconFlame, stats.Streak,
	)
	return ui.Heading(ui.IconSpark, "Flowquest") + "  " + strings.Join(tabs, " ") + "\n" + status
}

func (m appModel) renderDashboard() string {
	var out []string

	greeting := "Welcome back, Creator."
	if m.name != "" {
		greeting = "Welcome back, " + m.name + "."
	}
	out = append(out, ui.H2.Render(greeting))
	out = append(out, ui.Dim.Render("“"+m.motivation+"”"))
	out = append(out, "")

	rate := m.coord.CompletionRate()
	out = append(out, ui.PanelTitle.Render("Today's Progress"))
	out = append(out, fmt.Sprintf("%3.0f%% completed  %s", rate*100, ui.ProgressBar(int(rate*100), 100, 30)))
	out = append(out, "")

	out = append(out, ui.PanelTitle.Render("Up Next"))
	next := m.coord.UpNext(upNextCount)
	if len(next) == 0 {
		out = append(out, ui.Muted.Render("(nothing pending — add a task with 2, then a)"))
	}
	for _, t := range next {
		out = append(out, fmt.Sprintf("  %s %s %s", ui.PriorityText(t.Priority), t.Title,
			ui.Muted.Render(fmt.Sprintf("%dm", t.DurationMinutes))))
	}
	return strings.Join(out, "\n")
}

func (m appModel) renderTasks() string {
	var out []string

	addLine := m.input.View()
	if m.parsing {
		addLine = m.spin.View() + " interpreting…"
	}
	out = append(out, addLine)
	if m.search.Focused() || m.search.Value() != "" {
		out = append(out, ui.Muted.Render("filter: ")+m.search.View())
	}
	out = append(out, "")

	rows := m.taskRows()
	if len(rows) == 0 {
		out = append(out, ui.Muted.Render("No tasks yet. Start building your legacy."))
		return strings.Join(out, "\n")
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.selected {
			cursor = ui.SelectedRow.Render("> ")
		}
		if row.subID != "" {
			check := "[ ]"
			if row.sub.Completed {
				check = "[x]"
			}
			out = append(out, fmt.Sprintf("%s   %s %s %s", cursor, ui.IconSubtask, check, row.sub.Title))
			continue
		}
		t := row.task
		title := t.Title
		if t.Status == task.StatusCompleted {
			title = ui.Muted.Render(title)
		}
		fold := " "
		if len(t.Subtasks) > 0 {
			if m.expanded[t.ID] {
				fold = "▾"
			} else {
				fold = "▸"
			}
		}
		line := fmt.Sprintf("%s%s %s %s  %s %s", cursor, fold, ui.StatusText(t.Status), title,
			ui.PriorityText(t.Priority), ui.Muted.Render(fmt.Sprintf("%dm", t.DurationMinutes)))
		if len(t.Tags) > 0 {
			line += "  " + ui.Dim.Render("#"+strings.Join(t.Tags, " #"))
		}
		if m.breaking[t.ID] {
			line += "  " + m.spin.View()
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func modeLabel(mode timer.Mode) string {
	switch mode {
	case timer.ModeShortBreak:
		return "Short Break"
	case timer.ModeLongBreak:
		return "Long Break"
	default:
		return "Deep Work"
	}
}

func (m appModel) renderFocus() string {
	st := m.coord.Timer()

	var tabs []string
	for _, mode := range []timer.Mode{timer.ModeWork, timer.ModeShortBreak, timer.ModeLongBreak} {
		label := modeLabel(mode)
		if mode == st.Mode {
			tabs = append(tabs, ui.SelectedRow.Render("["+label+"]"))
		} else {
			tabs = append(tabs, ui.Muted.Render(" "+label+" "))
		}
	}

	state := "Ready?"
	if st.Running {
		state = "Stay Focused"
	}
	if st.Mode != timer.ModeWork {
		state += " " + ui.IconBreak
	}

	cfg := st.Config
	var out []string
	out = append(out, strings.Join(tabs, " "))
	out = append(out, "")
	out = append(out, "      "+ui.TimerDigits.Render(ui.Clock(st.RemainingSeconds)))
	out = append(out, "      "+ui.ProgressBar(st.IntervalSeconds-st.RemainingSeconds, st.IntervalSeconds, 26))
	out = append(out, "      "+ui.Dim.Render(state))
	out = append(out, "")
	out = append(out, ui.Muted.Render(fmt.Sprintf("intervals: work %dm · short %dm · long %dm (changes apply to the next interval)",
		cfg.WorkMinutes, cfg.ShortBreakMinutes, cfg.LongBreakMinutes)))
	return strings.Join(out, "\n")
}

func (m appModel) renderStats() string {
	stats := m.coord.Stats()
	var out []string
	out = append(out, ui.PanelTitle.Render("Analytics"))
	out = append(out, ui.LabelValue("Total XP", stats.XP))
	out = append(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d XP to next)", stats.Level, stats.XPToNextLevel())))
	out = append(out, ui.LabelValue("Tasks completed", stats.TasksCompleted))
	out = append(out, ui.LabelValue("Focus hours", fmt.Sprintf("%.1f", float64(stats.FocusMinutes)/60)))
	out = append(out, ui.LabelValue("Coins", stats.Coins))
	out = append(out, ui.LabelValue("Streak", fmt.Sprintf("%d days", stats.Streak)))
	return strings.Join(out, "\n")
}

func (m appModel) renderFooter() string {
	var keys string
	switch m.view {
	case viewTasks:
		keys = "a add · / search · c/space toggle · b breakdown · d delete · enter fold · tab view · q quit"
	case viewFocus:
		keys = "s/space start/pause · r reset · w/x/z mode · +/- work len · </> break len · tab view · q quit"
	default:
		keys = "tab/1-4 switch view · q quit"
	}
	return ui.Muted.Render(keys) + "\n" + m.lastLog
}
