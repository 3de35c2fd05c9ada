package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"flowquest/internal/app"
	"flowquest/internal/task"
	"flowquest/internal/timer"
	"flowquest/internal/ui"
)

type view int

const (
	viewDashboard view = iota
	viewTasks
	viewFocus
	viewStats
)

var viewNames = map[view]string{
	viewDashboard: "Dashboard",
	viewTasks:     "Tasks",
	viewFocus:     "Focus",
	viewStats:     "Stats",
}

// upNextCount is how many pending tasks the dashboard previews.
const upNextCount = 3

type appModel struct {
	ctx   context.Context
	coord *app.Coordinator

	width  int
	height int
	view   view

	input  textinput.Model
	search textinput.Model
	spin   spinner.Model

	// parsing guards the add input: at most one interpretation request
	// in flight per input field.
	parsing  bool
	breaking map[string]bool

	expanded map[string]bool
	selected int

	name       string
	motivation string
	lastLog    string

	// tickGen tags the one-second cadence; a pause/reset bumps it so a
	// tick already in flight is discarded instead of double-counting.
	tickGen int
}

type tickMsg struct {
	gen int
}

type parsedMsg struct {
	created task.Task
}

type brokeDownMsg struct {
	id    string
	count int
}

type motivationMsg struct {
	quote string
}

func newAppModel(ctx context.Context, coord *app.Coordinator, name string) appModel {
	input := textinput.New()
	input.Placeholder = "Add a task (e.g. 'Read book for 30 mins tomorrow at 10am')"
	input.CharLimit = 200

	search := textinput.New()
	search.Placeholder = "Search tasks…"
	search.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return appModel{
		ctx:        ctx,
		coord:      coord,
		input:      input,
		search:     search,
		spin:       spin,
		breaking:   map[string]bool{},
		expanded:   map[string]bool{},
		name:       name,
		motivation: "Loading daily inspiration…",
		lastLog:    "Welcome.",
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.motivationCmd(), m.spin.Tick)
}

func (m appModel) motivationCmd() tea.Cmd {
	return func() tea.Msg {
		return motivationMsg{quote: m.coord.Motivation(m.ctx)}
	}
}

func (m appModel) parseCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return parsedMsg{created: m.coord.AddTask(m.ctx, text)}
	}
}

func (m appModel) breakdownCmd(id string) tea.Cmd {
	return func() tea.Msg {
		t, ok := m.coord.Breakdown(m.ctx, id)
		if !ok {
			return brokeDownMsg{id: id}
		}
		return brokeDownMsg{id: id, count: len(t.Subtasks)}
	}
}

func (m appModel) tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case motivationMsg:
		m.motivation = msg.quote
		return m, nil

	case parsedMsg:
		m.parsing = false
		m.input.Reset()
		m.lastLog = "Added: " + msg.created.Title
		return m, nil

	case brokeDownMsg:
		delete(m.breaking, msg.id)
		if msg.count == 0 {
			m.lastLog = "No subtasks produced."
		} else {
			m.lastLog = "Broke task into " + strconv.Itoa(msg.count) + " subtasks."
			m.expanded[msg.id] = true
		}
		return m, nil

	case tickMsg:
		if msg.gen != m.tickGen {
			// Stale tick from before a pause/reset; the explicit stop wins.
			return m, nil
		}
		res := m.coord.TickTimer()
		if res.Reward != nil {
			m.lastLog = "Focus complete! +" + strconv.Itoa(res.Reward.XPAwarded) + " XP"
			if res.Reward.LeveledUp {
				m.lastLog += " " + ui.BadgeLevelUp
			}
		}
		if m.coord.Timer().Running {
			return m, m.tickCmd(msg.gen)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry swallows everything except confirm/cancel.
	if m.input.Focused() {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.parsing {
				return m, nil
			}
			m.parsing = true
			m.input.Blur()
			m.lastLog = "Interpreting…"
			return m, m.parseCmd(text)
		case "esc":
			m.input.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}
	if m.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.selected = 0
			return m, cmd
		}
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.view = (m.view + 1) % 4
		return m, nil
	case "1":
		m.view = viewDashboard
		return m, nil
	case "2":
		m.view = viewTasks
		return m, nil
	case "3":
		m.view = viewFocus
		return m, nil
	case "4":
		m.view = viewStats
		return m, nil
	}

	switch m.view {
	case viewTasks:
		return m.handleTasksKey(msg)
	case viewFocus:
		return m.handleFocusKey(msg)
	}
	return m, nil
}

func (m appModel) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		if m.parsing {
			m.lastLog = "Still interpreting the previous task…"
			return m, nil
		}
		m.input.Focus()
		return m, textinput.Blink
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "down", "j":
		if rows := m.taskRows(); m.selected < len(rows)-1 {
			m.selected++
		}
		return m, nil
	case "enter":
		rows := m.taskRows()
		if m.selected < 0 || m.selected >= len(rows) {
			return m, nil
		}
		row := rows[m.selected]
		if row.subID == "" && len(row.task.Subtasks) > 0 {
			m.expanded[row.task.ID] = !m.expanded[row.task.ID]
		}
		return m, nil
	case "c", " ":
		rows := m.taskRows()
		if m.selected < 0 || m.selected >= len(rows) {
			return m, nil
		}
		row := rows[m.selected]
		if row.subID != "" {
			m.coord.ToggleSubtask(row.task.ID, row.subID)
			return m, nil
		}
		res, ok := m.coord.ToggleTask(row.task.ID)
		if !ok {
			return m, nil
		}
		switch res.Change {
		case task.ChangeCompleted:
			m.lastLog = "Completed: " + res.Task.Title + " (+" + strconv.Itoa(res.Reward.XPAwarded) + " XP)"
			if res.Reward.LeveledUp {
				m.lastLog += " " + ui.BadgeLevelUp
			}
		case task.ChangeReopened:
			m.lastLog = "Reopened: " + res.Task.Title
		}
		return m, nil
	case "d":
		rows := m.taskRows()
		if m.selected < 0 || m.selected >= len(rows) {
			return m, nil
		}
		row := rows[m.selected]
		if row.subID != "" {
			return m, nil
		}
		m.coord.DeleteTask(row.task.ID)
		m.lastLog = "Deleted: " + row.task.Title
		if m.selected > 0 {
			m.selected--
		}
		return m, nil
	case "b":
		rows := m.taskRows()
		if m.selected < 0 || m.selected >= len(rows) {
			return m, nil
		}
		row := rows[m.selected]
		if row.subID != "" {
			return m, nil
		}
		if m.breaking[row.task.ID] {
			m.lastLog = "Breakdown already in flight for this task."
			return m, nil
		}
		m.breaking[row.task.ID] = true
		m.lastLog = "Breaking down: " + row.task.Title + "…"
		return m, m.breakdownCmd(row.task.ID)
	}
	return m, nil
}

func (m appModel) handleFocusKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", " ":
		st := m.coord.Timer()
		if st.Running {
			m.coord.PauseTimer()
			m.tickGen++
			m.lastLog = "Paused."
			return m, nil
		}
		m.coord.StartTimer()
		if !m.coord.Timer().Running {
			m.lastLog = "Interval finished; press r to reset."
			return m, nil
		}
		m.tickGen++
		m.lastLog = "Stay focused."
		return m, m.tickCmd(m.tickGen)
	case "r":
		m.coord.ResetTimer()
		m.tickGen++
		m.lastLog = "Timer reset."
		return m, nil
	case "w":
		m.coord.SwitchTimerMode(timer.ModeWork)
		m.tickGen++
		return m, nil
	case "x":
		m.coord.SwitchTimerMode(timer.ModeShortBreak)
		m.tickGen++
		return m, nil
	case "z":
		m.coord.SwitchTimerMode(timer.ModeLongBreak)
		m.tickGen++
		return m, nil
	case "+", "=":
		m.adjustWorkMinutes(5)
		return m, nil
	case "-", "_":
		m.adjustWorkMinutes(-5)
		return m, nil
	case ">":
		m.adjustBreakMinutes(1)
		return m, nil
	case "<":
		m.adjustBreakMinutes(-1)
		return m, nil
	}
	return m, nil
}

func (m *appModel) adjustWorkMinutes(delta int) {
	cfg := m.coord.Timer().Config
	cfg.WorkMinutes += delta
	m.coord.SetTimerConfig(cfg)
	m.lastLog = "Work interval: " + strconv.Itoa(m.coord.Timer().Config.WorkMinutes) + " min (next interval)"
}

func (m *appModel) adjustBreakMinutes(delta int) {
	cfg := m.coord.Timer().Config
	cfg.ShortBreakMinutes += delta
	cfg.LongBreakMinutes += delta * 3
	m.coord.SetTimerConfig(cfg)
	cfg = m.coord.Timer().Config
	m.lastLog = "Breaks: " + strconv.Itoa(cfg.ShortBreakMinutes) + "/" + strconv.Itoa(cfg.LongBreakMinutes) + " min (next interval)"
}

type taskRow struct {
	task  task.Task
	subID string
	sub   task.SubTask
}

// taskRows flattens the filtered task list plus expanded subtasks into
// selectable rows.
func (m appModel) taskRows() []taskRow {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))

	var rows []taskRow
	for _, t := range m.coord.Tasks() {
		if query != "" && !matchesQuery(t, query) {
			continue
		}
		rows = append(rows, taskRow{task: t})
		if !m.expanded[t.ID] {
			continue
		}
		for _, sub := range t.Subtasks {
			rows = append(rows, taskRow{task: t, subID: sub.ID, sub: sub})
		}
	}
	return rows
}

func matchesQuery(t task.Task, query string) bool {
	if strings.Contains(strings.ToLower(t.Title), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
