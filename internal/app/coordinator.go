// Package app wires user actions to the task store, focus session engine
// and reward engine, keeping them consistent. The coordinator holds no
// state of its own beyond the wiring.
package app

import (
	"context"
	"log/slog"
	"sync"

	"flowquest/internal/assist"
	"flowquest/internal/reward"
	"flowquest/internal/task"
	"flowquest/internal/timer"
)

// ToggleResult describes a completion toggle and any reward it triggered.
type ToggleResult struct {
	Task   task.Task
	Change task.StatusChange
	Reward reward.Result
}

// TickResult reports one timer tick; Reward is set only when a Work
// interval finished on this tick.
type TickResult struct {
	Completed *timer.Completed
	Reward    *reward.Result
}

// TimerState is a display snapshot of the focus session.
type TimerState struct {
	Mode             timer.Mode
	RemainingSeconds int
	IntervalSeconds  int
	Running          bool
	Progress         float64
	Config           timer.Config
}

// Coordinator is the composition root. All state transitions run under one
// mutex so task-store and focus-session events are serialized relative to
// each other and an explicit stop always beats an in-flight tick.
type Coordinator struct {
	mu        sync.Mutex
	tasks     *task.Store
	session   *timer.Engine
	rewards   *reward.Engine
	interp    assist.Interpreter
	logger    *slog.Logger
	observers []func(Event)
}

func New(tasks *task.Store, session *timer.Engine, rewards *reward.Engine, interp assist.Interpreter, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		tasks:   tasks,
		session: session,
		rewards: rewards,
		interp:  interp,
		logger:  logger,
	}
}

// Observe registers a synchronous listener for dispatched events. Intended
// for display layers and tests; listeners run in dispatch order.
func (c *Coordinator) Observe(fn func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Coordinator) dispatchLocked(ev Event) {
	for _, fn := range c.observers {
		fn(ev)
	}
}

// AddTask parses free text through the interpretation service and creates
// the task. Service failures degrade to manual entry with the raw input as
// title; AddTask never fails.
func (c *Coordinator) AddTask(ctx context.Context, freeText string) task.Task {
	draft, err := c.interp.ParseTask(ctx, freeText)
	if err != nil {
		c.logger.Warn("task parse degraded to manual entry", "error", err)
		draft = assist.FallbackDraft(freeText)
	}
	return c.AddTaskManual(assist.Normalize(draft, freeText))
}

// AddTaskManual creates a task from an already-structured draft.
func (c *Coordinator) AddTaskManual(d task.Draft) task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.Create(d)
}

// ToggleTask flips completion and routes the resulting event to the reward
// engine — exactly one reward call per toggle. Unknown ids are a no-op.
func (c *Coordinator) ToggleTask(id string) (ToggleResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	change, ok := c.tasks.ToggleComplete(id)
	if !ok {
		return ToggleResult{}, false
	}
	t, _ := c.tasks.Get(id)

	var res reward.Result
	switch change {
	case task.ChangeCompleted:
		res = c.rewards.OnTaskCompleted(t.Priority)
		c.dispatchLocked(TaskCompletedEvent{TaskID: id, Priority: t.Priority})
	case task.ChangeReopened:
		res = c.rewards.OnTaskReopened()
		c.dispatchLocked(TaskReopenedEvent{TaskID: id})
	}
	return ToggleResult{Task: t, Change: change, Reward: res}, true
}

// DeleteTask removes a task. No reward reversal occurs, even for completed
// tasks.
func (c *Coordinator) DeleteTask(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks.Delete(id)
}

// Breakdown asks the interpretation service to decompose the task and
// replaces its subtask list with the result. An empty result is valid. A
// stale response simply applies when it resolves (last-write-wins on the
// targeted task).
func (c *Coordinator) Breakdown(ctx context.Context, id string) (task.Task, bool) {
	t, ok := c.Task(id)
	if !ok {
		return task.Task{}, false
	}

	titles, err := c.interp.BreakdownTask(ctx, t.Title)
	if err != nil {
		c.logger.Warn("task breakdown failed", "task", id, "error", err)
		titles = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.AttachSubtasks(id, titles)
}

func (c *Coordinator) ToggleSubtask(taskID, subtaskID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.ToggleSubtask(taskID, subtaskID)
}

// Motivation fetches the daily quote, falling back to a static line on any
// failure.
func (c *Coordinator) Motivation(ctx context.Context) string {
	quote, err := c.interp.DailyMotivation(ctx, c.rewards.Stats())
	if err != nil || quote == "" {
		if err != nil {
			c.logger.Warn("daily motivation fallback", "error", err)
		}
		return assist.FallbackMotivation
	}
	return quote
}

// Timer operations.

func (c *Coordinator) StartTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Start()
}

func (c *Coordinator) PauseTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Pause()
}

func (c *Coordinator) ResetTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Reset()
}

func (c *Coordinator) SwitchTimerMode(m timer.Mode) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.SwitchMode(m)
}

func (c *Coordinator) SetTimerConfig(cfg timer.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.SetConfig(cfg)
}

// TickTimer advances the countdown by one second and routes a finished
// Work interval to the reward engine.
func (c *Coordinator) TickTimer() TickResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	completed := c.session.Tick()
	if completed == nil {
		return TickResult{}
	}
	res := c.rewards.OnFocusCompleted(completed.Minutes)
	c.dispatchLocked(FocusCompletedEvent{Minutes: completed.Minutes})
	return TickResult{Completed: completed, Reward: &res}
}

// Snapshots for rendering.

func (c *Coordinator) Timer() TimerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return TimerState{
		Mode:             c.session.Mode(),
		RemainingSeconds: c.session.RemainingSeconds(),
		IntervalSeconds:  c.session.IntervalSeconds(),
		Running:          c.session.Running(),
		Progress:         c.session.Progress(),
		Config:           c.session.Config(),
	}
}

func (c *Coordinator) Stats() reward.Stats {
	return c.rewards.Stats()
}

func (c *Coordinator) SetStreak(days int) {
	c.rewards.SetStreak(days)
}

func (c *Coordinator) Tasks() []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.List()
}

func (c *Coordinator) Task(id string) (task.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.Get(id)
}

func (c *Coordinator) UpNext(n int) []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.UpNext(n)
}

func (c *Coordinator) CompletionRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tasks.CompletionRate()
}
