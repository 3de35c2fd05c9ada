package reward

import (
	"sync"

	"flowquest/internal/task"
)

const (
	// TaskBaseXP is granted for every task completion.
	TaskBaseXP = 100

	// HighPriorityBonusXP is the extra grant for High-priority tasks.
	// Urgent intentionally grants no bonus.
	HighPriorityBonusXP = 50

	// CoinsPerTask is the currency grant per completion.
	CoinsPerTask = 10

	// XPPerFocusMinute rewards finished Work intervals.
	XPPerFocusMinute = 2

	// LevelThresholdCoef: the next level is reached once XP exceeds
	// level * LevelThresholdCoef.
	LevelThresholdCoef = 1000
)

// Stats is the gamification state. It is mutated only by the Engine in
// response to events; display layers read snapshots.
type Stats struct {
	XP             int
	Level          int
	Streak         int
	TasksCompleted int
	FocusMinutes   int
	Coins          int
}

// XPToNextLevel is the remaining XP until the next level threshold.
func (s Stats) XPToNextLevel() int {
	left := s.Level*LevelThresholdCoef - s.XP
	if left < 0 {
		return 0
	}
	return left
}

// LevelProgress is the fraction of the current level band already earned,
// clamped to [0,1], for progress-bar display.
func (s Stats) LevelProgress() float64 {
	base := (s.Level - 1) * LevelThresholdCoef
	span := s.Level*LevelThresholdCoef - base
	p := float64(s.XP-base) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Result reports what a single event granted.
type Result struct {
	XPAwarded    int
	CoinsAwarded int
	LevelBefore  int
	LevelAfter   int
	LeveledUp    bool
}

// Engine derives stats from completion events. It holds no timers; events
// arrive from the session coordinator.
type Engine struct {
	mu    sync.Mutex
	stats Stats
}

func NewEngine() *Engine {
	return &Engine{stats: Stats{Level: 1}}
}

// OnTaskCompleted grants the completion reward. Rewards are granted exactly
// once per completion event and are never reversed by reopening.
func (e *Engine) OnTaskCompleted(p task.Priority) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	xp := TaskBaseXP
	if p == task.PriorityHigh {
		xp += HighPriorityBonusXP
	}

	before := e.stats.Level
	e.stats.XP += xp
	e.stats.TasksCompleted++
	e.stats.Coins += CoinsPerTask
	e.levelUpLocked()

	return Result{
		XPAwarded:    xp,
		CoinsAwarded: CoinsPerTask,
		LevelBefore:  before,
		LevelAfter:   e.stats.Level,
		LeveledUp:    e.stats.Level > before,
	}
}

// OnTaskReopened intentionally does not claw back XP, coins or the task
// count. Toggling Completed -> Todo only reverts the task's status.
func (e *Engine) OnTaskReopened() Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Result{LevelBefore: e.stats.Level, LevelAfter: e.stats.Level}
}

// OnFocusCompleted grants focus-minute rewards for a finished Work interval.
func (e *Engine) OnFocusCompleted(minutes int) Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	if minutes < 0 {
		minutes = 0
	}
	xp := minutes * XPPerFocusMinute

	before := e.stats.Level
	e.stats.FocusMinutes += minutes
	e.stats.XP += xp
	e.levelUpLocked()

	return Result{
		XPAwarded:   xp,
		LevelBefore: before,
		LevelAfter:  e.stats.Level,
		LeveledUp:   e.stats.Level > before,
	}
}

// levelUpLocked advances at most one level per triggering event, however
// far XP overshoots the threshold.
func (e *Engine) levelUpLocked() {
	if e.stats.XP > e.stats.Level*LevelThresholdCoef {
		e.stats.Level++
	}
}

// SetStreak stores the consecutive-day counter maintained by the external
// daily-rollover collaborator.
func (e *Engine) SetStreak(days int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if days < 0 {
		days = 0
	}
	e.stats.Streak = days
}

// Stats returns a snapshot for display.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stats
}
