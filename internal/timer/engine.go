package timer

// Mode is the interval kind a focus session counts down.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeWork, ModeShortBreak, ModeLongBreak:
		return true
	default:
		return false
	}
}

// Config holds the user-editable interval durations. Non-positive values
// are clamped to one minute; the engine never holds an invalid config.
type Config struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
}

const (
	DefaultWorkMinutes       = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
)

func DefaultConfig() Config {
	return Config{
		WorkMinutes:       DefaultWorkMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
	}
}

func (c Config) clamped() Config {
	if c.WorkMinutes < 1 {
		c.WorkMinutes = 1
	}
	if c.ShortBreakMinutes < 1 {
		c.ShortBreakMinutes = 1
	}
	if c.LongBreakMinutes < 1 {
		c.LongBreakMinutes = 1
	}
	return c
}

func (c Config) minutesFor(m Mode) int {
	switch m {
	case ModeShortBreak:
		return c.ShortBreakMinutes
	case ModeLongBreak:
		return c.LongBreakMinutes
	default:
		return c.WorkMinutes
	}
}

// Completed reports a finished Work interval. Minutes is the interval's own
// duration, captured when the interval was entered.
type Completed struct {
	Minutes int
}

// Engine is the countdown state machine. It owns no goroutines and no
// clock: callers invoke Tick on a one-second cadence while running.
type Engine struct {
	cfg              Config
	mode             Mode
	remainingSeconds int
	intervalSeconds  int
	running          bool
}

func NewEngine(cfg Config) *Engine {
	e := &Engine{cfg: cfg.clamped(), mode: ModeWork}
	e.reload()
	return e
}

// reload re-enters the current mode with its configured duration.
func (e *Engine) reload() {
	e.intervalSeconds = e.cfg.minutesFor(e.mode) * 60
	e.remainingSeconds = e.intervalSeconds
}

func (e *Engine) Mode() Mode            { return e.mode }
func (e *Engine) Running() bool         { return e.running }
func (e *Engine) RemainingSeconds() int { return e.remainingSeconds }
func (e *Engine) IntervalSeconds() int  { return e.intervalSeconds }
func (e *Engine) Config() Config        { return e.cfg }

// Start begins the countdown. No-op when already running or when the
// interval is exhausted and needs a Reset first.
func (e *Engine) Start() {
	if e.running || e.remainingSeconds == 0 {
		return
	}
	e.running = true
}

// Pause stops the countdown preserving the remaining time.
func (e *Engine) Pause() {
	e.running = false
}

// Reset returns to Ready with the current mode's configured duration.
func (e *Engine) Reset() {
	e.running = false
	e.reload()
}

// SwitchMode forces Ready in the new mode with its full duration.
// Switching away from a running interval grants no partial credit.
func (e *Engine) SwitchMode(m Mode) {
	if !m.IsValid() {
		return
	}
	e.mode = m
	e.running = false
	e.reload()
}

// SetConfig stores the new configuration immediately. An in-progress
// interval keeps its original duration; when idle the active mode's
// remaining time is recomputed, discarding any partial countdown.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg = cfg.clamped()
	if !e.running {
		e.reload()
	}
}

// Tick decrements exactly one second. It is a no-op unless running. When a
// Work interval reaches zero it returns the completion exactly once; break
// intervals simply stop.
func (e *Engine) Tick() *Completed {
	if !e.running {
		return nil
	}
	e.remainingSeconds--
	if e.remainingSeconds > 0 {
		return nil
	}
	e.remainingSeconds = 0
	e.running = false
	if e.mode == ModeWork {
		return &Completed{Minutes: e.intervalSeconds / 60}
	}
	return nil
}

// Progress is the elapsed fraction of the interval, clamped to [0,1].
func (e *Engine) Progress() float64 {
	if e.intervalSeconds <= 0 {
		return 0
	}
	p := float64(e.intervalSeconds-e.remainingSeconds) / float64(e.intervalSeconds)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
