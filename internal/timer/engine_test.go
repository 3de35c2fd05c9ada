package timer

import "testing"

func TestWorkIntervalCompletesAfterConfiguredTicks(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.Start()

	var completions []Completed
	for i := 0; i < 1500; i++ {
		if c := e.Tick(); c != nil {
			completions = append(completions, *c)
		}
	}

	if e.RemainingSeconds() != 0 {
		t.Fatalf("remaining=%d, want 0", e.RemainingSeconds())
	}
	if e.Running() {
		t.Fatalf("still running after expiry")
	}
	if len(completions) != 1 {
		t.Fatalf("completions=%d, want exactly 1", len(completions))
	}
	if completions[0].Minutes != 25 {
		t.Fatalf("minutes=%d, want 25", completions[0].Minutes)
	}

	// Further ticks while stopped do nothing.
	if c := e.Tick(); c != nil {
		t.Fatalf("tick after expiry produced completion")
	}
	if e.RemainingSeconds() != 0 {
		t.Fatalf("remaining drifted to %d", e.RemainingSeconds())
	}
}

func TestBreakIntervalEmitsNoCompletion(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.SwitchMode(ModeShortBreak)
	e.Start()

	for i := 0; i < 5*60; i++ {
		if c := e.Tick(); c != nil {
			t.Fatalf("break interval emitted completion at tick %d", i)
		}
	}
	if e.Running() {
		t.Fatalf("break still running at 0")
	}
}

func TestStartIsNoopWhenRunningOrExhausted(t *testing.T) {
	e := NewEngine(Config{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1})
	e.Start()
	e.Start() // no-op
	for i := 0; i < 60; i++ {
		e.Tick()
	}
	if e.RemainingSeconds() != 0 {
		t.Fatalf("remaining=%d, want 0", e.RemainingSeconds())
	}

	e.Start() // exhausted: needs Reset first
	if e.Running() {
		t.Fatalf("started with zero remaining")
	}
	e.Reset()
	e.Start()
	if !e.Running() {
		t.Fatalf("did not start after reset")
	}
}

func TestPausePreservesRemaining(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.Start()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	e.Pause()

	if e.Running() {
		t.Fatalf("still running after pause")
	}
	if got := e.RemainingSeconds(); got != 25*60-10 {
		t.Fatalf("remaining=%d, want %d", got, 25*60-10)
	}

	// Ticks while paused are no-ops: an explicit stop wins over an
	// in-flight tick.
	e.Tick()
	if got := e.RemainingSeconds(); got != 25*60-10 {
		t.Fatalf("paused tick decremented: remaining=%d", got)
	}
}

func TestSwitchModeDiscardsElapsedProgress(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.Start()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	if got := e.RemainingSeconds(); got != 24*60+50 {
		t.Fatalf("remaining=%d, want 24:50", got)
	}

	e.SwitchMode(ModeShortBreak)
	if e.Running() {
		t.Fatalf("running after switch")
	}
	if e.Mode() != ModeShortBreak {
		t.Fatalf("mode=%q", e.Mode())
	}
	if got := e.RemainingSeconds(); got != 5*60 {
		t.Fatalf("remaining=%d, want full short break", got)
	}
}

func TestSetConfigWhileIdleRecomputesRemaining(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.Start()
	for i := 0; i < 30; i++ {
		e.Tick()
	}
	e.Pause()

	e.SetConfig(Config{WorkMinutes: 50, ShortBreakMinutes: 5, LongBreakMinutes: 15})
	if got := e.RemainingSeconds(); got != 50*60 {
		t.Fatalf("remaining=%d, want 50:00", got)
	}
}

func TestSetConfigWhileRunningKeepsCurrentCountdown(t *testing.T) {
	e := NewEngine(DefaultConfig())
	e.Start()
	for i := 0; i < 100; i++ {
		e.Tick()
	}

	e.SetConfig(Config{WorkMinutes: 50, ShortBreakMinutes: 5, LongBreakMinutes: 15})
	if got := e.RemainingSeconds(); got != 25*60-100 {
		t.Fatalf("running countdown altered: remaining=%d", got)
	}

	// Completion still reports the interval's own duration.
	for e.Running() {
		if c := e.Tick(); c != nil {
			if c.Minutes != 25 {
				t.Fatalf("minutes=%d, want original 25", c.Minutes)
			}
		}
	}

	// The next entry of the mode picks up the new duration.
	e.Reset()
	if got := e.RemainingSeconds(); got != 50*60 {
		t.Fatalf("after reset remaining=%d, want 50:00", got)
	}
}

func TestInvalidConfigClampsToOneMinute(t *testing.T) {
	e := NewEngine(Config{WorkMinutes: 0, ShortBreakMinutes: -3, LongBreakMinutes: 15})
	if got := e.Config().WorkMinutes; got != 1 {
		t.Fatalf("work=%d, want 1", got)
	}
	if got := e.Config().ShortBreakMinutes; got != 1 {
		t.Fatalf("short=%d, want 1", got)
	}
	if got := e.RemainingSeconds(); got != 60 {
		t.Fatalf("remaining=%d, want 60", got)
	}
}

func TestProgressClamped(t *testing.T) {
	e := NewEngine(Config{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1})
	if got := e.Progress(); got != 0 {
		t.Fatalf("progress=%f, want 0", got)
	}
	e.Start()
	for i := 0; i < 30; i++ {
		e.Tick()
	}
	if got := e.Progress(); got != 0.5 {
		t.Fatalf("progress=%f, want 0.5", got)
	}
	for i := 0; i < 60; i++ {
		e.Tick()
	}
	if got := e.Progress(); got != 1 {
		t.Fatalf("progress=%f, want 1", got)
	}
}
