package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"flowquest/internal/timer"
)

const namespace = "FLOWQUEST"

// Env is the process configuration, loaded from FLOWQUEST_* variables.
// Everything has a default; the app runs unconfigured.
type Env struct {
	// Gemini settings for the task interpretation service. Without an
	// API key the app degrades to static fallbacks.
	GeminiAPIKey   string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel    string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// Focus session defaults, overridable in the app.
	WorkMinutes       int `envconfig:"WORK_MINUTES" default:"25"`
	ShortBreakMinutes int `envconfig:"SHORT_BREAK_MINUTES" default:"5"`
	LongBreakMinutes  int `envconfig:"LONG_BREAK_MINUTES" default:"15"`

	// DisplayName personalizes the dashboard greeting.
	DisplayName string `envconfig:"DISPLAY_NAME"`
}

func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(namespace, &env); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &env, nil
}

func (e *Env) SlogLevel() slog.Level {
	if e == nil {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// TimerConfig maps the env defaults onto a focus session configuration.
// The engine clamps non-positive values.
func (e *Env) TimerConfig() timer.Config {
	return timer.Config{
		WorkMinutes:       e.WorkMinutes,
		ShortBreakMinutes: e.ShortBreakMinutes,
		LongBreakMinutes:  e.LongBreakMinutes,
	}
}
