// Package assist talks to the task interpretation service: natural-language
// task parsing, subtask breakdown and the daily motivation quote. Every
// operation is best-effort; callers always have a usable fallback.
package assist

import (
	"context"
	"strings"

	"flowquest/internal/reward"
	"flowquest/internal/task"
)

// MaxBreakdownItems caps a breakdown at five subtask titles.
const MaxBreakdownItems = 5

// FallbackMotivation is shown when no quote could be produced.
const FallbackMotivation = "Great things take time."

// Interpreter is the task interpretation service contract.
type Interpreter interface {
	// ParseTask extracts a structured draft from free text. Missing
	// fields are filled by Normalize; callers treat any error as a cue
	// to fall back to the raw input.
	ParseTask(ctx context.Context, freeText string) (task.Draft, error)

	// BreakdownTask returns up to MaxBreakdownItems subtask titles.
	// An empty result is valid and means no subtasks were produced.
	BreakdownTask(ctx context.Context, title string) ([]string, error)

	// DailyMotivation returns a short quote for the given stats.
	DailyMotivation(ctx context.Context, stats reward.Stats) (string, error)
}

// Normalize fills a draft's missing fields with the documented defaults and
// falls back to the raw input as title when the service yielded none.
func Normalize(d task.Draft, raw string) task.Draft {
	if strings.TrimSpace(d.Title) == "" {
		d.Title = strings.TrimSpace(raw)
	}
	if !d.Priority.IsValid() {
		d.Priority = task.DefaultPriority
	}
	if !d.EnergyLevel.IsValid() {
		d.EnergyLevel = task.DefaultEnergy
	}
	if d.DurationMinutes <= 0 {
		d.DurationMinutes = task.DefaultDurationMinutes
	}
	return d
}

// FallbackDraft is the manual-entry degradation used when the service
// fails entirely.
func FallbackDraft(raw string) task.Draft {
	return Normalize(task.Draft{}, raw)
}

func limitBreakdown(titles []string) []string {
	out := titles[:0:len(titles)]
	for _, s := range titles {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == MaxBreakdownItems {
			break
		}
	}
	return out
}

// Static is the no-API-key interpreter: canned but usable output, so the
// app degrades to manual entry instead of failing.
type Static struct{}

func (Static) ParseTask(_ context.Context, freeText string) (task.Draft, error) {
	d := FallbackDraft(freeText)
	d.Tags = []string{"Quick Add"}
	return d, nil
}

func (Static) BreakdownTask(_ context.Context, _ string) ([]string, error) {
	return []string{"Define scope", "Research", "Execute"}, nil
}

func (Static) DailyMotivation(_ context.Context, _ reward.Stats) (string, error) {
	return "Focus on being productive instead of busy.", nil
}
