package task

import (
	"testing"
	"time"
)

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStoreWithClock(func() time.Time { return now })
	return s, &now
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		created := s.Create(Draft{Title: "t"})
		if created.ID == "" {
			t.Fatalf("empty id at %d", i)
		}
		if seen[created.ID] {
			t.Fatalf("duplicate id %q at %d", created.ID, i)
		}
		seen[created.ID] = true
	}
}

func TestCreateDefaults(t *testing.T) {
	s, now := newTestStore(t)

	got := s.Create(Draft{Title: "  Write report  "})
	if got.Title != "Write report" {
		t.Fatalf("title=%q", got.Title)
	}
	if got.Status != StatusTodo {
		t.Fatalf("status=%q, want Todo", got.Status)
	}
	if got.Priority != PriorityMedium {
		t.Fatalf("priority=%q, want Medium", got.Priority)
	}
	if got.EnergyLevel != EnergyMedium {
		t.Fatalf("energy=%q, want Medium", got.EnergyLevel)
	}
	if got.DurationMinutes != DefaultDurationMinutes {
		t.Fatalf("duration=%d, want %d", got.DurationMinutes, DefaultDurationMinutes)
	}
	if !got.CreatedAt.Equal(*now) {
		t.Fatalf("createdAt=%v, want %v", got.CreatedAt, *now)
	}
	if len(got.Subtasks) != 0 {
		t.Fatalf("subtasks=%d, want none", len(got.Subtasks))
	}
}

func TestToggleCompleteIsItsOwnInverseOnStatus(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.Create(Draft{Title: "x"})

	change, ok := s.ToggleComplete(created.ID)
	if !ok || change != ChangeCompleted {
		t.Fatalf("first toggle: change=%q ok=%v", change, ok)
	}
	got, _ := s.Get(created.ID)
	if got.Status != StatusCompleted {
		t.Fatalf("status=%q, want Completed", got.Status)
	}

	change, ok = s.ToggleComplete(created.ID)
	if !ok || change != ChangeReopened {
		t.Fatalf("second toggle: change=%q ok=%v", change, ok)
	}
	got, _ = s.Get(created.ID)
	if got.Status != StatusTodo {
		t.Fatalf("status=%q, want Todo", got.Status)
	}
}

func TestToggleCompleteUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	s.Create(Draft{Title: "x"})

	if _, ok := s.ToggleComplete("nope"); ok {
		t.Fatalf("expected ok=false for unknown id")
	}
	if s.Len() != 1 {
		t.Fatalf("len=%d, want 1", s.Len())
	}
}

func TestDeleteUnconditionally(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.Create(Draft{Title: "a"})
	b := s.Create(Draft{Title: "b"})
	s.ToggleComplete(b.ID)

	s.Delete(b.ID)
	s.Delete("unknown") // no-op
	if s.Len() != 1 {
		t.Fatalf("len=%d, want 1", s.Len())
	}
	if _, ok := s.Get(a.ID); !ok {
		t.Fatalf("remaining task missing")
	}
}

func TestAttachSubtasksIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.Create(Draft{Title: "x"})

	titles := []string{"A", "B"}
	got, ok := s.AttachSubtasks(created.ID, titles)
	if !ok {
		t.Fatalf("attach failed")
	}
	if len(got.Subtasks) != 2 {
		t.Fatalf("subtasks=%d, want 2", len(got.Subtasks))
	}

	got, _ = s.AttachSubtasks(created.ID, titles)
	if len(got.Subtasks) != 2 {
		t.Fatalf("subtasks after re-attach=%d, want 2", len(got.Subtasks))
	}
	for i, sub := range got.Subtasks {
		if sub.Completed {
			t.Fatalf("subtask %d starts completed", i)
		}
		if sub.Title != titles[i] {
			t.Fatalf("subtask %d title=%q, want %q", i, sub.Title, titles[i])
		}
	}
}

func TestToggleSubtaskDoesNotTouchParent(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.Create(Draft{Title: "x"})
	got, _ := s.AttachSubtasks(created.ID, []string{"A"})

	if !s.ToggleSubtask(created.ID, got.Subtasks[0].ID) {
		t.Fatalf("toggle subtask failed")
	}
	after, _ := s.Get(created.ID)
	if !after.Subtasks[0].Completed {
		t.Fatalf("subtask not completed")
	}
	if after.Status != StatusTodo {
		t.Fatalf("parent status=%q, want Todo", after.Status)
	}

	if s.ToggleSubtask(created.ID, "nope") {
		t.Fatalf("expected false for unknown subtask id")
	}
	if s.ToggleSubtask("nope", got.Subtasks[0].ID) {
		t.Fatalf("expected false for unknown task id")
	}
}

func TestListNewestFirstAndFilters(t *testing.T) {
	s, now := newTestStore(t)

	a := s.Create(Draft{Title: "a"})
	*now = now.Add(time.Minute)
	b := s.Create(Draft{Title: "b"})
	*now = now.Add(time.Minute)
	c := s.Create(Draft{Title: "c"})
	s.ToggleComplete(b.ID)

	all := s.List()
	if len(all) != 3 {
		t.Fatalf("len=%d, want 3", len(all))
	}
	if all[0].ID != c.ID || all[1].ID != b.ID || all[2].ID != a.ID {
		t.Fatalf("order=%s,%s,%s want c,b,a", all[0].Title, all[1].Title, all[2].Title)
	}

	done := s.ListByStatus(StatusCompleted)
	if len(done) != 1 || done[0].ID != b.ID {
		t.Fatalf("completed filter wrong: %v", done)
	}

	next := s.UpNext(1)
	if len(next) != 1 || next[0].ID != c.ID {
		t.Fatalf("up next wrong: %v", next)
	}

	if got := s.CompletionRate(); got < 0.33 || got > 0.34 {
		t.Fatalf("completion rate=%f", got)
	}
}

func TestListReturnsCopies(t *testing.T) {
	s, _ := newTestStore(t)
	created := s.Create(Draft{Title: "x", Tags: []string{"one"}})
	s.AttachSubtasks(created.ID, []string{"A"})

	out := s.List()
	out[0].Tags[0] = "mutated"
	out[0].Subtasks[0].Completed = true

	fresh, _ := s.Get(created.ID)
	if fresh.Tags[0] != "one" {
		t.Fatalf("tags aliased: %q", fresh.Tags[0])
	}
	if fresh.Subtasks[0].Completed {
		t.Fatalf("subtasks aliased")
	}
}

func TestParsePriorityAndEnergy(t *testing.T) {
	if got := ParsePriority(" HIGH "); got != PriorityHigh {
		t.Fatalf("ParsePriority=%q", got)
	}
	if got := ParsePriority("whatever"); got != DefaultPriority {
		t.Fatalf("ParsePriority fallback=%q", got)
	}
	if got := ParseEnergy("low"); got != EnergyLow {
		t.Fatalf("ParseEnergy=%q", got)
	}
	if got := ParseEnergy(""); got != DefaultEnergy {
		t.Fatalf("ParseEnergy fallback=%q", got)
	}
}
