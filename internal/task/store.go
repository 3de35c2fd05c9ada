package task

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Draft carries the fields a task can be created with. Zero values fall
// back to defaults; Title falls back to the raw user input upstream.
type Draft struct {
	Title           string
	Description     string
	Priority        Priority
	DueDate         time.Time
	DurationMinutes int
	EnergyLevel     EnergyLevel
	Tags            []string
}

// Store owns the task collection for the lifetime of the process.
// All mutations are serialized; returned tasks are copies.
type Store struct {
	mu      sync.Mutex
	tasks   []*Task
	byID    map[string]*Task
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
}

func NewStore() *Store {
	return newStore(time.Now)
}

// NewStoreWithClock injects the clock used for CreatedAt, for tests.
func NewStoreWithClock(now func() time.Time) *Store {
	return newStore(now)
}

func newStore(now func() time.Time) *Store {
	return &Store{
		byID:    map[string]*Task{},
		now:     now,
		// Monotonic entropy keeps ids unique and creation-ordered even
		// within the same millisecond.
		entropy: ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(s.now()), s.entropy).String()
}

// Create assigns a fresh id and creation timestamp and stores the task.
// It never fails: missing fields are defaulted.
func (s *Store) Create(d Draft) Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Task{
		ID:              s.newID(),
		Title:           strings.TrimSpace(d.Title),
		Description:     d.Description,
		Priority:        d.Priority,
		Status:          StatusTodo,
		DueDate:         d.DueDate,
		DurationMinutes: d.DurationMinutes,
		EnergyLevel:     d.EnergyLevel,
		Tags:            append([]string(nil), d.Tags...),
		CreatedAt:       s.now(),
	}
	if !t.Priority.IsValid() {
		t.Priority = DefaultPriority
	}
	if !t.EnergyLevel.IsValid() {
		t.EnergyLevel = DefaultEnergy
	}
	if t.DurationMinutes <= 0 {
		t.DurationMinutes = DefaultDurationMinutes
	}
	if t.DueDate.IsZero() {
		t.DueDate = s.now()
	}

	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
	return copyTask(t)
}

// ToggleComplete flips a task between Completed and Todo and reports the
// direction. Unknown ids are a no-op (ok=false), not an error.
func (s *Store) ToggleComplete(id string) (StatusChange, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return "", false
	}
	if t.Status == StatusCompleted {
		t.Status = StatusTodo
		return ChangeReopened, true
	}
	t.Status = StatusCompleted
	return ChangeCompleted, true
}

// Delete removes the task unconditionally. Deleting a completed task does
// not claw back rewards; unknown ids are a no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return
	}
	delete(s.byID, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
}

// AttachSubtasks replaces the task's subtask list with one fresh incomplete
// subtask per title. Re-invoking with the same titles yields the same count.
func (s *Store) AttachSubtasks(id string, titles []string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return Task{}, false
	}
	subs := make([]SubTask, 0, len(titles))
	for _, title := range titles {
		subs = append(subs, SubTask{
			ID:    s.newID(),
			Title: title,
		})
	}
	t.Subtasks = subs
	return copyTask(t), true
}

// ToggleSubtask flips a single subtask's completion. It has no effect on
// the parent task's status or on rewards.
func (s *Store) ToggleSubtask(taskID, subtaskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[taskID]
	if !ok {
		return false
	}
	for i := range t.Subtasks {
		if t.Subtasks[i].ID == subtaskID {
			t.Subtasks[i].Completed = !t.Subtasks[i].Completed
			return true
		}
	}
	return false
}

func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return Task{}, false
	}
	return copyTask(t), true
}

// List returns all tasks newest-first (CreatedAt descending, id as
// tiebreaker — ULIDs sort by creation time).
func (s *Store) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(nil)
}

// ListByStatus backs the "up next" and "completed" views.
func (s *Store) ListByStatus(status Status) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked(func(t *Task) bool { return t.Status == status })
}

// UpNext returns up to n non-completed tasks, newest first.
func (s *Store) UpNext(n int) []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.sortedLocked(func(t *Task) bool { return t.Status != StatusCompleted })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CompletionRate reports the completed fraction in [0,1]; an empty store
// counts as zero.
func (s *Store) CompletionRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range s.tasks {
		if t.Status == StatusCompleted {
			done++
		}
	}
	return float64(done) / float64(len(s.tasks))
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *Store) sortedLocked(keep func(*Task) bool) []Task {
	var out []Task
	for _, t := range s.tasks {
		if keep != nil && !keep(t) {
			continue
		}
		out = append(out, copyTask(t))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func copyTask(t *Task) Task {
	c := *t
	c.Tags = append([]string(nil), t.Tags...)
	c.Subtasks = append([]SubTask(nil), t.Subtasks...)
	return c
}
