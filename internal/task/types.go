package task

import "time"

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// DefaultPriority is used when user input is missing/invalid.
const DefaultPriority Priority = PriorityMedium

type Status string

const (
	StatusTodo       Status = "Todo"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "Low"
	EnergyMedium EnergyLevel = "Medium"
	EnergyHigh   EnergyLevel = "High"
)

func (e EnergyLevel) IsValid() bool {
	switch e {
	case EnergyLow, EnergyMedium, EnergyHigh:
		return true
	default:
		return false
	}
}

const DefaultEnergy EnergyLevel = EnergyMedium

// DefaultDurationMinutes is the estimated effort assumed when none is given.
const DefaultDurationMinutes = 30

type SubTask struct {
	ID        string
	Title     string
	Completed bool
}

type Task struct {
	ID              string
	Title           string
	Description     string
	Priority        Priority
	Status          Status
	DueDate         time.Time
	DurationMinutes int
	EnergyLevel     EnergyLevel
	Tags            []string
	Subtasks        []SubTask
	CreatedAt       time.Time
}

// StatusChange reports which direction ToggleComplete flipped a task,
// so the caller can decide whether a reward applies.
type StatusChange string

const (
	ChangeCompleted StatusChange = "completed"
	ChangeReopened  StatusChange = "reopened"
)
