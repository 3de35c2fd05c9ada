package app

import "flowquest/internal/task"

// Event is a completion signal routed to the reward engine. Dispatch is
// synchronous and in trigger order; each event reaches the reward engine
// exactly once.
type Event interface {
	isEvent()
}

type TaskCompletedEvent struct {
	TaskID   string
	Priority task.Priority
}

type TaskReopenedEvent struct {
	TaskID string
}

type FocusCompletedEvent struct {
	Minutes int
}

func (TaskCompletedEvent) isEvent()  {}
func (TaskReopenedEvent) isEvent()   {}
func (FocusCompletedEvent) isEvent() {}
