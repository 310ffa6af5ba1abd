package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusTodo TaskStatus = "todo"
	TaskStatusDone TaskStatus = "done"
)

// Task is a persisted task.
type Task struct {
	ID          string     // Repository ID (uuid for the memory store, memo uid for Memos)
	Title       string
	Notes       string
	Status      TaskStatus
	Priority    int        // 0 none, 1 low, 2 medium, 3 high
	DueAt       *time.Time // nil for timeless tasks
	Timezone    string     // IANA zone the due date was resolved in
	Tags        []string
	ReminderID  string // Scheduler reference, empty when no reminder is registered
	SnoozeUntil *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	URL         string // Deep link to the backing store UI, if any
}

// IsDone reports whether the task is completed.
func (t Task) IsDone() bool {
	return t.Status == TaskStatusDone
}
