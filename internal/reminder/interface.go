package reminder

import "context"

// Scheduler registers and removes due-date reminders for tasks.
type Scheduler interface {
	// Schedule registers a reminder and returns its scheduler-specific ID.
	Schedule(ctx context.Context, r Reminder) (string, error)
	// Cancel removes a previously scheduled reminder. Unknown IDs are not an error.
	Cancel(ctx context.Context, id string) error
}
