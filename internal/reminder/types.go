package reminder

import (
	"errors"
	"time"
)

// ErrNoDueDate is returned when a reminder without a due date is scheduled.
var ErrNoDueDate = errors.New("reminder has no due date")

// Reminder describes a notification for a task at its due time.
type Reminder struct {
	TaskID   string
	Title    string
	Notes    string
	DueAt    time.Time
	Timezone string
}
