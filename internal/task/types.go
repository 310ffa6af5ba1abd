package task

import (
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/pkg/quickadd"
)

// QuickAddInput is the input for creating a task from a quick-add line.
type QuickAddInput struct {
	Text     string
	Timezone string // IANA name, empty for the configured default
}

// QuickAddOutput is the created task together with the parse it came from.
type QuickAddOutput struct {
	Task   model.Task
	Parsed quickadd.ParsedTask
}

// PreviewInput is the input for a side-effect free parse.
type PreviewInput struct {
	Text     string
	Timezone string
}

// ChipsOutput carries the chip dates and the zone they were computed in.
type ChipsOutput struct {
	Timezone string
	Dates    quickadd.ChipDates
}

// CreateFromChipInput is the input for the chip flow.
type CreateFromChipInput struct {
	Text     string
	Chip     string // today, tonight, tomorrow or next_week
	Timezone string
}

// UpdateInput is a partial edit of a task. Nil fields are left untouched.
// ClearDue removes the due date; DueAt, when also set, wins.
type UpdateInput struct {
	Title    *string
	Notes    *string
	Priority *quickadd.Priority
	DueAt    *time.Time
	ClearDue bool
}

// Snooze presets.
const (
	SnoozeThirtyMinutes = "30m"
	SnoozeTomorrow      = "tomorrow"
)

// SnoozeMorningHour is the hour the "tomorrow" preset moves a task to.
const SnoozeMorningHour = 9

// SnoozeInput selects either a preset or an explicit time. Until wins when both are set.
type SnoozeInput struct {
	Preset   string
	Until    *time.Time
	Timezone string
}

// Task list views.
const (
	ViewAll       = "all"
	ViewOverdue   = "overdue"
	ViewToday     = "today"
	ViewWeek      = "week"
	ViewTimeless  = "timeless"
	ViewUpcoming  = "upcoming"
	ViewCompleted = "completed"
)

// CompletedViewLimit caps the completed view.
const CompletedViewLimit = 100

// ListInput is the input for listing tasks.
type ListInput struct {
	View     string // defaults to ViewAll
	Query    string
	Tag      string
	Timezone string
	Limit    int
}

// ListOutput is a page of tasks for a view.
type ListOutput struct {
	View  string
	Tasks []model.Task
	Count int
}
