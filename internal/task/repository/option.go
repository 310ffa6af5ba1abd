package repository

import (
	"strings"
	"time"

	"quick-task-management/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title    string
	Notes    string
	Priority int
	DueAt    *time.Time
	Timezone string
}

// UpdateTaskOptions holds a partial update. Nil fields are left untouched.
// ClearDueAt removes the due date and any snooze; DueAt, when also set, wins.
type UpdateTaskOptions struct {
	Title       *string
	Notes       *string
	Priority    *int
	Status      *model.TaskStatus
	ClearDueAt  bool
	DueAt       *time.Time
	ReminderID  *string
	SnoozeUntil *time.Time
	CompletedAt *time.Time
}

// ListTasksOptions filters a task listing. Zero values disable a filter.
type ListTasksOptions struct {
	Status  model.TaskStatus
	HasDue  *bool
	DueFrom *time.Time // inclusive
	DueTo   *time.Time // exclusive
	Tag     string
	Query   string // case-insensitive substring of title or notes
	Limit   int
}

// Match reports whether t satisfies every filter in opt except Limit.
func (opt ListTasksOptions) Match(t model.Task) bool {
	if opt.Status != "" && t.Status != opt.Status {
		return false
	}
	if opt.HasDue != nil && (t.DueAt != nil) != *opt.HasDue {
		return false
	}
	if opt.DueFrom != nil && (t.DueAt == nil || t.DueAt.Before(*opt.DueFrom)) {
		return false
	}
	if opt.DueTo != nil && (t.DueAt == nil || !t.DueAt.Before(*opt.DueTo)) {
		return false
	}
	if opt.Tag != "" && !hasTag(t.Tags, opt.Tag) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(opt.Query)); q != "" {
		if !strings.Contains(strings.ToLower(t.Title), q) && !strings.Contains(strings.ToLower(t.Notes), q) {
			return false
		}
	}
	return true
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
