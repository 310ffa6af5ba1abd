package task

import (
	"context"

	"quick-task-management/internal/model"
	"quick-task-management/pkg/quickadd"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// QuickAdd parses a quick-add line, stores the task with its tags and
	// schedules a reminder when the line carried a due date.
	QuickAdd(ctx context.Context, sc model.Scope, input QuickAddInput) (QuickAddOutput, error)

	// Preview parses a quick-add line without side effects.
	Preview(ctx context.Context, input PreviewInput) (quickadd.ParsedTask, error)

	// Chips returns the one-tap due dates for a timezone.
	Chips(ctx context.Context, timezone string) (ChipsOutput, error)

	// CreateFromChip stores the raw text as a title due at the selected chip date.
	CreateFromChip(ctx context.Context, sc model.Scope, input CreateFromChipInput) (model.Task, error)

	Get(ctx context.Context, id string) (model.Task, error)

	// Update edits title, notes, priority or due date. A changed due date,
	// title or notes replaces the reminder of an open task.
	Update(ctx context.Context, sc model.Scope, id string, input UpdateInput) (model.Task, error)

	// Delete removes the task and cancels its reminder.
	Delete(ctx context.Context, sc model.Scope, id string) error

	Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Snooze(ctx context.Context, sc model.Scope, id string, input SnoozeInput) (model.Task, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}
