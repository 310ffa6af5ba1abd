package usecase

import (
	"context"
	"fmt"
	"strings"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
)

// Update applies a partial edit.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, id string, input task.UpdateInput) (model.Task, error) {
	opt := repository.UpdateTaskOptions{
		Notes:      input.Notes,
		DueAt:      input.DueAt,
		ClearDueAt: input.ClearDue,
	}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return model.Task{}, task.ErrEmptyTitle
		}
		opt.Title = &title
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return model.Task{}, task.ErrInvalidPriority
		}
		p := int(*input.Priority)
		opt.Priority = &p
	}

	t, err := uc.getTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	reschedule := !t.IsDone() && (opt.Title != nil || opt.Notes != nil || opt.DueAt != nil || opt.ClearDueAt)
	if reschedule {
		uc.cancelReminder(ctx, t)
		noReminder := ""
		opt.ReminderID = &noReminder
	}

	updated, err := uc.repo.UpdateTask(ctx, t.ID, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: user=%s task=%s: %v", sc.UserID, t.ID, err)
		return model.Task{}, fmt.Errorf("update task %s: %w", t.ID, err)
	}

	uc.l.Infof(ctx, "task.usecase.Update: user=%s task=%s", sc.UserID, t.ID)
	if reschedule {
		return uc.scheduleReminder(ctx, updated), nil
	}
	return updated, nil
}

// Delete removes the task after cancelling its reminder.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return err
	}

	uc.cancelReminder(ctx, t)
	if err := uc.repo.DeleteTask(ctx, t.ID); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: user=%s task=%s: %v", sc.UserID, t.ID, err)
		return fmt.Errorf("delete task %s: %w", t.ID, err)
	}

	uc.l.Infof(ctx, "task.usecase.Delete: user=%s task=%s", sc.UserID, t.ID)
	return nil
}
