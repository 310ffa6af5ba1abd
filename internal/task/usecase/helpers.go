package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/internal/reminder"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
)

// timezoneOr returns tz, or the configured default when tz is empty.
func (uc *implUseCase) timezoneOr(tz string) string {
	if tz == "" {
		return uc.timezone
	}
	return tz
}

// now returns the current time in the resolved zone for tz.
func (uc *implUseCase) now(tz string) time.Time {
	return uc.parser.Now(uc.timezoneOr(tz))
}

// createWithTags stores a task, attaches tags one by one and schedules a
// reminder when the task has a due date. Only the create itself can fail the
// call; tag and reminder failures are logged and the task is returned as stored.
func (uc *implUseCase) createWithTags(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions, tags []string) (model.Task, error) {
	t, err := uc.repo.CreateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.create: user=%s title=%q: %v", sc.UserID, opt.Title, err)
		return model.Task{}, fmt.Errorf("create task: %w", err)
	}

	for _, tag := range tags {
		if err := uc.repo.AddTag(ctx, t.ID, tag); err != nil {
			uc.l.Warnf(ctx, "task.usecase.create: failed to add tag %q to task %s (non-fatal): %v", tag, t.ID, err)
			continue
		}
		t.Tags = append(t.Tags, tag)
	}

	if t.DueAt != nil {
		t = uc.scheduleReminder(ctx, t)
	}

	uc.l.Infof(ctx, "task.usecase.create: user=%s task=%s tags=%d due=%v", sc.UserID, t.ID, len(t.Tags), t.DueAt != nil)
	return t, nil
}

// scheduleReminder registers a reminder for t and stores its ID on the task.
// Failures are logged and t is returned unchanged.
func (uc *implUseCase) scheduleReminder(ctx context.Context, t model.Task) model.Task {
	if uc.scheduler == nil || t.DueAt == nil {
		return t
	}

	id, err := uc.scheduler.Schedule(ctx, reminder.Reminder{
		TaskID:   t.ID,
		Title:    t.Title,
		Notes:    t.Notes,
		DueAt:    *t.DueAt,
		Timezone: t.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.scheduleReminder: task=%s (non-fatal): %v", t.ID, err)
		return t
	}

	updated, err := uc.repo.UpdateTask(ctx, t.ID, repository.UpdateTaskOptions{ReminderID: &id})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.scheduleReminder: failed to store reminder %s on task %s (non-fatal): %v", id, t.ID, err)
		t.ReminderID = id
		return t
	}
	return updated
}

// cancelReminder drops the task's reminder, if any. Failures are logged.
func (uc *implUseCase) cancelReminder(ctx context.Context, t model.Task) {
	if uc.scheduler == nil || t.ReminderID == "" {
		return
	}
	if err := uc.scheduler.Cancel(ctx, t.ReminderID); err != nil {
		uc.l.Warnf(ctx, "task.usecase.cancelReminder: task=%s reminder=%s (non-fatal): %v", t.ID, t.ReminderID, err)
	}
}

func (uc *implUseCase) getTask(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "task.usecase.getTask: id=%s: %v", id, err)
		return model.Task{}, fmt.Errorf("get task %s: %w", id, err)
	}
	return t, nil
}
