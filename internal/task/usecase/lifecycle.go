package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
	"quick-task-management/pkg/datemath"
)

// Get returns a task by ID.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Task, error) {
	return uc.getTask(ctx, id)
}

// Complete marks the task done and cancels its reminder. Completing a done task is a no-op.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if t.IsDone() {
		return t, nil
	}

	uc.cancelReminder(ctx, t)

	status := model.TaskStatusDone
	now := uc.now(t.Timezone)
	noReminder := ""
	updated, err := uc.repo.UpdateTask(ctx, t.ID, repository.UpdateTaskOptions{
		Status:      &status,
		CompletedAt: &now,
		ReminderID:  &noReminder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Complete: user=%s task=%s: %v", sc.UserID, t.ID, err)
		return model.Task{}, fmt.Errorf("complete task %s: %w", t.ID, err)
	}

	uc.l.Infof(ctx, "task.usecase.Complete: user=%s task=%s", sc.UserID, t.ID)
	return updated, nil
}

// Snooze moves the task's due date and reschedules its reminder.
func (uc *implUseCase) Snooze(ctx context.Context, sc model.Scope, id string, input task.SnoozeInput) (model.Task, error) {
	t, err := uc.getTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if t.IsDone() {
		return model.Task{}, task.ErrTaskAlreadyDone
	}

	tz := input.Timezone
	if tz == "" {
		tz = t.Timezone
	}
	until, err := snoozeTarget(uc.now(tz), input)
	if err != nil {
		return model.Task{}, err
	}

	uc.cancelReminder(ctx, t)

	noReminder := ""
	updated, err := uc.repo.UpdateTask(ctx, t.ID, repository.UpdateTaskOptions{
		DueAt:       &until,
		SnoozeUntil: &until,
		ReminderID:  &noReminder,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Snooze: user=%s task=%s: %v", sc.UserID, t.ID, err)
		return model.Task{}, fmt.Errorf("snooze task %s: %w", t.ID, err)
	}

	uc.l.Infof(ctx, "task.usecase.Snooze: user=%s task=%s until=%s", sc.UserID, t.ID, until.Format(time.RFC3339))
	return uc.scheduleReminder(ctx, updated), nil
}

// snoozeTarget resolves a snooze request against now. Besides the fixed presets,
// any relative day phrase ("next monday", "in 3 days") moves the task to that
// day's morning.
func snoozeTarget(now time.Time, input task.SnoozeInput) (time.Time, error) {
	if input.Until != nil {
		if !input.Until.After(now) {
			return time.Time{}, task.ErrSnoozeInPast
		}
		return input.Until.In(now.Location()), nil
	}

	switch strings.ToLower(strings.TrimSpace(input.Preset)) {
	case task.SnoozeThirtyMinutes, "":
		return now.Add(30 * time.Minute), nil
	case task.SnoozeTomorrow:
		return datemath.At(datemath.AddDays(now, 1), task.SnoozeMorningHour, 0), nil
	}

	day, err := datemath.NewParserIn(now.Location()).Parse(input.Preset, now)
	if err != nil {
		return time.Time{}, task.ErrUnknownSnooze
	}
	until := datemath.At(day, task.SnoozeMorningHour, 0)
	if !until.After(now) {
		return time.Time{}, task.ErrSnoozeInPast
	}
	return until, nil
}
