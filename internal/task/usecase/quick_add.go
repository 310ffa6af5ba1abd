package usecase

import (
	"context"
	"strings"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
	"quick-task-management/pkg/quickadd"
)

// QuickAdd parses the line, creates the task, attaches its tags and schedules a reminder.
func (uc *implUseCase) QuickAdd(ctx context.Context, sc model.Scope, input task.QuickAddInput) (task.QuickAddOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return task.QuickAddOutput{}, task.ErrEmptyInput
	}

	tz := uc.timezoneOr(input.Timezone)
	parsed := uc.parser.Parse(input.Text, tz)
	if parsed.Title == "" {
		return task.QuickAddOutput{}, task.ErrEmptyTitle
	}

	uc.l.Debugf(ctx, "task.usecase.QuickAdd: user=%s priority=%s tags=%v due=%v", sc.UserID, parsed.Priority, parsed.Tags, parsed.DueAt)

	t, err := uc.createWithTags(ctx, sc, repository.CreateTaskOptions{
		Title:    parsed.Title,
		Priority: int(parsed.Priority),
		DueAt:    parsed.DueAt,
		Timezone: uc.now(tz).Location().String(),
	}, parsed.Tags)
	if err != nil {
		return task.QuickAddOutput{}, err
	}

	return task.QuickAddOutput{Task: t, Parsed: parsed}, nil
}

// Preview parses the line without touching storage.
func (uc *implUseCase) Preview(ctx context.Context, input task.PreviewInput) (quickadd.ParsedTask, error) {
	if strings.TrimSpace(input.Text) == "" {
		return quickadd.ParsedTask{}, task.ErrEmptyInput
	}
	return uc.parser.Parse(input.Text, uc.timezoneOr(input.Timezone)), nil
}
