package usecase

import (
	"context"
	"strings"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
)

// Chips computes the chip dates for timezone.
func (uc *implUseCase) Chips(ctx context.Context, timezone string) (task.ChipsOutput, error) {
	tz := uc.timezoneOr(timezone)
	return task.ChipsOutput{
		Timezone: uc.now(tz).Location().String(),
		Dates:    uc.parser.ChipDates(tz),
	}, nil
}

// CreateFromChip stores the trimmed text verbatim as the title. The quick-add
// grammar is not applied, so "#tags" and "!high" stay in the title.
func (uc *implUseCase) CreateFromChip(ctx context.Context, sc model.Scope, input task.CreateFromChipInput) (model.Task, error) {
	title := strings.TrimSpace(input.Text)
	if title == "" {
		return model.Task{}, task.ErrEmptyInput
	}

	tz := uc.timezoneOr(input.Timezone)
	due, ok := uc.parser.ChipDates(tz).Pick(input.Chip)
	if !ok {
		return model.Task{}, task.ErrUnknownChip
	}

	return uc.createWithTags(ctx, sc, repository.CreateTaskOptions{
		Title:    title,
		DueAt:    &due,
		Timezone: due.Location().String(),
	}, nil)
}
