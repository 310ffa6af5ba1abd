package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/pkg/quickadd"
)

func strPtr(s string) *string { return &s }

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}

	t.Run("edits fields and moves the reminder", func(t *testing.T) {
		f := newFixture()
		created, err := f.uc.QuickAdd(ctx, sc, task.QuickAddInput{Text: "Stretch today"})
		require.NoError(t, err)

		due := baseNow.Add(3 * time.Hour)
		high := quickadd.PriorityHigh
		got, err := f.uc.Update(ctx, sc, created.Task.ID, task.UpdateInput{
			Title:    strPtr("  Stretch and breathe "),
			Notes:    strPtr("ten minutes"),
			Priority: &high,
			DueAt:    &due,
		})
		require.NoError(t, err)
		assert.Equal(t, "Stretch and breathe", got.Title)
		assert.Equal(t, "ten minutes", got.Notes)
		assert.Equal(t, int(quickadd.PriorityHigh), got.Priority)
		require.NotNil(t, got.DueAt)
		assert.True(t, got.DueAt.Equal(due))
		assert.Equal(t, []string{"rem-1"}, f.scheduler.cancelled)
		assert.Equal(t, "rem-2", got.ReminderID)
		require.Len(t, f.scheduler.scheduled, 2)
		assert.Equal(t, "Stretch and breathe", f.scheduler.scheduled[1].Title)
	})

	t.Run("priority only keeps the reminder", func(t *testing.T) {
		f := newFixture()
		created, err := f.uc.QuickAdd(ctx, sc, task.QuickAddInput{Text: "Stretch today"})
		require.NoError(t, err)

		low := quickadd.PriorityLow
		got, err := f.uc.Update(ctx, sc, created.Task.ID, task.UpdateInput{Priority: &low})
		require.NoError(t, err)
		assert.Equal(t, 1, got.Priority)
		assert.Equal(t, "rem-1", got.ReminderID)
		assert.Empty(t, f.scheduler.cancelled)
	})

	t.Run("clearing the due date drops the reminder", func(t *testing.T) {
		f := newFixture()
		created, err := f.uc.QuickAdd(ctx, sc, task.QuickAddInput{Text: "Stretch today"})
		require.NoError(t, err)

		got, err := f.uc.Update(ctx, sc, created.Task.ID, task.UpdateInput{ClearDue: true})
		require.NoError(t, err)
		assert.Nil(t, got.DueAt)
		assert.Empty(t, got.ReminderID)
		assert.Equal(t, []string{"rem-1"}, f.scheduler.cancelled)
		assert.Len(t, f.scheduler.scheduled, 1)
	})

	t.Run("rejected", func(t *testing.T) {
		f := newFixture()
		created, err := f.uc.QuickAdd(ctx, sc, task.QuickAddInput{Text: "Stretch"})
		require.NoError(t, err)

		_, err = f.uc.Update(ctx, sc, created.Task.ID, task.UpdateInput{Title: strPtr("   ")})
		assert.ErrorIs(t, err, task.ErrEmptyTitle)

		bad := quickadd.Priority(7)
		_, err = f.uc.Update(ctx, sc, created.Task.ID, task.UpdateInput{Priority: &bad})
		assert.ErrorIs(t, err, task.ErrInvalidPriority)

		_, err = f.uc.Update(ctx, sc, "missing", task.UpdateInput{Notes: strPtr("x")})
		assert.ErrorIs(t, err, task.ErrTaskNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	f := newFixture()

	created, err := f.uc.QuickAdd(ctx, sc, task.QuickAddInput{Text: "Stretch today"})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, sc, created.Task.ID))
	assert.Equal(t, []string{"rem-1"}, f.scheduler.cancelled)

	_, err = f.uc.Get(ctx, created.Task.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	assert.ErrorIs(t, f.uc.Delete(ctx, sc, created.Task.ID), task.ErrTaskNotFound)
}
