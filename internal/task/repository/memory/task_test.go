package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task/repository"
	"quick-task-management/internal/task/repository/memory"
	"quick-task-management/pkg/datemath"
)

var now = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func TestCreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(datemath.FixedClock(now))

	due := now.Add(2 * time.Hour)
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Pay bill", Priority: 3, DueAt: &due})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.TaskStatusTodo, created.Status)
	assert.Equal(t, now, created.CreatedAt)

	// mutating the returned copy does not leak into the store
	*created.DueAt = now
	got, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, due.Equal(*got.DueAt))

	done := model.TaskStatusDone
	reminder := "evt-1"
	updated, err := repo.UpdateTask(ctx, created.ID, repository.UpdateTaskOptions{Status: &done, ReminderID: &reminder})
	require.NoError(t, err)
	assert.True(t, updated.IsDone())
	assert.Equal(t, "evt-1", updated.ReminderID)
	assert.Equal(t, "Pay bill", updated.Title)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nil)

	_, err := repo.GetTask(ctx, "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.UpdateTask(ctx, "missing", repository.UpdateTaskOptions{})
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.AddTag(ctx, "missing", "x")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestAddTagKeepsOrderAndDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(datemath.FixedClock(now))

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "t"})
	require.NoError(t, err)
	for _, tag := range []string{"work", "urgent", "work"} {
		require.NoError(t, repo.AddTag(ctx, created.ID, tag))
	}
	assert.Error(t, repo.AddTag(ctx, created.ID, " "))

	got, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "urgent", "work"}, got.Tags)
}

func TestListTasksFilters(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(datemath.FixedClock(now))

	past := now.Add(-time.Hour)
	future := now.Add(48 * time.Hour)
	a, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Overdue report", DueAt: &past})
	b, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Future call", Notes: "with Report team", DueAt: &future})
	c, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Someday"})
	require.NoError(t, repo.AddTag(ctx, c.ID, "Home"))

	hasDue := true
	list, err := repo.ListTasks(ctx, repository.ListTasksOptions{HasDue: &hasDue, DueTo: &now})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, a.ID, list[0].ID)

	list, err = repo.ListTasks(ctx, repository.ListTasksOptions{Query: "REPORT"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)

	list, err = repo.ListTasks(ctx, repository.ListTasksOptions{Tag: "home"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, c.ID, list[0].ID)

	list, err = repo.ListTasks(ctx, repository.ListTasksOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEditAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(datemath.FixedClock(now))

	due := now.Add(time.Hour)
	a, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Draft", DueAt: &due})
	b, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Keep"})

	title, notes, priority := "Final", "two pages", 3
	updated, err := repo.UpdateTask(ctx, a.ID, repository.UpdateTaskOptions{
		Title:      &title,
		Notes:      &notes,
		Priority:   &priority,
		ClearDueAt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "two pages", updated.Notes)
	assert.Equal(t, 3, updated.Priority)
	assert.Nil(t, updated.DueAt)

	require.NoError(t, repo.DeleteTask(ctx, a.ID))
	_, err = repo.GetTask(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTask(ctx, a.ID), repository.ErrNotFound)

	list, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}
