package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
	"quick-task-management/pkg/datemath"
)

// List returns the tasks of a view, filtered by tag and query.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	view := strings.ToLower(strings.TrimSpace(input.View))
	if view == "" {
		view = task.ViewAll
	}

	now := uc.now(input.Timezone)
	opt, ok := viewOptions(view, now)
	if !ok {
		return task.ListOutput{}, task.ErrUnknownView
	}
	opt.Tag = input.Tag
	opt.Query = input.Query

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: view=%s: %v", view, err)
		return task.ListOutput{}, fmt.Errorf("list tasks: %w", err)
	}

	if view == task.ViewUpcoming {
		tasks = filter(tasks, func(t model.Task) bool { return t.DueAt.After(now) })
	}
	sortView(view, tasks)

	limit := input.Limit
	if view == task.ViewCompleted && (limit <= 0 || limit > task.CompletedViewLimit) {
		limit = task.CompletedViewLimit
	}
	if limit > 0 && len(tasks) > limit {
		tasks = tasks[:limit]
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return task.ListOutput{View: view, Tasks: tasks, Count: len(tasks)}, nil
}

// viewOptions translates a view into repository filters. The repository limit
// stays unset because views are sorted after loading.
func viewOptions(view string, now time.Time) (repository.ListTasksOptions, bool) {
	hasDue, noDue := true, false
	startOfDay := datemath.StartOfDay(now)

	switch view {
	case task.ViewAll:
		return repository.ListTasksOptions{}, true
	case task.ViewOverdue:
		return repository.ListTasksOptions{Status: model.TaskStatusTodo, HasDue: &hasDue, DueTo: &now}, true
	case task.ViewToday:
		end := datemath.AddDays(startOfDay, 1)
		return repository.ListTasksOptions{Status: model.TaskStatusTodo, DueFrom: &startOfDay, DueTo: &end}, true
	case task.ViewWeek:
		end := datemath.AddDays(startOfDay, 7)
		return repository.ListTasksOptions{Status: model.TaskStatusTodo, DueFrom: &startOfDay, DueTo: &end}, true
	case task.ViewTimeless:
		return repository.ListTasksOptions{Status: model.TaskStatusTodo, HasDue: &noDue}, true
	case task.ViewUpcoming:
		return repository.ListTasksOptions{Status: model.TaskStatusTodo, DueFrom: &now}, true
	case task.ViewCompleted:
		return repository.ListTasksOptions{Status: model.TaskStatusDone}, true
	}
	return repository.ListTasksOptions{}, false
}

func sortView(view string, tasks []model.Task) {
	switch view {
	case task.ViewTimeless:
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].CreatedAt.After(tasks[j].CreatedAt) })
	case task.ViewCompleted:
		sort.SliceStable(tasks, func(i, j int) bool { return timeAfter(tasks[i].CompletedAt, tasks[j].CompletedAt) })
	case task.ViewAll:
		// todo before done, then due ascending with timeless last, then newest first
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i], tasks[j]
			if a.IsDone() != b.IsDone() {
				return !a.IsDone()
			}
			if !sameDue(a.DueAt, b.DueAt) {
				return dueBefore(a.DueAt, b.DueAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		})
	default:
		sort.SliceStable(tasks, func(i, j int) bool { return dueBefore(tasks[i].DueAt, tasks[j].DueAt) })
	}
}

// dueBefore orders due dates ascending with nil last.
func dueBefore(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return a.Before(*b)
}

func sameDue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// timeAfter orders timestamps descending with nil last.
func timeAfter(a, b *time.Time) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	}
	return a.After(*b)
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
