package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task/repository"
	"quick-task-management/pkg/datemath"
)

type implRepository struct {
	mu    sync.RWMutex
	tasks map[string]model.Task
	order []string // insertion order
	clock datemath.Clock
}

// New creates an in-process task repository.
func New(clock datemath.Clock) repository.TaskRepository {
	if clock == nil {
		clock = datemath.SystemClock{}
	}
	return &implRepository{
		tasks: make(map[string]model.Task),
		clock: clock,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := r.clock.Now()
	t := model.Task{
		ID:        uuid.NewString(),
		Title:     opt.Title,
		Notes:     opt.Notes,
		Status:    model.TaskStatusTodo,
		Priority:  opt.Priority,
		DueAt:     copyTime(opt.DueAt),
		Timezone:  opt.Timezone,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[t.ID] = t
	r.order = append(r.order, t.ID)
	return clone(t), nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, fmt.Errorf("memory repository: get %q: %w", id, repository.ErrNotFound)
	}
	return clone(t), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, fmt.Errorf("memory repository: update %q: %w", id, repository.ErrNotFound)
	}

	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Notes != nil {
		t.Notes = *opt.Notes
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}
	if opt.ClearDueAt {
		t.DueAt = nil
		t.SnoozeUntil = nil
	}
	if opt.DueAt != nil {
		t.DueAt = copyTime(opt.DueAt)
	}
	if opt.ReminderID != nil {
		t.ReminderID = *opt.ReminderID
	}
	if opt.SnoozeUntil != nil {
		t.SnoozeUntil = copyTime(opt.SnoozeUntil)
	}
	if opt.CompletedAt != nil {
		t.CompletedAt = copyTime(opt.CompletedAt)
	}
	t.UpdatedAt = r.clock.Now()

	r.tasks[id] = t
	return clone(t), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return fmt.Errorf("memory repository: delete %q: %w", id, repository.ErrNotFound)
	}
	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *implRepository) AddTag(ctx context.Context, taskID string, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("memory repository: empty tag for task %q", taskID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[taskID]
	if !ok {
		return fmt.Errorf("memory repository: add tag to %q: %w", taskID, repository.ErrNotFound)
	}
	t.Tags = append(append([]string{}, t.Tags...), tag)
	t.UpdatedAt = r.clock.Now()
	r.tasks[taskID] = t
	return nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Task, 0)
	for _, id := range r.order {
		t := r.tasks[id]
		if !opt.Match(t) {
			continue
		}
		out = append(out, clone(t))
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out, nil
}

func clone(t model.Task) model.Task {
	t.Tags = append([]string{}, t.Tags...)
	t.DueAt = copyTime(t.DueAt)
	t.SnoozeUntil = copyTime(t.SnoozeUntil)
	t.CompletedAt = copyTime(t.CompletedAt)
	return t
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
