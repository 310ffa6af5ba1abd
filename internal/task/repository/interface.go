package repository

import (
	"context"
	"errors"

	"quick-task-management/internal/model"
)

// ErrNotFound is returned when no task has the requested ID.
var ErrNotFound = errors.New("task not found")

// TaskRepository is the persistence port for tasks.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	// AddTag attaches a single tag to an existing task.
	AddTag(ctx context.Context, taskID string, tag string) error
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}
