package memos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task/repository"
	pkgLog "quick-task-management/pkg/log"
)

const (
	defaultVisibility = "PRIVATE"
	defaultPageSize   = 200
	updateMaskContent = "content"
)

type implRepository struct {
	client      *Client
	memoBaseURL string // e.g. "http://localhost:5230" for deep link generation
	l           pkgLog.Logger
}

// New creates a Memos-backed task repository.
func New(client *Client, memoBaseURL string, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client:      client,
		memoBaseURL: strings.TrimRight(memoBaseURL, "/"),
		l:           l,
	}
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	content := encodeContent(model.Task{
		Title:    opt.Title,
		Notes:    opt.Notes,
		Status:   model.TaskStatusTodo,
		Priority: opt.Priority,
		DueAt:    opt.DueAt,
		Timezone: opt.Timezone,
	})

	memo, err := r.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    content,
		Visibility: defaultVisibility,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to create memo: %v", err)
		return model.Task{}, err
	}

	return r.memoToTask(memo), nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	memo, err := r.client.GetMemo(ctx, uidFromID(id))
	if err != nil {
		if errors.Is(err, ErrMemoNotFound) {
			return model.Task{}, fmt.Errorf("memos repository: get %q: %w", id, repository.ErrNotFound)
		}
		return model.Task{}, err
	}
	return r.memoToTask(memo), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, err := r.GetTask(ctx, id)
	if err != nil {
		return model.Task{}, err
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
		t.DueAt = opt.DueAt
	}
	if opt.ReminderID != nil {
		t.ReminderID = *opt.ReminderID
	}
	if opt.SnoozeUntil != nil {
		t.SnoozeUntil = opt.SnoozeUntil
	}
	if opt.CompletedAt != nil {
		t.CompletedAt = opt.CompletedAt
	}

	return r.save(ctx, id, t)
}

func (r *implRepository) AddTag(ctx context.Context, taskID string, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return fmt.Errorf("memos repository: empty tag for task %q", taskID)
	}

	t, err := r.GetTask(ctx, taskID)
	if err != nil {
		return err
	}
	t.Tags = append(t.Tags, tag)

	_, err = r.save(ctx, taskID, t)
	return err
}

// ListTasks walks every page of memos and filters them client-side.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	tasks := make([]model.Task, 0)
	pageToken := ""
	for {
		memos, next, err := r.client.ListMemos(ctx, opt.Tag, defaultPageSize, pageToken)
		if err != nil {
			return nil, err
		}

		for i := range memos {
			t := r.memoToTask(&memos[i])
			if !opt.Match(t) {
				continue
			}
			tasks = append(tasks, t)
			if opt.Limit > 0 && len(tasks) == opt.Limit {
				return tasks, nil
			}
		}

		if next == "" || next == pageToken {
			return tasks, nil
		}
		pageToken = next
	}
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	if err := r.client.DeleteMemo(ctx, uidFromID(id)); err != nil {
		if errors.Is(err, ErrMemoNotFound) {
			return fmt.Errorf("memos repository: delete %q: %w", id, repository.ErrNotFound)
		}
		r.l.Errorf(ctx, "memos repository: failed to delete memo %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) save(ctx context.Context, id string, t model.Task) (model.Task, error) {
	memo, err := r.client.UpdateMemo(ctx, uidFromID(id), UpdateMemoRequest{
		Content:    encodeContent(t),
		UpdateMask: updateMaskContent,
	})
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to update memo %s: %v", id, err)
		return model.Task{}, err
	}
	return r.memoToTask(memo), nil
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo) model.Task {
	uid := m.UID
	// Name format is "memos/{uid}" from the Memos v1 API
	if uid == "" && m.Name != "" {
		uid = uidFromID(m.Name)
	}
	t := decodeContent(m.Content)
	t.ID = uid
	if uid != "" && r.memoBaseURL != "" {
		t.URL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}
	if ts, err := time.Parse(time.RFC3339, m.CreateTime); err == nil {
		t.CreatedAt = ts
	}
	if ts, err := time.Parse(time.RFC3339, m.UpdateTime); err == nil {
		t.UpdatedAt = ts
	}
	return t
}

func uidFromID(id string) string {
	parts := strings.SplitN(id, "/", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return id
}
