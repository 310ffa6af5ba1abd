package memos_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task/repository"
	"quick-task-management/internal/task/repository/memos"
	pkgLog "quick-task-management/pkg/log"
)

// fakeMemosPageSize is smaller than any page size the client asks for, so
// listings always span several pages.
const fakeMemosPageSize = 2

// fakeMemos is a minimal in-memory Memos API.
type fakeMemos struct {
	mu    sync.Mutex
	memos map[string]memos.Memo
	order []string
	next  int
}

func newFakeMemos() *httptest.Server {
	f := &fakeMemos{memos: make(map[string]memos.Memo)}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/memos", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodPost:
			var req memos.CreateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			if strings.Contains(req.Content, "explode") {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			f.next++
			uid := fmt.Sprintf("uid-%d", f.next)
			m := memos.Memo{
				Name:       "memos/" + uid,
				UID:        uid,
				Content:    req.Content,
				Visibility: req.Visibility,
				CreateTime: "2024-05-01T10:00:00Z",
				UpdateTime: "2024-05-01T10:00:00Z",
			}
			f.memos[uid] = m
			f.order = append(f.order, uid)
			json.NewEncoder(w).Encode(m)
		case http.MethodGet:
			start, _ := strconv.Atoi(r.URL.Query().Get("pageToken"))
			end := min(start+fakeMemosPageSize, len(f.order))
			list := make([]memos.Memo, 0, fakeMemosPageSize)
			for _, uid := range f.order[start:end] {
				list = append(list, f.memos[uid])
			}
			next := ""
			if end < len(f.order) {
				next = strconv.Itoa(end)
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"memos": list, "nextPageToken": next})
		}
	})

	mux.HandleFunc("/api/v1/memos/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		uid := strings.TrimPrefix(r.URL.Path, "/api/v1/memos/")
		m, ok := f.memos[uid]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Method == http.MethodDelete {
			delete(f.memos, uid)
			for i, id := range f.order {
				if id == uid {
					f.order = append(f.order[:i], f.order[i+1:]...)
					break
				}
			}
			w.Write([]byte("{}"))
			return
		}
		if r.Method == http.MethodPatch {
			var req memos.UpdateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			m.Content = req.Content
			m.UpdateTime = "2024-05-01T11:00:00Z"
			f.memos[uid] = m
		}
		json.NewEncoder(w).Encode(m)
	})

	return httptest.NewServer(mux)
}

func TestMemosRepository(t *testing.T) {
	ts := newFakeMemos()
	defer ts.Close()

	repo := memos.New(memos.NewClient(ts.URL, "token"), "http://memos.local/", pkgLog.NewNop())
	ctx := context.Background()
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:    "Pay water bill",
		Notes:    "online banking",
		Priority: 3,
		DueAt:    &due,
		Timezone: "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-1", created.ID)
	assert.Equal(t, "http://memos.local/m/uid-1", created.URL)
	assert.Equal(t, "Pay water bill", created.Title)
	assert.Equal(t, "online banking", created.Notes)
	assert.Equal(t, 3, created.Priority)
	assert.Equal(t, model.TaskStatusTodo, created.Status)
	require.NotNil(t, created.DueAt)
	assert.True(t, due.Equal(*created.DueAt))
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), created.CreatedAt)

	require.NoError(t, repo.AddTag(ctx, created.ID, "home"))
	require.NoError(t, repo.AddTag(ctx, created.ID, "bills"))

	done := model.TaskStatusDone
	completed := due.Add(time.Hour)
	reminder := "evt-9"
	updated, err := repo.UpdateTask(ctx, created.ID, repository.UpdateTaskOptions{
		Status:      &done,
		CompletedAt: &completed,
		ReminderID:  &reminder,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "bills"}, updated.Tags)
	assert.True(t, updated.IsDone())
	assert.Equal(t, "evt-9", updated.ReminderID)
	require.NotNil(t, updated.CompletedAt)
	assert.True(t, completed.Equal(*updated.CompletedAt))

	got, err := repo.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.Tags, got.Tags)
	assert.Equal(t, "online banking", got.Notes)

	_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Someday"})
	require.NoError(t, err)

	list, err := repo.ListTasks(ctx, repository.ListTasksOptions{Status: model.TaskStatusTodo})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Someday", list[0].Title)
	assert.Nil(t, list[0].DueAt)

	_, err = repo.GetTask(ctx, "memos/uid-missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	_, err = repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "explode"})
	assert.Error(t, err)
}

func TestMemosRepositoryListsEveryPage(t *testing.T) {
	ts := newFakeMemos()
	defer ts.Close()

	repo := memos.New(memos.NewClient(ts.URL, "token"), "", pkgLog.NewNop())
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: fmt.Sprintf("Task %d", i)})
		require.NoError(t, err)
	}

	list, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	require.NoError(t, err)
	require.Len(t, list, 5)
	assert.Equal(t, "Task 5", list[4].Title)

	list, err = repo.ListTasks(ctx, repository.ListTasksOptions{Query: "task 4"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "uid-4", list[0].ID)

	list, err = repo.ListTasks(ctx, repository.ListTasksOptions{Limit: 3})
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestMemosRepositoryEditAndDelete(t *testing.T) {
	ts := newFakeMemos()
	defer ts.Close()

	repo := memos.New(memos.NewClient(ts.URL, "token"), "", pkgLog.NewNop())
	ctx := context.Background()
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "Draft", DueAt: &due})
	require.NoError(t, err)

	title, notes, priority := "Final", "bring charts", 1
	updated, err := repo.UpdateTask(ctx, created.ID, repository.UpdateTaskOptions{
		Title:      &title,
		Notes:      &notes,
		Priority:   &priority,
		ClearDueAt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "bring charts", updated.Notes)
	assert.Equal(t, 1, updated.Priority)
	assert.Nil(t, updated.DueAt)

	require.NoError(t, repo.DeleteTask(ctx, created.ID))
	_, err = repo.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTask(ctx, created.ID), repository.ErrNotFound)
}
