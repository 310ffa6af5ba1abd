package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"quick-task-management/internal/reminder"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
	"quick-task-management/internal/task/repository/memory"
	"quick-task-management/internal/task/usecase"
	"quick-task-management/pkg/datemath"
	"quick-task-management/pkg/quickadd"
)

// Wednesday.
var baseNow = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockScheduler struct {
	scheduled []reminder.Reminder
	cancelled []string
	fail      bool
}

func (m *mockScheduler) Schedule(ctx context.Context, r reminder.Reminder) (string, error) {
	if m.fail {
		return "", errors.New("calendar unavailable")
	}
	m.scheduled = append(m.scheduled, r)
	return fmt.Sprintf("rem-%d", len(m.scheduled)), nil
}

func (m *mockScheduler) Cancel(ctx context.Context, id string) error {
	m.cancelled = append(m.cancelled, id)
	if m.fail {
		return errors.New("calendar unavailable")
	}
	return nil
}

// failingTagRepo rejects every AddTag call.
type failingTagRepo struct {
	repository.TaskRepository
}

func (r failingTagRepo) AddTag(ctx context.Context, taskID string, tag string) error {
	return errors.New("tag store down")
}

type fixture struct {
	uc        task.UseCase
	repo      repository.TaskRepository
	scheduler *mockScheduler
}

func newFixture() fixture {
	clock := datemath.FixedClock(baseNow)
	repo := memory.New(clock)
	scheduler := &mockScheduler{}
	parser := quickadd.New(clock, datemath.NewLocations(time.UTC, 8))
	return fixture{
		uc:        usecase.New(&mockLogger{}, repo, scheduler, parser, "UTC"),
		repo:      repo,
		scheduler: scheduler,
	}
}
