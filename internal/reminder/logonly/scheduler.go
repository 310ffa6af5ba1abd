// Package logonly provides a reminder scheduler that only writes log lines.
// It is used when no calendar backend is configured.
package logonly

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"quick-task-management/internal/reminder"
	pkgLog "quick-task-management/pkg/log"
)

type implScheduler struct {
	l   pkgLog.Logger
	seq atomic.Int64
}

// New creates a log-only Scheduler.
func New(l pkgLog.Logger) reminder.Scheduler {
	return &implScheduler{l: l}
}

func (s *implScheduler) Schedule(ctx context.Context, r reminder.Reminder) (string, error) {
	if r.DueAt.IsZero() {
		return "", reminder.ErrNoDueDate
	}
	id := "log-" + strconv.FormatInt(s.seq.Add(1), 10)
	s.l.Infof(ctx, "reminder.logonly.Schedule: id=%s task=%s title=%q due=%s", id, r.TaskID, r.Title, r.DueAt.Format(time.RFC3339))
	return id, nil
}

func (s *implScheduler) Cancel(ctx context.Context, id string) error {
	if id != "" {
		s.l.Infof(ctx, "reminder.logonly.Cancel: id=%s", id)
	}
	return nil
}
