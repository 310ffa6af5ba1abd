package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"quick-task-management/internal/reminder"
	"quick-task-management/pkg/gcalendar"
	pkgLog "quick-task-management/pkg/log"
)

// DefaultEventDuration is the length of the calendar block created for a task.
const DefaultEventDuration = 30 * time.Minute

// EventClient is the subset of the Google Calendar client the scheduler uses.
type EventClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// Config holds the calendar scheduler settings.
type Config struct {
	CalendarID    string
	EventDuration time.Duration
	// TaskURL renders a deep link to a task for the event description. Optional.
	TaskURL func(taskID string) string
}

type implScheduler struct {
	l      pkgLog.Logger
	client EventClient
	cfg    Config
}

// New creates a Scheduler that books a Google Calendar event at the due time
// with a popup notification when the event starts.
func New(l pkgLog.Logger, client EventClient, cfg Config) reminder.Scheduler {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = DefaultEventDuration
	}
	return &implScheduler{l: l, client: client, cfg: cfg}
}

func (s *implScheduler) Schedule(ctx context.Context, r reminder.Reminder) (string, error) {
	if r.DueAt.IsZero() {
		return "", reminder.ErrNoDueDate
	}

	description := r.Notes
	if s.cfg.TaskURL != nil {
		if link := s.cfg.TaskURL(r.TaskID); link != "" {
			description += fmt.Sprintf("\n\nTask: %s", link)
		}
	}

	tz := r.Timezone
	if tz == "" {
		tz = r.DueAt.Location().String()
	}

	event, err := s.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:           s.cfg.CalendarID,
		Summary:              r.Title,
		Description:          strings.TrimSpace(description),
		StartTime:            r.DueAt,
		EndTime:              r.DueAt.Add(s.cfg.EventDuration),
		Timezone:             tz,
		PopupReminderMinutes: []int64{0},
	})
	if err != nil {
		s.l.Errorf(ctx, "reminder.calendar.Schedule: task=%s: %v", r.TaskID, err)
		return "", fmt.Errorf("schedule reminder for task %s: %w", r.TaskID, err)
	}

	s.l.Infof(ctx, "reminder.calendar.Schedule: task=%s event=%s due=%s", r.TaskID, event.ID, r.DueAt.Format(time.RFC3339))
	return event.ID, nil
}

func (s *implScheduler) Cancel(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.DeleteEvent(ctx, s.cfg.CalendarID, id); err != nil {
		s.l.Errorf(ctx, "reminder.calendar.Cancel: event=%s: %v", id, err)
		return fmt.Errorf("cancel reminder %s: %w", id, err)
	}
	s.l.Infof(ctx, "reminder.calendar.Cancel: event=%s", id)
	return nil
}
