package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-task-management/internal/reminder"
	"quick-task-management/internal/reminder/calendar"
	"quick-task-management/pkg/gcalendar"
	pkgLog "quick-task-management/pkg/log"
)

type fakeEventClient struct {
	created   []gcalendar.CreateEventRequest
	deleted   []string
	createErr error
	deleteErr error
}

func (f *fakeEventClient) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &gcalendar.Event{ID: "evt-1", HtmlLink: "https://calendar/evt-1"}, nil
}

func (f *fakeEventClient) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, calendarID+"/"+eventID)
	return nil
}

func TestSchedule(t *testing.T) {
	client := &fakeEventClient{}
	s := calendar.New(pkgLog.NewNop(), client, calendar.Config{
		TaskURL: func(id string) string { return "http://tasks/" + id },
	})

	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, loc)

	id, err := s.Schedule(context.Background(), reminder.Reminder{
		TaskID: "t1",
		Title:  "Pay water bill",
		DueAt:  due,
	})
	require.NoError(t, err)
	assert.Equal(t, "evt-1", id)

	require.Len(t, client.created, 1)
	req := client.created[0]
	assert.Equal(t, "primary", req.CalendarID)
	assert.Equal(t, "Pay water bill", req.Summary)
	assert.Equal(t, "Task: http://tasks/t1", req.Description)
	assert.True(t, req.StartTime.Equal(due))
	assert.Equal(t, calendar.DefaultEventDuration, req.EndTime.Sub(req.StartTime))
	assert.Equal(t, "Asia/Ho_Chi_Minh", req.Timezone)
	assert.Equal(t, []int64{0}, req.PopupReminderMinutes)
}

func TestScheduleErrors(t *testing.T) {
	s := calendar.New(pkgLog.NewNop(), &fakeEventClient{}, calendar.Config{})
	_, err := s.Schedule(context.Background(), reminder.Reminder{TaskID: "t1"})
	assert.ErrorIs(t, err, reminder.ErrNoDueDate)

	boom := errors.New("quota exceeded")
	s = calendar.New(pkgLog.NewNop(), &fakeEventClient{createErr: boom}, calendar.Config{})
	_, err = s.Schedule(context.Background(), reminder.Reminder{TaskID: "t1", DueAt: time.Now()})
	assert.ErrorIs(t, err, boom)
}

func TestCancel(t *testing.T) {
	client := &fakeEventClient{}
	s := calendar.New(pkgLog.NewNop(), client, calendar.Config{CalendarID: "work"})

	require.NoError(t, s.Cancel(context.Background(), ""))
	assert.Empty(t, client.deleted)

	require.NoError(t, s.Cancel(context.Background(), "evt-1"))
	assert.Equal(t, []string{"work/evt-1"}, client.deleted)

	boom := errors.New("gone")
	s = calendar.New(pkgLog.NewNop(), &fakeEventClient{deleteErr: boom}, calendar.Config{})
	assert.ErrorIs(t, s.Cancel(context.Background(), "evt-1"), boom)
}
