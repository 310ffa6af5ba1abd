package memos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quick-task-management/internal/model"
)

func TestContentRoundTrip(t *testing.T) {
	due := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	in := model.Task{
		Title:      "Pay water bill",
		Notes:      "line one\nline two",
		Status:     model.TaskStatusTodo,
		Priority:   2,
		DueAt:      &due,
		Timezone:   "UTC",
		Tags:       []string{"home", "Bills"},
		ReminderID: "evt-1",
	}

	content := encodeContent(in)
	assert.Contains(t, content, "## Pay water bill\n")
	assert.Contains(t, content, "- **Priority:** #priority/medium\n")
	assert.Contains(t, content, "#home #Bills\n")

	out := decodeContent(content)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Notes, out.Notes)
	assert.Equal(t, in.Priority, out.Priority)
	assert.Equal(t, in.Tags, out.Tags)
	assert.Equal(t, in.ReminderID, out.ReminderID)
	require.NotNil(t, out.DueAt)
	assert.True(t, due.Equal(*out.DueAt))
}

func TestDecodeHandWrittenMemo(t *testing.T) {
	out := decodeContent("Call the plumber\nabout the leak\n#house #urgent")

	assert.Equal(t, "Call the plumber", out.Title)
	assert.Equal(t, "about the leak", out.Notes)
	assert.Equal(t, []string{"house", "urgent"}, out.Tags)
	assert.Equal(t, model.TaskStatusTodo, out.Status)
	assert.Nil(t, out.DueAt)
}

func TestContentKeepsSubSecondTimes(t *testing.T) {
	due := time.Date(2024, 5, 1, 11, 0, 15, 500_000_000, time.UTC)
	snoozed := due.Add(30 * time.Minute)
	out := decodeContent(encodeContent(model.Task{Title: "Stretch", DueAt: &due, SnoozeUntil: &snoozed}))

	require.NotNil(t, out.DueAt)
	require.NotNil(t, out.SnoozeUntil)
	assert.True(t, due.Equal(*out.DueAt), "due %s", out.DueAt)
	assert.True(t, snoozed.Equal(*out.SnoozeUntil))
}

func TestContentNotesMadeOfHashWords(t *testing.T) {
	cases := []struct {
		name string
		tags []string
	}{
		{"without tags", nil},
		{"with tags", []string{"errands"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := model.Task{Title: "Shopping", Notes: "#groceries #weekly", Tags: tc.tags}
			out := decodeContent(encodeContent(in))

			assert.Equal(t, "#groceries #weekly", out.Notes)
			if tc.tags == nil {
				assert.Empty(t, out.Tags)
			} else {
				assert.Equal(t, tc.tags, out.Tags)
			}
		})
	}
}
