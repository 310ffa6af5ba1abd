package memos

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/pkg/quickadd"
)

const priorityTagPrefix = "#priority/"

// Metadata keys of the task block.
const (
	keyDue       = "Due"
	keyTimezone  = "Timezone"
	keyPriority  = "Priority"
	keyStatus    = "Status"
	keyReminder  = "Reminder"
	keySnoozed   = "Snoozed until"
	keyCompleted = "Completed"
)

var metaLinePattern = regexp.MustCompile(`^- \*\*([A-Za-z ]+):\*\* (.*)$`)

// encodeContent renders a task as the Markdown body of a memo:
//
//	## Title
//
//	notes
//
//	- **Due:** 2024-05-02T09:00:00+07:00
//	- **Priority:** #priority/high
//	- **Status:** todo
//
//	#home #errands
func encodeContent(t model.Task) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", t.Title))

	if notes := strings.TrimSpace(t.Notes); notes != "" {
		sb.WriteString(notes)
		sb.WriteString("\n\n")
	}

	writeMeta := func(key, value string) {
		sb.WriteString(fmt.Sprintf("- **%s:** %s\n", key, value))
	}
	if t.DueAt != nil {
		writeMeta(keyDue, t.DueAt.Format(time.RFC3339Nano))
	}
	if t.Timezone != "" {
		writeMeta(keyTimezone, t.Timezone)
	}
	writeMeta(keyPriority, priorityTagPrefix+quickadd.Priority(t.Priority).String())
	status := t.Status
	if status == "" {
		status = model.TaskStatusTodo
	}
	writeMeta(keyStatus, string(status))
	if t.ReminderID != "" {
		writeMeta(keyReminder, t.ReminderID)
	}
	if t.SnoozeUntil != nil {
		writeMeta(keySnoozed, t.SnoozeUntil.Format(time.RFC3339Nano))
	}
	if t.CompletedAt != nil {
		writeMeta(keyCompleted, t.CompletedAt.Format(time.RFC3339Nano))
	}

	if len(t.Tags) > 0 {
		sb.WriteString("\n")
		for i, tag := range t.Tags {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString("#" + tag)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// decodeContent is the inverse of encodeContent. Memos written by hand decode
// best-effort: the first line becomes the title, unknown lines become notes.
// Tags are read from the last line only, so "#word" lines inside notes stay notes.
func decodeContent(content string) model.Task {
	t := model.Task{Status: model.TaskStatusTodo, Tags: []string{}}
	var notes []string

	lines := strings.Split(strings.TrimSpace(content), "\n")
	last := len(lines) - 1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case i == 0:
			t.Title = strings.TrimSpace(strings.TrimLeft(trimmed, "#"))
		case metaLinePattern.MatchString(trimmed):
			m := metaLinePattern.FindStringSubmatch(trimmed)
			applyMeta(&t, m[1], strings.TrimSpace(m[2]))
		case i == last && isTagLine(trimmed):
			for _, f := range strings.Fields(trimmed) {
				t.Tags = append(t.Tags, strings.TrimPrefix(f, "#"))
			}
		default:
			notes = append(notes, line)
		}
	}

	t.Notes = strings.TrimSpace(strings.Join(notes, "\n"))
	if loc, err := time.LoadLocation(t.Timezone); err == nil && t.Timezone != "" {
		for _, ts := range []*time.Time{t.DueAt, t.SnoozeUntil, t.CompletedAt} {
			if ts != nil {
				*ts = ts.In(loc)
			}
		}
	}
	return t
}

func applyMeta(t *model.Task, key, value string) {
	switch key {
	case keyDue:
		t.DueAt = parseTime(value)
	case keyTimezone:
		t.Timezone = value
	case keyPriority:
		t.Priority = int(quickadd.ParsePriority(strings.TrimPrefix(value, priorityTagPrefix)))
	case keyStatus:
		if model.TaskStatus(value) == model.TaskStatusDone {
			t.Status = model.TaskStatusDone
		}
	case keyReminder:
		t.ReminderID = value
	case keySnoozed:
		t.SnoozeUntil = parseTime(value)
	case keyCompleted:
		t.CompletedAt = parseTime(value)
	}
}

func isTagLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if len(f) < 2 || f[0] != '#' || f[1] == '#' || strings.HasPrefix(f, priorityTagPrefix) {
			return false
		}
	}
	return true
}

func parseTime(value string) *time.Time {
	ts, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &ts
}
