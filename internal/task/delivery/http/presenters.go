package http

import (
	"time"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	"quick-task-management/pkg/quickadd"
	"quick-task-management/pkg/response"
)

// --- Request DTOs ---

type quickAddReq struct {
	Text     string `json:"text"     binding:"required,max=1000"`
	Timezone string `json:"timezone" binding:"max=64"`
}

func (r quickAddReq) toInput() task.QuickAddInput {
	return task.QuickAddInput{Text: r.Text, Timezone: r.Timezone}
}

func (r quickAddReq) toPreviewInput() task.PreviewInput {
	return task.PreviewInput{Text: r.Text, Timezone: r.Timezone}
}

type chipsReq struct {
	Timezone string `form:"timezone"`
}

type chipReq struct {
	Text     string `json:"text"     binding:"required,max=1000"`
	Chip     string `json:"chip"     binding:"required"`
	Timezone string `json:"timezone" binding:"max=64"`
}

func (r chipReq) toInput() task.CreateFromChipInput {
	return task.CreateFromChipInput{Text: r.Text, Chip: r.Chip, Timezone: r.Timezone}
}

type listReq struct {
	View     string `form:"view"`
	Query    string `form:"q"`
	Tag      string `form:"tag"`
	Timezone string `form:"timezone"`
	Limit    int    `form:"limit" binding:"omitempty,min=0,max=500"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		View:     r.View,
		Query:    r.Query,
		Tag:      r.Tag,
		Timezone: r.Timezone,
		Limit:    r.Limit,
	}
}

type snoozeReq struct {
	Preset   string `json:"preset"`
	Until    *int64 `json:"until"` // epoch milliseconds
	Timezone string `json:"timezone"`
}

func (r snoozeReq) toInput() task.SnoozeInput {
	in := task.SnoozeInput{Preset: r.Preset, Timezone: r.Timezone}
	if r.Until != nil {
		until := time.UnixMilli(*r.Until)
		in.Until = &until
	}
	return in
}

type updateReq struct {
	Title    *string `json:"title"    binding:"omitempty,max=1000"`
	Notes    *string `json:"notes"    binding:"omitempty,max=10000"`
	Priority *int    `json:"priority"`
	DueAt    *int64  `json:"due_at"` // epoch milliseconds
	ClearDue bool    `json:"clear_due"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{Title: r.Title, Notes: r.Notes, ClearDue: r.ClearDue}
	if r.Priority != nil {
		p := quickadd.Priority(*r.Priority)
		in.Priority = &p
	}
	if r.DueAt != nil {
		due := time.UnixMilli(*r.DueAt)
		in.DueAt = &due
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Notes         string           `json:"notes,omitempty"`
	Status        string           `json:"status"`
	Priority      int              `json:"priority"`
	PriorityLabel string           `json:"priority_label"`
	DueAt         *response.Millis `json:"due_at"`
	Timezone      string           `json:"timezone,omitempty"`
	Tags          []string         `json:"tags"`
	ReminderID    string           `json:"reminder_id,omitempty"`
	SnoozeUntil   *response.Millis `json:"snooze_until,omitempty"`
	CompletedAt   *response.Millis `json:"completed_at,omitempty"`
	CreatedAt     response.Millis  `json:"created_at"`
	UpdatedAt     response.Millis  `json:"updated_at"`
	URL           string           `json:"url,omitempty"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		Notes:         t.Notes,
		Status:        string(t.Status),
		Priority:      t.Priority,
		PriorityLabel: quickadd.Priority(t.Priority).String(),
		DueAt:         response.NewMillis(t.DueAt),
		Timezone:      t.Timezone,
		Tags:          tags,
		ReminderID:    t.ReminderID,
		SnoozeUntil:   response.NewMillis(t.SnoozeUntil),
		CompletedAt:   response.NewMillis(t.CompletedAt),
		CreatedAt:     response.Millis(t.CreatedAt),
		UpdatedAt:     response.Millis(t.UpdatedAt),
		URL:           t.URL,
	}
}

type parsedResp struct {
	Title         string           `json:"title"`
	DueAt         *response.Millis `json:"due_at"`
	Priority      int              `json:"priority"`
	PriorityLabel string           `json:"priority_label"`
	Tags          []string         `json:"tags"`
}

func newParsedResp(p quickadd.ParsedTask) parsedResp {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return parsedResp{
		Title:         p.Title,
		DueAt:         response.NewMillis(p.DueAt),
		Priority:      int(p.Priority),
		PriorityLabel: p.Priority.String(),
		Tags:          tags,
	}
}

type quickAddResp struct {
	Task   taskResp   `json:"task"`
	Parsed parsedResp `json:"parsed"`
}

func (h *handler) newQuickAddResp(out task.QuickAddOutput) quickAddResp {
	return quickAddResp{Task: newTaskResp(out.Task), Parsed: newParsedResp(out.Parsed)}
}

type chipsResp struct {
	Timezone string          `json:"timezone"`
	Today    response.Millis `json:"today"`
	Tonight  response.Millis `json:"tonight"`
	Tomorrow response.Millis `json:"tomorrow"`
	NextWeek response.Millis `json:"next_week"`
}

func (h *handler) newChipsResp(out task.ChipsOutput) chipsResp {
	return chipsResp{
		Timezone: out.Timezone,
		Today:    response.Millis(out.Dates.Today),
		Tonight:  response.Millis(out.Dates.Tonight),
		Tomorrow: response.Millis(out.Dates.Tomorrow),
		NextWeek: response.Millis(out.Dates.NextWeek),
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(t model.Task) detailResp {
	return detailResp{Task: newTaskResp(t)}
}

type deleteResp struct {
	ID string `json:"id"`
}

type listResp struct {
	View  string     `json:"view"`
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{View: out.View, Tasks: tasks, Count: out.Count}
}
