package http

import (
	"github.com/gin-gonic/gin"

	"quick-task-management/internal/middleware"
	"quick-task-management/pkg/response"
)

// QuickAdd godoc
// @Summary     Create a task from a quick-add line
// @Description Parses priority (!high), tags (#tag) and due date (tomorrow 9am) from free text and stores the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Quick-add line"
// @Success     200  {object} quickAddResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick-add [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.QuickAdd(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newQuickAddResp(output))
}

// Parse godoc
// @Summary     Preview a quick-add line
// @Description Returns the parse of a quick-add line without creating a task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickAddReq true "Quick-add line"
// @Success     200  {object} parsedResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	parsed, err := h.uc.Preview(ctx, req.toPreviewInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newParsedResp(parsed))
}

// Chips godoc
// @Summary     Chip due dates
// @Description Returns the today, tonight, tomorrow and next-week chip times as epoch milliseconds.
// @Tags        Tasks
// @Produce     json
// @Param       timezone query string false "IANA timezone, e.g. Asia/Ho_Chi_Minh"
// @Success     200 {object} chipsResp
// @Router      /api/v1/tasks/chips [GET]
func (h *handler) Chips(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChipsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chips(ctx, req.Timezone)
	if err != nil {
		h.l.Errorf(ctx, "uc.Chips: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChipsResp(output))
}

// CreateFromChip godoc
// @Summary     Create a task due at a chip date
// @Description Stores the raw text as the title, due at the selected chip (today, tonight, tomorrow, next_week).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body chipReq true "Title and chip"
// @Success     200  {object} detailResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/chip [POST]
func (h *handler) CreateFromChip(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChipReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.CreateFromChip(ctx, middleware.GetScope(ctx), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromChip: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns the tasks of a view: all, overdue, today, week, timeless, upcoming, completed.
// @Tags        Tasks
// @Produce     json
// @Param       view     query string false "View name (default: all)"
// @Param       q        query string false "Case-insensitive text filter"
// @Param       tag      query string false "Tag filter"
// @Param       timezone query string false "IANA timezone for day boundaries"
// @Param       limit    query int    false "Maximum number of tasks"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Get(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Update godoc
// @Summary     Edit a task
// @Description Partially updates title, notes, priority (0-3) or due date (epoch ms). clear_due removes the due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Update(ctx, middleware.GetScope(ctx), id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Description Removes the task and cancels its reminder.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(ctx), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, deleteResp{ID: id})
}

// Complete godoc
// @Summary     Complete a task
// @Description Marks the task done and cancels its reminder.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Complete(ctx, middleware.GetScope(ctx), id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}

// Snooze godoc
// @Summary     Snooze a task
// @Description Moves the due date by a preset (30m, tomorrow, next monday, in 3 days) or to an explicit epoch-ms time.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true  "Task ID"
// @Param       body body snoozeReq false "Preset or explicit time (default: 30m)"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Task already completed"
// @Router      /api/v1/tasks/{id}/snooze [POST]
func (h *handler) Snooze(c *gin.Context) {
	ctx := c.Request.Context()

	id, req, err := h.processSnoozeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Snooze(ctx, middleware.GetScope(ctx), id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Snooze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(t))
}
