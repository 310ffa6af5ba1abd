package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingID = errors.New("id is required")

// processQuickAddReq binds the quick-add and parse request body.
func (h *handler) processQuickAddReq(c *gin.Context) (quickAddReq, error) {
	var req quickAddReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processChipsReq binds the chips query parameters.
func (h *handler) processChipsReq(c *gin.Context) (chipsReq, error) {
	var req chipsReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

// processChipReq binds the chip creation request body.
func (h *handler) processChipReq(c *gin.Context) (chipReq, error) {
	var req chipReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	err := c.ShouldBindQuery(&req)
	return req, err
}

// processSnoozeReq binds the optional snooze body and the task ID.
func (h *handler) processSnoozeReq(c *gin.Context) (string, snoozeReq, error) {
	var req snoozeReq
	id, err := h.processID(c)
	if err != nil {
		return "", req, err
	}
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return "", req, err
		}
	}
	return id, req, nil
}

// processUpdateReq binds the edit body and the task ID.
func (h *handler) processUpdateReq(c *gin.Context) (string, updateReq, error) {
	var req updateReq
	id, err := h.processID(c)
	if err != nil {
		return "", req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", req, err
	}
	return id, req, nil
}

// processID reads the task ID path parameter.
func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}
