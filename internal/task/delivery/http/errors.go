package http

import (
	"errors"
	"net/http"

	"quick-task-management/internal/task"
	"quick-task-management/pkg/response"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrUnknownChip),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrUnknownView),
		errors.Is(err, task.ErrUnknownSnooze),
		errors.Is(err, task.ErrSnoozeInPast):
		return response.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return response.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, task.ErrTaskAlreadyDone):
		return response.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return &response.HTTPError{
			StatusCode: http.StatusInternalServerError,
			Code:       response.InternalServerErrorCode,
			Message:    response.DefaultErrorMessage,
		}
	}
}
