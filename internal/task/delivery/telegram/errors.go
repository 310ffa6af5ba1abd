package telegram

import (
	"errors"

	"quick-task-management/internal/task"
)

// errorMessage returns a user-facing error string for the given error.
func errorMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, task.ErrEmptyInput):
		return "Send me a task, for example: Pay rent tomorrow 9am #home !high"
	case errors.Is(err, task.ErrEmptyTitle):
		return "That message only had markers (#tags, !priority). Add a title too."
	default:
		return "Something went wrong while saving your task. Please try again."
	}
}
