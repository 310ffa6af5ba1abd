package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput      = errors.New("input text is empty")
	ErrEmptyTitle      = errors.New("parsed title is empty")
	ErrUnknownChip     = errors.New("unknown date chip")
	ErrInvalidPriority = errors.New("priority must be between 0 and 3")
	ErrUnknownView     = errors.New("unknown task view")
	ErrUnknownSnooze   = errors.New("unknown snooze preset")
	ErrSnoozeInPast    = errors.New("snooze time is not in the future")
	ErrTaskNotFound    = errors.New("task not found")
	ErrTaskAlreadyDone = errors.New("task is already completed")
)
