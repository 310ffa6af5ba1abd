package usecase

import (
	"quick-task-management/internal/reminder"
	"quick-task-management/internal/task"
	"quick-task-management/internal/task/repository"
	pkgLog "quick-task-management/pkg/log"
	"quick-task-management/pkg/quickadd"
)

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.TaskRepository
	scheduler reminder.Scheduler
	parser    *quickadd.Parser
	timezone  string
}

// New creates a new task UseCase instance. timezone is used when a request
// carries none; an empty value falls back to the parser's default zone.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	scheduler reminder.Scheduler,
	parser *quickadd.Parser,
	timezone string,
) task.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		scheduler: scheduler,
		parser:    parser,
		timezone:  timezone,
	}
}
