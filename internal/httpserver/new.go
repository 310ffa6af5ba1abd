package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"quick-task-management/internal/middleware"
	"quick-task-management/internal/task"
	tgDelivery "quick-task-management/internal/task/delivery/telegram"
	"quick-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Task domain
	taskUC          task.UseCase
	middleware      middleware.Middleware
	telegramHandler tgDelivery.Handler
	readiness       func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// Task domain
	TaskUseCase     task.UseCase
	Middleware      middleware.Middleware
	TelegramHandler tgDelivery.Handler // optional

	// Readiness reports whether dependencies are reachable. Optional.
	Readiness func(ctx context.Context) error
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		taskUC:          cfg.TaskUseCase,
		middleware:      cfg.Middleware,
		telegramHandler: cfg.TelegramHandler,
		readiness:       cfg.Readiness,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}
