package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"quick-task-management/internal/task"
	pkgLog "quick-task-management/pkg/log"
	pkgTelegram "quick-task-management/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Config holds the Telegram delivery settings.
type Config struct {
	// SecretToken, when set, must match the SecretTokenHeader of every update.
	SecretToken string
	// Async processes updates in the background after acknowledging Telegram.
	Async bool
	// ProcessTimeout bounds background processing of one update.
	ProcessTimeout time.Duration
}

// DefaultProcessTimeout is used when Config.ProcessTimeout is not set.
const DefaultProcessTimeout = 30 * time.Second

type handler struct {
	l   pkgLog.Logger
	uc  task.UseCase
	bot *pkgTelegram.Bot
	cfg Config
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc task.UseCase, bot *pkgTelegram.Bot, cfg Config) Handler {
	if cfg.ProcessTimeout <= 0 {
		cfg.ProcessTimeout = DefaultProcessTimeout
	}
	return &handler{
		l:   l,
		uc:  uc,
		bot: bot,
		cfg: cfg,
	}
}
