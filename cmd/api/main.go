package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"quick-task-management/config"
	_ "quick-task-management/docs" // Swagger docs
	"quick-task-management/internal/httpserver"
	"quick-task-management/internal/middleware"
	"quick-task-management/internal/reminder"
	calendarScheduler "quick-task-management/internal/reminder/calendar"
	"quick-task-management/internal/reminder/logonly"
	tgDelivery "quick-task-management/internal/task/delivery/telegram"
	"quick-task-management/internal/task/repository"
	memoryRepo "quick-task-management/internal/task/repository/memory"
	memosRepo "quick-task-management/internal/task/repository/memos"
	"quick-task-management/internal/task/usecase"
	"quick-task-management/pkg/datemath"
	"quick-task-management/pkg/gcalendar"
	"quick-task-management/pkg/log"
	"quick-task-management/pkg/quickadd"
	"quick-task-management/pkg/telegram"
)

const telegramWebhookPath = "/webhook/telegram"

// @title       Quick Task Management API
// @description Natural-language quick-add for tasks with due dates, tags, priorities and reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Quick Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Quick-add parser
	fallback, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.App.Timezone, err)
		fallback = time.UTC
	}
	locations := datemath.NewLocations(fallback, cfg.App.LocationCacheSize)
	parser := quickadd.New(datemath.SystemClock{}, locations)

	// 4. Task storage
	var taskRepo repository.TaskRepository
	if cfg.Memos.Enabled() {
		memosClient := memosRepo.NewClient(cfg.Memos.URL, cfg.Memos.AccessToken)
		taskRepo = memosRepo.New(memosClient, cfg.Memos.ExternalURL, logger)
		logger.Infof(ctx, "Task storage: Memos at %s", cfg.Memos.URL)
	} else {
		taskRepo = memoryRepo.New(nil)
		logger.Warn(ctx, "Task storage: in-memory (set MEMOS_URL and MEMOS_ACCESS_TOKEN to persist tasks)")
	}

	// 5. Reminders
	scheduler := newScheduler(ctx, cfg, logger)

	// 6. Task UseCase
	taskUC := usecase.New(logger, taskRepo, scheduler, parser, locations.Fallback().String())

	// 7. Telegram (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, taskUC, bot, tgDelivery.Config{
			SecretToken:    cfg.Telegram.SecretToken,
			Async:          cfg.Telegram.Async,
			ProcessTimeout: cfg.Telegram.ProcessTimeout,
		})
		registerWebhook(ctx, cfg.Telegram, bot, logger)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TaskUseCase:     taskUC,
		Middleware: middleware.New(logger, middleware.Config{
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
			Burst:             cfg.RateLimit.Burst,
			MaxClients:        cfg.RateLimit.MaxClients,
			IdleTTL:           cfg.RateLimit.IdleTTL,
		}),
		TelegramHandler: telegramHandler,
		Readiness: func(ctx context.Context) error {
			_, err := taskRepo.ListTasks(ctx, repository.ListTasksOptions{Limit: 1})
			return err
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newScheduler(ctx context.Context, cfg *config.Config, logger log.Logger) reminder.Scheduler {
	gc := cfg.GoogleCalendar
	if gc.CredentialsPath == "" {
		logger.Info(ctx, "Reminders: log only (google_calendar.credentials_path not set)")
		return logonly.New(logger)
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, gc.CredentialsPath, gc.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available, reminders will only be logged: %v", err)
		logger.Warnf(ctx, "Run `go run ./scripts/gcal-auth -credentials %s -token %s` to authorize", gc.CredentialsPath, gc.TokenPath)
		return logonly.New(logger)
	}

	var taskURL func(string) string
	if base := strings.TrimRight(cfg.Memos.ExternalURL, "/"); cfg.Memos.Enabled() && base != "" {
		taskURL = func(id string) string { return fmt.Sprintf("%s/m/%s", base, id) }
	}

	logger.Infof(ctx, "Reminders: Google Calendar %q", gc.CalendarID)
	return calendarScheduler.New(logger, client, calendarScheduler.Config{
		CalendarID:    gc.CalendarID,
		EventDuration: gc.EventDuration,
		TaskURL:       taskURL,
	})
}

// registerWebhook points Telegram at this server, using the configured URL or
// the public URL of a local ngrok tunnel.
func registerWebhook(ctx context.Context, cfg config.TelegramConfig, bot *telegram.Bot, logger log.Logger) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		tunnelURL, err := discoverTunnelURL(ctx, strings.TrimRight(cfg.NgrokAPIURL, "/"))
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = tunnelURL + telegramWebhookPath
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}
	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no webhook URL")
		return
	}

	if err := bot.SetWebhook(ctx, webhookURL, cfg.SecretToken); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
