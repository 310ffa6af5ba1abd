package telegram

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"quick-task-management/internal/model"
	"quick-task-management/internal/task"
	pkgResponse "quick-task-management/pkg/response"
	pkgTelegram "quick-task-management/pkg/telegram"
)

// Bot commands.
const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandChips = "/chips"
	commandToday = "/today"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// In async mode it acknowledges immediately and replies from a background
// goroutine, since Telegram retries updates that are not answered quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cfg.SecretToken != "" {
		got := c.GetHeader(pkgTelegram.SecretTokenHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.SecretToken)) != 1 {
			h.l.Warnf(ctx, "telegram handler: rejected update with bad secret token")
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, etc.)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	if !h.cfg.Async {
		h.handleMessage(ctx, msg)
		pkgResponse.OK(c, map[string]string{"status": "processed"})
		return
	}

	// Detach from the request context, which is cancelled once we respond.
	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.cfg.ProcessTimeout)
		defer cancel()
		h.handleMessage(ctx, msg)
	}()
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// handleMessage processes one message and reports failures back to the chat.
func (h *handler) handleMessage(ctx context.Context, msg *pkgTelegram.Message) {
	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "telegram handler: processMessage failed: %v", err)
		if sendErr := h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err)); sendErr != nil {
			h.l.Warnf(ctx, "telegram handler: failed to send error reply: %v", sendErr)
		}
	}
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch command(text) {
	case commandStart:
		return h.bot.SendMessage(ctx, msg.Chat.ID, startMessage)
	case commandHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpMessage)
	case commandChips:
		out, err := h.uc.Chips(ctx, "")
		if err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, formatChips(out))
	case commandToday:
		out, err := h.uc.List(ctx, task.ListInput{View: task.ViewToday})
		if err != nil {
			return err
		}
		return h.bot.SendMessage(ctx, msg.Chat.ID, formatTaskList("Today", out.Tasks))
	}

	if strings.HasPrefix(text, "/") {
		return h.bot.SendMessage(ctx, msg.Chat.ID, helpMessage)
	}

	out, err := h.uc.QuickAdd(ctx, scopeOf(msg), task.QuickAddInput{Text: text})
	if err != nil {
		return err
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, formatCreated(out.Task))
}

// command returns the bot command of text, without any "@botname" suffix.
func command(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}

func scopeOf(msg *pkgTelegram.Message) model.Scope {
	if msg.From == nil {
		return model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	}
	return model.Scope{
		UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
		Username: msg.From.Username,
	}
}
