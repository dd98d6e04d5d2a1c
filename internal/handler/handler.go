package handler

import (
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/service"
	"github.com/set-night/elliotlab/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot         *bot.Bot
	cfg         *config.Config
	lab         *service.Lab
	tgLogger    *telegram.TelegramLogger
	botUsername string

	commands map[string]bot.HandlerFunc
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot         *bot.Bot
	Cfg         *config.Config
	Lab         *service.Lab
	TgLogger    *telegram.TelegramLogger
	BotUsername string
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:         deps.Bot,
		cfg:         deps.Cfg,
		lab:         deps.Lab,
		tgLogger:    deps.TgLogger,
		botUsername: deps.BotUsername,
	}
}

// reportError logs err and mirrors it to the Telegram log chat.
func (h *Handler) reportError(err error, where string) {
	slog.Error(where, "error", err)
	h.tgLogger.LogError(err, where)
}
