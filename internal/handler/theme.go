package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/middleware"
)

func (h *Handler) handleTheme(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}
	theme := h.lab.ToggleTheme(ctx, chat.ID)
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chat.ID,
		Text:   "🎨 Tema alterado para " + themeLabel(theme),
	})
}

func (h *Handler) handleToggleThemeCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		answer(ctx, b, update, "")
		return
	}
	theme := h.lab.ToggleTheme(ctx, chat.ID)
	answer(ctx, b, update, "Tema: "+themeLabel(theme))
}
