package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/middleware"
)

func (h *Handler) handleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}
	h.send(ctx, b, chat.ID, formatStats(h.lab.Stats(ctx, chat.ID)), nil)
}

// handleLabStats shows admins how many chats have an open store.
func (h *Handler) handleLabStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil || !chat.IsAdmin {
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chat.ID,
		Text:   fmt.Sprintf("🔬 Chats ativos desde o início: %d\n💾 Armazenamento: %s", h.lab.OpenChats(), h.cfg.StorageBackend),
	})
}
