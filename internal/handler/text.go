package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/middleware"
	tg "github.com/set-night/elliotlab/internal/telegram"
)

// HandleText passes a free-text message to Elliot and sends back the reply.
func (h *Handler) HandleText(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, config.RequestTimeout)
	defer cancel()

	stopTyping := tg.StartTyping(reqCtx, b, chat.ID)
	ex, err := h.lab.Talk(reqCtx, chat.ID, update.Message.Text)
	stopTyping()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Debug("dialogue cancelled", "chat_id", chat.ID)
			return
		}
		h.reportError(err, "dialogue")
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chat.ID,
			Text:   "❌ O Elliot se distraiu. Tente de novo.",
		})
		return
	}
	if ex == nil {
		return
	}

	if err := tg.SendLongMessage(ctx, b, chat.ID, ex.Reply.Text, nil); err != nil {
		h.reportError(err, "send reply")
	}
}

func (h *Handler) handleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}
	h.sendBlocks(ctx, b, chat.ID, historyBlocks(h.lab.History(ctx, chat.ID))...)
}
