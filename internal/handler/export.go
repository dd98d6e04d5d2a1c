package handler

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/middleware"
	tg "github.com/set-night/elliotlab/internal/telegram"
)

func (h *Handler) handleExport(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	data, err := h.lab.Export(ctx, chat.ID)
	if err != nil {
		h.reportError(err, "export")
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chat.ID,
			Text:   "❌ Não foi possível exportar os dados.",
		})
		return
	}

	if err := tg.SendDocument(ctx, b, chat.ID, exportFileName(time.Now()), data, "✅ Exportado!"); err != nil {
		h.reportError(err, "send export")
	}
}
