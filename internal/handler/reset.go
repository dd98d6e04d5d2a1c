package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/middleware"
	tg "github.com/set-night/elliotlab/internal/telegram"
)

func (h *Handler) handleReset(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chat.ID,
		Text:   "⚠️ Tem certeza que deseja resetar todos os dados? Isso não pode ser desfeito.",
		ReplyMarkup: tg.InlineKeyboard(tg.ButtonRow(
			tg.InlineButton("🔄 Resetar", cbResetConfirm),
			tg.InlineButton("Cancelar", cbResetCancel),
		)),
	})
}

func (h *Handler) handleResetConfirm(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		answer(ctx, b, update, "")
		return
	}

	h.lab.Reset(ctx, chat.ID)
	h.tgLogger.LogReset(chat.ID)
	answer(ctx, b, update, "🔄 Resetado!")
	h.editCallbackMessage(ctx, b, update, "🔄 Todos os dados foram apagados.")
}

func (h *Handler) handleResetCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	answer(ctx, b, update, "")
	h.editCallbackMessage(ctx, b, update, "Nada foi apagado.")
}

func (h *Handler) editCallbackMessage(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	msg := update.CallbackQuery.Message.Message
	if msg == nil {
		return
	}
	b.EditMessageText(ctx, &bot.EditMessageTextParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
		Text:      text,
	})
}
