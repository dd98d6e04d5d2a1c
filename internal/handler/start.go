package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/middleware"
	tg "github.com/set-night/elliotlab/internal/telegram"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	theme := h.lab.Theme(ctx, chat.ID)
	markup := tg.InlineKeyboard(
		tg.ButtonRow(tg.InlineButton("🎨 Alternar tema", cbToggleTheme)),
	)
	h.send(ctx, b, chat.ID, formatWelcome(chat.FirstName, theme), markup)
}

func (h *Handler) handleProjects(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	var rows [][]models.InlineKeyboardButton
	for _, p := range config.Projects {
		rows = append(rows, tg.ButtonRow(tg.URLButton(p.Name, p.URL)))
	}
	h.send(ctx, b, chat.ID, formatProjects(config.Projects), tg.InlineKeyboard(rows...))
}

// send delivers an HTML text, logging instead of failing the update.
func (h *Handler) send(ctx context.Context, b *bot.Bot, chatID int64, text string, markup models.ReplyMarkup) {
	if err := tg.SendLongMessage(ctx, b, chatID, text, markup); err != nil {
		h.reportError(err, "send message")
	}
}

// sendBlocks packs listing blocks into messages and delivers them.
func (h *Handler) sendBlocks(ctx context.Context, b *bot.Bot, chatID int64, blocks ...string) {
	if err := tg.SendPages(ctx, b, chatID, tg.PackBlocks(blocks, tg.MaxMessageLen), nil); err != nil {
		h.reportError(err, "send listing")
	}
}
