package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/config"
	"github.com/set-night/elliotlab/internal/middleware"
)

func (h *Handler) handleComment(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	c := h.lab.Comment(ctx, chat.ID, commandArg(update.Message.Text))
	if c == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chat.ID,
			Text:   "Uso: /comment <texto>",
		})
		return
	}
	h.tgLogger.LogComment(chat.ID, c.Text)

	blocks := append([]string{"✅ Comentário adicionado!\n\n"}, commentBlocks(h.lab.Comments(ctx, chat.ID), config.ListingLimit)...)
	h.sendBlocks(ctx, b, chat.ID, blocks...)
}

func (h *Handler) handleComments(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}
	h.sendBlocks(ctx, b, chat.ID, commentBlocks(h.lab.Comments(ctx, chat.ID), config.ListingLimit)...)
}

func (h *Handler) handleIdea(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	idea := h.lab.Idea(ctx, chat.ID, commandArg(update.Message.Text))
	if idea == nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chat.ID,
			Text:   "💡 Qual é a sua sugestão para o Elliot? Uso: /idea <texto>",
		})
		return
	}
	h.tgLogger.LogIdea(chat.ID, idea.Text)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chat.ID,
		Text:   "Obrigado pela sugestão! Ela foi adicionada ao nosso backlog.",
	})
}

func (h *Handler) handleIdeas(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}
	h.sendBlocks(ctx, b, chat.ID, ideaBlocks(h.lab.Ideas(ctx, chat.ID), config.ListingLimit)...)
}

func (h *Handler) handleFeedback(ctx context.Context, b *bot.Bot, update *models.Update) {
	chat := middleware.GetChat(ctx)
	if chat == nil {
		return
	}

	text, ok := h.lab.Feedback(chat.ID, commandArg(update.Message.Text))
	if !ok {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chat.ID,
			Text:   "📝 Como podemos melhorar o Elliot Dev Lab? Uso: /feedback <texto>",
		})
		return
	}
	h.tgLogger.LogFeedback(chat.ID, text)

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chat.ID,
		Text:   "Muito obrigado pelo feedback! Ele ajuda o Elliot a evoluir.",
	})
}
