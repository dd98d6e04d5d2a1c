package handler

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

const (
	cbToggleTheme  = "toggle_theme"
	cbResetConfirm = "reset_confirm"
	cbResetCancel  = "reset_cancel"
)

// Register registers all command and callback handlers on the bot instance.
// Text messages go through a single route so that "/comment" and
// "/comments" never compete as prefixes.
func (h *Handler) Register() {
	h.commands = map[string]bot.HandlerFunc{
		"/start":    h.handleStart,
		"/help":     h.handleStart,
		"/history":  h.handleHistory,
		"/comment":  h.handleComment,
		"/comments": h.handleComments,
		"/idea":     h.handleIdea,
		"/ideas":    h.handleIdeas,
		"/stats":    h.handleStats,
		"/labstats": h.handleLabStats,
		"/theme":    h.handleTheme,
		"/export":   h.handleExport,
		"/reset":    h.handleReset,
		"/projects": h.handleProjects,
		"/feedback": h.handleFeedback,
	}

	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, h.route)

	// Callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbToggleTheme, bot.MatchTypeExact, h.handleToggleThemeCallback)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbResetConfirm, bot.MatchTypeExact, h.handleResetConfirm)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, cbResetCancel, bot.MatchTypeExact, h.handleResetCancel)
}

func (h *Handler) route(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := update.Message.Text
	if !strings.HasPrefix(text, "/") {
		h.HandleText(ctx, b, update)
		return
	}

	if fn, ok := h.commands[commandName(text, h.botUsername)]; ok {
		fn(ctx, b, update)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   "Comando desconhecido. Use /help para ver os comandos.",
	})
}

// commandName returns the command word of text without its bot suffix:
// "/comments@elliot_bot hi" → "/comments". A suffix naming another bot
// yields "".
func commandName(text, botUsername string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	name, target, found := strings.Cut(fields[0], "@")
	if found && botUsername != "" && !strings.EqualFold(target, botUsername) {
		return ""
	}
	return strings.ToLower(name)
}

// commandArg returns the text after the command word, trimmed.
func commandArg(text string) string {
	text = strings.TrimSpace(text)
	i := strings.IndexAny(text, " \n\t")
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(text[i:])
}

// answer acknowledges a callback query, optionally with a toast.
func answer(ctx context.Context, b *bot.Bot, update *models.Update, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: update.CallbackQuery.ID,
		Text:            text,
	})
}
