package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type ctxKey string

const ChatKey ctxKey = "chat"

// Chat is the visitor context every handler works with.
type Chat struct {
	ID        int64
	UserID    int64
	FirstName string
	IsAdmin   bool
}

// GetChat extracts the chat from context.
func GetChat(ctx context.Context) *Chat {
	c, ok := ctx.Value(ChatKey).(*Chat)
	if !ok {
		return nil
	}
	return c
}

// WithChat stores c in ctx.
func WithChat(ctx context.Context, c *Chat) context.Context {
	return context.WithValue(ctx, ChatKey, c)
}

// ChatLoader returns middleware that loads the chat into context.
func ChatLoader(cfg interface{ IsAdmin(int64) bool }) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var from *models.User
			var chatID int64

			if update.Message != nil {
				from = update.Message.From
				chatID = update.Message.Chat.ID
			} else if update.CallbackQuery != nil {
				from = &update.CallbackQuery.From
				if update.CallbackQuery.Message.Message != nil {
					chatID = update.CallbackQuery.Message.Message.Chat.ID
				}
			}

			if from == nil || chatID == 0 {
				next(ctx, b, update)
				return
			}

			ctx = WithChat(ctx, &Chat{
				ID:        chatID,
				UserID:    from.ID,
				FirstName: from.FirstName,
				IsAdmin:   cfg.IsAdmin(from.ID),
			})
			next(ctx, b, update)
		}
	}
}
