package telegram

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/set-night/elliotlab/internal/config"
)

// TelegramLogger mirrors notable lab events into topics of a log chat.
type TelegramLogger struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewTelegramLogger(b *bot.Bot, cfg *config.Config) *TelegramLogger {
	return &TelegramLogger{bot: b, cfg: cfg}
}

type LogType string

const (
	LogTypeError    LogType = "error"
	LogTypeComment  LogType = "comment"
	LogTypeIdea     LogType = "idea"
	LogTypeReset    LogType = "reset"
	LogTypeFeedback LogType = "feedback"
)

func (l *TelegramLogger) Log(logType LogType, message string) {
	if l == nil || l.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := l.topicID(logType)
	if topicID == 0 {
		return
	}

	// Truncate if too long
	if len([]rune(message)) > MaxMessageLen {
		message = string([]rune(message)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          l.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       models.ParseModeHTML,
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (l *TelegramLogger) LogError(err error, where string) {
	msg := fmt.Sprintf("❌ <b>Error</b>\n\n<b>Context:</b> %s\n<b>Error:</b> <code>%s</code>\n<b>Time:</b> %s",
		html.EscapeString(where), html.EscapeString(err.Error()), time.Now().Format("2006-01-02 15:04:05"))
	l.Log(LogTypeError, msg)
}

func (l *TelegramLogger) LogComment(chatID int64, text string) {
	msg := fmt.Sprintf("💬 <b>New Comment</b>\n\n<b>Chat:</b> <code>%d</code>\n%s",
		chatID, html.EscapeString(text))
	l.Log(LogTypeComment, msg)
}

func (l *TelegramLogger) LogIdea(chatID int64, text string) {
	msg := fmt.Sprintf("💡 <b>New Idea</b>\n\n<b>Chat:</b> <code>%d</code>\n%s",
		chatID, html.EscapeString(text))
	l.Log(LogTypeIdea, msg)
}

func (l *TelegramLogger) LogReset(chatID int64) {
	msg := fmt.Sprintf("🔄 <b>Lab Reset</b>\n\n<b>Chat:</b> <code>%d</code>", chatID)
	l.Log(LogTypeReset, msg)
}

func (l *TelegramLogger) LogFeedback(chatID int64, text string) {
	msg := fmt.Sprintf("📝 <b>Feedback</b>\n\n<b>Chat:</b> <code>%d</code>\n%s",
		chatID, html.EscapeString(text))
	l.Log(LogTypeFeedback, msg)
}

func (l *TelegramLogger) topicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return l.cfg.LogTopicError
	case LogTypeComment:
		return l.cfg.LogTopicComment
	case LogTypeIdea:
		return l.cfg.LogTopicIdea
	case LogTypeReset:
		return l.cfg.LogTopicReset
	case LogTypeFeedback:
		return l.cfg.LogTopicFeedback
	default:
		return 0
	}
}
