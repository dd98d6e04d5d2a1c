package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/set-night/elliotlab/internal/domain"
	"github.com/set-night/elliotlab/internal/kv"
	"github.com/set-night/elliotlab/internal/selector"
	"github.com/set-night/elliotlab/internal/store"
	"github.com/shopspring/decimal"
)

// Exchange is one user message and Elliot's reply to it.
type Exchange struct {
	Question domain.Message
	Reply    domain.Message
	Category selector.Category
}

type LabConfig struct {
	Think        ThinkTime
	HistoryLimit int

	// ChatIdleTTL drops a chat's cached store after this long without use.
	// Zero keeps stores for the life of the process.
	ChatIdleTTL time.Duration

	// Engagement weights per dialogue message and per comment. Zero values
	// keep the store defaults.
	DialogueWeight decimal.Decimal
	CommentWeight  decimal.Decimal

	// Optional. Defaults: process random source, SleepContext, time.Now,
	// slog.Default().
	Rand   selector.Source
	Sleep  Sleeper
	Now    func() time.Time
	Logger *slog.Logger
}

// Lab serves every chat's dialogue, comment board and idea backlog.
type Lab struct {
	selector *selector.Selector
	stores   *StoreCache
	think    ThinkTime
	rand     selector.Source
	sleep    Sleeper
	now      func() time.Time
	log      *slog.Logger
}

func NewLab(backing kv.Store, cfg LabConfig) *Lab {
	if cfg.Rand == nil {
		cfg.Rand = globalRand{}
	}
	if cfg.Sleep == nil {
		cfg.Sleep = SleepContext
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	opts := []store.Option{
		store.WithClock(cfg.Now),
		store.WithLogger(cfg.Logger),
		store.WithHistoryLimit(cfg.HistoryLimit),
	}
	if !cfg.DialogueWeight.IsZero() || !cfg.CommentWeight.IsZero() {
		opts = append(opts, store.WithEngagementWeights(cfg.DialogueWeight, cfg.CommentWeight))
	}

	return &Lab{
		selector: selector.New(cfg.Rand),
		stores:   NewStoreCache(backing, cfg.ChatIdleTTL, opts...),
		think:    cfg.Think,
		rand:     cfg.Rand,
		sleep:    cfg.Sleep,
		now:      cfg.Now,
		log:      cfg.Logger,
	}
}

// Talk records text from chatID, waits the thinking delay and records
// Elliot's reply. Blank input is a no-op and returns nil, nil. If ctx is
// cancelled while thinking no reply is stored.
func (l *Lab) Talk(ctx context.Context, chatID int64, text string) (*Exchange, error) {
	text = CleanText(text)
	if text == "" {
		return nil, nil
	}

	st := l.stores.Get(chatID)
	question := domain.NewMessage(domain.SenderUser, text, l.now())
	st.AppendDialogue(ctx, question)

	if err := l.sleep(ctx, l.think.Draw(l.rand)); err != nil {
		return nil, fmt.Errorf("thinking: %w", err)
	}

	reply, category := l.selector.Reply(text)
	answer := domain.NewMessage(domain.SenderSystem, reply, l.now())
	st.AppendDialogue(ctx, answer)

	l.log.Debug("dialogue exchange", "chat_id", chatID, "category", category)
	return &Exchange{Question: question, Reply: answer, Category: category}, nil
}

func (l *Lab) History(ctx context.Context, chatID int64) domain.DialogueHistory {
	return l.stores.Get(chatID).LoadDialogue(ctx)
}

// Comment adds text to the chat's comment board. Blank input returns nil.
func (l *Lab) Comment(ctx context.Context, chatID int64, text string) *domain.Comment {
	text = CleanText(text)
	if text == "" {
		return nil
	}
	c := l.stores.Get(chatID).AddComment(ctx, text)
	return &c
}

// Feedback accepts a free-form suggestion about the lab itself. Feedback is
// logged, not stored. It reports false for blank input.
func (l *Lab) Feedback(chatID int64, text string) (string, bool) {
	text = CleanText(text)
	if text == "" {
		return "", false
	}
	l.log.Info("feedback received", "chat_id", chatID, "feedback", text)
	return text, true
}

func (l *Lab) Comments(ctx context.Context, chatID int64) []domain.Comment {
	return l.stores.Get(chatID).ListComments(ctx)
}

// Idea adds text to the chat's idea backlog. Blank input returns nil.
func (l *Lab) Idea(ctx context.Context, chatID int64, text string) *domain.Idea {
	text = CleanText(text)
	if text == "" {
		return nil
	}
	idea := l.stores.Get(chatID).AddIdea(ctx, text)
	return &idea
}

func (l *Lab) Ideas(ctx context.Context, chatID int64) []domain.Idea {
	return l.stores.Get(chatID).ListIdeas(ctx)
}

func (l *Lab) Stats(ctx context.Context, chatID int64) domain.Stats {
	return l.stores.Get(chatID).ComputeStats(ctx)
}

func (l *Lab) Theme(ctx context.Context, chatID int64) domain.Theme {
	return l.stores.Get(chatID).Theme(ctx)
}

func (l *Lab) ToggleTheme(ctx context.Context, chatID int64) domain.Theme {
	return l.stores.Get(chatID).ToggleTheme(ctx)
}

// Export returns the chat's export document as indented JSON.
func (l *Lab) Export(ctx context.Context, chatID int64) ([]byte, error) {
	data, err := l.stores.Get(chatID).ExportJSON(ctx)
	if err != nil {
		return nil, fmt.Errorf("export chat %d: %w", chatID, err)
	}
	return data, nil
}

// Reset irreversibly clears the chat's dialogue, comments and ideas.
func (l *Lab) Reset(ctx context.Context, chatID int64) {
	l.stores.Get(chatID).ResetAll(ctx)
}

// OpenChats returns how many chats currently have a cached store.
func (l *Lab) OpenChats() int {
	return l.stores.Len()
}
