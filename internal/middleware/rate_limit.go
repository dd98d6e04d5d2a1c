package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"golang.org/x/time/rate"
)

type chatBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per chat. Buckets of chats silent for
// longer than the idle TTL are dropped.
type Limiter struct {
	mu        sync.Mutex
	buckets   map[int64]*chatBucket
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastPrune time.Time
}

// NewLimiter allows perMinute messages per chat with the given burst. An
// idle TTL of zero or less keeps buckets for the life of the process.
func NewLimiter(perMinute, burst int, idle time.Duration) *Limiter {
	if perMinute <= 0 {
		perMinute = 20
	}
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		buckets: make(map[int64]*chatBucket),
		every:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		idle:    idle,
	}
}

func (l *Limiter) Allow(chatID int64) bool {
	now := time.Now()

	l.mu.Lock()
	if l.idle > 0 && now.Sub(l.lastPrune) >= l.idle {
		l.prune(now)
	}
	bucket, ok := l.buckets[chatID]
	if !ok {
		bucket = &chatBucket{limiter: rate.NewLimiter(l.every, l.burst)}
		l.buckets[chatID] = bucket
	}
	bucket.lastSeen = now
	l.mu.Unlock()

	return bucket.limiter.AllowN(now, 1)
}

// Prune drops buckets not used within the idle TTL before now and returns
// how many were dropped.
func (l *Limiter) Prune(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.prune(now)
}

func (l *Limiter) prune(now time.Time) int {
	l.lastPrune = now
	if l.idle <= 0 {
		return 0
	}
	dropped := 0
	for id, b := range l.buckets {
		if now.Sub(b.lastSeen) > l.idle {
			delete(l.buckets, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of tracked chats.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// RateLimit returns middleware that drops messages from chats over their limit.
func RateLimit(limiter *Limiter) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			// Only rate limit messages (not callbacks or other updates)
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			if !limiter.Allow(chatID) {
				slog.Debug("rate limited", "chat_id", chatID)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Muitas mensagens seguidas. Espere um pouco.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}
