package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/set-night/elliotlab/internal/kv"
	"github.com/set-night/elliotlab/internal/store"
)

type cachedStore struct {
	store    *store.Store
	lastUsed time.Time
}

// StoreCache hands out one store per chat, each over its own key prefix of
// the shared backing store. Stores idle for longer than the TTL are dropped
// and rebuilt from the backing store on the next request.
type StoreCache struct {
	mu        sync.Mutex
	backing   kv.Store
	opts      []store.Option
	idle      time.Duration
	lastPrune time.Time
	stores    map[int64]*cachedStore
}

// NewStoreCache caches per-chat stores over backing. An idle TTL of zero or
// less keeps every store for the life of the process.
func NewStoreCache(backing kv.Store, idle time.Duration, opts ...store.Option) *StoreCache {
	return &StoreCache{
		backing: backing,
		opts:    opts,
		idle:    idle,
		stores:  make(map[int64]*cachedStore),
	}
}

func (c *StoreCache) Get(chatID int64) *store.Store {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.idle > 0 && now.Sub(c.lastPrune) >= c.idle {
		c.prune(now)
	}

	if e, ok := c.stores[chatID]; ok {
		e.lastUsed = now
		return e.store
	}
	s := store.New(kv.NewPrefixed(c.backing, ChatPrefix(chatID)), c.opts...)
	c.stores[chatID] = &cachedStore{store: s, lastUsed: now}
	return s
}

// Prune drops stores not used within the idle TTL before now and returns
// how many were dropped.
func (c *StoreCache) Prune(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prune(now)
}

func (c *StoreCache) prune(now time.Time) int {
	c.lastPrune = now
	if c.idle <= 0 {
		return 0
	}
	dropped := 0
	for id, e := range c.stores {
		if now.Sub(e.lastUsed) > c.idle {
			delete(c.stores, id)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of chats with a cached store.
func (c *StoreCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stores)
}

// ChatPrefix is the key namespace of one chat.
func ChatPrefix(chatID int64) string {
	return fmt.Sprintf("chat:%d:", chatID)
}
