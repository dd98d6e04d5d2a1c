package kv

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/set-night/elliotlab/internal/domain"
)

// Pebble is an on-disk Store backed by a Pebble database.
type Pebble struct {
	mu sync.RWMutex
	db *pebble.DB
}

// OpenPebble opens (or creates) a Pebble database at path.
func OpenPebble(path string) (*Pebble, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", path, err)
	}
	slog.Info("pebble opened", "path", path)
	return &Pebble{db: db}, nil
}

func (p *Pebble) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.db == nil {
		return "", false, domain.ErrStoreClosed
	}

	v, closer, err := p.db.Get([]byte(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("pebble get %s: %w", key, err)
	}
	defer closer.Close()
	// v is only valid until closer is closed
	return string(v), true, nil
}

func (p *Pebble) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.db == nil {
		return domain.ErrStoreClosed
	}
	if err := p.db.Set([]byte(key), []byte(value), pebble.Sync); err != nil {
		return fmt.Errorf("pebble set %s: %w", key, err)
	}
	return nil
}

func (p *Pebble) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.db == nil {
		return domain.ErrStoreClosed
	}
	if err := p.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("pebble delete %s: %w", key, err)
	}
	return nil
}

// Close flushes and closes the database. Further calls fail with
// domain.ErrStoreClosed.
func (p *Pebble) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	if err != nil {
		return fmt.Errorf("close pebble: %w", err)
	}
	slog.Info("pebble closed")
	return nil
}
