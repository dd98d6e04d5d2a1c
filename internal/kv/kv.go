// Package kv defines the key-value backing stores the lab persists into.
package kv

import "context"

// Store is a string-keyed, string-valued store. Get reports false for a key
// that was never set or has been removed.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
