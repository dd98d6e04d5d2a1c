package kv

import "context"

// Prefixed is a namespaced view over another Store. Every key is stored as
// prefix+key in the underlying store.
type Prefixed struct {
	inner  Store
	prefix string
}

func NewPrefixed(inner Store, prefix string) *Prefixed {
	return &Prefixed{inner: inner, prefix: prefix}
}

func (p *Prefixed) Get(ctx context.Context, key string) (string, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *Prefixed) Set(ctx context.Context, key, value string) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *Prefixed) Remove(ctx context.Context, key string) error {
	return p.inner.Remove(ctx, p.prefix+key)
}
