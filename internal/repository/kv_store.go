package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	getEntrySQL    = `SELECT value FROM kv_entries WHERE key = $1`
	upsertEntrySQL = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	deleteEntrySQL = `DELETE FROM kv_entries WHERE key = $1`
)

// KVStore keeps key-value entries in the kv_entries table.
type KVStore struct {
	db *pgxpool.Pool
}

func NewKVStore(db *pgxpool.Pool) *KVStore {
	return &KVStore{db: db}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, getEntrySQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get entry %s: %w", key, err)
	}
	return value, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.Exec(ctx, upsertEntrySQL, key, value); err != nil {
		return fmt.Errorf("set entry %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.Exec(ctx, deleteEntrySQL, key); err != nil {
		return fmt.Errorf("delete entry %s: %w", key, err)
	}
	return nil
}
