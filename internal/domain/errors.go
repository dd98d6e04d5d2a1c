package domain

import "errors"

var (
	ErrStoreClosed     = errors.New("store closed")
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrMissingDatabase = errors.New("database url required for postgres backend")
)
