// Package storage is a small key-value store standing in for browser localStorage.
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// Store persists string values under string keys.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

var ErrClosed = errors.New("storage: closed")

// Open picks a backend by name ("file", "sqlite", "memory"). dir is the
// profile directory used by the on-disk backends.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "file":
		return OpenFile(filepath.Join(dir, "storage.json"))
	case "sqlite":
		return OpenSQLite(filepath.Join(dir, "storage.db"))
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
}

// OpenOrMemory never fails: a broken backend is logged and replaced by an
// in-memory store so the game keeps running without persistence.
func OpenOrMemory(backend, dir string) Store {
	s, err := Open(backend, dir)
	if err != nil {
		log.Println("storage:", err, "- progress will not be saved")
		return NewMemory()
	}
	return s
}
