// Package storage provides the persistent key-value store backing the catalog.
//
// The store contract is deliberately small: a synchronous string-keyed
// get/set, the shape of a browser's localStorage. The catalog serializes
// whole collections into single values, so backends only need to round-trip
// opaque strings durably.
package storage

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for common storage conditions.
var (
	// ErrCorrupt indicates the persisted state could not be decoded.
	ErrCorrupt = errors.New("storage: data corruption detected")
	// ErrLockTimeout indicates a timeout acquiring a file lock.
	ErrLockTimeout = errors.New("storage: lock acquisition timeout")
	// ErrUnavailable indicates the backend is not available in this build.
	ErrUnavailable = errors.New("storage: backend unavailable")
)

// KV is a synchronous string-keyed store. Get reports whether the key was
// present; an absent key is not an error. Implementations must be safe for
// concurrent use within a process.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// StorageError wraps backend errors with operation context.
type StorageError struct {
	Op  string // "open", "read", "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// MemoryKV is an in-process KV with no persistence. It stands in for the
// real store in tests and is also useful for ephemeral sessions.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
