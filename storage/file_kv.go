package storage

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"
)

const lockTimeout = 5 * time.Second

// FileKV persists the key-value map as a single JSON file. The whole map is
// loaded at open and rewritten atomically on every Set. An advisory file
// lock held for the lifetime of the store keeps a second process from
// opening the same file; concurrent mutation across processes is otherwise
// out of scope.
type FileKV struct {
	path string
	lock *FileLock
	data map[string]string
	mu   sync.RWMutex
}

// OpenFileKV opens or creates the store file at path.
func OpenFileKV(path string) (*FileKV, error) {
	s := &FileKV{
		path: path,
		lock: NewFileLock(path),
	}

	if err := s.lock.Lock(lockTimeout); err != nil {
		return nil, err
	}

	if err := s.load(); err != nil {
		s.lock.Unlock()
		return nil, err
	}

	return s, nil
}

// load reads the JSON file into memory. Starts empty if the file is missing.
func (s *FileKV) load() error {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.data = make(map[string]string)
			// Save immediately to catch permission errors early
			return s.save()
		}
		return &StorageError{Op: "read", Key: s.path, Err: err}
	}

	s.data = make(map[string]string)
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return &StorageError{Op: "read", Key: s.path, Err: ErrCorrupt}
	}
	return nil
}

// save rewrites the file atomically. Caller must hold the mutex.
func (s *FileKV) save() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return &StorageError{Op: "write", Key: s.path, Err: err}
	}
	if err := writeFileAtomic(s.path, raw); err != nil {
		return &StorageError{Op: "write", Key: s.path, Err: err}
	}
	return nil
}

func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *FileKV) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.save()
}

// Close releases the file lock.
func (s *FileKV) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lock.Unlock()
}
