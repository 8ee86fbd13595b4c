//go:build windows

package storage

import (
	"os"
	"time"
)

// FileLock provides advisory file locking for cross-process synchronization.
// Windows has no flock(2); exclusive creation of the lock file serves the
// same purpose since the file stays open for the lifetime of the lock.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a file lock. The lock is not acquired until Lock() is called.
func NewFileLock(path string) *FileLock {
	return &FileLock{path: path + ".lock"}
}

// Lock acquires an exclusive lock, polling until the timeout elapses.
// Returns ErrLockTimeout if the lock cannot be acquired in time.
func (l *FileLock) Lock(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0o600)
		if err == nil {
			l.file = f
			return nil
		}
		if !os.IsExist(err) {
			return &StorageError{Op: "open", Key: l.path, Err: err}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return ErrLockTimeout
}

// Unlock releases the lock.
func (l *FileLock) Unlock() error {
	if l.file == nil {
		return nil
	}
	l.file.Close()
	os.Remove(l.path)
	l.file = nil
	return nil
}
