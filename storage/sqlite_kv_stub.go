//go:build !cgo

package storage

// SQLiteKV is unavailable without cgo; use the file backend or rebuild with
// CGO_ENABLED=1.
type SQLiteKV struct{}

func OpenSQLiteKV(path string) (*SQLiteKV, error) {
	return nil, ErrUnavailable
}

func (s *SQLiteKV) Get(key string) (string, bool, error) { return "", false, ErrUnavailable }

func (s *SQLiteKV) Set(key, value string) error { return ErrUnavailable }

func (s *SQLiteKV) Close() error { return nil }
