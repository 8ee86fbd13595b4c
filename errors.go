package cliphub

import (
	"cliphub/catalog"
	"cliphub/storage"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, cliphub.ErrNotFound) {
//		fmt.Println("video not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var storeErr *cliphub.StoreError
//	if errors.As(err, &storeErr) {
//		fmt.Printf("failed to %s %s: %v\n", storeErr.Op, storeErr.Entity, storeErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// StoreError wraps catalog operation errors with entity context.
	StoreError = catalog.StoreError
	// StorageError wraps key-value backend errors.
	StorageError = storage.StorageError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrNotFound indicates a record was not found in the catalog.
	ErrNotFound = catalog.ErrNotFound
	// ErrInvalidInput indicates a record was missing required fields.
	ErrInvalidInput = catalog.ErrInvalidInput
	// ErrCorrupt indicates a persisted collection could not be decoded.
	ErrCorrupt = catalog.ErrCorrupt

	// Storage errors
	// ErrStorageCorrupt indicates the backing store itself could not be decoded.
	ErrStorageCorrupt = storage.ErrCorrupt
	// ErrLockTimeout indicates a timeout acquiring the store file lock.
	ErrLockTimeout = storage.ErrLockTimeout
	// ErrBackendUnavailable indicates the selected backend is not compiled in.
	ErrBackendUnavailable = storage.ErrUnavailable
)
