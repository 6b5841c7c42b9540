// Package blobstore is the versioned blob repository behind the cart, the
// current-delivery slot, and the two navigation trees. Each blob is a JSON
// document under a fixed string key. Writes carry the version the writer
// read; a mismatch is rejected so two concurrent editors cannot silently
// clobber each other.
package blobstore

import (
	"context"
	"errors"
)

// ErrStale is returned by Put when the expected version no longer matches
// the stored one.
var ErrStale = errors.New("blobstore: stale write")

// Blob is a stored document plus the version it was read at.
type Blob struct {
	Data    []byte
	Version int64
}

// ForceWrite skips the version check on Put.
const ForceWrite int64 = -1

// Store is the blob repository contract. Missing keys are not errors: Get
// reports them via ok=false, and a Put with expected version 0 creates the
// key.
type Store interface {
	// Get returns the blob at key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (Blob, bool, error)

	// Put writes data at key. expect is the version the caller read (0 for
	// a key it found absent, ForceWrite to skip the check). Returns the new
	// version.
	Put(ctx context.Context, key string, data []byte, expect int64) (int64, error)

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
