// Package provider defines the byte-level store consumed by jsonstore.
//
// Implementations MUST be byte-for-byte transparent: GetBinary must return
// exactly the bytes previously passed to PutBinary for the same key (no
// prepended/appended metadata, no re-encoding, no mutation). If a store
// performs internal transforms (e.g., compression), they MUST be fully
// reversed on read.
//
// Options are passed through by jsonstore unchanged. Each backend documents
// which fields it honours; the rest are ignored.
package provider

import "context"

// ReadOptions configure a single binary read.
type ReadOptions struct {
	// VerifyChecksums asks the store to verify block checksums on read.
	VerifyChecksums bool
	// SkipCache asks the store not to populate its read cache, or to allow a
	// cheaper, possibly stale read where that is the backend's meaning.
	SkipCache bool
}

// WriteOptions configure a single binary put or delete.
type WriteOptions struct {
	// Sync asks the store to make the write durable before returning.
	Sync bool
	// DisableWAL skips the write-ahead log where the backend has one.
	DisableWAL bool
}

// Provider is a durable byte-keyed, byte-valued map.
type Provider interface {
	// GetBinary returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	GetBinary(ctx context.Context, opts ReadOptions, key []byte) ([]byte, bool, error)

	// PutBinary stores value under key.
	PutBinary(ctx context.Context, opts WriteOptions, key, value []byte) error

	// DeleteBinary removes key. Deleting a missing key is not an error.
	DeleteBinary(ctx context.Context, opts WriteOptions, key []byte) error

	// Close releases resources.
	Close(ctx context.Context) error
}
