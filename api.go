package jsonstore

import (
	"context"

	c "github.com/unkn0wn-root/jsonstore/codec"
	"github.com/unkn0wn-root/jsonstore/jsondoc"
	pr "github.com/unkn0wn-root/jsonstore/provider"
)

// Store is the JSON adapter over a byte provider. K is the key type and V
// the value type; both must be encodable to JSON by the configured encoders.
//
// Calls are serialized: each one holds the store for the duration of the
// provider round trip. Nothing is cached or buffered.
type Store[K, V any] interface {
	// Put encodes key and value and writes them with opts unchanged.
	// A provider error is returned as-is.
	Put(ctx context.Context, opts pr.WriteOptions, key K, value V) error

	// Delete encodes key and removes it with opts unchanged.
	Delete(ctx context.Context, opts pr.WriteOptions, key K) error

	// Get encodes key, reads it and parses the stored bytes.
	// Absent keys yield (nil, false, nil). Bytes that are not JSON yield a
	// *DecodeError; provider errors are returned as-is.
	Get(ctx context.Context, opts pr.ReadOptions, key K) (doc jsondoc.Value, ok bool, err error)

	// Exclusive encodes key and calls fn with it and the provider while
	// holding the store, so a read-modify-write done by fn cannot interleave
	// with other calls on this Store. fn's error is returned as-is.
	Exclusive(ctx context.Context, key K, fn func(ctx context.Context, p pr.Provider, key []byte) error) error

	// Close closes the provider.
	Close(ctx context.Context) error
}

// Options configure a Store. Only Provider is required.
type Options[K, V any] struct {
	// Required
	Provider pr.Provider

	KeyEncoder   c.Encoder[K] // nil => codec.JSON[K]
	ValueEncoder c.Encoder[V] // nil => codec.JSON[V]
	Logger       Logger       // if nil, NopLogger is used
	Hooks        Hooks        // if nil, NopHooks is used
}

func New[K, V any](opts Options[K, V]) (Store[K, V], error) {
	return newStore[K, V](opts)
}
