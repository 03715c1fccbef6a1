package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"unicode/utf8"

	c "github.com/unkn0wn-root/jsonstore/codec"
	"github.com/unkn0wn-root/jsonstore/jsondoc"
	pr "github.com/unkn0wn-root/jsonstore/provider"
)

type store[K, V any] struct {
	mu       sync.Mutex
	provider pr.Provider
	keyEnc   c.Encoder[K]
	valEnc   c.Encoder[V]
	log      Logger
	hooks    Hooks
}

func newStore[K, V any](opts Options[K, V]) (*store[K, V], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("jsonstore: provider is required")
	}

	s := &store[K, V]{
		provider: opts.Provider,
		keyEnc:   opts.KeyEncoder,
		valEnc:   opts.ValueEncoder,
		log:      opts.Logger,
		hooks:    opts.Hooks,
	}
	if s.keyEnc == nil {
		s.keyEnc = c.JSON[K]{}
	}
	if s.valEnc == nil {
		s.valEnc = c.JSON[V]{}
	}
	if s.log == nil {
		s.log = NopLogger{}
	}
	if s.hooks == nil {
		s.hooks = NopHooks{}
	}
	return s, nil
}

func (s *store[K, V]) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.provider.Close(ctx)
}

func (s *store[K, V]) Put(ctx context.Context, opts pr.WriteOptions, key K, value V) error {
	k, err := s.encodeKey(key)
	if err != nil {
		return err
	}
	v, err := encodeJSON(s.valEnc, value)
	if err != nil {
		s.log.Debug("value encode failed", keyFields(k, err))
		s.hooks.EncodeFailed("value", err)
		return &EncodeError{Part: "value", Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.provider.PutBinary(ctx, opts, k, v); err != nil {
		s.hooks.StoreFailed("put", k, err)
		return err
	}
	return nil
}

func (s *store[K, V]) Delete(ctx context.Context, opts pr.WriteOptions, key K) error {
	k, err := s.encodeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.provider.DeleteBinary(ctx, opts, k); err != nil {
		s.hooks.StoreFailed("delete", k, err)
		return err
	}
	return nil
}

func (s *store[K, V]) Get(ctx context.Context, opts pr.ReadOptions, key K) (jsondoc.Value, bool, error) {
	k, err := s.encodeKey(key)
	if err != nil {
		return nil, false, err
	}

	s.mu.Lock()
	raw, ok, err := s.provider.GetBinary(ctx, opts, k)
	s.mu.Unlock()
	if err != nil {
		s.hooks.StoreFailed("get", k, err)
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	doc, err := jsondoc.Parse(raw)
	if err != nil {
		s.log.Warn("stored payload is not json", keyFields(k, nil, "size", len(raw)))
		s.hooks.DecodeFailed(k, len(raw))
		return nil, false, &DecodeError{Key: k, Size: len(raw)}
	}
	return doc, true, nil
}

func (s *store[K, V]) Exclusive(ctx context.Context, key K, fn func(context.Context, pr.Provider, []byte) error) error {
	k, err := s.encodeKey(key)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, s.provider, k)
}

func (s *store[K, V]) encodeKey(key K) ([]byte, error) {
	k, err := encodeJSON(s.keyEnc, key)
	if err != nil {
		s.log.Debug("key encode failed", keyFields(nil, err))
		s.hooks.EncodeFailed("key", err)
		return nil, &EncodeError{Part: "key", Err: err}
	}
	return k, nil
}

// encodeJSON runs enc and refuses output that is not JSON text (including
// invalid UTF-8, which json.Valid lets through), so only JSON ever reaches
// the provider.
func encodeJSON[T any](enc c.Encoder[T], v T) ([]byte, error) {
	b, err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) || !json.Valid(b) {
		return nil, errInvalidJSON
	}
	return b, nil
}
