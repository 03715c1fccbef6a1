package jsonstore

import (
	"context"

	c "github.com/unkn0wn-root/jsonstore/codec"
	pr "github.com/unkn0wn-root/jsonstore/provider"
)

// GetAs reads key and decodes the document into a T with dec (codec.JSON[T]
// when nil). Absence is (zero, false, nil). A document that does not fit T
// is reported as a *DecodeError, like unparsable bytes.
func GetAs[T, K, V any](ctx context.Context, s Store[K, V], opts pr.ReadOptions, key K, dec c.Decoder[T]) (T, bool, error) {
	var zero T
	doc, ok, err := s.Get(ctx, opts, key)
	if err != nil || !ok {
		return zero, false, err
	}
	if dec == nil {
		dec = c.JSON[T]{}
	}
	b, err := doc.MarshalJSON()
	if err != nil {
		return zero, false, err
	}
	v, err := dec.Decode(b)
	if err != nil {
		var k []byte
		if impl, ok := s.(*store[K, V]); ok {
			k, _ = encodeJSON(impl.keyEnc, key)
		}
		return zero, false, &DecodeError{Key: k, Size: len(b)}
	}
	return v, true, nil
}
