package codec

import "encoding/json"

// JSON is the default codec backed by encoding/json. Types implementing
// json.Marshaler / json.Unmarshaler control their own representation.
type JSON[T any] struct{}

func (JSON[T]) Encode(v T) ([]byte, error) { return json.Marshal(v) }
func (JSON[T]) Decode(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}
