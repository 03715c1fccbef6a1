package codec

import gojson "github.com/goccy/go-json"

// GoJSON is a drop-in JSON codec backed by goccy/go-json.
// Output is compatible with encoding/json.
type GoJSON[T any] struct{}

func (GoJSON[T]) Encode(v T) ([]byte, error) { return gojson.Marshal(v) }
func (GoJSON[T]) Decode(b []byte) (T, error) {
	var v T
	err := gojson.Unmarshal(b, &v)
	return v, err
}
