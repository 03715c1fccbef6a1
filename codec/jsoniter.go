package codec

import jsoniter "github.com/json-iterator/go"

// std-compatible config: sorted map keys, html escaping, same as encoding/json.
var iterAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Jsoniter is a JSON codec backed by json-iterator/go.
type Jsoniter[T any] struct{}

func (Jsoniter[T]) Encode(v T) ([]byte, error) { return iterAPI.Marshal(v) }
func (Jsoniter[T]) Decode(b []byte) (T, error) {
	var v T
	err := iterAPI.Unmarshal(b, &v)
	return v, err
}
