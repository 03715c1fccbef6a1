// Package codec turns keys and values into JSON text for the store.
//
// Every codec here produces JSON. The adapter still checks the output, so a
// custom Encoder that emits anything else is reported as an encode error
// rather than written.
package codec

// Encoder turns a T into JSON text.
type Encoder[T any] interface {
	Encode(T) ([]byte, error)
}

// Decoder turns JSON text back into a T.
type Decoder[T any] interface {
	Decode([]byte) (T, error)
}

// Codec encodes/decodes values T to JSON bytes.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// ByName returns the JSON engine registered under name: "std" (or ""),
// "goccy" or "jsoniter". ok is false for unknown names.
func ByName[T any](name string) (c Codec[T], ok bool) {
	switch name {
	case "", "std":
		return JSON[T]{}, true
	case "goccy":
		return GoJSON[T]{}, true
	case "jsoniter":
		return Jsoniter[T]{}, true
	}
	return nil, false
}
