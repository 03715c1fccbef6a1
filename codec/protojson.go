package codec

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ProtoJSON stores protobuf messages using the canonical proto3 JSON mapping.
type ProtoJSON[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *mypb.User { return &mypb.User{} })

	// Marshal tunes the output; the zero value uses protojson defaults.
	Marshal protojson.MarshalOptions
	// Unmarshal tunes parsing; DiscardUnknown is useful when old readers
	// meet entries written by newer schemas.
	Unmarshal protojson.UnmarshalOptions
}

func NewProtoJSON[T proto.Message](ctor func() T) ProtoJSON[T] {
	return ProtoJSON[T]{new: ctor}
}

func (c ProtoJSON[T]) Encode(v T) ([]byte, error) {
	return c.Marshal.Marshal(v)
}

func (c ProtoJSON[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := c.Unmarshal.Unmarshal(b, m)
	return m, err
}
