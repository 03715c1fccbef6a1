package jsonstore

import (
	"errors"
	"fmt"
)

// ErrDecode matches every *DecodeError via errors.Is.
var ErrDecode = errors.New("jsonstore: json parsing failed")

// DecodeError reports that bytes read from the provider are not JSON text.
// The parser's own diagnosis is deliberately not kept: truncation, bad tokens
// and trailing garbage are all the same failure to a caller.
type DecodeError struct {
	Key  []byte // encoded key that was read
	Size int    // length of the stored payload
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsonstore: json parsing failed for key %s (%d bytes)", e.Key, e.Size)
}

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// EncodeError reports that a key or value could not be turned into JSON
// text. The provider is not called when this happens.
type EncodeError struct {
	Part string // "key" or "value"
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("jsonstore: encode %s: %v", e.Part, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

var errInvalidJSON = errors.New("encoder produced invalid json")
