package codec

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNotJSON = errors.New("codec: raw payload is not valid json")

// Raw passes already-encoded JSON through. Encode compacts insignificant
// whitespace; Decode returns a private copy so callers may keep it after the
// store reuses its buffers.
type Raw struct{}

func (Raw) Encode(m json.RawMessage) ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m); err != nil {
		return nil, errNotJSON
	}
	return buf.Bytes(), nil
}

func (Raw) Decode(b []byte) (json.RawMessage, error) {
	if !json.Valid(b) {
		return nil, errNotJSON
	}
	out := make(json.RawMessage, len(b))
	copy(out, b)
	return out, nil
}
