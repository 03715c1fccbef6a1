// Package transcode repairs entries written into a shared store by non-JSON
// writers. It reads the raw bytes under a key, and when they are not already
// JSON text, decodes them as MessagePack or CBOR and writes them back as JSON.
package transcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/vmihailenco/msgpack/v5"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

// Format names a foreign payload encoding.
type Format string

const (
	MsgPack Format = "msgpack"
	CBOR    Format = "cbor"
)

var (
	ErrUnknownFormat = errors.New("transcode: unknown format")
	ErrNotFound      = errors.New("transcode: key not found")
)

// Result describes what Repair did.
type Result int

const (
	// AlreadyJSON means the entry parsed as JSON and was left untouched.
	AlreadyJSON Result = iota
	// Rewritten means the entry was decoded and stored back as JSON text.
	Rewritten
)

func (r Result) String() string {
	if r == Rewritten {
		return "rewritten"
	}
	return "already_json"
}

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case MsgPack, CBOR:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// integer and other non-string map keys are formatted by normalize
var cborDec, _ = cbor.DecOptions{}.DecMode()

// ToJSON converts a payload in format f to JSON text.
func ToJSON(f Format, b []byte) ([]byte, error) {
	var v any
	switch f {
	case MsgPack:
		if err := msgpack.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("transcode: msgpack: %w", err)
		}
	case CBOR:
		if err := cborDec.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("transcode: cbor: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	norm, err := normalize(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(norm)
}

// FromJSON renders JSON text in format f. Used to seed foreign entries.
func FromJSON(f Format, b []byte) ([]byte, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	switch f {
	case MsgPack:
		return msgpack.Marshal(v)
	case CBOR:
		return cbor.Marshal(v)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Repair rewrites the entry under the already-encoded key as JSON text.
// Entries that already parse as JSON are not touched. Repair reads then
// writes, so callers sharing p with a jsonstore.Store run it through
// Store.Exclusive.
func Repair(ctx context.Context, p pr.Provider, ro pr.ReadOptions, wo pr.WriteOptions, key []byte, from Format) (Result, error) {
	raw, ok, err := p.GetBinary(ctx, ro, key)
	if err != nil {
		return AlreadyJSON, err
	}
	if !ok {
		return AlreadyJSON, ErrNotFound
	}
	if utf8.Valid(raw) && json.Valid(raw) {
		return AlreadyJSON, nil
	}
	out, err := ToJSON(from, raw)
	if err != nil {
		return AlreadyJSON, err
	}
	if err := p.PutBinary(ctx, wo, key, out); err != nil {
		return AlreadyJSON, err
	}
	return Rewritten, nil
}

// normalize turns decoder output into values encoding/json accepts:
// non-string map keys are formatted, byte strings become strings.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			t[k] = n
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			out[fmt.Sprint(k)] = n
		}
		return out, nil
	case []any:
		for i, e := range t {
			n, err := normalize(e)
			if err != nil {
				return nil, err
			}
			t[i] = n
		}
		return t, nil
	case []byte:
		return string(t), nil
	case cbor.Tag:
		return normalize(t.Content)
	}
	return v, nil
}
