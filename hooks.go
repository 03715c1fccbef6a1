package jsonstore

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The store may call them while it holds its lock.
type Hooks interface {
	// Stored bytes under key failed to parse as JSON.
	DecodeFailed(key []byte, size int)

	// A key or value could not be encoded. part ∈ {"key", "value"}
	EncodeFailed(part string, err error)

	// The provider returned an error. op ∈ {"put", "get", "delete"}
	StoreFailed(op string, key []byte, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) DecodeFailed([]byte, int)          {}
func (NopHooks) EncodeFailed(string, error)        {}
func (NopHooks) StoreFailed(string, []byte, error) {}
