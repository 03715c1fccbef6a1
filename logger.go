package jsonstore

// Fields carries structured context for one log line. Events about a key put
// the encoded key text under "key".
type Fields map[string]any

// Logger receives the store's diagnostics: encode failures at Debug and
// stored payloads that do not parse at Warn. Adapters for zap, logrus and
// slog live under log/.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

// NopLogger discards everything. A Store built without a Logger uses it.
type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}

// keyFields describes an event about the encoded key k; a nil k (the key
// never encoded) and a nil err are left out.
func keyFields(k []byte, err error, extra ...any) Fields {
	f := make(Fields, 2+len(extra)/2)
	if k != nil {
		f["key"] = string(k)
	}
	if err != nil {
		f["err"] = err
	}
	for i := 0; i+1 < len(extra); i += 2 {
		if name, ok := extra[i].(string); ok {
			f[name] = extra[i+1]
		}
	}
	return f
}
