// Package jsonstore stores structured values in a byte-oriented key-value
// store by encoding both keys and values as JSON text.
//
// Components:
//   - Provider: byte store (RocksDB, Badger, Redis, etcd, BigCache, Ristretto).
//   - Encoder[T]: turns keys and values into JSON text (encoding/json by default).
//   - jsondoc.Value: the parsed document returned by Get.
//
// The stored pair is always (json(key), json(value)). Get parses whatever
// bytes the provider returns and reports one of three outcomes:
//
//	doc, true, nil       - entry found and parsed
//	nil, false, nil      - no entry under that key
//	nil, false, err      - provider error (returned verbatim) or *DecodeError
//
// Usage:
//
//	p, _ := badger.Open(badger.Config{Dir: "./data"})
//	s, _ := jsonstore.New[string, User](jsonstore.Options[string, User]{Provider: p})
//	_ = s.Put(ctx, provider.WriteOptions{Sync: true}, "user:1", User{Name: "Ada"})
//	doc, ok, err := s.Get(ctx, provider.ReadOptions{}, "user:1")
package jsonstore
