// Package badger is a durable, pure-Go Provider on top of dgraph-io/badger.
package badger

import (
	"context"
	"errors"

	bg "github.com/dgraph-io/badger/v4"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

type Provider struct {
	db      *bg.DB
	closeDB bool
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	// Dir is the data directory. Ignored when InMemory is set.
	Dir      string
	InMemory bool
	// SyncWrites makes every write durable. Otherwise only writes with
	// WriteOptions.Sync are synced.
	SyncWrites bool
}

// Open opens (creating if missing) a badger database owned by the provider.
func Open(cfg Config) (*Provider, error) {
	opts := bg.DefaultOptions(cfg.Dir).
		WithInMemory(cfg.InMemory).
		WithSyncWrites(cfg.SyncWrites).
		WithLogger(nil)
	if cfg.InMemory {
		opts = opts.WithDir("").WithValueDir("")
	}
	db, err := bg.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Provider{db: db, closeDB: true}, nil
}

// NewWithDB wraps a database the caller keeps ownership of.
func NewWithDB(db *bg.DB) *Provider { return &Provider{db: db} }

// GetBinary ignores opts.
func (p *Provider) GetBinary(_ context.Context, _ pr.ReadOptions, key []byte) ([]byte, bool, error) {
	var out []byte
	err := p.db.View(func(txn *bg.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, bg.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}

func (p *Provider) PutBinary(_ context.Context, opts pr.WriteOptions, key, value []byte) error {
	err := p.db.Update(func(txn *bg.Txn) error {
		return txn.Set(key, value)
	})
	if err != nil {
		return err
	}
	return p.sync(opts)
}

func (p *Provider) DeleteBinary(_ context.Context, opts pr.WriteOptions, key []byte) error {
	err := p.db.Update(func(txn *bg.Txn) error {
		return txn.Delete(key)
	})
	if err != nil {
		return err
	}
	return p.sync(opts)
}

func (p *Provider) sync(opts pr.WriteOptions) error {
	if !opts.Sync || p.db.Opts().InMemory {
		return nil
	}
	return p.db.Sync()
}

func (p *Provider) Close(context.Context) error {
	if !p.closeDB {
		return nil
	}
	return p.db.Close()
}
