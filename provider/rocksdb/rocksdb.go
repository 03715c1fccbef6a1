//go:build rocksdb

// Package rocksdb is a Provider on top of RocksDB via grocksdb. It needs cgo
// and librocksdb, so it is only built with the "rocksdb" build tag.
package rocksdb

import (
	"context"

	"github.com/linxGnu/grocksdb"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

type RocksDB struct {
	db   *grocksdb.DB
	opts *grocksdb.Options // owned; released after db in Close
}

var _ pr.Provider = (*RocksDB)(nil)

// Open opens (creating if missing) the database at path.
func Open(path string) (*RocksDB, error) {
	opts := grocksdb.NewDefaultOptions()
	opts.SetCreateIfMissing(true)
	db, err := grocksdb.OpenDb(opts, path)
	if err != nil {
		opts.Destroy()
		return nil, err
	}
	return &RocksDB{db: db, opts: opts}, nil
}

func readOptions(o pr.ReadOptions) *grocksdb.ReadOptions {
	ro := grocksdb.NewDefaultReadOptions()
	ro.SetVerifyChecksums(o.VerifyChecksums)
	ro.SetFillCache(!o.SkipCache)
	return ro
}

func writeOptions(o pr.WriteOptions) *grocksdb.WriteOptions {
	wo := grocksdb.NewDefaultWriteOptions()
	wo.SetSync(o.Sync)
	wo.DisableWAL(o.DisableWAL)
	return wo
}

func (r *RocksDB) GetBinary(_ context.Context, opts pr.ReadOptions, key []byte) ([]byte, bool, error) {
	ro := readOptions(opts)
	defer ro.Destroy()

	v, err := r.db.Get(ro, key)
	if err != nil {
		return nil, false, err
	}
	defer v.Free()
	if !v.Exists() {
		return nil, false, nil
	}
	raw := make([]byte, v.Size())
	copy(raw, v.Data())
	return raw, true, nil
}

func (r *RocksDB) PutBinary(_ context.Context, opts pr.WriteOptions, key, value []byte) error {
	wo := writeOptions(opts)
	defer wo.Destroy()
	return r.db.Put(wo, key, value)
}

func (r *RocksDB) DeleteBinary(_ context.Context, opts pr.WriteOptions, key []byte) error {
	wo := writeOptions(opts)
	defer wo.Destroy()
	return r.db.Delete(wo, key)
}

func (r *RocksDB) Close(context.Context) error {
	if r.db == nil {
		return nil
	}
	r.db.Close()
	r.opts.Destroy()
	r.db, r.opts = nil, nil
	return nil
}
