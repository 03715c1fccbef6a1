package ristretto

import (
	"bytes"
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

// ErrRejected is returned by PutBinary when ristretto refuses the write,
// either up front (full buffers) or later in its admission policy (for
// example a value costing more than MaxCost).
var ErrRejected = errors.New("ristretto: write rejected by admission policy")

// Provider is a volatile in-process store on top of ristretto. Writes are
// flushed through ristretto's buffers before PutBinary returns, so a get
// that follows a successful put observes it.
type Provider struct {
	c *rc.Cache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64 // total bytes of values kept
	BufferItems int64
	Metrics     bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
		// MaxCost counts value bytes only
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

func (p *Provider) GetBinary(_ context.Context, _ pr.ReadOptions, key []byte) ([]byte, bool, error) {
	v, ok := p.c.Get(string(key))
	if !ok {
		return nil, false, nil
	}
	return v.([]byte), true, nil
}

// PutBinary charges the value length as cost. Set only buffers the item and
// the admission policy may still drop it, so after the buffers drain the
// write is read back and ErrRejected is returned if it did not land.
func (p *Provider) PutBinary(_ context.Context, _ pr.WriteOptions, key, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	if !p.c.Set(string(key), v, int64(len(v))) {
		return ErrRejected
	}
	p.c.Wait()
	if got, ok := p.c.Get(string(key)); !ok || !bytes.Equal(got.([]byte), v) {
		return ErrRejected
	}
	return nil
}

func (p *Provider) DeleteBinary(_ context.Context, _ pr.WriteOptions, key []byte) error {
	p.c.Del(string(key))
	p.c.Wait()
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Helper to expose metrics if desired by the application (not part of provider.Provider).
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
