// Package bigcache is a volatile in-process Provider. Contents do not survive
// a restart; use it for tests, local development and ephemeral data.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

type Provider struct {
	c *bc.BigCache
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	LifeWindow         time.Duration // 0 => effectively never expire
	CleanWindow        time.Duration
	Shards             int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

// never is used when no LifeWindow is configured.
const never = 100 * 365 * 24 * time.Hour

func New(cfg Config) (*Provider, error) {
	life := cfg.LifeWindow
	if life <= 0 {
		life = never
	}
	conf := bc.DefaultConfig(life)
	conf.Verbose = false
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.Shards > 0 {
		conf.Shards = cfg.Shards
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(context.Background(), conf)
	if err != nil {
		return nil, err
	}
	return &Provider{c: c}, nil
}

// GetBinary ignores opts.
func (p *Provider) GetBinary(_ context.Context, _ pr.ReadOptions, key []byte) ([]byte, bool, error) {
	b, err := p.c.Get(string(key))
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// PutBinary ignores opts; bigcache has no durability knobs.
func (p *Provider) PutBinary(_ context.Context, _ pr.WriteOptions, key, value []byte) error {
	return p.c.Set(string(key), value)
}

func (p *Provider) DeleteBinary(_ context.Context, _ pr.WriteOptions, key []byte) error {
	err := p.c.Delete(string(key))
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil
	}
	return err
}

func (p *Provider) Close(_ context.Context) error {
	return p.c.Close()
}
