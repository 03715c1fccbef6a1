// Package etcd stores entries in an etcd cluster through the v3 KV API.
package etcd

import (
	"context"
	"errors"
	"time"

	clientv3 "go.etcd.io/etcd/client/v3"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

var ErrNilClient = errors.New("etcd provider: nil client")

type Provider struct {
	cli         *clientv3.Client
	prefix      string
	closeClient bool
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	Client *clientv3.Client
	// Prefix is prepended to every key, e.g. "/jsonstore/".
	Prefix      string
	CloseClient bool
}

func New(cfg Config) (*Provider, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Provider{cli: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

// Dial connects to endpoints and returns a provider that owns the client.
func Dial(endpoints []string, dialTimeout time.Duration, prefix string) (*Provider, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   endpoints,
		DialTimeout: dialTimeout,
	})
	if err != nil {
		return nil, err
	}
	return &Provider{cli: cli, prefix: prefix, closeClient: true}, nil
}

func (p *Provider) key(k []byte) string { return p.prefix + string(k) }

// GetBinary maps opts.SkipCache to a serializable read, which may be served
// by any member without a quorum round trip.
func (p *Provider) GetBinary(ctx context.Context, opts pr.ReadOptions, key []byte) ([]byte, bool, error) {
	var ops []clientv3.OpOption
	if opts.SkipCache {
		ops = append(ops, clientv3.WithSerializable())
	}
	resp, err := p.cli.Get(ctx, p.key(key), ops...)
	if err != nil {
		return nil, false, err
	}
	if len(resp.Kvs) == 0 {
		return nil, false, nil
	}
	return resp.Kvs[0].Value, true, nil
}

// PutBinary ignores opts; etcd commits through raft before acknowledging.
func (p *Provider) PutBinary(ctx context.Context, _ pr.WriteOptions, key, value []byte) error {
	_, err := p.cli.Put(ctx, p.key(key), string(value))
	return err
}

func (p *Provider) DeleteBinary(ctx context.Context, _ pr.WriteOptions, key []byte) error {
	_, err := p.cli.Delete(ctx, p.key(key))
	return err
}

func (p *Provider) Close(context.Context) error {
	if p.closeClient {
		return p.cli.Close()
	}
	return nil
}
