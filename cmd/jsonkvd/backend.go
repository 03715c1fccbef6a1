package main

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/jsonstore/internal/config"
	pr "github.com/unkn0wn-root/jsonstore/provider"
	"github.com/unkn0wn-root/jsonstore/provider/badger"
	"github.com/unkn0wn-root/jsonstore/provider/bigcache"
	"github.com/unkn0wn-root/jsonstore/provider/etcd"
	"github.com/unkn0wn-root/jsonstore/provider/redis"
	"github.com/unkn0wn-root/jsonstore/provider/ristretto"
)

// openers holds backends compiled into this binary. Tagged files add more.
var openers = map[string]func(*config.Config) (pr.Provider, error){
	"memory": func(*config.Config) (pr.Provider, error) {
		return bigcache.New(bigcache.Config{})
	},
	"ristretto": func(*config.Config) (pr.Provider, error) {
		return ristretto.New(ristretto.Config{NumCounters: 1e6, MaxCost: 256 << 20, BufferItems: 64})
	},
	"badger": func(c *config.Config) (pr.Provider, error) {
		return badger.Open(badger.Config{Dir: c.DataDir})
	},
	"redis": func(c *config.Config) (pr.Provider, error) {
		rdb := goredis.NewClient(&goredis.Options{Addr: c.RedisAddr, DialTimeout: c.DialTimeout})
		return redis.New(redis.Config{Client: rdb, Prefix: c.RedisPrefix, CloseClient: true})
	},
	"etcd": func(c *config.Config) (pr.Provider, error) {
		return etcd.Dial(c.EtcdEndpoints, c.DialTimeout, c.EtcdPrefix)
	},
}

func openBackend(c *config.Config) (pr.Provider, error) {
	open, ok := openers[c.Backend]
	if !ok {
		return nil, fmt.Errorf("backend %q is not compiled in", c.Backend)
	}
	return open(c)
}
