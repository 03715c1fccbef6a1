//go:build rocksdb

package main

import (
	"github.com/unkn0wn-root/jsonstore/internal/config"
	pr "github.com/unkn0wn-root/jsonstore/provider"
	"github.com/unkn0wn-root/jsonstore/provider/rocksdb"
)

func init() {
	openers["rocksdb"] = func(c *config.Config) (pr.Provider, error) {
		return rocksdb.Open(c.DataDir)
	}
}
