package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/jsonstore"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeFailedEvery uint64
	StoreFailedEvery  uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func([]byte) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeCtr atomic.Uint64
	storeCtr  atomic.Uint64
}

var _ jsonstore.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k []byte) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256(k)
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) DecodeFailed(key []byte, size int) {
	if h.l == nil || !sample(h.opts.DecodeFailedEvery, &h.decodeCtr) {
		return
	}
	h.l.Warn("jsonstore.decode_failed",
		"key", h.redact(key),
		"size", size)
}

func (h *Hooks) EncodeFailed(part string, err error) {
	if h.l == nil {
		return
	}
	h.l.Debug("jsonstore.encode_failed",
		"part", part,
		"err", err)
}

func (h *Hooks) StoreFailed(op string, key []byte, err error) {
	if h.l == nil || !sample(h.opts.StoreFailedEvery, &h.storeCtr) {
		return
	}
	h.l.Error("jsonstore.store_failed",
		"op", op,
		"key", h.redact(key),
		"err", err)
}
