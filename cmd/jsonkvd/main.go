// Command jsonkvd serves a JSON key-value store over HTTP.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/jsonstore"
	"github.com/unkn0wn-root/jsonstore/codec"
	"github.com/unkn0wn-root/jsonstore/internal/config"
	"github.com/unkn0wn-root/jsonstore/internal/httpapi"
	zaplog "github.com/unkn0wn-root/jsonstore/log/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "jsonkvd:", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	// --- Backend ---
	p, err := openBackend(cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}

	store, err := jsonstore.New[string, json.RawMessage](jsonstore.Options[string, json.RawMessage]{
		Provider: p,
		// values arrive as validated JSON text; the engine encodes keys
		ValueEncoder: codec.Raw{},
		KeyEncoder:   keyEncoder(cfg.JSONEngine),
		Logger:       zaplog.New(log),
	})
	if err != nil {
		return err
	}

	// --- HTTP ---
	h := &httpapi.Handler{
		Store:         store,
		Log:           log,
		MaxValueBytes: cfg.MaxValueBytes,
	}
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: httpapi.NewRouter(h, httpapi.RateLimit{Rate: cfg.RateLimit, Burst: cfg.RateBurst}),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http api listening", zap.String("addr", cfg.HTTPAddr), zap.String("backend", cfg.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// --- Wait for Interrupt ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case <-stop:
		log.Info("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error("http server error", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	_ = srv.Shutdown(ctx)
	if err := store.Close(ctx); err != nil {
		log.Warn("close backend", zap.Error(err))
	}
	log.Info("shutdown complete")
	return nil
}

func keyEncoder(engine string) codec.Encoder[string] {
	c, _ := codec.ByName[string](engine)
	return c
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
