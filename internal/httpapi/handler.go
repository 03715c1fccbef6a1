// Package httpapi exposes a jsonstore.Store over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/jsonstore"
	pr "github.com/unkn0wn-root/jsonstore/provider"
	"github.com/unkn0wn-root/jsonstore/transcode"
)

// Handler serves the /kv routes. Keys in the URL are strings and are stored
// as JSON strings; values are any JSON text.
type Handler struct {
	Store         jsonstore.Store[string, json.RawMessage]
	Log           *zap.Logger
	MaxValueBytes int64
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}
	ro := pr.ReadOptions{
		VerifyChecksums: boolQuery(r, "verify"),
		SkipCache:       boolQuery(r, "skip_cache"),
	}
	doc, found, err := h.Store.Get(r.Context(), ro, key)
	if err != nil {
		h.storeError(w, r, "get", err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	b, err := doc.MarshalJSON()
	if err != nil {
		h.storeError(w, r, "get", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

func (h *Handler) put(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.MaxValueBytes))
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			writeError(w, http.StatusRequestEntityTooLarge, "value exceeds "+strconv.FormatInt(mbe.Limit, 10)+" bytes")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !json.Valid(body) {
		writeError(w, http.StatusBadRequest, "body is not valid json")
		return
	}
	if err := h.Store.Put(r.Context(), writeOptions(r), key, json.RawMessage(body)); err != nil {
		h.storeError(w, r, "put", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), writeOptions(r), key); err != nil {
		h.storeError(w, r, "delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type repairBody struct {
	Result string `json:"result"`
}

func (h *Handler) repair(w http.ResponseWriter, r *http.Request) {
	key, ok := h.key(w, r)
	if !ok {
		return
	}
	from, err := transcode.ParseFormat(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var res transcode.Result
	err = h.Store.Exclusive(r.Context(), key, func(ctx context.Context, p pr.Provider, k []byte) (rerr error) {
		res, rerr = transcode.Repair(ctx, p, pr.ReadOptions{}, writeOptions(r), k, from)
		return rerr
	})
	var ee *jsonstore.EncodeError
	switch {
	case errors.Is(err, transcode.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
		return
	case errors.As(err, &ee):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.Log.Warn("repair failed", zap.String("key", key), zap.String("from", string(from)), zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	h.Log.Info("repair", zap.String("key", key), zap.Stringer("result", res))
	writeJSON(w, http.StatusOK, repairBody{Result: res.String()})
}

func (h *Handler) key(w http.ResponseWriter, r *http.Request) (string, bool) {
	k, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil || k == "" {
		writeError(w, http.StatusBadRequest, "invalid key")
		return "", false
	}
	return k, true
}

// storeError maps adapter errors onto status codes. Decode errors mean the
// stored bytes are not JSON; anything else from the provider is an upstream
// failure.
func (h *Handler) storeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var ee *jsonstore.EncodeError
	switch {
	case errors.Is(err, jsonstore.ErrDecode):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &ee):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.Log.Error("store failure",
			zap.String("op", op),
			zap.String("request_id", RequestID(r.Context())),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, "store unavailable")
	}
}

func writeOptions(r *http.Request) pr.WriteOptions {
	return pr.WriteOptions{
		Sync:       boolQuery(r, "sync"),
		DisableWAL: boolQuery(r, "disable_wal"),
	}
}

func boolQuery(r *http.Request, name string) bool {
	b, _ := strconv.ParseBool(r.URL.Query().Get(name))
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}
