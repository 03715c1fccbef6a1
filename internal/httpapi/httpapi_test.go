package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/unkn0wn-root/jsonstore"
	"github.com/unkn0wn-root/jsonstore/codec"
	pr "github.com/unkn0wn-root/jsonstore/provider"
	"github.com/unkn0wn-root/jsonstore/provider/bigcache"
	"github.com/unkn0wn-root/jsonstore/transcode"
)

type failingProvider struct{ pr.Provider }

var errDown = errors.New("backend down")

func (failingProvider) GetBinary(context.Context, pr.ReadOptions, []byte) ([]byte, bool, error) {
	return nil, false, errDown
}

func newTestServer(t *testing.T, wrap func(pr.Provider) pr.Provider, rl RateLimit) (*httptest.Server, pr.Provider) {
	t.Helper()
	p, err := bigcache.New(bigcache.Config{Shards: 8})
	require.NoError(t, err)
	var backend pr.Provider = p
	if wrap != nil {
		backend = wrap(p)
	}
	s, err := jsonstore.New[string, json.RawMessage](jsonstore.Options[string, json.RawMessage]{
		Provider:     backend,
		ValueEncoder: codec.Raw{},
	})
	require.NoError(t, err)

	h := &Handler{Store: s, Log: zaptest.NewLogger(t), MaxValueBytes: 64}
	srv := httptest.NewServer(NewRouter(h, rl))
	t.Cleanup(func() {
		srv.Close()
		_ = s.Close(context.Background())
	})
	return srv, p
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

func TestPutGetDelete(t *testing.T) {
	srv, _ := newTestServer(t, nil, RateLimit{})
	url := srv.URL + "/kv/user:1"

	resp, _ := do(t, http.MethodGet, url, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, url+"?sync=true", `{"name":"Ada","age":36}`)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := do(t, http.MethodGet, url, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"Ada","age":36}`, body)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	resp, _ = do(t, http.MethodDelete, url, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, url, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutRejectsBadBodies(t *testing.T) {
	srv, _ := newTestServer(t, nil, RateLimit{})

	resp, _ := do(t, http.MethodPut, srv.URL+"/kv/x", "not json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPut, srv.URL+"/kv/x", `"`+strings.Repeat("a", 100)+`"`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestCorruptEntryIs422(t *testing.T) {
	srv, p := newTestServer(t, nil, RateLimit{})
	require.NoError(t, p.PutBinary(context.Background(), pr.WriteOptions{}, []byte(`"bad"`), []byte("not json")))

	resp, body := do(t, http.MethodGet, srv.URL+"/kv/bad", "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "json parsing failed")
}

func TestStoreErrorIs502(t *testing.T) {
	srv, _ := newTestServer(t, func(p pr.Provider) pr.Provider { return failingProvider{p} }, RateLimit{})

	resp, body := do(t, http.MethodGet, srv.URL+"/kv/any", "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.NotContains(t, body, errDown.Error())
}

func TestRepairRoute(t *testing.T) {
	srv, p := newTestServer(t, nil, RateLimit{})
	ctx := context.Background()

	legacy, err := transcode.FromJSON(transcode.CBOR, []byte(`{"v":[1,2]}`))
	require.NoError(t, err)
	require.NoError(t, p.PutBinary(ctx, pr.WriteOptions{}, []byte(`"old"`), legacy))

	resp, _ := do(t, http.MethodGet, srv.URL+"/kv/old", "")
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, body := do(t, http.MethodPost, srv.URL+"/kv/old/repair?from=cbor", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"result":"rewritten"}`, body)

	resp, body = do(t, http.MethodGet, srv.URL+"/kv/old", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"v":[1,2]}`, body)

	resp, _ = do(t, http.MethodPost, srv.URL+"/kv/old/repair?from=xml", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodPost, srv.URL+"/kv/nothing/repair?from=msgpack", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEscapedKeys(t *testing.T) {
	srv, p := newTestServer(t, nil, RateLimit{})

	resp, _ := do(t, http.MethodPut, srv.URL+"/kv/a%2Fb%20c", `1`)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, ok, err := p.GetBinary(context.Background(), pr.ReadOptions{}, []byte(`"a/b c"`))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRateLimit(t *testing.T) {
	srv, _ := newTestServer(t, nil, RateLimit{Rate: 0.001, Burst: 1})

	resp, _ := do(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = do(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRequestIDPropagates(t *testing.T) {
	srv, _ := newTestServer(t, nil, RateLimit{})
	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc-123", resp.Header.Get("X-Request-ID"))
}
