package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/jsonstore/provider"
	"github.com/unkn0wn-root/jsonstore/provider/providertest"
)

func newTestRedis(t *testing.T, prefix string) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	p, err := New(Config{Client: rdb, Prefix: prefix, CloseClient: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, mr
}

func TestProvider(t *testing.T) {
	p, _ := newTestRedis(t, "")
	providertest.Run(t, p)
}

func TestPrefixIsolatesKeys(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestRedis(t, "app:")

	require.NoError(t, p.PutBinary(ctx, pr.WriteOptions{}, []byte(`"k"`), []byte(`1`)))
	got, err := mr.Get(`app:"k"`)
	require.NoError(t, err)
	assert.Equal(t, "1", got)
	assert.False(t, mr.Exists(`"k"`))
}

func TestServerErrorSurfaces(t *testing.T) {
	ctx := context.Background()
	p, mr := newTestRedis(t, "")
	mr.SetError("boom")

	_, ok, err := p.GetBinary(ctx, pr.ReadOptions{}, []byte(`"k"`))
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestNilClient(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNilClient)
}
