//go:build rocksdb

package rocksdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/jsonstore/provider"
	"github.com/unkn0wn-root/jsonstore/provider/providertest"
)

func TestProvider(t *testing.T) {
	p, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close(context.Background()) })

	providertest.Run(t, p)
}

func TestCloseReleasesOptionsAndReopens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	p, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, p.PutBinary(ctx, pr.WriteOptions{Sync: true}, []byte(`"a"`), []byte(`{"v":1}`)))
	require.NoError(t, p.Close(ctx))
	require.Nil(t, p.opts)
	require.NoError(t, p.Close(ctx))

	p, err = Open(dir)
	require.NoError(t, err)
	defer p.Close(ctx)

	got, ok, err := p.GetBinary(ctx, pr.ReadOptions{VerifyChecksums: true}, []byte(`"a"`))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte(`{"v":1}`), got)
}
