// Package providertest holds the behaviour every provider.Provider must show.
// Backend packages call Run from their own tests.
package providertest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/jsonstore/provider"
)

// Run exercises p. p must be empty and is not closed.
func Run(t *testing.T, p pr.Provider) {
	t.Helper()
	ctx := context.Background()
	ro := pr.ReadOptions{}
	wo := pr.WriteOptions{}

	t.Run("MissIsNotError", func(t *testing.T) {
		b, ok, err := p.GetBinary(ctx, ro, []byte(`"never"`))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, b)
	})

	t.Run("PutGetTransparent", func(t *testing.T) {
		key := []byte(`"user:1"`)
		val := []byte(`{"name":"Ada","age":36}`)
		require.NoError(t, p.PutBinary(ctx, wo, key, val))

		got, ok, err := p.GetBinary(ctx, ro, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, val, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		key := []byte(`"k"`)
		require.NoError(t, p.PutBinary(ctx, wo, key, []byte(`1`)))
		require.NoError(t, p.PutBinary(ctx, pr.WriteOptions{Sync: true}, key, []byte(`2`)))

		got, ok, err := p.GetBinary(ctx, pr.ReadOptions{VerifyChecksums: true}, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte(`2`), got)
	})

	t.Run("DeleteThenMiss", func(t *testing.T) {
		key := []byte(`"gone"`)
		require.NoError(t, p.PutBinary(ctx, wo, key, []byte(`true`)))
		require.NoError(t, p.DeleteBinary(ctx, wo, key))

		_, ok, err := p.GetBinary(ctx, ro, key)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		assert.NoError(t, p.DeleteBinary(ctx, wo, []byte(`"absent"`)))
	})

	t.Run("NonJSONBytesPreserved", func(t *testing.T) {
		key := []byte(`"bad"`)
		val := []byte("not json\x00\xff")
		require.NoError(t, p.PutBinary(ctx, wo, key, val))

		got, ok, err := p.GetBinary(ctx, ro, key)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, val, got)
	})
}
