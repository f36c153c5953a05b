package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "cart", `[{"product_id":1}]`))

		got, err := store.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, `[{"product_id":1}]`, got)

		require.NoError(t, store.Remove(ctx, "cart"))
		_, err = store.Get(ctx, "cart")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing key", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		_, err = store.Get(ctx, "cart")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("overwrite replaces the payload", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "cart", "old"))
		require.NoError(t, store.Set(ctx, "cart", "new"))

		got, err := store.Get(ctx, "cart")
		require.NoError(t, err)
		assert.Equal(t, "new", got)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		store, err := NewFileStore(t.TempDir())
		require.NoError(t, err)

		assert.NoError(t, store.Remove(ctx, "cart"))
	})

	t.Run("keys cannot escape the state dir", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewFileStore(dir)
		require.NoError(t, err)

		require.NoError(t, store.Set(ctx, "../evil", "x"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())
	})
}

func TestMemStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	_, err := store.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, "cart", "payload"))
	got, err := store.Get(ctx, "cart")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	require.NoError(t, store.Remove(ctx, "cart"))
	_, err = store.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)
}
