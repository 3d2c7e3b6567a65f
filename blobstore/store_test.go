package blobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore exercises the Store contract against an implementation.
func testStore(t *testing.T, store Store) {
	t.Helper()

	ctx := context.Background()

	t.Run("open missing", func(t *testing.T) {
		_, err := store.Open(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("put and read", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/a", []byte("hello")))

		blob, err := store.Open(ctx, "snapshots/a")
		require.NoError(t, err)
		defer blob.Close()

		assert.Equal(t, int64(5), blob.Size())

		data, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/a", []byte("v2")))

		blob, err := store.Open(ctx, "snapshots/a")
		require.NoError(t, err)
		defer blob.Close()

		data, err := ReadAll(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), data)
	})

	t.Run("read at offset", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "snapshots/b", []byte("0123456789")))

		blob, err := store.Open(ctx, "snapshots/b")
		require.NoError(t, err)
		defer blob.Close()

		p := make([]byte, 4)
		n, err := blob.ReadAt(ctx, p, 3)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		assert.Equal(t, []byte("3456"), p)
	})

	t.Run("list by prefix", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "other/c", []byte("x")))

		names, err := store.List(ctx, "snapshots/")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"snapshots/a", "snapshots/b"}, names)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "snapshots/b"))

		_, err := store.Open(ctx, "snapshots/b")
		assert.ErrorIs(t, err, ErrNotFound)

		// Deleting again is a no-op.
		assert.NoError(t, store.Delete(ctx, "snapshots/b"))
	})
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestLocalStore(t *testing.T) {
	testStore(t, NewLocalStore(t.TempDir()))
}

func TestLocalStoreListMissingRoot(t *testing.T) {
	store := NewLocalStore(t.TempDir() + "/never-created")

	names, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryStoreIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte("immutable")
	require.NoError(t, store.Put(ctx, "a", data))

	data[0] = 'X'

	blob, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer blob.Close()

	got, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("immutable"), got)
}

func TestThrottledStore(t *testing.T) {
	store := NewThrottled(NewMemoryStore(), 1<<20)

	testStore(t, store)

	t.Run("canceled context", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		err := store.Put(canceled, "x", []byte("data"))
		assert.Error(t, err)
	})
}
