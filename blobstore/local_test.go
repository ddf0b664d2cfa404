package blobstore_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urschrei/cocktails/blobstore"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "cocktails.csv", []byte("negroni,gin,campari,vermouth\n")))

	rc, err := store.Open(ctx, "cocktails.csv")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "negroni,gin,campari,vermouth\n", string(data))
}

func TestLocalStoreNotFound(t *testing.T) {
	store := blobstore.NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "missing.csv")
	assert.True(t, errors.Is(err, blobstore.ErrNotFound))
}

func TestLocalStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	require.NoError(t, store.Put(ctx, "c.csv", []byte("old")))
	require.NoError(t, store.Put(ctx, "c.csv", []byte("new")))

	rc, err := store.Open(ctx, "c.csv")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	_, err := store.Open(ctx, "missing")
	assert.True(t, errors.Is(err, blobstore.ErrNotFound))

	payload := []byte("margarita,tequila,lime,triple sec\n")
	require.NoError(t, store.Put(ctx, "m.csv", payload))

	// Mutating the original buffer must not affect the stored blob.
	payload[0] = 'X'

	rc, err := store.Open(ctx, "m.csv")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "margarita,tequila,lime,triple sec\n", string(data))
}
