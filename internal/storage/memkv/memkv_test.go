package memkv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/spud-shack/internal/storage/kv"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_PutGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", payload{Name: "fries", Count: 2}))

	var got payload
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Equal(t, payload{Name: "fries", Count: 2}, got)
}

func TestStore_GetMissing(t *testing.T) {
	s := New()

	var got payload
	err := s.Get(context.Background(), "missing", &got)
	require.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", payload{Count: 1}))
	require.NoError(t, s.Put(ctx, "k", payload{Count: 2}))

	var got payload
	require.NoError(t, s.Get(ctx, "k", &got))
	assert.Equal(t, 2, got.Count)
}

func TestStore_Delete(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", payload{Count: 1}))
	require.NoError(t, s.Delete(ctx, "k"))

	var got payload
	require.ErrorIs(t, s.Get(ctx, "k", &got), kv.ErrKeyNotFound)

	// Deleting again is a no-op.
	require.NoError(t, s.Delete(ctx, "k"))
}
