package store_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/internal/store"
)

func openMemory(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSave_AssignsIDAndTime(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()

	r := &store.Run{Algorithm: "dfs", Width: 5, Height: 5, Seed: 7, Batches: 6, Updates: 30, Maze: "#####"}
	require.NoError(t, s.Save(ctx, r))
	_, err := uuid.Parse(r.ID)
	assert.NoError(t, err)
	assert.False(t, r.CreatedAt.IsZero())

	got, err := s.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "dfs", got.Algorithm)
	assert.Equal(t, 30, got.Updates)
	assert.Equal(t, "#####", got.Maze)
	assert.True(t, r.CreatedAt.Equal(got.CreatedAt))
}

func TestGet_NotFound(t *testing.T) {
	s := openMemory(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, alg := range []string{"dfs", "kruskal", "origin-shift"} {
		require.NoError(t, s.Save(ctx, &store.Run{
			Algorithm: alg, Width: 5, Height: 5, CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "origin-shift", all[0].Algorithm)
	assert.Equal(t, "dfs", all[2].Algorithm)

	two, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestSave_DuplicateID(t *testing.T) {
	s := openMemory(t)
	ctx := context.Background()
	r := &store.Run{ID: "fixed", Algorithm: "dfs", Width: 3, Height: 3}
	require.NoError(t, s.Save(ctx, r))
	assert.Error(t, s.Save(ctx, &store.Run{ID: "fixed", Algorithm: "dfs", Width: 3, Height: 3}))
}

func TestOpen_FileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), &store.Run{ID: "a", Algorithm: "kruskal", Width: 3, Height: 3}))
	require.NoError(t, s.Close())

	s, err = store.Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "kruskal", got.Algorithm)
}
