package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/fiches/internal/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	ctx := context.Background()
	s, err := New(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

func TestNew_RunsMigrations(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	var name string
	err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'kv'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv", name)
}

func TestStorage_PutGet(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		name  string
		key   string
		value []byte
	}{
		{name: "records array", key: "formulaires", value: []byte(`[{"id":"1","nom":"A"}]`)},
		{name: "selected id", key: "currentId", value: []byte(`"1"`)},
		{name: "null selection", key: "currentId", value: []byte(`null`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, tt.key, tt.value))

			got, err := s.Get(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestStorage_GetMissing(t *testing.T) {
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.Get(ctx, "formulaires")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, s.Put(ctx, "formulaires", []byte(`[]`)), storage.ErrStorageClosed)
}

func TestStorage_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	s, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "formulaires", []byte(`[]`)))
	require.NoError(t, s.Close())

	// Повторное открытие не должно ломаться на уже применённых миграциях
	s, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "formulaires")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
