package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/fiches/internal/storage"
)

func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "kv_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestPutAndGet(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Put(ctx, "formulaires", []byte(`[]`)))

	got, err := store.Get(ctx, "formulaires")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Перезапись значения
	require.NoError(t, store.Put(ctx, "formulaires", []byte(`[{"id":"1"}]`)))
	got, err = store.Get(ctx, "formulaires")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)
}

func TestGet_NotFound(t *testing.T) {
	store := createTestStorage(t)

	got, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.Nil(t, got)
}

func TestKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Put(ctx, "formulaires", []byte(`[]`)))
	require.NoError(t, store.Put(ctx, "currentId", []byte(`"42"`)))

	records, err := store.Get(ctx, "formulaires")
	require.NoError(t, err)
	current, err := store.Get(ctx, "currentId")
	require.NoError(t, err)

	assert.Equal(t, `[]`, string(records))
	assert.Equal(t, `"42"`, string(current))
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Put(ctx, "currentId", []byte(`null`)))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "currentId")
	require.NoError(t, err)
	assert.Equal(t, `null`, string(got))
}

func TestClosedStorage(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, "formulaires")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Put(ctx, "formulaires", []byte(`[]`))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestGet_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketKV)
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, "formulaires")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kv bucket not found")

	err = store.Put(ctx, "formulaires", []byte(`[]`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "kv bucket not found")
}
