package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath, "")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакет существует
	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketAuth) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "apex_arenas_auth", string(store.slot))
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	invalidPath := filepath.Join(t.TempDir(), "missing-dir", "db.db")
	store, err := New(ctx, invalidPath, "")
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath, "")
	require.NoError(t, err)

	require.NoError(t, store.Close())

	// Повторное открытие после Close должно работать (файл не заблокирован)
	reopened, err := New(ctx, dbPath, "")
	require.NoError(t, err)
	require.NoError(t, reopened.Close())
}
