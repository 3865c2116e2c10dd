package storage_test

import (
	"path/filepath"
	"testing"

	"codeberg.org/mutker/dcdiag/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardware.db")

	store, err := storage.Open(path)
	require.NoError(t, err)
	defer store.Close()

	for _, table := range []string{"hardware", "diagnostics"} {
		exists, err := storage.TableExists(store.DB(), table)
		require.NoError(t, err)
		assert.True(t, exists, "Expected table %q to exist", table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardware.db")

	store, err := storage.Open(path)
	require.NoError(t, err)

	_, err = store.DB().Exec(
		"INSERT INTO hardware (type, serial_number, location) VALUES (?, ?, ?)",
		"Server", "SN-1", "Rack 1A")
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Reopening must recreate nothing and preserve existing rows
	store, err = storage.Open(path)
	require.NoError(t, err)
	defer store.Close()

	var count int
	err = store.DB().QueryRow("SELECT COUNT(*) FROM hardware").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := storage.Open("")
	require.Error(t, err)
}
