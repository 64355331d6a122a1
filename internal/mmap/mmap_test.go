package mmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	payload := []byte("mapped bytes")
	require.NoError(t, os.WriteFile(path, payload, 0600))

	m, err := Open(path)
	require.NoError(t, err)

	assert.Equal(t, payload, m.Bytes())
	assert.Equal(t, int64(len(payload)), m.Size())

	require.NoError(t, m.Close())
	assert.Nil(t, m.Bytes())

	// Close after close stays harmless.
	require.NoError(t, m.Close())
}

func TestOpen_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0600))

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, int64(0), m.Size())
	assert.Empty(t, m.Bytes())
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
