package backend

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_NotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreate_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	res, err := Create(path)
	require.NoError(t, err)
	defer res.Close()

	buf := make([]byte, 1)
	_, err = res.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCreate_ReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.bin")

	res, err := Create(path)
	require.NoError(t, err)
	defer res.Close()

	_, err = res.Write([]byte{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, res.Sync())

	_, err = res.Seek(1, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 2)
	_, err = io.ReadFull(res, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, buf)
}
