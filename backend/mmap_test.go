package backend

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapped.bin")
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	require.NoError(t, os.WriteFile(path, payload, 0600))

	res, err := OpenMmap(path)
	require.NoError(t, err)
	defer res.Close()

	got, err := io.ReadAll(res)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	pos, err := res.Seek(2, io.SeekStart)
	require.NoError(t, err)
	assert.Equal(t, int64(2), pos)

	buf := make([]byte, 2)
	_, err = io.ReadFull(res, buf)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xBE, 0xEF}, buf)

	_, err = res.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenMmap_SeekEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapped.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0600))

	res, err := OpenMmap(path)
	require.NoError(t, err)
	defer res.Close()

	pos, err := res.Seek(-4, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(6), pos)

	got, err := io.ReadAll(res)
	require.NoError(t, err)
	assert.Equal(t, "6789", string(got))
}

func TestOpenMmap_Missing(t *testing.T) {
	_, err := OpenMmap(filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, ErrNotFound)
}
