package backend

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_WriteRead(t *testing.T) {
	b := NewBuffer()

	n, err := b.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, b.Len())

	_, err = b.Seek(0, io.SeekStart)
	require.NoError(t, err)

	buf := make([]byte, 5)
	_, err = io.ReadFull(b, buf)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(buf))

	// Cursor is at the end now.
	_, err = b.Read(buf)
	assert.ErrorIs(t, err, io.EOF)
}

func TestBuffer_OverwriteMiddle(t *testing.T) {
	b := NewBufferBytes([]byte("abcdef"))

	_, err := b.Seek(2, io.SeekStart)
	require.NoError(t, err)
	_, err = b.Write([]byte("XY"))
	require.NoError(t, err)

	assert.Equal(t, "abXYef", string(b.Bytes()))
}

func TestBuffer_WritePastEnd(t *testing.T) {
	b := NewBuffer()

	_, err := b.Seek(4, io.SeekStart)
	require.NoError(t, err)
	_, err = b.Write([]byte{0xFF})
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 0, 0, 0, 0xFF}, b.Bytes())
}

func TestBuffer_SparseWriteAfterReset(t *testing.T) {
	// After Reset the spare capacity still holds the old content; a
	// sparse write must zero-fill the gap instead of exposing it.
	b := NewBufferBytes([]byte("secretdata"))
	b.Reset()

	_, err := b.Seek(4, io.SeekStart)
	require.NoError(t, err)
	_, err = b.Write([]byte{0xFF})
	require.NoError(t, err)

	assert.Equal(t, []byte{0, 0, 0, 0, 0xFF}, b.Bytes())
}

func TestBuffer_Seek(t *testing.T) {
	b := NewBufferBytes([]byte("0123456789"))

	pos, err := b.Seek(-3, io.SeekEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(7), pos)

	pos, err = b.Seek(2, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(9), pos)

	_, err = b.Seek(-1, io.SeekStart)
	assert.Error(t, err)

	_, err = b.Seek(0, 99)
	assert.Error(t, err)
}

func TestBuffer_Reset(t *testing.T) {
	b := NewBufferBytes([]byte("data"))
	b.Reset()
	assert.Equal(t, 0, b.Len())

	pos, err := b.Seek(0, io.SeekCurrent)
	require.NoError(t, err)
	assert.Equal(t, int64(0), pos)
}
