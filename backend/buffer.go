package backend

import (
	"fmt"
	"io"
)

// Buffer is an in-memory WritableResource with its own cursor. Writes
// past the current end grow the buffer; a seek past the end followed by
// a write zero-fills the gap, matching sparse file semantics.
type Buffer struct {
	buf []byte
	pos int64
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferBytes creates a Buffer over existing data. The Buffer takes
// ownership of the slice.
func NewBufferBytes(data []byte) *Buffer {
	return &Buffer{buf: data}
}

// Read implements io.Reader.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.buf)) {
		return 0, io.EOF
	}
	n := copy(p, b.buf[b.pos:])
	b.pos += int64(n)
	return n, nil
}

// Write implements io.Writer.
func (b *Buffer) Write(p []byte) (int, error) {
	minCap := int(b.pos) + len(p)
	if minCap > cap(b.buf) {
		newCap := cap(b.buf) * 2
		if newCap < minCap {
			newCap = minCap
		}
		newBuf := make([]byte, len(b.buf), newCap)
		copy(newBuf, b.buf)
		b.buf = newBuf
	}
	if minCap > len(b.buf) {
		oldLen := len(b.buf)
		b.buf = b.buf[:minCap]
		// Reslicing into spare capacity can expose bytes left over from
		// before a Reset; the gap up to the cursor must read as zeros.
		for i := oldLen; i < int(b.pos); i++ {
			b.buf[i] = 0
		}
	}
	n := copy(b.buf[b.pos:], p)
	b.pos += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = b.pos + offset
	case io.SeekEnd:
		newPos = int64(len(b.buf)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("negative position: %d", newPos)
	}
	b.pos = newPos
	return newPos, nil
}

// Close implements io.Closer. The buffer stays readable via Bytes.
func (b *Buffer) Close() error {
	return nil
}

// Sync is a no-op for in-memory buffers.
func (b *Buffer) Sync() error {
	return nil
}

// Bytes returns the underlying byte slice.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the length of the buffer.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// Reset clears the buffer and rewinds the cursor.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.pos = 0
}
