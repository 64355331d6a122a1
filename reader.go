package binio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/binio/backend"
)

// Whence selects the reference point for positioned operations.
type Whence int

const (
	// Start addresses offsets from the beginning of the resource.
	Start Whence = Whence(io.SeekStart)
	// Current addresses offsets relative to the shared cursor.
	Current Whence = Whence(io.SeekCurrent)
)

func (w Whence) String() string {
	switch w {
	case Start:
		return "start"
	case Current:
		return "current"
	default:
		return fmt.Sprintf("whence(%d)", int(w))
	}
}

// seekWhence validates w and converts it to an io.Seeker whence.
func (w Whence) seekWhence() (int, error) {
	switch w {
	case Start, Current:
		return int(w), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidWhence, int(w))
	}
}

// Reader decodes typed primitive values at arbitrary byte offsets of a
// seekable resource. All multi-byte values use big-endian byte order;
// there is no mechanism to select another order.
//
// Every positioned operation moves the resource-wide cursor. Reader is
// not safe for concurrent use.
type Reader struct {
	res    backend.Resource
	order  binary.ByteOrder
	logger *Logger
	buf    [8]byte // scratch for fixed-width decodes
}

// Open opens the file at path for reading.
func Open(path string, optFns ...Option) (*Reader, error) {
	res, err := backend.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open resource: %w", err)
	}
	r := NewReader(res, optFns...)
	r.logger = r.logger.WithPath(path)
	r.logger.Debug("resource opened", "mode", "read")
	return r, nil
}

// NewReader wraps an already-open resource. The Reader takes ownership:
// Close releases the resource.
func NewReader(res backend.Resource, optFns ...Option) *Reader {
	opts := defaultOptions()

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Reader{
		res:    res,
		order:  binary.BigEndian,
		logger: opts.logger,
	}
}

// Seek moves the shared cursor to offset relative to whence. With Start
// the offset must be non-negative; with Current it may be negative but
// must not move before the start of the resource.
func (r *Reader) Seek(offset int64, whence Whence) error {
	w, err := whence.seekWhence()
	if err != nil {
		return err
	}
	if _, err := r.res.Seek(offset, w); err != nil {
		return fmt.Errorf("seek to %d (%s) failed: %w", offset, whence, err)
	}
	return nil
}

// Tell returns the current absolute cursor position.
func (r *Reader) Tell() (int64, error) {
	pos, err := r.res.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("tell failed: %w", err)
	}
	return pos, nil
}

// ReadChunk seeks to offset relative to whence and reads exactly size
// bytes. A short read is an error, never a truncated result.
func (r *Reader) ReadChunk(offset, size int64, whence Whence) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("negative chunk size: %d", size)
	}
	if err := r.Seek(offset, whence); err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r.res, buf); err != nil {
		r.logger.Debug("chunk read failed", "offset", offset, "size", size, "error", err)
		return nil, fmt.Errorf("short read of %d bytes: %w", size, err)
	}
	return buf, nil
}

// Read seeks to base+offset relative to whence and decodes one value per
// the descriptor. Only plain atomic descriptors are readable; array- and
// pointer-marked descriptors fail with ErrInvalidDescriptor.
//
// The cursor ends up just past the decoded bytes, so subsequent Current
// operations observe the new position.
func (r *Reader) Read(d Descriptor, base, offset int64, whence Whence) (Value, error) {
	if !d.IsPrimitive() {
		return Value{}, fmt.Errorf("%w: %s is not directly readable", ErrInvalidDescriptor, d)
	}
	if err := r.Seek(base+offset, whence); err != nil {
		return Value{}, err
	}

	if d.Kind() == KindCString {
		s, err := r.readCString()
		if err != nil {
			r.logger.Debug("read failed", "descriptor", d.String(), "error", err)
			return Value{}, err
		}
		return String(s), nil
	}

	buf := r.buf[:d.Width()]
	if _, err := io.ReadFull(r.res, buf); err != nil {
		r.logger.Debug("read failed", "descriptor", d.String(), "error", err)
		return Value{}, fmt.Errorf("read %s: %w", d, err)
	}

	switch d.Kind() {
	case KindUint8:
		return Uint(uint64(buf[0])), nil
	case KindUint16:
		return Uint(uint64(r.order.Uint16(buf))), nil
	case KindUint32:
		return Uint(uint64(r.order.Uint32(buf))), nil
	case KindInt8:
		return Int(int64(int8(buf[0]))), nil
	case KindInt16:
		return Int(int64(int16(r.order.Uint16(buf)))), nil
	case KindInt32:
		return Int(int64(int32(r.order.Uint32(buf)))), nil
	case KindFloat32:
		return Float(float64(math.Float32frombits(r.order.Uint32(buf)))), nil
	case KindFloat64:
		return Float(math.Float64frombits(r.order.Uint64(buf))), nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrInvalidDescriptor, d)
	}
}

// readCString scans byte-at-a-time from the cursor, consuming up to and
// including the first zero byte. Bytes are mapped one-per-character; no
// encoding validation happens on the read path.
func (r *Reader) readCString() (string, error) {
	var sb []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(r.res, b[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("unterminated cstring: %w", io.ErrUnexpectedEOF)
			}
			return "", fmt.Errorf("read cstring: %w", err)
		}
		if b[0] == 0 {
			return string(sb), nil
		}
		sb = append(sb, b[0])
	}
}

// Close releases the underlying resource. Callers must call Close at
// most once; no operation is defined after it.
func (r *Reader) Close() error {
	r.logger.Debug("resource closed")
	return r.res.Close()
}
