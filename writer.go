package binio

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/hupe1980/binio/backend"
)

// Writer extends a Reader with positioned encoding over a resource
// opened for both reading and writing. It is composed of a Reader
// rather than subtyping one: every Reader operation works on a Writer
// against the same shared cursor, and reading back a written value is
// bit-exact with the encode rules below.
type Writer struct {
	*Reader
	res backend.WritableResource
}

// Create opens the file at path for reading and writing, creating it if
// absent and truncating any existing content.
func Create(path string, optFns ...Option) (*Writer, error) {
	res, err := backend.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	w := NewWriter(res, optFns...)
	w.logger = w.logger.WithPath(path)
	w.logger.Debug("resource opened", "mode", "read-write")
	return w, nil
}

// NewWriter wraps an already-open writable resource. The Writer takes
// ownership: Close releases the resource.
func NewWriter(res backend.WritableResource, optFns ...Option) *Writer {
	return &Writer{
		Reader: NewReader(res, optFns...),
		res:    res,
	}
}

// Write seeks to base+offset relative to whence and encodes value per
// the descriptor, returning the count of bytes written. Encoding failures
// (out-of-range numerics, non-ASCII cstring input, payload kind mismatch)
// surface as *EncodingError before any byte is written; a failure in the
// storage layer may still leave a partially written value behind.
//
// The cursor ends up just past the written bytes.
func (w *Writer) Write(d Descriptor, v Value, base, offset int64, whence Whence) (int, error) {
	if !d.IsPrimitive() {
		return 0, fmt.Errorf("%w: %s is not directly writable", ErrInvalidDescriptor, d)
	}

	buf, err := w.encode(d, v)
	if err != nil {
		return 0, err
	}

	if err := w.Seek(base+offset, whence); err != nil {
		return 0, err
	}

	n, err := w.res.Write(buf)
	if err != nil {
		w.logger.Debug("write failed", "descriptor", d.String(), "error", err)
		return n, fmt.Errorf("write %s: %w", d, err)
	}
	return n, nil
}

// WriteChunk seeks to offset relative to whence and writes data verbatim,
// returning the byte count written. No framing, no length prefix.
func (w *Writer) WriteChunk(data []byte, offset int64, whence Whence) (int, error) {
	if err := w.Seek(offset, whence); err != nil {
		return 0, err
	}
	n, err := w.res.Write(data)
	if err != nil {
		w.logger.Debug("chunk write failed", "offset", offset, "size", len(data), "error", err)
		return n, fmt.Errorf("write chunk: %w", err)
	}
	return n, nil
}

// Sync flushes written data to the underlying storage.
func (w *Writer) Sync() error {
	return w.res.Sync()
}

// encode serializes v per d into a fresh buffer so range checks complete
// before any byte reaches the resource.
func (w *Writer) encode(d Descriptor, v Value) ([]byte, error) {
	switch d.Kind() {
	case KindUint8, KindUint16, KindUint32:
		return w.encodeUint(d, v)
	case KindInt8, KindInt16, KindInt32:
		return w.encodeInt(d, v)
	case KindFloat32, KindFloat64:
		return w.encodeFloat(d, v)
	case KindCString:
		return encodeCString(d, v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDescriptor, d)
	}
}

func (w *Writer) encodeUint(d Descriptor, v Value) ([]byte, error) {
	var u uint64
	switch v.Kind {
	case ValueUint:
		u = v.U64
	case ValueInt:
		if v.I64 < 0 {
			return nil, encodingErr(d, v, "negative value for unsigned type")
		}
		u = uint64(v.I64)
	default:
		return nil, encodingErr(d, v, "integer value required")
	}

	width := d.Width()
	if maxVal := uint64(1)<<(8*width) - 1; u > maxVal {
		return nil, encodingErr(d, v, fmt.Sprintf("value exceeds maximum %d", maxVal))
	}

	buf := make([]byte, width)
	switch width {
	case 1:
		buf[0] = byte(u)
	case 2:
		w.order.PutUint16(buf, uint16(u))
	case 4:
		w.order.PutUint32(buf, uint32(u))
	}
	return buf, nil
}

func (w *Writer) encodeInt(d Descriptor, v Value) ([]byte, error) {
	var i int64
	switch v.Kind {
	case ValueInt:
		i = v.I64
	case ValueUint:
		if v.U64 > math.MaxInt64 {
			return nil, encodingErr(d, v, "value exceeds int64 range")
		}
		i = int64(v.U64)
	default:
		return nil, encodingErr(d, v, "integer value required")
	}

	width := d.Width()
	minVal := -(int64(1) << (8*width - 1))
	maxVal := int64(1)<<(8*width-1) - 1
	if i < minVal || i > maxVal {
		return nil, encodingErr(d, v, fmt.Sprintf("value outside [%d, %d]", minVal, maxVal))
	}

	buf := make([]byte, width)
	switch width {
	case 1:
		buf[0] = byte(int8(i))
	case 2:
		w.order.PutUint16(buf, uint16(int16(i)))
	case 4:
		w.order.PutUint32(buf, uint32(int32(i)))
	}
	return buf, nil
}

func (w *Writer) encodeFloat(d Descriptor, v Value) ([]byte, error) {
	var f float64
	switch v.Kind {
	case ValueFloat:
		f = v.F64
	case ValueInt:
		f = float64(v.I64)
	case ValueUint:
		f = float64(v.U64)
	default:
		return nil, encodingErr(d, v, "numeric value required")
	}

	if d.Kind() == KindFloat32 {
		// Finite values beyond float32 range would silently become Inf.
		if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
			return nil, encodingErr(d, v, "value exceeds float32 range")
		}
		buf := make([]byte, 4)
		w.order.PutUint32(buf, math.Float32bits(float32(f)))
		return buf, nil
	}

	buf := make([]byte, 8)
	w.order.PutUint64(buf, math.Float64bits(f))
	return buf, nil
}

func encodeCString(d Descriptor, v Value) ([]byte, error) {
	if v.Kind != ValueString {
		return nil, encodingErr(d, v, "string value required")
	}
	s := v.Str
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return nil, encodingErr(d, v, fmt.Sprintf("embedded NUL at index %d", i))
		}
		if s[i] >= utf8.RuneSelf {
			return nil, encodingErr(d, v, fmt.Sprintf("non-ASCII byte 0x%02x at index %d", s[i], i))
		}
	}
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, 0)
	return buf, nil
}
