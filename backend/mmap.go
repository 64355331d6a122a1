package backend

import (
	"fmt"
	"io"

	"github.com/hupe1980/binio/internal/mmap"
)

// OpenMmap maps the file at path into memory and exposes it as a
// read-only Resource. Preferred for random access patterns, where a
// page-cache-backed read avoids a syscall per primitive.
func OpenMmap(path string) (Resource, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	return &mmapResource{m: m}, nil
}

type mmapResource struct {
	m   *mmap.Mapping
	pos int64
}

func (r *mmapResource) Read(p []byte) (int, error) {
	data := r.m.Bytes()
	if r.pos >= int64(len(data)) {
		return 0, io.EOF
	}
	n := copy(p, data[r.pos:])
	r.pos += int64(n)
	return n, nil
}

func (r *mmapResource) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = r.pos + offset
	case io.SeekEnd:
		newPos = r.m.Size() + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("negative position: %d", newPos)
	}
	r.pos = newPos
	return newPos, nil
}

func (r *mmapResource) Close() error {
	return r.m.Close()
}
