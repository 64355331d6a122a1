// Package backend provides the storage resources binio accessors operate
// on: local files, memory-mapped files, in-memory buffers, compressed
// snapshots and object-store objects.
//
// A Resource is an exclusively owned, seekable byte store with a single
// cursor. Implementations are not safe for concurrent use.
package backend

import (
	"io"
	"os"
)

// ErrNotFound is returned when the named resource does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Resource is a readable, seekable byte store.
type Resource interface {
	io.ReadSeeker
	io.Closer
}

// WritableResource is a Resource that additionally accepts writes at the
// cursor position.
type WritableResource interface {
	Resource
	io.Writer
	// Sync flushes written data to the underlying storage.
	Sync() error
}
