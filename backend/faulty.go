package backend

import (
	"errors"
	"fmt"
)

// ErrInjected is the default error surfaced by a Faulty resource.
var ErrInjected = errors.New("injected fault error")

// Faulty wraps a Resource and injects errors, for exercising
// storage-failure paths in tests. It always satisfies WritableResource;
// Write and Sync fail when the wrapped resource is read-only.
type Faulty struct {
	Res Resource

	// FailReadAfter fails reads once this many bytes were read. -1 disables.
	FailReadAfter int64
	// FailWriteAfter fails writes once this many bytes were written. -1 disables.
	FailWriteAfter int64
	// FailOnClose makes Close return Err.
	FailOnClose bool
	// Err overrides ErrInjected when set.
	Err error

	bytesRead    int64
	bytesWritten int64
}

// NewFaulty wraps res with all faults disabled.
func NewFaulty(res Resource) *Faulty {
	return &Faulty{
		Res:            res,
		FailReadAfter:  -1,
		FailWriteAfter: -1,
	}
}

func (f *Faulty) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

func (f *Faulty) Read(p []byte) (int, error) {
	if f.FailReadAfter >= 0 && f.bytesRead >= f.FailReadAfter {
		return 0, f.err()
	}
	n, err := f.Res.Read(p)
	f.bytesRead += int64(n)
	return n, err
}

func (f *Faulty) Write(p []byte) (int, error) {
	if f.FailWriteAfter >= 0 && f.bytesWritten >= f.FailWriteAfter {
		return 0, f.err()
	}
	w, ok := f.Res.(WritableResource)
	if !ok {
		return 0, fmt.Errorf("write on read-only resource %T", f.Res)
	}
	n, err := w.Write(p)
	f.bytesWritten += int64(n)
	return n, err
}

func (f *Faulty) Seek(offset int64, whence int) (int64, error) {
	return f.Res.Seek(offset, whence)
}

func (f *Faulty) Sync() error {
	w, ok := f.Res.(WritableResource)
	if !ok {
		return fmt.Errorf("sync on read-only resource %T", f.Res)
	}
	return w.Sync()
}

func (f *Faulty) Close() error {
	if f.FailOnClose {
		return f.err()
	}
	return f.Res.Close()
}
