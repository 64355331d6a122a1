package backend

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// OpenZstd opens a zstd-compressed file as a read-only Resource.
//
// Positioned access needs seekability, so the whole stream is inflated
// into memory at open. Suitable for compressed assets, not for files
// larger than available memory.
func OpenZstd(path string) (Resource, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path is configurable
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return NewBufferBytes(data), nil
}

// OpenLZ4 opens an lz4-compressed file as a read-only Resource. See
// OpenZstd for the inflation trade-off.
func OpenLZ4(path string) (Resource, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path is configurable
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(lz4.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	return NewBufferBytes(data), nil
}
