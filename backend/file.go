package backend

import "os"

// Open opens the local file at path as a read-only Resource.
func Open(path string) (Resource, error) {
	f, err := os.Open(path) //nolint:gosec // G304: Path is configurable
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create opens the local file at path for reading and writing, creating
// it if absent and truncating existing content.
func Create(path string) (WritableResource, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600) //nolint:gosec // G304: Path is configurable
	if err != nil {
		return nil, err
	}
	return f, nil
}
