package miniostore

import (
	"bytes"
	"context"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/binio"
	"github.com/hupe1980/binio/backend"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-binio"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	// Big-endian uint32 followed by a null-terminated string.
	data := []byte{0x01, 0x02, 0x03, 0x04, 'a', 'b', 'c', 0x00}
	_, err = client.PutObject(ctx, bucket, "data.bin", bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	require.NoError(t, err)

	res, err := Open(ctx, client, bucket, "data.bin")
	require.NoError(t, err)

	r := binio.NewReader(res)
	defer r.Close()

	v, err := r.Read(binio.MustParseDescriptor("uint32"), 0, 0, binio.Start)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x01020304), v.UintValue())

	s, err := r.Read(binio.MustParseDescriptor("cstring"), 4, 0, binio.Start)
	require.NoError(t, err)
	assert.Equal(t, "abc", s.StringValue())

	_, err = Open(ctx, client, bucket, "does-not-exist.bin")
	assert.ErrorIs(t, err, backend.ErrNotFound)
}
