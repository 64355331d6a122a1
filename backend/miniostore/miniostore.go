// Package miniostore exposes MinIO and S3-compatible objects as read-only
// binio resources.
package miniostore

import (
	"context"

	"github.com/hupe1980/binio/backend"
	"github.com/minio/minio-go/v7"
)

// Open opens the named object for positioned reading. The returned
// Resource is backed by *minio.Object, which seeks locally and issues
// ranged requests on demand.
//
// ctx governs every read through the returned Resource.
func Open(ctx context.Context, client *minio.Client, bucket, key string) (backend.Resource, error) {
	// Stat first so a missing object fails at open, not mid-read.
	if _, err := client.StatObject(ctx, bucket, key, minio.StatObjectOptions{}); err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, backend.ErrNotFound
		}
		return nil, err
	}

	obj, err := client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}
