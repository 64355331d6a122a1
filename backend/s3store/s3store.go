// Package s3store exposes Amazon S3 objects as read-only binio resources
// using ranged GetObject requests.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/time/rate"

	"github.com/hupe1980/binio/backend"
)

// Client is the subset of the S3 API the store depends on.
type Client interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Options configures an opened object.
type Options struct {
	// ReadLimitBytesPerSec throttles ranged reads. If 0, unlimited.
	ReadLimitBytesPerSec int
}

// Open opens the object at bucket/key for positioned reading. Object
// size is resolved once via HeadObject; each Read issues one ranged
// GetObject for exactly the bytes at the cursor.
//
// ctx governs every read through the returned Object.
func Open(ctx context.Context, client Client, bucket, key string, optFns ...func(o *Options)) (*Object, error) {
	var opts Options

	for _, fn := range optFns {
		fn(&opts)
	}

	head, err := client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, backend.ErrNotFound
		}
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, backend.ErrNotFound
		}
		return nil, err
	}

	o := &Object{
		ctx:    ctx,
		client: client,
		bucket: bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}
	if opts.ReadLimitBytesPerSec > 0 {
		o.limiter = rate.NewLimiter(rate.Limit(opts.ReadLimitBytesPerSec), opts.ReadLimitBytesPerSec)
	}
	return o, nil
}

// Object is a read-only seekable view of one S3 object. It satisfies
// backend.Resource. Like every binio resource it carries a single cursor
// and is not safe for concurrent use.
type Object struct {
	ctx     context.Context
	client  Client
	bucket  string
	key     string
	size    int64
	pos     int64
	limiter *rate.Limiter
}

// Size returns the object size in bytes.
func (o *Object) Size() int64 {
	return o.size
}

// Read issues a ranged GetObject for the bytes at the cursor.
func (o *Object) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if o.pos >= o.size {
		return 0, io.EOF
	}
	if err := o.ctx.Err(); err != nil {
		return 0, err
	}

	end := o.pos + int64(len(p)) - 1
	if end >= o.size {
		end = o.size - 1
	}
	want := end - o.pos + 1

	if o.limiter != nil {
		if err := o.limiter.WaitN(o.ctx, int(want)); err != nil {
			return 0, err
		}
	}

	resp, err := o.client.GetObject(o.ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
		Range:  aws.String(fmt.Sprintf("bytes=%d-%d", o.pos, end)),
	})
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	n, err := io.ReadFull(resp.Body, p[:want])
	o.pos += int64(n)
	if err != nil {
		return n, fmt.Errorf("ranged read of %s: %w", o.key, err)
	}
	return n, nil
}

// Seek implements io.Seeker over the object size.
func (o *Object) Seek(offset int64, whence int) (int64, error) {
	var newPos int64
	switch whence {
	case io.SeekStart:
		newPos = offset
	case io.SeekCurrent:
		newPos = o.pos + offset
	case io.SeekEnd:
		newPos = o.size + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("negative position: %d", newPos)
	}
	o.pos = newPos
	return newPos, nil
}

// Close releases nothing; ranged reads hold no connection between calls.
func (o *Object) Close() error {
	return nil
}
