// Package sink persists a fully assembled download. A sink receives the whole
// resource in a single Write call.
package sink

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidDestination = errors.New("invalid destination")

const s3Scheme = "s3://"

// Sink stores the assembled bytes of one download.
type Sink interface {
	Write(ctx context.Context, data []byte) (int64, error)
}

// Options configures sink construction.
type Options struct {
	// AWSProfile selects a shared config profile for s3:// destinations.
	AWSProfile string
}

// Open returns the sink matching dest: an S3 object for s3://bucket/key URLs,
// a local file otherwise. No bytes are written until Write is called.
func Open(ctx context.Context, dest string, opts Options) (Sink, error) {
	if dest == "" {
		return nil, ErrInvalidDestination
	}

	if IsRemote(dest) {
		return NewS3Sink(ctx, dest, opts.AWSProfile)
	}

	return NewFileSink(dest), nil
}

// IsRemote reports whether dest refers to an object store rather than a local path.
func IsRemote(dest string) bool {
	return strings.HasPrefix(dest, s3Scheme)
}
