package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Sink uploads the assembled resource as a single S3 object.
type S3Sink struct {
	bucket   string
	key      string
	uploader *manager.Uploader
}

// NewS3Sink resolves AWS credentials from the environment (optionally from a
// named shared profile) and prepares an uploader for dest.
func NewS3Sink(ctx context.Context, dest, profile string) (*S3Sink, error) {
	bucket, key, err := ParseS3URL(dest)
	if err != nil {
		return nil, err
	}

	var loadOpts []func(*config.LoadOptions) error
	if profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}
	loadOpts = append(loadOpts, config.WithRetryMode(aws.RetryModeAdaptive))

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	return &S3Sink{
		bucket:   bucket,
		key:      key,
		uploader: manager.NewUploader(s3.NewFromConfig(cfg)),
	}, nil
}

func (s *S3Sink) Write(ctx context.Context, data []byte) (int64, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return 0, fmt.Errorf("error uploading to s3://%s/%s: %w", s.bucket, s.key, err)
	}

	return int64(len(data)), nil
}

// ParseS3URL splits s3://bucket/key into its bucket and key.
func ParseS3URL(dest string) (bucket, key string, err error) {
	if !strings.HasPrefix(dest, s3Scheme) {
		return "", "", fmt.Errorf("%w: %q is not an s3:// URL", ErrInvalidDestination, dest)
	}

	bucket, key, _ = strings.Cut(strings.TrimPrefix(dest, s3Scheme), "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", fmt.Errorf("%w: %q must name a bucket and an object key", ErrInvalidDestination, dest)
	}

	return bucket, key, nil
}
