package sink_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkatanacio/segmented-downloader/sink"
)

func Test_FileSink_Write(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "out.bin")
	data := []byte("assembled resource")

	s, err := sink.Open(context.Background(), dest, sink.Options{})
	require.NoError(t, err)

	n, err := s.Write(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, int64(len(data)), n)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, data, written)

	_, err = os.Stat(dest + ".download")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_FileSink_Write_CancelledContext(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.bin")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sink.NewFileSink(dest).Write(ctx, []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = os.Stat(dest)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func Test_FileSink_Write_RenameFails(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.bin")
	require.NoError(t, os.MkdirAll(filepath.Join(dest, "occupied"), 0o755))

	_, err := sink.NewFileSink(dest).Write(context.Background(), []byte("assembled resource"))
	assert.Error(t, err)

	_, err = os.Stat(dest + ".download")
	assert.ErrorIs(t, err, os.ErrNotExist)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func Test_Open_EmptyDestination(t *testing.T) {
	_, err := sink.Open(context.Background(), "", sink.Options{})
	assert.ErrorIs(t, err, sink.ErrInvalidDestination)
}

func Test_IsRemote(t *testing.T) {
	assert.True(t, sink.IsRemote("s3://bucket/key"))
	assert.False(t, sink.IsRemote("/tmp/s3://nope"))
	assert.False(t, sink.IsRemote("file.bin"))
}

func Test_ParseS3URL(t *testing.T) {
	testCases := map[string]struct {
		dest   string
		bucket string
		key    string
		valid  bool
	}{
		"bucket and key":   {dest: "s3://media/videos/a.mp4", bucket: "media", key: "videos/a.mp4", valid: true},
		"flat key":         {dest: "s3://media/a.mp4", bucket: "media", key: "a.mp4", valid: true},
		"missing key":      {dest: "s3://media"},
		"trailing slash":   {dest: "s3://media/videos/"},
		"missing bucket":   {dest: "s3:///a.mp4"},
		"not an s3 scheme": {dest: "https://media/a.mp4"},
	}

	for scenario, tc := range testCases {
		t.Run(scenario, func(t *testing.T) {
			bucket, key, err := sink.ParseS3URL(tc.dest)
			if !tc.valid {
				assert.ErrorIs(t, err, sink.ErrInvalidDestination)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.bucket, bucket)
			assert.Equal(t, tc.key, key)
		})
	}
}
