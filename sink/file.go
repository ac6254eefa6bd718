package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const suffixOngoingDownload = ".download"

// FileSink writes to a temporary sibling file and renames it onto the
// destination once every byte is on disk.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (f *FileSink) Write(ctx context.Context, data []byte) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("error creating destination directory: %w", err)
		}
	}

	tmpPath := f.path + suffixOngoingDownload
	n, err := writeSynced(tmpPath, data)
	if err != nil {
		os.Remove(tmpPath)
		return 0, err
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return 0, fmt.Errorf("error finalizing %s: %w", f.path, err)
	}

	return n, nil
}

func writeSynced(path string, data []byte) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	n, err := file.Write(data)
	if err != nil {
		return int64(n), err
	}

	if err := file.Sync(); err != nil {
		return int64(n), err
	}

	return int64(n), file.Close()
}
