package download

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const baselinePrefix = "org_"

// baselinePath returns where the single-segment verification copy of dest is
// written: next to dest, with the file name prefixed.
func baselinePath(dest string) string {
	return filepath.Join(filepath.Dir(dest), baselinePrefix+filepath.Base(dest))
}

// GetMD5Hash calculates the MD5 hash of the file contents and returns
// the hex encoding.
func GetMD5Hash(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	h := md5.New()
	if _, err := io.Copy(h, file); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
