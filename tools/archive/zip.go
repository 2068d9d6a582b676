// tools/archive/zip.go
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoInput is returned when there is nothing to package.
var ErrNoInput = errors.New("no files to archive")

// MakeZip packages paths into dir/name with deflate compression. A single
// path is returned unchanged and no archive is written.
func MakeZip(paths []string, dir, name string) (string, error) {
	switch len(paths) {
	case 0:
		return "", ErrNoInput
	case 1:
		return paths[0], nil
	}

	zipPath := filepath.Join(dir, name)
	out, err := os.Create(zipPath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}

	zw := zip.NewWriter(out)
	for _, p := range paths {
		if err := addFile(zw, p); err != nil {
			zw.Close()
			out.Close()
			return "", err
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return "", fmt.Errorf("finish archive: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close archive: %w", err)
	}
	return zipPath, nil
}

func addFile(zw *zip.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   filepath.Base(path),
		Method: zip.Deflate,
	})
	if err != nil {
		return fmt.Errorf("add %s: %w", path, err)
	}
	if _, err := io.Copy(w, src); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
