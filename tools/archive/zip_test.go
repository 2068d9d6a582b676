package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestMakeZipEmpty(t *testing.T) {
	_, err := MakeZip(nil, t.TempDir(), "out.zip")
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestMakeZipSingleFileIsReturnedAsIs(t *testing.T) {
	dir := t.TempDir()
	only := writeFile(t, dir, "a.pdf", "a")

	got, err := MakeZip([]string{only}, dir, "out.zip")
	require.NoError(t, err)
	assert.Equal(t, only, got)
	assert.NoFileExists(t, filepath.Join(dir, "out.zip"))
}

func TestMakeZipBundlesByBaseName(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	a := writeFile(t, src, "a.pdf", "first")
	b := writeFile(t, src, "b.pdf", "second")

	got, err := MakeZip([]string{a, b}, out, "segments_output.zip")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "segments_output.zip"), got)

	zr, err := zip.OpenReader(got)
	require.NoError(t, err)
	defer zr.Close()

	contents := map[string]string{}
	for _, f := range zr.File {
		assert.Equal(t, zip.Deflate, f.Method)
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		contents[f.Name] = string(data)
	}
	assert.Equal(t, map[string]string{"a.pdf": "first", "b.pdf": "second"}, contents)
}

func TestMakeZipMissingFile(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a", "x")

	_, err := MakeZip([]string{a, filepath.Join(dir, "missing")}, dir, "out.zip")
	assert.Error(t, err)
}

func TestNewWorkspace(t *testing.T) {
	root := t.TempDir()

	dir1, id1, err := NewWorkspace(root, "split")
	require.NoError(t, err)
	dir2, id2, err := NewWorkspace(root, "split")
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
	assert.Equal(t, filepath.Join(root, "split-"+id1), dir1)
	assert.DirExists(t, dir1)
	assert.DirExists(t, dir2)
}
