package filetool

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestChunkName(t *testing.T) {
	assert.Equal(t, "report_part_0000", ChunkName("report", 0))
	assert.Equal(t, "report_part_0123", ChunkName("report", 123))
}

func TestChunkAndReassemble(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	tests := []struct {
		name      string
		size      int
		chunkSize int64
		want      int
	}{
		{"smaller than one chunk", 10, 64, 1},
		{"exact multiple", 128, 32, 4},
		{"remainder", 100, 32, 4},
		{"one byte chunks", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := filepath.Join(dir, "data.bin")
			payload := bytes.Repeat([]byte("emporium"), tt.size/8+1)[:tt.size]
			require.NoError(t, os.WriteFile(input, payload, 0o644))

			outDir := t.TempDir()
			chunks, err := Chunk(context.Background(), input, tt.chunkSize, outDir, 3)
			require.NoError(t, err)
			require.Len(t, chunks, tt.want)

			for i, c := range chunks {
				assert.Equal(t, filepath.Join(outDir, ChunkName("data", i)), c)
				info, err := os.Stat(c)
				require.NoError(t, err)
				assert.LessOrEqual(t, info.Size(), tt.chunkSize)
			}

			found, err := FindChunks(outDir)
			require.NoError(t, err)
			assert.Equal(t, chunks, found)

			output := filepath.Join(t.TempDir(), "joined")
			require.NoError(t, Reassemble(context.Background(), found, output))
			got, err := os.ReadFile(output)
			require.NoError(t, err)
			assert.Equal(t, payload, got)
		})
	}
}

func TestChunkEmptyFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(input, nil, 0o644))

	chunks, err := Chunk(context.Background(), input, 16, t.TempDir(), 1)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunkInvalidSize(t *testing.T) {
	_, err := Chunk(context.Background(), "unused", 0, t.TempDir(), 1)
	assert.ErrorIs(t, err, ErrInvalidChunkSize)
}

func TestChunkMissingInput(t *testing.T) {
	_, err := Chunk(context.Background(), filepath.Join(t.TempDir(), "nope"), 8, t.TempDir(), 1)
	assert.Error(t, err)
}

func TestChunkCancelled(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	input := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(input, make([]byte, 64), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Chunk(ctx, input, 8, t.TempDir(), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReassembleMissingChunkRemovesOutput(t *testing.T) {
	dir := t.TempDir()
	ok := filepath.Join(dir, "a_part_0000")
	require.NoError(t, os.WriteFile(ok, []byte("abc"), 0o644))
	output := filepath.Join(dir, "a")

	err := Reassemble(context.Background(), []string{ok, filepath.Join(dir, "a_part_0001")}, output)
	require.Error(t, err)
	assert.NoFileExists(t, output)
}

func TestStemOf(t *testing.T) {
	assert.Equal(t, "report", StemOf("/tmp/x/report_part_0003"))
	assert.Equal(t, "my_part_file", StemOf("my_part_file_part_0000"))
	assert.Equal(t, "plain", StemOf("plain"))
}

func TestFindChunksOrdersPastFourDigits(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "big.bin")
	payload := make([]byte, 10005)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	require.NoError(t, os.WriteFile(input, payload, 0o644))

	outDir := t.TempDir()
	chunks, err := Chunk(context.Background(), input, 1, outDir, 8)
	require.NoError(t, err)
	require.Len(t, chunks, 10005)
	assert.Equal(t, filepath.Join(outDir, "big_part_10004"), chunks[10004])

	found, err := FindChunks(outDir)
	require.NoError(t, err)
	require.Len(t, found, 10005)
	assert.Equal(t, chunks, found)

	output := filepath.Join(t.TempDir(), "big")
	require.NoError(t, Reassemble(context.Background(), found, output))
	got, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestFindChunksIgnoresNonNumericSuffix(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a_part_0002", "a_part_0010", "a_part_0001", "a_part_0001.bak", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}

	found, err := FindChunks(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a_part_0001"),
		filepath.Join(dir, "a_part_0002"),
		filepath.Join(dir, "a_part_0010"),
	}, found)
}
