// tools/filetool/chunk.go
package filetool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidChunkSize is returned for a chunk size below one byte.
var ErrInvalidChunkSize = errors.New("chunk size must be positive")

// ChunkName returns the file name of chunk index for a source named stem.
func ChunkName(stem string, index int) string {
	return fmt.Sprintf("%s_part_%04d", stem, index)
}

// Chunk splits input into sequential pieces of at most chunkSize bytes in
// outDir and returns their paths in order. An empty input yields no chunks.
// Up to parallel chunks are written at once.
func Chunk(ctx context.Context, input string, chunkSize int64, outDir string, parallel int) ([]string, error) {
	if chunkSize <= 0 {
		return nil, ErrInvalidChunkSize
	}
	if parallel < 1 {
		parallel = 1
	}

	src, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	var paths []string
	for index := 0; ; index++ {
		if err := gctx.Err(); err != nil {
			break
		}

		buf := make([]byte, chunkSize)
		n, readErr := io.ReadFull(src, buf)
		if n > 0 {
			path := filepath.Join(outDir, ChunkName(stem, index))
			data := buf[:n]
			paths = append(paths, path)
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write chunk %d: %w", index, err)
				}
				return nil
			})
		}

		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}
		if readErr != nil {
			_ = g.Wait()
			return nil, fmt.Errorf("read input: %w", readErr)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Reassemble concatenates chunks in order into output. A partial output is
// removed on failure.
func Reassemble(ctx context.Context, chunks []string, output string) (err error) {
	dst, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if cerr := dst.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
		if err != nil {
			os.Remove(output)
		}
	}()

	for _, p := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := appendFile(dst, p); err != nil {
			return err
		}
	}
	return nil
}

func appendFile(dst io.Writer, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open chunk: %w", err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("copy chunk %s: %w", filepath.Base(path), err)
	}
	return nil
}

// FindChunks lists the chunk files in dir in reassembly order. Indices are
// compared numerically so _part_10000 sorts after _part_9999.
func FindChunks(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*_part_[0-9]*"))
	if err != nil {
		return nil, err
	}

	type chunk struct {
		path  string
		stem  string
		index int
	}
	chunks := make([]chunk, 0, len(matches))
	for _, m := range matches {
		name := filepath.Base(m)
		i := strings.LastIndex(name, "_part_")
		index, err := strconv.Atoi(name[i+len("_part_"):])
		if err != nil || index < 0 {
			continue
		}
		chunks = append(chunks, chunk{path: m, stem: name[:i], index: index})
	}

	sort.Slice(chunks, func(a, b int) bool {
		if chunks[a].stem != chunks[b].stem {
			return chunks[a].stem < chunks[b].stem
		}
		return chunks[a].index < chunks[b].index
	})

	paths := make([]string, len(chunks))
	for i, c := range chunks {
		paths[i] = c.path
	}
	return paths, nil
}
