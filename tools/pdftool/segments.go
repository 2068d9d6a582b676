// tools/pdftool/segments.go
package pdftool

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"golang.org/x/sync/errgroup"

	"file-emporium/tools/archive"
)

// ErrInvalidSegments wraps every parse and validation failure.
var ErrInvalidSegments = errors.New("invalid segments")

// ZipName is the archive produced when a job yields more than one PDF.
const ZipName = "segments_output.zip"

// PageRange selects pages StartPage..EndPage (1-based, inclusive) of input FileIndex.
type PageRange struct {
	FileIndex int `json:"fileIndex"`
	StartPage int `json:"startPage"`
	EndPage   int `json:"endPage"`
}

// Segment is one output PDF assembled from its ranges in order.
type Segment struct {
	Name   string
	Ranges []PageRange
}

// rawRange detects missing keys, which decode to zero in PageRange.
type rawRange struct {
	FileIndex *int `json:"fileIndex"`
	StartPage *int `json:"startPage"`
	EndPage   *int `json:"endPage"`
}

// ParseSegments decodes the segments and names JSON arrays. Empty input is
// treated as an empty array.
func ParseSegments(segmentsJSON, namesJSON string) ([]Segment, error) {
	if strings.TrimSpace(segmentsJSON) == "" {
		segmentsJSON = "[]"
	}
	if strings.TrimSpace(namesJSON) == "" {
		namesJSON = "[]"
	}

	var rawSegments, rawNames json.RawMessage
	if err := json.Unmarshal([]byte(segmentsJSON), &rawSegments); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON for segments or names", ErrInvalidSegments)
	}
	if err := json.Unmarshal([]byte(namesJSON), &rawNames); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON for segments or names", ErrInvalidSegments)
	}
	if !isArray(rawSegments) || !isArray(rawNames) {
		return nil, fmt.Errorf("%w: 'segments' and 'names' must be JSON arrays", ErrInvalidSegments)
	}

	var segmentItems []json.RawMessage
	var names []string
	if err := json.Unmarshal(rawSegments, &segmentItems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSegments, err)
	}
	if err := json.Unmarshal(rawNames, &names); err != nil {
		return nil, fmt.Errorf("%w: names must be strings", ErrInvalidSegments)
	}
	if len(segmentItems) != len(names) {
		return nil, fmt.Errorf("%w: length of 'segments' must match length of 'names'", ErrInvalidSegments)
	}

	segments := make([]Segment, len(segmentItems))
	for i, item := range segmentItems {
		if !isArray(item) {
			return nil, fmt.Errorf("%w: segment %d is not an array", ErrInvalidSegments, i)
		}
		var entries []rawRange
		if err := json.Unmarshal(item, &entries); err != nil {
			return nil, fmt.Errorf("%w: invalid range entry in segment %d", ErrInvalidSegments, i)
		}
		segments[i].Name = names[i]
		for _, e := range entries {
			if e.FileIndex == nil || e.StartPage == nil || e.EndPage == nil {
				return nil, fmt.Errorf("%w: invalid range entry in segment %d", ErrInvalidSegments, i)
			}
			segments[i].Ranges = append(segments[i].Ranges, PageRange{
				FileIndex: *e.FileIndex,
				StartPage: *e.StartPage,
				EndPage:   *e.EndPage,
			})
		}
	}
	return segments, nil
}

// Validate checks every range against fileCount inputs and rejects output
// names that would collide.
func Validate(segments []Segment, fileCount int) error {
	seen := make(map[string]int, len(segments))
	for i, seg := range segments {
		for _, r := range seg.Ranges {
			if r.FileIndex < 0 || r.FileIndex >= fileCount {
				return fmt.Errorf("%w: fileIndex out of bounds in segment %d", ErrInvalidSegments, i)
			}
			if r.StartPage < 1 || r.EndPage < r.StartPage {
				return fmt.Errorf("%w: invalid page range in segment %d", ErrInvalidSegments, i)
			}
		}
		name := OutputName(seg.Name)
		if prev, dup := seen[strings.ToLower(name)]; dup {
			return fmt.Errorf("%w: segments %d and %d both write %s", ErrInvalidSegments, prev, i, name)
		}
		seen[strings.ToLower(name)] = i
	}
	return nil
}

// OutputName turns a user supplied segment name into a file name ending in .pdf.
func OutputName(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "segment"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}

// Process builds one PDF per segment in outDir and returns the deliverable:
// the PDF itself when there is one, otherwise a zip of all of them. End pages
// past the end of a document are clamped to its last page.
func Process(ctx context.Context, files []string, segments []Segment, outDir string, parallel int) (string, error) {
	if len(files) == 0 {
		return "", archive.ErrNoInput
	}
	if err := Validate(segments, len(files)); err != nil {
		return "", err
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("%w: no segments", ErrInvalidSegments)
	}

	counts, err := pageCounts(files)
	if err != nil {
		return "", err
	}

	if parallel < 1 {
		parallel = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	outputs := make([]string, len(segments))
	for i, seg := range segments {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := buildSegment(files, counts, seg, i, outDir)
			if err != nil {
				return err
			}
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return archive.MakeZip(outputs, outDir, ZipName)
}

func pageCounts(files []string) ([]int, error) {
	counts := make([]int, len(files))
	for i, f := range files {
		n, err := api.PageCountFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filepath.Base(f), err)
		}
		counts[i] = n
	}
	return counts, nil
}

func buildSegment(files []string, counts []int, seg Segment, index int, outDir string) (string, error) {
	var parts []string
	defer func() {
		for _, p := range parts {
			os.Remove(p)
		}
	}()

	for j, r := range seg.Ranges {
		end := min(r.EndPage, counts[r.FileIndex])
		if r.StartPage > end {
			continue
		}
		part := filepath.Join(outDir, fmt.Sprintf(".segment%03d_range%03d.pdf", index, j))
		selection := []string{fmt.Sprintf("%d-%d", r.StartPage, end)}
		if err := api.TrimFile(files[r.FileIndex], part, selection, nil); err != nil {
			return "", fmt.Errorf("extract pages for segment %d: %w", index, err)
		}
		parts = append(parts, part)
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("%w: segment %d selects no pages", ErrInvalidSegments, index)
	}

	out := filepath.Join(outDir, OutputName(seg.Name))
	if len(parts) == 1 {
		if err := os.Rename(parts[0], out); err != nil {
			return "", fmt.Errorf("write segment %d: %w", index, err)
		}
		parts = nil
		return out, nil
	}
	if err := api.MergeCreateFile(parts, out, false, nil); err != nil {
		return "", fmt.Errorf("merge segment %d: %w", index, err)
	}
	return out, nil
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
