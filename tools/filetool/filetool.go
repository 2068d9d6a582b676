// tools/filetool/filetool.go
package filetool

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"

	"file-emporium/core"
	"file-emporium/logger"
	appTheme "file-emporium/theme"
	"file-emporium/tools/archive"
)

// Path is the route the file tool is registered under.
const Path = "/file-tool"

func init() {
	core.Register(Path, &fileTool{})
}

type fileTool struct {
	ctx    *core.PageContext
	cancel context.CancelFunc

	inputPath   string
	chunkDir    string
	inputLabel  *widget.Label
	chunkLabel  *widget.Label
	sizeEntry   *widget.Entry
	zipCheck    *widget.Check
	statusLabel *widget.Label
	progress    *widget.ProgressBarInfinite
}

func (t *fileTool) Title() string       { return "File Tool" }
func (t *fileTool) Icon() fyne.Resource { return appTheme.GenericFileIcon }

// Destroy cancels a running job.
func (t *fileTool) Destroy() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *fileTool) View(ctx *core.PageContext) fyne.CanvasObject {
	t.ctx = ctx

	t.inputLabel = widget.NewLabel("No file selected")
	t.chunkLabel = widget.NewLabel("No chunk folder selected")
	t.statusLabel = widget.NewLabel("")
	t.progress = widget.NewProgressBarInfinite()
	t.progress.Stop()
	t.progress.Hide()

	t.sizeEntry = widget.NewEntry()
	t.sizeEntry.SetText(strconv.Itoa(ctx.Tools.ChunkSizeMB))
	t.zipCheck = widget.NewCheck("Bundle chunks into output.zip", nil)

	chooseFile := widget.NewButton("Choose file...", func() {
		dialog.ShowFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, ctx.Window)
				return
			}
			if r == nil {
				return
			}
			defer r.Close()
			t.inputPath = r.URI().Path()
			t.inputLabel.SetText(t.inputPath)
		}, ctx.Window)
	})

	splitBtn := widget.NewButton("Split", t.runSplit)
	splitBtn.Importance = widget.HighImportance

	chooseChunks := widget.NewButton("Choose chunk folder...", func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil {
				dialog.ShowError(err, ctx.Window)
				return
			}
			if uri == nil {
				return
			}
			t.chunkDir = uri.Path()
			t.chunkLabel.SetText(t.chunkDir)
		}, ctx.Window)
	})

	joinBtn := widget.NewButton("Reassemble", t.runReassemble)
	joinBtn.Importance = widget.HighImportance

	splitForm := widget.NewForm(
		widget.NewFormItem("File", container.NewBorder(nil, nil, nil, chooseFile, t.inputLabel)),
		widget.NewFormItem("Chunk size (MB)", t.sizeEntry),
		widget.NewFormItem("", t.zipCheck),
	)
	joinForm := widget.NewForm(
		widget.NewFormItem("Chunks", container.NewBorder(nil, nil, nil, chooseChunks, t.chunkLabel)),
	)

	return container.NewVBox(
		widget.NewLabelWithStyle("File Splitter/Reassembler", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewCard("Split", "Split a file into smaller files", container.NewVBox(splitForm, splitBtn)),
		widget.NewCard("Reassemble", "Join chunk files back into the original", container.NewVBox(joinForm, joinBtn)),
		t.progress,
		t.statusLabel,
	)
}

func (t *fileTool) runSplit() {
	win := t.ctx.Window
	if t.inputPath == "" {
		dialog.ShowInformation("File Tool", "Choose a file to split first.", win)
		return
	}
	sizeMB, err := strconv.ParseFloat(t.sizeEntry.Text, 64)
	if err != nil || sizeMB <= 0 {
		dialog.ShowError(fmt.Errorf("%w: %q", ErrInvalidChunkSize, t.sizeEntry.Text), win)
		return
	}
	chunkSize := int64(sizeMB * 1024 * 1024)
	if chunkSize < 1 {
		chunkSize = 1
	}

	dir, jobID, err := archive.NewWorkspace(t.ctx.Tools.WorkspaceRoot(), "split")
	if err != nil {
		dialog.ShowError(err, win)
		return
	}
	log := logger.WithJob(t.ctx.Logger, "split", jobID)
	input, bundle, parallel := t.inputPath, t.zipCheck.Checked, t.ctx.Tools.MaxParallel

	t.start(func(jobCtx context.Context) (string, error) {
		chunks, err := Chunk(jobCtx, input, chunkSize, dir, parallel)
		if err != nil {
			return "", err
		}
		log.Info("file split", zap.String("input", input), zap.Int("chunks", len(chunks)))
		if bundle && len(chunks) > 1 {
			if _, err := archive.MakeZip(chunks, dir, "output.zip"); err != nil {
				return "", err
			}
		}
		return fmt.Sprintf("Wrote %d chunk(s) to %s", len(chunks), dir), nil
	}, dir, log)
}

func (t *fileTool) runReassemble() {
	win := t.ctx.Window
	if t.chunkDir == "" {
		dialog.ShowInformation("File Tool", "Choose the folder holding the chunks first.", win)
		return
	}
	chunks, err := FindChunks(t.chunkDir)
	if err != nil {
		dialog.ShowError(err, win)
		return
	}
	if len(chunks) == 0 {
		dialog.ShowError(fmt.Errorf("%w in %s", archive.ErrNoInput, t.chunkDir), win)
		return
	}

	dir, jobID, err := archive.NewWorkspace(t.ctx.Tools.WorkspaceRoot(), "join")
	if err != nil {
		dialog.ShowError(err, win)
		return
	}
	log := logger.WithJob(t.ctx.Logger, "join", jobID)
	output := filepath.Join(dir, StemOf(chunks[0]))

	t.start(func(jobCtx context.Context) (string, error) {
		if err := Reassemble(jobCtx, chunks, output); err != nil {
			return "", err
		}
		log.Info("file reassembled", zap.String("output", output), zap.Int("chunks", len(chunks)))
		return "Reassembled into " + output, nil
	}, dir, log)
}

// start runs job off the UI goroutine and reports back through fyne.Do.
func (t *fileTool) start(job func(context.Context) (string, error), resultDir string, log *zap.Logger) {
	t.Destroy()
	jobCtx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	t.statusLabel.SetText("Working...")
	t.progress.Show()
	t.progress.Start()

	go func() {
		msg, err := job(jobCtx)
		fyne.Do(func() {
			t.progress.Stop()
			t.progress.Hide()
			if err != nil {
				log.Error("file tool job failed", zap.Error(err))
				t.statusLabel.SetText("Failed")
				dialog.ShowError(err, t.ctx.Window)
				return
			}
			t.statusLabel.SetText(msg)
			dialog.ShowConfirm("Done", msg+"\n\nOpen the output folder?", func(ok bool) {
				if !ok {
					return
				}
				if err := open.Start(resultDir); err != nil {
					log.Warn("open output folder", zap.Error(err))
				}
			}, t.ctx.Window)
		})
	}()
}

// StemOf recovers the original file stem from a chunk path.
func StemOf(chunkPath string) string {
	name := filepath.Base(chunkPath)
	if i := strings.LastIndex(name, "_part_"); i >= 0 {
		return name[:i]
	}
	return name
}
