// tools/pdftool/pdftool.go
package pdftool

import (
	"context"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/skratchdot/open-golang/open"
	"go.uber.org/zap"

	"file-emporium/core"
	"file-emporium/logger"
	appTheme "file-emporium/theme"
	"file-emporium/tools/archive"
)

// Path is the route the PDF tool is registered under.
const Path = "/pdf-tool"

const segmentsPlaceholder = `[[{"fileIndex": 0, "startPage": 1, "endPage": 3}]]`

func init() {
	core.Register(Path, &pdfTool{})
}

type pdfTool struct {
	ctx    *core.PageContext
	cancel context.CancelFunc

	files         []string
	fileList      *widget.List
	segmentsEntry *widget.Entry
	namesEntry    *widget.Entry
	statusLabel   *widget.Label
	progress      *widget.ProgressBarInfinite
}

func (t *pdfTool) Title() string       { return "PDF Tool" }
func (t *pdfTool) Icon() fyne.Resource { return appTheme.PDFFileIcon }

func (t *pdfTool) Destroy() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

func (t *pdfTool) View(ctx *core.PageContext) fyne.CanvasObject {
	t.ctx = ctx
	t.files = nil

	t.fileList = widget.NewList(
		func() int { return len(t.files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(fmt.Sprintf("%d: %s", id, filepath.Base(t.files[id])))
		},
	)

	addBtn := widget.NewButton("Add PDF...", func() {
		d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
			if err != nil {
				dialog.ShowError(err, ctx.Window)
				return
			}
			if r == nil {
				return
			}
			defer r.Close()
			t.files = append(t.files, r.URI().Path())
			t.fileList.Refresh()
		}, ctx.Window)
		d.SetFilter(storage.NewExtensionFileFilter([]string{".pdf", ".PDF"}))
		d.Show()
	})
	clearBtn := widget.NewButton("Clear", func() {
		t.files = nil
		t.fileList.Refresh()
	})

	t.segmentsEntry = widget.NewMultiLineEntry()
	t.segmentsEntry.SetPlaceHolder(segmentsPlaceholder)
	t.namesEntry = widget.NewEntry()
	t.namesEntry.SetPlaceHolder(`["first-three-pages"]`)

	t.statusLabel = widget.NewLabel("")
	t.progress = widget.NewProgressBarInfinite()
	t.progress.Stop()
	t.progress.Hide()

	runBtn := widget.NewButton("Run", t.run)
	runBtn.Importance = widget.HighImportance

	top := container.NewVBox(
		widget.NewLabelWithStyle("PDF Splitter/Merger", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Each segment becomes one PDF built from page ranges of the inputs below."),
		widget.NewSeparator(),
		container.NewHBox(addBtn, clearBtn),
	)
	bottom := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Segments", t.segmentsEntry),
			widget.NewFormItem("Names", t.namesEntry),
		),
		runBtn,
		t.progress,
		t.statusLabel,
	)

	return container.NewBorder(top, bottom, nil, nil, t.fileList)
}

func (t *pdfTool) run() {
	win := t.ctx.Window
	if len(t.files) == 0 {
		dialog.ShowError(fmt.Errorf("%w: add at least one PDF", archive.ErrNoInput), win)
		return
	}
	segments, err := ParseSegments(t.segmentsEntry.Text, t.namesEntry.Text)
	if err == nil {
		err = Validate(segments, len(t.files))
	}
	if err != nil {
		dialog.ShowError(err, win)
		return
	}

	dir, jobID, err := archive.NewWorkspace(t.ctx.Tools.WorkspaceRoot(), "pdf")
	if err != nil {
		dialog.ShowError(err, win)
		return
	}
	log := logger.WithJob(t.ctx.Logger, "pdf", jobID)
	files := append([]string(nil), t.files...)
	parallel := t.ctx.Tools.MaxParallel

	t.Destroy()
	jobCtx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel

	t.statusLabel.SetText("Processing...")
	t.progress.Show()
	t.progress.Start()

	go func() {
		result, err := Process(jobCtx, files, segments, dir, parallel)
		fyne.Do(func() {
			t.progress.Stop()
			t.progress.Hide()
			if err != nil {
				log.Error("pdf job failed", zap.Error(err))
				t.statusLabel.SetText("Failed")
				dialog.ShowError(err, win)
				return
			}
			log.Info("pdf job finished", zap.String("result", result), zap.Int("segments", len(segments)))
			t.statusLabel.SetText("Saved " + result)
			dialog.ShowConfirm("Done", "Saved "+filepath.Base(result)+"\n\nOpen the output folder?", func(ok bool) {
				if !ok {
					return
				}
				if err := open.Start(dir); err != nil {
					log.Warn("open output folder", zap.Error(err))
				}
			}, win)
		})
	}()
}
