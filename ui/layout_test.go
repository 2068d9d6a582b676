package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"file-emporium/core"
)

type fakePage struct {
	title     string
	views     int
	destroyed int
	lastCtx   *core.PageContext
}

func (p *fakePage) Title() string       { return p.title }
func (p *fakePage) Icon() fyne.Resource { return nil }
func (p *fakePage) Destroy()            { p.destroyed++ }

func (p *fakePage) View(ctx *core.PageContext) fyne.CanvasObject {
	p.views++
	p.lastCtx = ctx
	return widget.NewLabel(p.title)
}

type shellFixture struct {
	shell  *Shell
	router *core.Router
	home   *fakePage
	pdf    *fakePage
	file   *fakePage
}

func newShellFixture(t *testing.T, start string) *shellFixture {
	t.Helper()
	return newLoggedShellFixture(t, start, nil)
}

func newLoggedShellFixture(t *testing.T, start string, log *zap.Logger) *shellFixture {
	t.Helper()
	test.NewTempApp(t)

	f := &shellFixture{
		home: &fakePage{title: "home"},
		pdf:  &fakePage{title: "pdf"},
		file: &fakePage{title: "file"},
	}
	registry, err := core.NewRegistry(
		core.Route{Path: "/", Page: f.home},
		core.Route{Path: "/pdf-tool", Page: f.pdf},
		core.Route{Path: "/file-tool", Page: f.file},
	)
	require.NoError(t, err)

	f.router = core.NewRouter(start, nil)
	f.shell = NewShell(f.router, registry, "Emporium", NavLinks, core.PageContext{Logger: log}, log)
	return f
}

func contentText(t *testing.T, s *Shell) string {
	t.Helper()
	obj := s.Content()
	require.NotNil(t, obj)
	label, ok := obj.(*widget.Label)
	require.True(t, ok)
	return label.Text
}

func TestShellRendersStartPage(t *testing.T) {
	f := newShellFixture(t, "/")

	assert.Equal(t, "home", contentText(t, f.shell))
	assert.Equal(t, 1, f.home.views)
	assert.Equal(t, 0, f.pdf.views)
	require.NotNil(t, f.home.lastCtx)
	assert.Same(t, f.router, f.home.lastCtx.Navigator)
	assert.NotNil(t, f.home.lastCtx.Logger)
}

func TestShellClickPDFToolLink(t *testing.T) {
	f := newShellFixture(t, "/")
	sb := f.shell.Sidebar()

	test.Tap(sb.linkBtns[1])

	assert.Equal(t, "/pdf-tool", f.router.CurrentPath())
	assert.Equal(t, "pdf", contentText(t, f.shell))
	assert.Equal(t, widget.LowImportance, sb.linkBtns[0].Importance)
	assert.Equal(t, widget.HighImportance, sb.linkBtns[1].Importance)
}

func TestShellUnknownPathRendersEmpty(t *testing.T) {
	f := newShellFixture(t, "/")

	f.router.Navigate("/unknown")

	assert.Nil(t, f.shell.Content())
	for _, btn := range f.shell.Sidebar().linkBtns {
		assert.Equal(t, widget.LowImportance, btn.Importance)
	}

	f.router.Navigate("/file-tool")
	assert.Equal(t, "file", contentText(t, f.shell))
}

func TestShellReusesBuiltViews(t *testing.T) {
	f := newShellFixture(t, "/")

	f.router.Navigate("/pdf-tool")
	first := f.shell.Content()
	f.router.Navigate("/")
	f.router.Navigate("/pdf-tool/")

	assert.Same(t, first, f.shell.Content())
	assert.Equal(t, 1, f.pdf.views)
}

func TestShellSubPathRendersEmptyButHighlightsParentLink(t *testing.T) {
	f := newShellFixture(t, "/")

	f.router.Navigate("/pdf-tool/merge")

	assert.Nil(t, f.shell.Content())
	assert.Equal(t, 0, f.pdf.views)
	sb := f.shell.Sidebar()
	assert.Equal(t, widget.LowImportance, sb.linkBtns[0].Importance)
	assert.Equal(t, widget.HighImportance, sb.linkBtns[1].Importance)
}

func TestShellCollapseDoesNotTouchContent(t *testing.T) {
	f := newShellFixture(t, "/pdf-tool")
	before := f.shell.Content()

	f.shell.Sidebar().Toggle()

	assert.True(t, f.shell.Sidebar().Collapsed())
	assert.Same(t, before, f.shell.Content())
	assert.Equal(t, "/pdf-tool", f.router.CurrentPath())
}

func TestShellCloseDestroysBuiltPages(t *testing.T) {
	f := newShellFixture(t, "/")
	f.router.Navigate("/file-tool")

	f.shell.Close()

	assert.Equal(t, 1, f.home.destroyed)
	assert.Equal(t, 1, f.file.destroyed)
	assert.Equal(t, 0, f.pdf.destroyed)
}

func TestCreateMainWindowLayoutMountsShell(t *testing.T) {
	f := newShellFixture(t, "/")
	win := test.NewTempWindow(t, widget.NewLabel(""))

	win.SetContent(CreateMainWindowLayout(fyne.CurrentApp(), win, f.shell, f.router))
	f.router.Navigate("/pdf-tool")

	assert.Equal(t, "pdf", contentText(t, f.shell))
	require.True(t, f.router.Back())
	assert.Equal(t, "home", contentText(t, f.shell))
}

func TestNewRegistryReportsMissingPage(t *testing.T) {
	_, err := NewRegistry()
	require.ErrorIs(t, err, ErrMissingPage)
	assert.Contains(t, err.Error(), RoutePaths[0])
}

func TestShellPageLoggerCarriesRoute(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	f := newLoggedShellFixture(t, "/", zap.New(obs))

	f.router.Navigate("/file-tool")
	require.NotNil(t, f.file.lastCtx)
	f.file.lastCtx.Logger.Info("page event")

	entries := logs.FilterMessage("page event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/file-tool", fields["path"])
	assert.Equal(t, "file", fields["page"])
}
