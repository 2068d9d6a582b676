// ui/layout.go
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"file-emporium/core"
	"file-emporium/logger"
	appTheme "file-emporium/theme"
)

// Shell composes the sidebar with the route-driven content region. It keeps
// no navigation state of its own: the router owns the path and the sidebar
// owns its collapse state.
type Shell struct {
	router   *core.Router
	registry *core.Registry
	sidebar  *Sidebar
	pageCtx  core.PageContext
	log      *zap.Logger

	content *fyne.Container
	views   map[string]fyne.CanvasObject
	root    fyne.CanvasObject
}

// NewShell mounts the sidebar and renders the page for the router's current path.
func NewShell(router *core.Router, registry *core.Registry, sidebarTitle string, links []core.NavLink, pageCtx core.PageContext, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	pageCtx.Navigator = router
	if pageCtx.Logger == nil {
		pageCtx.Logger = log
	}

	s := &Shell{
		router:   router,
		registry: registry,
		sidebar:  NewSidebar(sidebarTitle, links, router, log),
		pageCtx:  pageCtx,
		log:      log,
		content:  container.NewStack(),
		views:    make(map[string]fyne.CanvasObject),
	}

	s.root = container.NewBorder(nil, nil,
		container.NewHBox(s.sidebar.CanvasObject(), widget.NewSeparator()),
		nil,
		container.NewPadded(s.content),
	)

	router.OnChange(func(p string) {
		s.sidebar.SetCurrentPath(p)
		s.show(p)
	})
	s.show(router.CurrentPath())

	return s
}

// Sidebar exposes the mounted sidebar.
func (s *Shell) Sidebar() *Sidebar {
	return s.sidebar
}

// CanvasObject returns the composed layout.
func (s *Shell) CanvasObject() fyne.CanvasObject {
	return s.root
}

// Content returns the object currently shown in the content region, or nil.
func (s *Shell) Content() fyne.CanvasObject {
	if len(s.content.Objects) == 0 {
		return nil
	}
	return s.content.Objects[0]
}

// Close destroys every page that has built a view.
func (s *Shell) Close() {
	for _, route := range s.registry.Routes() {
		if _, built := s.views[route.Path]; built {
			route.Page.Destroy()
		}
	}
	s.views = make(map[string]fyne.CanvasObject)
}

func (s *Shell) show(p string) {
	route, ok := s.registry.Match(p)
	if !ok {
		s.log.Warn("no route matches path, rendering empty content", zap.String("path", p))
		s.content.Objects = nil
		s.content.Refresh()
		return
	}

	view, built := s.views[route.Path]
	if !built {
		ctx := s.pageCtx
		ctx.Logger = logger.WithPath(s.pageCtx.Logger, route.Path).With(zap.String("page", route.Page.Title()))
		view = route.Page.View(&ctx)
		s.views[route.Path] = view
	}

	s.content.Objects = []fyne.CanvasObject{view}
	s.content.Refresh()
	s.log.Info("page shown", zap.String("path", p), zap.String("route", route.Path))
}

// CreateMainWindowLayout wires the shell into win: theme toggle overlay,
// history shortcuts and page teardown on close.
func CreateMainWindowLayout(app fyne.App, win fyne.Window, shell *Shell, router *core.Router) fyne.CanvasObject {
	isDarkMode := false
	themeToggleBtn := widget.NewButtonWithIcon("", appTheme.MoonIcon, nil)

	themeToggleBtn.OnTapped = func() {
		if isDarkMode {
			app.Settings().SetTheme(appTheme.NewLightTheme())
			themeToggleBtn.SetIcon(appTheme.MoonIcon)
		} else {
			app.Settings().SetTheme(appTheme.NewDarkTheme())
			themeToggleBtn.SetIcon(appTheme.SunIcon)
		}
		isDarkMode = !isDarkMode
	}

	buttonOverlay := container.NewBorder(
		container.NewHBox(layout.NewSpacer(), themeToggleBtn),
		nil, nil, nil,
	)

	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyLeft, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) {
		router.Back()
	})
	win.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyRight, Modifier: fyne.KeyModifierAlt}, func(fyne.Shortcut) {
		router.Forward()
	})
	win.SetOnClosed(shell.Close)

	return container.NewStack(shell.CanvasObject(), buttonOverlay)
}
