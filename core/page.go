// core/page.go
package core

import (
	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"file-emporium/config"
)

// Page is an opaque renderable unit bound to a route.
type Page interface {
	Title() string
	Icon() fyne.Resource
	View(ctx *PageContext) fyne.CanvasObject
	Destroy()
}

// Navigator is the read-and-request view of the router that pages and the
// sidebar are given. It never exposes history mutation beyond Navigate.
type Navigator interface {
	CurrentPath() string
	Navigate(path string)
}

// PageContext is what the shell hands to a page when building its view.
type PageContext struct {
	Window    fyne.Window
	Navigator Navigator
	Logger    *zap.Logger
	Tools     config.ToolsConfig
}

type registration struct {
	Path string
	Page Page
}

// pageRegistry is filled by tool package init functions.
var pageRegistry []registration

// Register records a page unit for a path. Tool packages call it from init().
func Register(path string, page Page) {
	pageRegistry = append(pageRegistry, registration{Path: normalize(path), Page: page})
}

// Registered returns the page registered for path, if any.
func Registered(path string) (Page, bool) {
	path = normalize(path)
	for _, r := range pageRegistry {
		if r.Path == path {
			return r.Page, true
		}
	}
	return nil, false
}
