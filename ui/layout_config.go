// ui/layout_config.go
package ui

import (
	"errors"
	"fmt"

	"file-emporium/core"
	appTheme "file-emporium/theme"
)

// RoutePaths is the literal route table. Order is match order; each path must
// have a page registered by its tool package.
var RoutePaths = []string{
	"/",
	"/pdf-tool",
	"/file-tool",
}

// NavLinks is the sidebar link list in display order.
var NavLinks = []core.NavLink{
	{Target: "/", Icon: appTheme.HomeIcon, Label: "Home", Exact: true},
	{Target: "/pdf-tool", Icon: appTheme.PDFFileIcon, Label: "PDF Tool"},
	{Target: "/file-tool", Icon: appTheme.GenericFileIcon, Label: "File Tool"},
}

// ErrMissingPage is returned when a path in RoutePaths has no registered page,
// usually because its tool package is not imported.
var ErrMissingPage = errors.New("no page registered for route")

// NewRegistry builds the route registry from RoutePaths and the pages that
// tool packages registered.
func NewRegistry() (*core.Registry, error) {
	var routes []core.Route
	for _, p := range RoutePaths {
		page, ok := core.Registered(p)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPage, p)
		}
		routes = append(routes, core.Route{Path: p, Page: page})
	}
	return core.NewRegistry(routes...)
}
