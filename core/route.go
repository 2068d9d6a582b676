// core/route.go
package core

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicatePath = errors.New("duplicate route path")
	ErrNoRootRoute   = errors.New("registry needs exactly one root route")
)

// Route binds a URL path to a page unit.
type Route struct {
	Path string
	Page Page
}

// Registry is an immutable, ordered route table.
type Registry struct {
	routes []Route
}

// NewRegistry validates routes and returns a registry preserving their order.
func NewRegistry(routes ...Route) (*Registry, error) {
	seen := make(map[string]struct{}, len(routes))
	table := make([]Route, 0, len(routes))
	roots := 0

	for _, r := range routes {
		r.Path = normalize(r.Path)
		if _, dup := seen[r.Path]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}
		seen[r.Path] = struct{}{}
		if r.Path == "/" {
			roots++
		}
		table = append(table, r)
	}

	if roots != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoRootRoute, roots)
	}

	return &Registry{routes: table}, nil
}

// Match selects the route whose path equals the normalised currentPath.
// Sub-paths of a route do not match it.
func (r *Registry) Match(currentPath string) (Route, bool) {
	p := normalize(currentPath)
	for _, route := range r.routes {
		if route.Path == p {
			return route, true
		}
	}
	return Route{}, false
}

// Routes returns a copy of the table in registration order.
func (r *Registry) Routes() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}
