// core/router.go
package core

import (
	"path"
	"strings"

	"go.uber.org/zap"
)

// Router owns the current path. It is driven from the UI goroutine only:
// every Navigate runs all listeners to completion before returning, so
// navigation events never interleave with each other or with a toggle.
type Router struct {
	history   []string
	pos       int
	listeners []func(string)
	log       *zap.Logger
}

// NewRouter starts at start (normalised).
func NewRouter(start string, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		history: []string{normalize(start)},
		log:     log,
	}
}

// CurrentPath returns the active path.
func (r *Router) CurrentPath() string {
	return r.history[r.pos]
}

// OnChange registers fn to be called with the new path after each change.
func (r *Router) OnChange(fn func(path string)) {
	r.listeners = append(r.listeners, fn)
}

// Navigate moves to p, dropping any forward history. Navigating to the
// current path does nothing.
func (r *Router) Navigate(p string) {
	p = normalize(p)
	if p == r.CurrentPath() {
		return
	}
	r.history = append(r.history[:r.pos+1], p)
	r.pos++
	r.log.Debug("navigate", zap.String("path", p))
	r.notify(p)
}

// Back moves one step back in history. It reports false at the oldest entry.
func (r *Router) Back() bool {
	if r.pos == 0 {
		return false
	}
	r.pos--
	p := r.CurrentPath()
	r.log.Debug("navigate back", zap.String("path", p))
	r.notify(p)
	return true
}

// Forward re-applies a step undone by Back.
func (r *Router) Forward() bool {
	if r.pos == len(r.history)-1 {
		return false
	}
	r.pos++
	p := r.CurrentPath()
	r.log.Debug("navigate forward", zap.String("path", p))
	r.notify(p)
	return true
}

func (r *Router) notify(p string) {
	for _, fn := range r.listeners {
		fn(p)
	}
}

// normalize turns user or link input into a canonical path: leading slash,
// no query or fragment, cleaned of "." and ".." and trailing slashes.
func normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
