// core/navlink.go
package core

import (
	"strings"

	"fyne.io/fyne/v2"
)

// NavLink is one sidebar entry.
type NavLink struct {
	Target string
	Icon   fyne.Resource
	Label  string
	// Exact restricts highlighting to currentPath == Target
	Exact bool
}

// Active reports whether the link should be highlighted for currentPath.
// It is re-derived on every render; links carry no stored active flag.
func (l NavLink) Active(currentPath string) bool {
	if l.Exact {
		return currentPath == l.Target
	}
	return currentPath == l.Target || strings.HasPrefix(currentPath, l.Target+"/")
}
