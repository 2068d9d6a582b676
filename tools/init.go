// tools/init.go
package tools

// Blank imports run each page package's init(), which registers the page
// under its route path.
import (
	_ "file-emporium/tools/filetool"
	_ "file-emporium/tools/home"
	_ "file-emporium/tools/pdftool"
)
