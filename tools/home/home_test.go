package home

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-emporium/core"
)

type recordingNavigator struct {
	current string
	visited []string
}

func (n *recordingNavigator) CurrentPath() string { return n.current }
func (n *recordingNavigator) Navigate(p string) {
	n.visited = append(n.visited, p)
	n.current = p
}

func findButton(obj fyne.CanvasObject, text string) *widget.Button {
	switch o := obj.(type) {
	case *widget.Button:
		if o.Text == text {
			return o
		}
	case *fyne.Container:
		for _, child := range o.Objects {
			if b := findButton(child, text); b != nil {
				return b
			}
		}
	}
	return nil
}

func TestHomeRegistered(t *testing.T) {
	page, ok := core.Registered(Path)
	require.True(t, ok)
	assert.Equal(t, "Home", page.Title())
}

func TestHomeLinksNavigate(t *testing.T) {
	test.NewTempApp(t)
	nav := &recordingNavigator{current: "/"}

	view := (&homePage{}).View(&core.PageContext{Navigator: nav})

	pdf := findButton(view, "PDF Splitter/Merger")
	require.NotNil(t, pdf)
	test.Tap(pdf)

	file := findButton(view, "File Splitter/Reassembler")
	require.NotNil(t, file)
	test.Tap(file)

	assert.Equal(t, []string{"/pdf-tool", "/file-tool"}, nav.visited)
}
