// tools/home/home.go
package home

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"file-emporium/core"
	appTheme "file-emporium/theme"
)

// Path is the route the home page is registered under.
const Path = "/"

func init() {
	core.Register(Path, &homePage{})
}

// toolEntry is one tool advertised on the home page.
type toolEntry struct {
	Label       string
	Description string
	Target      string
}

var toolEntries = []toolEntry{
	{Label: "PDF Splitter/Merger", Description: "Split or merge one or more PDFs", Target: "/pdf-tool"},
	{Label: "File Splitter/Reassembler", Description: "Split files into smaller files for later reassembly", Target: "/file-tool"},
}

type homePage struct{}

func (p *homePage) Title() string       { return "Home" }
func (p *homePage) Icon() fyne.Resource { return appTheme.HomeIcon }
func (p *homePage) Destroy()            {}

func (p *homePage) View(ctx *core.PageContext) fyne.CanvasObject {
	list := container.NewVBox()
	for _, e := range toolEntries {
		target := e.Target
		link := widget.NewButton(e.Label, func() {
			ctx.Navigator.Navigate(target)
		})
		link.Importance = widget.LowImportance
		link.Alignment = widget.ButtonAlignLeading
		list.Add(container.NewVBox(link, widget.NewLabel(e.Description)))
	}

	return container.NewVBox(
		widget.NewLabelWithStyle("PyroRay's File Emporium", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Select a tool below to get started:"),
		widget.NewSeparator(),
		list,
	)
}
