// ui/sidebar.go
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"file-emporium/core"
)

const (
	glyphCollapsed = "≡"
	glyphExpanded  = "«"
)

// LinkView is the rendered state of one nav link.
type LinkView struct {
	Target    string
	Label     string
	Icon      fyne.Resource
	ShowLabel bool
	Active    bool
}

// SidebarView is the rendered state of the whole sidebar.
type SidebarView struct {
	ToggleGlyph string
	Title       string
	ShowTitle   bool
	Links       []LinkView
}

// Sidebar owns the collapse state and the link list. Nothing outside this
// type reads or writes collapsed.
type Sidebar struct {
	title     string
	links     []core.NavLink
	nav       core.Navigator
	log       *zap.Logger
	collapsed bool
	current   string

	toggleBtn  *widget.Button
	titleLabel *widget.Label
	linkBtns   []*widget.Button
	root       *fyne.Container
}

// NewSidebar creates an expanded sidebar highlighting nav's current path.
func NewSidebar(title string, links []core.NavLink, nav core.Navigator, log *zap.Logger) *Sidebar {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Sidebar{
		title:   title,
		links:   links,
		nav:     nav,
		log:     log,
		current: nav.CurrentPath(),
	}
	s.build()
	return s
}

// Collapsed reports the current state.
func (s *Sidebar) Collapsed() bool {
	return s.collapsed
}

// Toggle flips between expanded and collapsed.
func (s *Sidebar) Toggle() {
	s.collapsed = !s.collapsed
	s.log.Debug("sidebar toggled", zap.Bool("collapsed", s.collapsed))
	s.apply()
}

// SetCurrentPath re-renders for a path pushed by the router.
func (s *Sidebar) SetCurrentPath(p string) {
	s.current = p
	s.apply()
}

// Render derives the visual tree from the collapse state and currentPath.
func (s *Sidebar) Render(currentPath string) SidebarView {
	v := SidebarView{
		ToggleGlyph: glyphExpanded,
		Title:       s.title,
		ShowTitle:   !s.collapsed && s.title != "",
		Links:       make([]LinkView, len(s.links)),
	}
	if s.collapsed {
		v.ToggleGlyph = glyphCollapsed
	}
	for i, l := range s.links {
		v.Links[i] = LinkView{
			Target:    l.Target,
			Label:     l.Label,
			Icon:      l.Icon,
			ShowLabel: !s.collapsed,
			Active:    l.Active(currentPath),
		}
	}
	return v
}

// CanvasObject returns the widget tree.
func (s *Sidebar) CanvasObject() fyne.CanvasObject {
	return s.root
}

func (s *Sidebar) build() {
	s.toggleBtn = widget.NewButton(glyphExpanded, s.Toggle)
	s.toggleBtn.Importance = widget.LowImportance

	s.titleLabel = widget.NewLabelWithStyle(s.title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	list := container.NewVBox()
	for _, l := range s.links {
		target := l.Target
		btn := widget.NewButtonWithIcon(l.Label, l.Icon, func() {
			s.nav.Navigate(target)
		})
		btn.Alignment = widget.ButtonAlignLeading
		s.linkBtns = append(s.linkBtns, btn)
		list.Add(btn)
	}

	s.root = container.NewVBox(
		container.NewHBox(s.toggleBtn),
		s.titleLabel,
		widget.NewSeparator(),
		list,
	)
	s.apply()
}

func (s *Sidebar) apply() {
	v := s.Render(s.current)

	s.toggleBtn.SetText(v.ToggleGlyph)

	if v.ShowTitle {
		s.titleLabel.Show()
	} else {
		s.titleLabel.Hide()
	}

	for i, lv := range v.Links {
		btn := s.linkBtns[i]
		if lv.ShowLabel {
			btn.Text = lv.Label
		} else {
			btn.Text = ""
		}
		if lv.Active {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}

	s.root.Refresh()
}
