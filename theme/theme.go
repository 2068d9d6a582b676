// theme/theme.go
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"file-emporium/assets"
)

var (
	homeResource        = &fyne.StaticResource{StaticName: "home.svg", StaticContent: assets.IconHomeSVG}
	pdfFileResource     = &fyne.StaticResource{StaticName: "pdf-file.svg", StaticContent: assets.IconPDFFileSVG}
	genericFileResource = &fyne.StaticResource{StaticName: "generic-file.svg", StaticContent: assets.IconGenericFileSVG}
	sunResource         = &fyne.StaticResource{StaticName: "sun.svg", StaticContent: assets.IconSunSVG}
	moonResource        = &fyne.StaticResource{StaticName: "moon.svg", StaticContent: assets.IconMoonSVG}

	// Themed wrappers recolour the monochrome SVGs for the active variant.
	HomeIcon        fyne.Resource = theme.NewThemedResource(homeResource)
	PDFFileIcon     fyne.Resource = theme.NewThemedResource(pdfFileResource)
	GenericFileIcon fyne.Resource = theme.NewThemedResource(genericFileResource)
	SunIcon         fyne.Resource = theme.NewThemedResource(sunResource)
	MoonIcon        fyne.Resource = theme.NewThemedResource(moonResource)
)

// emberPrimary is the accent used for the active sidebar link and primary buttons.
var emberPrimary = color.NRGBA{R: 230, G: 92, B: 0, A: 255}

type darkTheme struct {
	fyne.Theme
}

func (t *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return emberPrimary
	}
	if name == theme.ColorNameBackground {
		return color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	}
	return theme.DarkTheme().Color(name, variant)
}

func NewDarkTheme() fyne.Theme {
	return &darkTheme{Theme: theme.DarkTheme()}
}

type lightTheme struct {
	fyne.Theme
}

func (t *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return emberPrimary
	}
	return theme.LightTheme().Color(name, variant)
}

func NewLightTheme() fyne.Theme {
	return &lightTheme{Theme: theme.LightTheme()}
}
