// assets/assets.go
package assets

import _ "embed"

// Sidebar link icons
//go:embed icon/home.svg
var IconHomeSVG []byte

//go:embed icon/pdf-file.svg
var IconPDFFileSVG []byte

//go:embed icon/generic-file.svg
var IconGenericFileSVG []byte

// Theme toggle icons
//go:embed icon/sun.svg
var IconSunSVG []byte

//go:embed icon/moon.svg
var IconMoonSVG []byte
