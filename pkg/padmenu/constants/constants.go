package constants

import "os"

const (
	DevModeEnvVar        = "PADMENU_DEV"
	DebugEnvVar          = "PADMENU_DEBUG"
	BackgroundPathEnvVar = "BACKGROUND_PATH"
	NextValPathEnvVar    = "NEXTVAL_PATH"
)

// IsDevMode is true when running on a desktop instead of the device.
func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) != ""
}

// TextStyle is the bitset passed to a render surface with every line of text.
type TextStyle uint8

const (
	StyleUnderline TextStyle = 1 << iota
	StyleBold
	StyleCenter
	StyleFill
	StyleInvert
)

const StyleNone TextStyle = 0

func (s TextStyle) Has(f TextStyle) bool {
	return s&f != 0
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// Default glyphs appended to toggle and checked items.
const (
	ToggleOnSuffix  = ":ON"
	ToggleOffSuffix = ":OFF"
	CheckGlyph      = "✓"
)
