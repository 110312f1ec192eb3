package internal

import (
	"github.com/veandco/go-sdl2/sdl"
)

type Theme struct {
	HighlightColor       sdl.Color // Inverted row background, menu bar button pill
	AccentColor          sdl.Color // Menu bar outer pill
	ButtonLabelColor     sdl.Color // Text inside the button pill
	TextColor            sdl.Color // Default text colour
	HighlightedTextColor sdl.Color // Text on inverted rows
	HintColor            sdl.Color // Menu bar label text
	BackgroundColor      sdl.Color // Screen background
	FontPath             string
	FontSize             int
	BackgroundImagePath  string
}

var currentTheme Theme

func SetTheme(theme Theme) {
	currentTheme = theme
}

func GetTheme() Theme {
	return currentTheme
}
