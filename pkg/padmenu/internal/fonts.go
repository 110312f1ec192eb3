package internal

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/ttf"
)

const FallbackFontEnvVar = "FALLBACK_FONT"

type FontSizes struct {
	Menu int `json:"menu" toml:"menu"`
	Bar  int `json:"bar" toml:"bar"`
}

var DefaultFontSizes = FontSizes{
	Menu: 34,
	Bar:  24,
}

var Fonts fontsManager

type fontsManager struct {
	MenuFont *ttf.Font
	BarFont  *ttf.Font
}

func CalculateFontSizeForResolution(baseSize int, screenWidth int32) int {
	const referenceWidth int32 = 1024
	scaleFactor := float32(screenWidth) / float32(referenceWidth)

	// Damp the growth on screens wider than the reference
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return max(int(float32(baseSize)*scaleFactor), 8)
}

// GetScaleFactor returns the scale factor based on current screen width
func GetScaleFactor() float32 {
	const referenceWidth int32 = 1024
	screenWidth := GetWindow().GetWidth()

	scaleFactor := float32(screenWidth) / float32(referenceWidth)
	if screenWidth > referenceWidth {
		scaleFactor = 1.0 + (scaleFactor-1.0)*0.75
	}

	return scaleFactor
}

func initFonts(sizes FontSizes) error {
	if err := ttf.Init(); err != nil {
		return fmt.Errorf("failed to init ttf: %w", err)
	}

	screenWidth := GetWindow().GetWidth()
	paths := []string{os.Getenv(FallbackFontEnvVar), GetTheme().FontPath}

	menuFont, err := loadFont(paths, CalculateFontSizeForResolution(sizes.Menu, screenWidth))
	if err != nil {
		return err
	}
	barFont, err := loadFont(paths, CalculateFontSizeForResolution(sizes.Bar, screenWidth))
	if err != nil {
		menuFont.Close()
		return err
	}

	Fonts = fontsManager{MenuFont: menuFont, BarFont: barFont}
	return nil
}

func loadFont(paths []string, size int) (*ttf.Font, error) {
	var lastErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		font, err := ttf.OpenFont(path, size)
		if err == nil {
			return font, nil
		}
		GetInternalLogger().Debug("Failed to load font, trying next", "path", path, "error", err)
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no font path configured, set %s or the theme font", FallbackFontEnvVar)
	}
	return nil, fmt.Errorf("failed to load font: %w", lastErr)
}

func closeFonts() {
	if Fonts.MenuFont != nil {
		Fonts.MenuFont.Close()
	}
	if Fonts.BarFont != nil {
		Fonts.BarFont.Close()
	}
	ttf.Quit()
}
