package nextui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestThemeFromNextVal(t *testing.T) {
	theme := ThemeFromNextVal(&NextVal{
		Color1:   "0xFF8800",
		Color2:   "#112233",
		BGColor:  "not hex",
		FontPath: "/fonts/next.ttf",
	})

	assert.Equal(t, sdl.Color{R: 0xFF, G: 0x88, B: 0x00, A: 255}, theme.HighlightColor)
	assert.Equal(t, sdl.Color{R: 0x11, G: 0x22, B: 0x33, A: 255}, theme.AccentColor)
	assert.Equal(t, sdl.Color{R: 255, G: 0, B: 0, A: 255}, theme.BackgroundColor)
	assert.Equal(t, defaultTheme.TextColor, theme.TextColor)
	assert.Equal(t, "/fonts/next.ttf", theme.FontPath)
}

func TestInitStaticNextVal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nextval.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"font": 1, "color2": "#9B2257", "bgcolor": "#000000"}`), 0o644))

	nv, err := InitStaticNextVal(path)
	require.NoError(t, err)
	assert.Equal(t, 1, nv.Font)
	assert.Equal(t, "#9B2257", nv.Color2)

	_, err = InitStaticNextVal(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
