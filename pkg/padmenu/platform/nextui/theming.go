package nextui

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/pawndev/padmenu/pkg/padmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
)

const nextValPath = "/mnt/SDCARD/.system/tg5040/bin/nextval.elf"

// NextVal is the theme dump printed by the NextUI nextval tool.
type NextVal struct {
	Font     int    `json:"font"`
	FontPath string `json:"fontPath"`
	Color1   string `json:"color1"`
	Color2   string `json:"color2"`
	Color3   string `json:"color3"`
	Color4   string `json:"color4"`
	Color5   string `json:"color5"`
	Color6   string `json:"color6"`
	BGColor  string `json:"bgcolor"`
}

var defaultTheme = internal.Theme{
	HighlightColor:       internal.HexToColor(0xFFFFFF),
	AccentColor:          internal.HexToColor(0x9B2257),
	ButtonLabelColor:     internal.HexToColor(0x1E2329),
	HintColor:            internal.HexToColor(0xFFFFFF),
	TextColor:            internal.HexToColor(0xFFFFFF),
	HighlightedTextColor: internal.HexToColor(0x000000),
	BackgroundColor:      internal.HexToColor(0x000000),
	FontPath:             "/mnt/SDCARD/.system/res/font1.ttf",
	BackgroundImagePath:  "/mnt/SDCARD/bg.png",
}

func InitNextUITheme() internal.Theme {
	var nv *NextVal
	var err error

	if constants.IsDevMode() {
		nv, err = InitStaticNextVal(os.Getenv(constants.NextValPathEnvVar))
	} else {
		nv, err = loadNextVal()
	}

	if err != nil {
		internal.GetInternalLogger().Warn("Using default NextUI theme", "error", err)
		return defaultTheme
	}

	theme := ThemeFromNextVal(nv)

	if constants.IsDevMode() {
		theme.BackgroundImagePath = os.Getenv(constants.BackgroundPathEnvVar)
	}

	return theme
}

// ThemeFromNextVal converts a nextval dump, keeping defaults for missing fields.
func ThemeFromNextVal(nv *NextVal) internal.Theme {
	theme := defaultTheme
	setColor(&theme.HighlightColor, nv.Color1)
	setColor(&theme.AccentColor, nv.Color2)
	setColor(&theme.ButtonLabelColor, nv.Color3)
	setColor(&theme.TextColor, nv.Color4)
	setColor(&theme.HighlightedTextColor, nv.Color5)
	setColor(&theme.HintColor, nv.Color6)
	setColor(&theme.BackgroundColor, nv.BGColor)
	if nv.FontPath != "" {
		theme.FontPath = nv.FontPath
	}
	return theme
}

func setColor(dst *sdl.Color, hex string) {
	if hex == "" {
		return
	}
	*dst = parseHexColor(hex)
}

func InitStaticNextVal(filePath string) (*NextVal, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var nextval NextVal
	if err := json.Unmarshal(data, &nextval); err != nil {
		return nil, fmt.Errorf("error parsing JSON from file: %w", err)
	}

	return &nextval, nil
}

func loadNextVal() (*NextVal, error) {
	output, err := exec.Command(nextValPath).Output()
	if err != nil {
		return nil, fmt.Errorf("running nextval: %w", err)
	}

	var nextval NextVal
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(output))), &nextval); err != nil {
		return nil, fmt.Errorf("parsing nextval output: %w", err)
	}

	return &nextval, nil
}

func parseHexColor(hexStr string) sdl.Color {
	hexStr = strings.TrimPrefix(strings.TrimPrefix(hexStr, "0x"), "#")

	hex, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return sdl.Color{R: 255, G: 0, B: 0, A: 255}
	}

	return internal.HexToColor(uint32(hex))
}
