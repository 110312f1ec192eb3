package padmenu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/pawndev/padmenu/pkg/padmenu/i18n"
	"github.com/pawndev/padmenu/pkg/padmenu/internal"
	"github.com/pawndev/padmenu/pkg/padmenu/platform/cannoli"
	"github.com/pawndev/padmenu/pkg/padmenu/platform/nextui"
)

var ErrNotInitialized = errors.New("padmenu is not initialized, call Init first")

type Options struct {
	WindowTitle          string
	ShowBackground       bool
	PrimaryThemeColorHex uint32
	IsCannoli            bool
	IsNextUI             bool
	FontPath             string // Overrides the platform font
	MenuFontSize         int
	BarFontSize          int

	InputMappingFile string // JSON input mapping, see internal.Mapping
	EvdevDevicePath  string // Read the keypad from this /dev/input node instead of SDL events

	DisableMenuBar bool
	SmoothScroll   bool
	CheckGlyph     string

	Labels      LabelResolver // Defaults to DefaultLabels
	LogFilename string
}

var (
	defaultEngine *Engine
	evdevKeypad   *internal.EvdevKeypad
)

// Init initializes SDL and builds the engine used by RunMenu.
// Must be called before any other UI functions!
func Init(options Options) error {
	if options.LogFilename != "" {
		internal.SetLogFilename(options.LogFilename)
	}

	if os.Getenv(constants.DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	var theme internal.Theme
	switch {
	case options.IsNextUI:
		theme = nextui.InitNextUITheme()
	case options.IsCannoli:
		theme = cannoli.InitCannoliTheme(cannoli.DefaultFontPath)
	default:
		theme = cannoli.InitCannoliTheme(options.FontPath)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.PrimaryThemeColorHex != 0 && !options.IsNextUI {
		theme.AccentColor = internal.HexToColor(options.PrimaryThemeColorHex)
	}
	internal.SetTheme(theme)

	if options.InputMappingFile != "" {
		data, err := os.ReadFile(options.InputMappingFile)
		if err != nil {
			return fmt.Errorf("reading input mapping: %w", err)
		}
		internal.SetInputMappingBytes(data)
	}

	sizes := internal.DefaultFontSizes
	if options.MenuFontSize > 0 {
		sizes.Menu = options.MenuFontSize
	}
	if options.BarFontSize > 0 {
		sizes.Bar = options.BarFontSize
	}

	if err := internal.Init(options.WindowTitle, options.ShowBackground, sizes); err != nil {
		return err
	}

	window := internal.GetWindow()
	engineOptions := EngineOptions{
		Surface:      internal.NewSurface(window, internal.Fonts.MenuFont),
		Labels:       options.Labels,
		SmoothScroll: options.SmoothScroll,
		ScrollStep:   max(internal.Fonts.MenuFont.Height()/8, 1),
		CheckGlyph:   options.CheckGlyph,
	}
	if engineOptions.Labels == nil {
		engineOptions.Labels = DefaultLabels()
	}
	if !options.DisableMenuBar {
		engineOptions.MenuBar = newFooterBar(window, internal.Fonts.BarFont)
	}

	if options.EvdevDevicePath != "" {
		keypad, err := internal.OpenEvdevKeypad(options.EvdevDevicePath, internal.GetInputMapping())
		if err != nil {
			internal.SDLCleanup()
			return err
		}
		evdevKeypad = keypad
		engineOptions.Input = keypad
		engineOptions.Abort = keypad
	} else {
		sdlInput := internal.NewSDLInput(internal.GetInputProcessor())
		engineOptions.Input = sdlInput
		engineOptions.Abort = sdlInput
	}

	defaultEngine = NewEngine(engineOptions)
	return nil
}

// Close Tidies up SDL and the UI
// Must be called after all UI functions!
func Close() {
	if evdevKeypad != nil {
		if err := evdevKeypad.Close(); err != nil {
			internal.GetInternalLogger().Warn("Closing keypad failed", "error", err)
		}
		evdevKeypad = nil
	}
	defaultEngine = nil
	internal.SDLCleanup()
}

// DefaultLabels resolves labels through the i18n default resolver at draw time,
// so i18n.SetLanguage takes effect on the next frame. Labels pass through
// unchanged until i18n.InitI18N is called.
func DefaultLabels() LabelResolver {
	return LabelResolverFunc(i18n.GetString)
}

// DefaultEngine returns the engine built by Init, or nil.
func DefaultEngine() *Engine {
	return defaultEngine
}

// RunMenu runs m on the engine built by Init.
func RunMenu(ctx context.Context, m *Menu) (any, error) {
	if defaultEngine == nil {
		return nil, ErrNotInitialized
	}
	return defaultEngine.Run(ctx, m)
}

func SetLogFilename(filename string) {
	internal.SetLogFilename(filename)
}

// SetLogToStdout disables the stdout copy of the log when the terminal is used
// for display.
func SetLogToStdout(enabled bool) {
	internal.SetLogToStdout(enabled)
}

// GetInternalLogger returns the logger used by engines built without one.
func GetInternalLogger() *slog.Logger {
	return internal.GetInternalLogger()
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

func SetInputMappingBytes(data []byte) {
	internal.SetInputMappingBytes(data)
}
