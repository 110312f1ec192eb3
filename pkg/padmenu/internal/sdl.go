package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

// Init brings up SDL, the window, the fonts and the input processor.
func Init(title string, showBackground bool, sizes FontSizes) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("failed to init SDL: %w", err)
	}

	win, err := initWindow(title, showBackground)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %w", err)
	}
	window = win

	if err := initFonts(sizes); err != nil {
		window.closeWindow()
		sdl.Quit()
		return err
	}

	InitInputProcessor()

	return nil
}

// SDLCleanup releases everything Init created.
func SDLCleanup() {
	CloseAllControllers()
	closeFonts()
	if window != nil {
		window.closeWindow()
	}
	sdl.Quit()
	CloseLogger()
}
