package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func TestLoadInputMappingFromBytes(t *testing.T) {
	data := []byte(`{
		"keyboard_map": {"119": 1, "115": 2},
		"controller_button_map": {"0": 5},
		"joystick_button_map": {"3": 6},
		"joystick_hat_map": {"1": 1},
		"evdev_key_map": {"304": 5, "305": 6}
	}`)

	mapping, err := LoadInputMappingFromBytes(data)
	require.NoError(t, err)

	assert.Equal(t, constants.VirtualButtonUp, mapping.KeyboardMap[sdl.K_w])
	assert.Equal(t, constants.VirtualButtonDown, mapping.KeyboardMap[sdl.K_s])
	assert.Equal(t, constants.VirtualButtonA, mapping.ControllerButtonMap[sdl.CONTROLLER_BUTTON_A])
	assert.Equal(t, constants.VirtualButtonB, mapping.JoystickButtonMap[3])
	assert.Equal(t, constants.VirtualButtonUp, mapping.JoystickHatMap[sdl.HAT_UP])
	assert.Equal(t, constants.VirtualButtonA, mapping.EvdevKeyMap[304])
	assert.Equal(t, constants.VirtualButtonB, mapping.EvdevKeyMap[305])
}

func TestLoadInputMappingRejectsInvalidJSON(t *testing.T) {
	_, err := LoadInputMappingFromBytes([]byte(`{"keyboard_map": [}`))
	assert.Error(t, err)
}

func TestSavedMappingLoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.json")
	original := DefaultInputMapping()

	require.NoError(t, original.SaveToJSON(path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadInputMappingFromJSON(path)
	require.NoError(t, err)
	assert.Equal(t, original.EvdevKeyMap, loaded.EvdevKeyMap)
	assert.Equal(t, original.KeyboardMap, loaded.KeyboardMap)
}

func TestDefaultEvdevMapCoversMenuKeys(t *testing.T) {
	mapping := DefaultInputMapping()

	masks := constants.KeyNone
	for _, button := range mapping.EvdevKeyMap {
		masks |= button.Mask()
	}
	for _, key := range []constants.KeyMask{constants.KeyUp, constants.KeyDown, constants.KeyOK, constants.KeyCancel} {
		assert.True(t, masks.Has(key), "key %d", key)
	}
}
