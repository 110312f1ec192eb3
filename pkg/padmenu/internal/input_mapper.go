package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

var inputMappingBytes []byte

func SetInputMappingBytes(data []byte) {
	inputMappingBytes = data
}

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceJoystick
	SourceHatSwitch
	SourceEvdev
)

type Event struct {
	Button  constants.VirtualButton
	Pressed bool
	Source  Source
	RawCode int
}

type InputMapping struct {
	KeyboardMap map[sdl.Keycode]constants.VirtualButton

	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton

	JoystickButtonMap map[uint8]constants.VirtualButton

	JoystickHatMap map[uint8]constants.VirtualButton

	// EvdevKeyMap maps linux input key codes, used when reading /dev/input directly.
	EvdevKeyMap map[uint16]constants.VirtualButton
}

// Mapping is the JSON form of an InputMapping. Keys are raw codes, values are
// VirtualButton values.
type Mapping struct {
	KeyboardMap         map[int]int `json:"keyboard_map"`
	ControllerButtonMap map[int]int `json:"controller_button_map"`
	JoystickButtonMap   map[int]int `json:"joystick_button_map"`
	JoystickHatMap      map[int]int `json:"joystick_hat_map"`
	EvdevKeyMap         map[int]int `json:"evdev_key_map"`
}

// Linux input key codes from linux/input-event-codes.h.
const (
	evKeyEsc       = 1
	evKeyEnter     = 28
	evKeyUp        = 103
	evKeyLeft      = 105
	evKeyRight     = 106
	evKeyDown      = 108
	evKeyBackspace = 14
	evBtnSouth     = 304
	evBtnEast      = 305
	evBtnNorth     = 307
	evBtnWest      = 308
	evBtnSelect    = 314
	evBtnStart     = 315
	evBtnMode      = 316
	evBtnDpadUp    = 544
	evBtnDpadDown  = 545
	evBtnDpadLeft  = 546
	evBtnDpadRight = 547
)

func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_a:         constants.VirtualButtonA,
			sdl.K_RETURN:    constants.VirtualButtonA,
			sdl.K_b:         constants.VirtualButtonB,
			sdl.K_ESCAPE:    constants.VirtualButtonB,
			sdl.K_BACKSPACE: constants.VirtualButtonB,
			sdl.K_x:         constants.VirtualButtonX,
			sdl.K_y:         constants.VirtualButtonY,
			sdl.K_SPACE:     constants.VirtualButtonSelect,
			sdl.K_h:         constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:    constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:  constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:  constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT: constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:          constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:          constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_X:          constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_Y:          constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_START:      constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:       constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:      constants.VirtualButtonMenu,
		},
		JoystickButtonMap: map[uint8]constants.VirtualButton{},
		JoystickHatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
		EvdevKeyMap: map[uint16]constants.VirtualButton{
			evKeyUp:        constants.VirtualButtonUp,
			evKeyDown:      constants.VirtualButtonDown,
			evKeyLeft:      constants.VirtualButtonLeft,
			evKeyRight:     constants.VirtualButtonRight,
			evKeyEnter:     constants.VirtualButtonA,
			evKeyEsc:       constants.VirtualButtonB,
			evKeyBackspace: constants.VirtualButtonB,
			evBtnEast:      constants.VirtualButtonA,
			evBtnSouth:     constants.VirtualButtonB,
			evBtnNorth:     constants.VirtualButtonX,
			evBtnWest:      constants.VirtualButtonY,
			evBtnSelect:    constants.VirtualButtonSelect,
			evBtnStart:     constants.VirtualButtonStart,
			evBtnMode:      constants.VirtualButtonMenu,
			evBtnDpadUp:    constants.VirtualButtonUp,
			evBtnDpadDown:  constants.VirtualButtonDown,
			evBtnDpadLeft:  constants.VirtualButtonLeft,
			evBtnDpadRight: constants.VirtualButtonRight,
		},
	}
}

// GetInputMapping returns the input mapping from embedded bytes if set,
// from the environment variable if set, otherwise returns the default mapping
func GetInputMapping() *InputMapping {
	logger := GetInternalLogger()

	if len(inputMappingBytes) > 0 {
		mapping, err := LoadInputMappingFromBytes(inputMappingBytes)
		if err == nil {
			logger.Info("Loaded custom input mapping from embedded bytes")
			return mapping
		}
		logger.Warn("Failed to load custom input mapping from bytes, trying file path", "error", err)
	}

	mappingPath := os.Getenv(MappingPathEnvVar)
	if mappingPath != "" {
		mapping, err := LoadInputMappingFromJSON(mappingPath)
		if err == nil {
			logger.Info("Loaded custom input mapping from environment variable", "path", mappingPath)
			return mapping
		}
		logger.Warn("Failed to load custom input mapping, using default", "path", mappingPath, "error", err)
	}
	return DefaultInputMapping()
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var serializableMapping Mapping
	if err := json.Unmarshal(data, &serializableMapping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		KeyboardMap:         make(map[sdl.Keycode]constants.VirtualButton),
		ControllerButtonMap: make(map[sdl.GameControllerButton]constants.VirtualButton),
		JoystickButtonMap:   make(map[uint8]constants.VirtualButton),
		JoystickHatMap:      make(map[uint8]constants.VirtualButton),
		EvdevKeyMap:         make(map[uint16]constants.VirtualButton),
	}

	for keyCode, button := range serializableMapping.KeyboardMap {
		mapping.KeyboardMap[sdl.Keycode(keyCode)] = constants.VirtualButton(button)
	}
	for button, vb := range serializableMapping.ControllerButtonMap {
		mapping.ControllerButtonMap[sdl.GameControllerButton(button)] = constants.VirtualButton(vb)
	}
	for button, vb := range serializableMapping.JoystickButtonMap {
		mapping.JoystickButtonMap[uint8(button)] = constants.VirtualButton(vb)
	}
	for hat, button := range serializableMapping.JoystickHatMap {
		mapping.JoystickHatMap[uint8(hat)] = constants.VirtualButton(button)
	}
	for code, button := range serializableMapping.EvdevKeyMap {
		mapping.EvdevKeyMap[uint16(code)] = constants.VirtualButton(button)
	}

	return mapping, nil
}

// ToJSON converts the InputMapping to the JSON form read by LoadInputMappingFromBytes.
func (im *InputMapping) ToJSON() ([]byte, error) {
	serializableMapping := &Mapping{
		KeyboardMap:         make(map[int]int),
		ControllerButtonMap: make(map[int]int),
		JoystickButtonMap:   make(map[int]int),
		JoystickHatMap:      make(map[int]int),
		EvdevKeyMap:         make(map[int]int),
	}

	for keyCode, button := range im.KeyboardMap {
		serializableMapping.KeyboardMap[int(keyCode)] = int(button)
	}
	for button, vb := range im.ControllerButtonMap {
		serializableMapping.ControllerButtonMap[int(button)] = int(vb)
	}
	for button, vb := range im.JoystickButtonMap {
		serializableMapping.JoystickButtonMap[int(button)] = int(vb)
	}
	for hat, button := range im.JoystickHatMap {
		serializableMapping.JoystickHatMap[int(hat)] = int(button)
	}
	for code, button := range im.EvdevKeyMap {
		serializableMapping.EvdevKeyMap[int(code)] = int(button)
	}

	return json.MarshalIndent(serializableMapping, "", "  ")
}

func (im *InputMapping) SaveToJSON(filePath string) error {
	data, err := im.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal mapping to JSON: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	return nil
}
