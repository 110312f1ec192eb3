package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
)

var globalInputProcessor *Processor
var gameControllers []*sdl.GameController
var rawJoysticks []*sdl.Joystick

func InitInputProcessor() {
	globalInputProcessor = NewInputProcessor(GetInputMapping())

	numJoysticks := sdl.NumJoysticks()
	GetInternalLogger().Debug("Detecting controllers", "joystick_count", numJoysticks)

	for i := 0; i < numJoysticks; i++ {
		if sdl.IsGameController(i) {
			controller := sdl.GameControllerOpen(i)
			if controller == nil {
				GetInternalLogger().Error("Failed to open game controller", "index", i)
				continue
			}
			GetInternalLogger().Debug("Opened game controller", "index", i, "name", controller.Name())
			gameControllers = append(gameControllers, controller)
			continue
		}

		joystick := sdl.JoystickOpen(i)
		if joystick == nil {
			GetInternalLogger().Debug("Failed to open raw joystick", "index", i)
			continue
		}
		GetInternalLogger().Debug("Opened raw joystick (not a standard game controller)", "index", i, "name", joystick.Name())
		rawJoysticks = append(rawJoysticks, joystick)
	}

	GetInternalLogger().Debug("Controller detection complete",
		"game_controllers", len(gameControllers),
		"raw_joysticks", len(rawJoysticks),
	)
}

func GetInputProcessor() *Processor {
	return globalInputProcessor
}

// Processor turns SDL events into virtual button events.
type Processor struct {
	mapping    *InputMapping
	hatStates  map[uint8]uint8 // current position of each hat
	eventQueue []*Event        // events produced ahead of time, returned first
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	return &Processor{
		mapping:   mapping,
		hatStates: make(map[uint8]uint8),
	}
}

func (ip *Processor) Mapping() *InputMapping {
	return ip.mapping
}

func (ip *Processor) ProcessSDLEvent(event sdl.Event) *Event {
	logger := GetInternalLogger()

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		keyCode := e.Keysym.Sym
		if button, exists := ip.mapping.KeyboardMap[keyCode]; exists {
			if e.Type == sdl.KEYDOWN {
				logger.Debug("Keyboard input mapped",
					"keyCode", fmt.Sprintf("%s (%d)", sdl.GetKeyName(keyCode), keyCode),
					"virtualButton", button.GetName())
			}
			return &Event{Button: button, Pressed: e.Type == sdl.KEYDOWN && e.Repeat == 0, Source: SourceKeyboard, RawCode: int(keyCode)}
		}
		logger.Debug("Keyboard input not mapped", "key_code", fmt.Sprintf("%s (%d)", sdl.GetKeyName(keyCode), keyCode))
	case *sdl.ControllerButtonEvent:
		if button, exists := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; exists {
			return &Event{Button: button, Pressed: e.Type == sdl.CONTROLLERBUTTONDOWN, Source: SourceController, RawCode: int(e.Button)}
		}
		logger.Debug("Controller button not mapped",
			"button_code", fmt.Sprintf("%s (%d)", sdl.GameControllerGetStringForButton(sdl.GameControllerButton(e.Button)), e.Button))
	case *sdl.JoyButtonEvent:
		if button, exists := ip.mapping.JoystickButtonMap[e.Button]; exists {
			return &Event{Button: button, Pressed: e.Type == sdl.JOYBUTTONDOWN, Source: SourceJoystick, RawCode: int(e.Button)}
		}
		logger.Debug("Joy button not mapped", "button_code", e.Button)
	case *sdl.JoyHatEvent:
		return ip.processHat(e)
	}
	return nil
}

func (ip *Processor) processHat(e *sdl.JoyHatEvent) *Event {
	previousValue := ip.hatStates[e.Hat]
	ip.hatStates[e.Hat] = e.Value

	// Moving straight from one direction to another releases the old one and
	// queues the press of the new one.
	if previousValue != sdl.HAT_CENTERED && previousValue != e.Value {
		if button, exists := ip.mapping.JoystickHatMap[previousValue]; exists {
			if newButton, ok := ip.mapping.JoystickHatMap[e.Value]; ok && e.Value != sdl.HAT_CENTERED {
				ip.eventQueue = append(ip.eventQueue, &Event{Button: newButton, Pressed: true, Source: SourceHatSwitch, RawCode: int(e.Value)})
			}
			return &Event{Button: button, Pressed: false, Source: SourceHatSwitch, RawCode: int(previousValue)}
		}
	}

	if e.Value != sdl.HAT_CENTERED {
		if button, exists := ip.mapping.JoystickHatMap[e.Value]; exists {
			return &Event{Button: button, Pressed: true, Source: SourceHatSwitch, RawCode: int(e.Value)}
		}
	}
	return nil
}

// Dequeue returns an event queued by an earlier ProcessSDLEvent call, or nil.
func (ip *Processor) Dequeue() *Event {
	if len(ip.eventQueue) == 0 {
		return nil
	}
	evt := ip.eventQueue[0]
	ip.eventQueue = ip.eventQueue[1:]
	return evt
}

// Enqueue puts evt behind the events already waiting for Dequeue.
func (ip *Processor) Enqueue(evt *Event) {
	ip.eventQueue = append(ip.eventQueue, evt)
}

func CloseAllControllers() {
	for _, controller := range gameControllers {
		if controller != nil {
			controller.Close()
		}
	}
	for _, joystick := range rawJoysticks {
		if joystick != nil {
			joystick.Close()
		}
	}
	gameControllers = nil
	rawJoysticks = nil
}
