package constants

// VirtualButton is a device independent button. Physical keys, controller buttons
// and evdev key codes are all mapped onto these.
type VirtualButton int

const (
	VirtualButtonUnassigned VirtualButton = iota
	VirtualButtonUp
	VirtualButtonDown
	VirtualButtonLeft
	VirtualButtonRight
	VirtualButtonA
	VirtualButtonB
	VirtualButtonX
	VirtualButtonY
	VirtualButtonL1
	VirtualButtonL2
	VirtualButtonR1
	VirtualButtonR2
	VirtualButtonStart
	VirtualButtonSelect
	VirtualButtonMenu
)

var buttonNames = map[VirtualButton]string{
	VirtualButtonUnassigned: "Unassigned",
	VirtualButtonUp:         "Up",
	VirtualButtonDown:       "Down",
	VirtualButtonLeft:       "Left",
	VirtualButtonRight:      "Right",
	VirtualButtonA:          "A",
	VirtualButtonB:          "B",
	VirtualButtonX:          "X",
	VirtualButtonY:          "Y",
	VirtualButtonL1:         "L1",
	VirtualButtonL2:         "L2",
	VirtualButtonR1:         "R1",
	VirtualButtonR2:         "R2",
	VirtualButtonStart:      "Start",
	VirtualButtonSelect:     "Select",
	VirtualButtonMenu:       "Menu",
}

func (vb VirtualButton) GetName() string {
	if name, ok := buttonNames[vb]; ok {
		return name
	}
	return "Unknown"
}

// KeyMask is the set of keys reported by a single poll of an input source.
type KeyMask uint32

const (
	KeyOK KeyMask = 1 << iota
	KeyCancel
	KeyUp
	KeyDown

	// Device specific bits, ignored by the menu engine.
	KeyLeft
	KeyRight
	KeyStart
	KeySelect
	KeyMenu
	KeyAux
)

const KeyNone KeyMask = 0

// Has reports whether any bit of k is set in m.
func (m KeyMask) Has(k KeyMask) bool {
	return m&k != 0
}

// Mask returns the key bit a virtual button produces. A is confirm and B is back,
// matching the handheld firmwares.
func (vb VirtualButton) Mask() KeyMask {
	switch vb {
	case VirtualButtonA:
		return KeyOK
	case VirtualButtonB:
		return KeyCancel
	case VirtualButtonUp:
		return KeyUp
	case VirtualButtonDown:
		return KeyDown
	case VirtualButtonLeft:
		return KeyLeft
	case VirtualButtonRight:
		return KeyRight
	case VirtualButtonStart:
		return KeyStart
	case VirtualButtonSelect:
		return KeySelect
	case VirtualButtonMenu:
		return KeyMenu
	case VirtualButtonUnassigned:
		return KeyNone
	default:
		return KeyAux
	}
}
