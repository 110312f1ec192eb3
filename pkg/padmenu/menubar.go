package padmenu

// MenuBarSlots is the number of button labels on the menu bar.
const MenuBarSlots = 4

// Menu bar slots, left to right.
const (
	SlotBack = iota
	SlotUp
	SlotDown
	SlotContext
)

// Label message IDs used by the menu bar. LabelEmpty blanks a slot.
const (
	LabelEmpty     = ""
	LabelOK        = "menu.ok"
	LabelSelect    = "menu.select"
	LabelBack      = "menu.back"
	LabelUpArrow   = "menu.up"
	LabelDownArrow = "menu.down"
)

var defaultLabelText = map[string]string{
	LabelOK:        "OK",
	LabelSelect:    "SEL",
	LabelBack:      "BACK",
	LabelUpArrow:   "↑",
	LabelDownArrow: "↓",
}

// DefaultLabelText returns the built in text for a menu bar label ID.
func DefaultLabelText(label string) (string, bool) {
	text, ok := defaultLabelText[label]
	return text, ok
}

// MenuBar is the button label bar drawn under a menu.
type MenuBar interface {
	Init(labels [MenuBarSlots]string)
	SetLabel(slot int, text string)
	Draw()
}

// ContextLabel returns the label for the context button given the flags of the
// selected item.
func ContextLabel(flags ItemFlags) string {
	switch {
	case flags.Disabled():
		return LabelEmpty
	case flags.Toggle():
		return LabelSelect
	case flags.Checkable():
		if flags.Checked() {
			return LabelEmpty
		}
		return LabelSelect
	default:
		return LabelOK
	}
}

// InitialBarLabels returns the labels a menu bar starts with for a menu.
func InitialBarLabels(flags MenuFlags) [MenuBarSlots]string {
	labels := [MenuBarSlots]string{LabelBack, LabelUpArrow, LabelDownArrow, LabelEmpty}
	if flags.Has(MenuTopLevel) {
		labels[SlotBack] = LabelEmpty
	}
	return labels
}
