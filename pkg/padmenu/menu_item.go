package padmenu

import "context"

// Hook is invoked when an item is activated. ctx carries the abort state of the
// enclosing loop, see AbortRequested.
type Hook func(ctx context.Context, userdata any) error

// MenuItem represents a single entry of a Menu.
type MenuItem struct {
	Label    string    // Message ID, or literal text when FlagRAMLabel is set
	Hook     Hook      // Called on activation, may run a nested menu
	Userdata any       // Returned by Run when the item is activated in a non sticky menu
	Flags    ItemFlags // Capability bits and exclusion mask
}

// IsSentinel reports whether the item terminates an item table.
func (mi MenuItem) IsSentinel() bool {
	return mi.Label == "" && mi.Hook == nil
}

// Menu is a titled list of items driven by Run.
type Menu struct {
	Title    string    // Optional heading, resolved like item labels
	Items    ItemStore // ROMItems or RAMItems
	Flags    MenuFlags
	Selected int // Initial selection, updated on exit with MenuSaveSelection
}
