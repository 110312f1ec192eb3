package padmenu

import "fmt"

// ItemStore is the read view over the items of a menu. The number and order of
// items never change while a menu is running.
type ItemStore interface {
	// Count returns the number of items before the sentinel or the end of the table.
	Count() int
	// Item returns a snapshot of the item at index.
	Item(index int) MenuItem
	// Flags returns the flags of the item at index without staging the item.
	Flags(index int) ItemFlags
}

// MutableItemStore is implemented by stores whose flags may change.
type MutableItemStore interface {
	ItemStore
	SetFlags(index int, mask ItemFlags) ItemFlags
	ClearFlags(index int, mask ItemFlags) ItemFlags
}

func countItems(items []MenuItem) int {
	for i := range items {
		if items[i].IsSentinel() {
			return i
		}
	}
	return len(items)
}

// ROMItems is an item table that is never written, like a table kept in flash.
// Item returns a copy so callers can inspect and adjust flags on the staged value
// without touching the table.
type ROMItems []MenuItem

func (r ROMItems) Count() int {
	return countItems(r)
}

func (r ROMItems) Item(index int) MenuItem {
	staged := r[index]
	return staged
}

func (r ROMItems) Flags(index int) ItemFlags {
	return r[index].Flags
}

// RAMItems is a mutable item table. Activation toggles and exclusion groups are
// only persisted for RAM backed menus.
type RAMItems []MenuItem

func (r RAMItems) Count() int {
	return countItems(r)
}

func (r RAMItems) Item(index int) MenuItem {
	return r[index]
}

func (r RAMItems) Flags(index int) ItemFlags {
	return r[index].Flags
}

// SetFlags ors mask into the flags of the item and returns the previous flags.
func (r RAMItems) SetFlags(index int, mask ItemFlags) ItemFlags {
	old := r[index].Flags
	r[index].Flags |= mask
	return old
}

// ClearFlags removes mask from the flags of the item and returns the previous flags.
func (r RAMItems) ClearFlags(index int, mask ItemFlags) ItemFlags {
	old := r[index].Flags
	r[index].Flags &^= mask
	return old
}

// CountItems returns the number of items of m, hidden ones included.
func CountItems(m *Menu) int {
	if m == nil || m.Items == nil {
		return 0
	}
	return m.Items.Count()
}

func mutableItems(m *Menu, index int) (MutableItemStore, error) {
	if m == nil || m.Items == nil {
		return nil, fmt.Errorf("menu has no items: %w", ErrIndexOutOfRange)
	}
	store, ok := m.Items.(MutableItemStore)
	if !ok {
		return nil, fmt.Errorf("menu %q: %w", m.Title, ErrReadOnlyItems)
	}
	if index < 0 || index >= store.Count() {
		return nil, fmt.Errorf("menu %q index %d of %d: %w", m.Title, index, store.Count(), ErrIndexOutOfRange)
	}
	return store, nil
}

// SetItemFlags sets mask on the item at index and returns its previous flags.
func SetItemFlags(m *Menu, index int, mask ItemFlags) (ItemFlags, error) {
	store, err := mutableItems(m, index)
	if err != nil {
		return 0, err
	}
	return store.SetFlags(index, mask), nil
}

// ClearItemFlags clears mask on the item at index and returns its previous flags.
func ClearItemFlags(m *Menu, index int, mask ItemFlags) (ItemFlags, error) {
	store, err := mutableItems(m, index)
	if err != nil {
		return 0, err
	}
	return store.ClearFlags(index, mask), nil
}
