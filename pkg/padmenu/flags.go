package padmenu

// ItemFlags holds the capability bits of a menu item. The low 16 bits are the
// exclusion mask: bit n names the sibling at index n whose Checked bit is cleared
// when the item is activated.
type ItemFlags uint32

const (
	ExcludeMask ItemFlags = 0x0000FFFF

	FlagChecked ItemFlags = 1 << (16 + iota)
	FlagCheckable
	FlagToggle
	FlagHidden
	FlagDisabled
	// FlagRAMLabel marks a label that is literal text rather than a message ID.
	FlagRAMLabel
)

// MaxExclusionSiblings is the number of sibling positions an exclusion mask can address.
const MaxExclusionSiblings = 16

// Exclude builds an exclusion mask from sibling indices. Indices outside the mask
// range are ignored.
func Exclude(indices ...int) ItemFlags {
	var mask ItemFlags
	for _, i := range indices {
		if i < 0 || i >= MaxExclusionSiblings {
			continue
		}
		mask |= 1 << uint(i)
	}
	return mask
}

func (f ItemFlags) Has(flag ItemFlags) bool {
	return f&flag != 0
}

func (f ItemFlags) Hidden() bool    { return f&FlagHidden != 0 }
func (f ItemFlags) Disabled() bool  { return f&FlagDisabled != 0 }
func (f ItemFlags) Toggle() bool    { return f&FlagToggle != 0 }
func (f ItemFlags) Checkable() bool { return f&FlagCheckable != 0 }
func (f ItemFlags) Checked() bool   { return f&FlagChecked != 0 }

// Excluded returns the sibling indices named by the exclusion mask, lowest first.
func (f ItemFlags) Excluded() []int {
	var out []int
	for mask, i := f&ExcludeMask, 0; mask != 0; mask, i = mask>>1, i+1 {
		if mask&1 != 0 {
			out = append(out, i)
		}
	}
	return out
}

// MenuFlags configures how the control loop treats a menu.
type MenuFlags uint8

const (
	// MenuTopLevel makes CANCEL a no-op.
	MenuTopLevel MenuFlags = 1 << iota
	// MenuSticky keeps the loop running after an activation.
	MenuSticky
	// MenuSaveSelection stores the highlighted index back into the menu on exit.
	MenuSaveSelection
)

func (f MenuFlags) Has(flag MenuFlags) bool {
	return f&flag != 0
}
