package padmenu

import "errors"

var (
	ErrCancelled       = errors.New("menu cancelled by user")
	ErrAborted         = errors.New("activation aborted")
	ErrNoVisibleItems  = errors.New("menu has no visible items")
	ErrReadOnlyItems   = errors.New("menu items are read-only")
	ErrIndexOutOfRange = errors.New("item index out of range")
)

// ActivationResult describes what happened when an item was activated.
type ActivationResult int

const (
	ActivationApplied ActivationResult = iota
	ActivationDisabled
	ActivationAborted
)

func (r ActivationResult) String() string {
	switch r {
	case ActivationApplied:
		return "applied"
	case ActivationDisabled:
		return "disabled"
	case ActivationAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
