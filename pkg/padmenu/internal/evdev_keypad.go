package internal

import (
	"context"
	"fmt"

	"github.com/holoplot/go-evdev"
	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"go.uber.org/atomic"
)

// Linux key event values.
const (
	keyRelease = 0
	keyPress   = 1
	keyRepeat  = 2
)

type eventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// EvdevKeypad reads a keypad straight from /dev/input. Presses of the cancel
// key that arrive while armed (a hook is running) raise the abort latch instead
// of being queued.
type EvdevKeypad struct {
	device eventReader
	keyMap map[uint16]constants.VirtualButton
	keys   chan constants.KeyMask
	errs   chan error
	armed  atomic.Int32
	closed atomic.Bool
	latch  AbortLatch
}

func OpenEvdevKeypad(path string, mapping *InputMapping) (*EvdevKeypad, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input device %s: %w", path, err)
	}

	if name, err := device.Name(); err == nil {
		GetInternalLogger().Debug("Opened evdev keypad", "path", path, "name", name)
	}

	return newEvdevKeypad(device, mapping), nil
}

func newEvdevKeypad(device eventReader, mapping *InputMapping) *EvdevKeypad {
	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	k := &EvdevKeypad{
		device: device,
		keyMap: mapping.EvdevKeyMap,
		keys:   make(chan constants.KeyMask, 16),
		errs:   make(chan error, 1),
	}
	go k.run()
	return k
}

func (k *EvdevKeypad) run() {
	for {
		event, err := k.device.ReadOne()
		if err != nil {
			if !k.closed.Load() {
				GetInternalLogger().Error("Reading input device failed", "error", err)
				k.errs <- err
			}
			return
		}
		k.handle(event)
	}
}

func (k *EvdevKeypad) handle(event *evdev.InputEvent) {
	if event.Type != evdev.EV_KEY || event.Value == keyRelease {
		return
	}

	button, ok := k.keyMap[uint16(event.Code)]
	if !ok {
		return
	}
	mask := button.Mask()

	if mask.Has(constants.KeyCancel) && k.armed.Load() > 0 {
		k.latch.Request()
		return
	}

	// Auto repeat only moves the selection.
	if event.Value == keyRepeat && !mask.Has(constants.KeyUp|constants.KeyDown) {
		return
	}

	select {
	case k.keys <- mask:
	default:
		GetInternalLogger().Debug("Keypad queue full, dropping key", "button", button.GetName())
	}
}

func (k *EvdevKeypad) Poll(ctx context.Context) (constants.KeyMask, error) {
	select {
	case <-ctx.Done():
		return constants.KeyNone, ctx.Err()
	case mask := <-k.keys:
		return mask, nil
	case err := <-k.errs:
		return constants.KeyNone, err
	}
}

func (k *EvdevKeypad) Peek() constants.KeyMask {
	select {
	case mask := <-k.keys:
		return mask
	default:
		return constants.KeyNone
	}
}

func (k *EvdevKeypad) AbortRequested() bool {
	return k.latch.AbortRequested()
}

func (k *EvdevKeypad) ClearAbort() {
	k.latch.ClearAbort()
}

// ArmAbort and DisarmAbort nest; the keypad is armed while the count is positive.
func (k *EvdevKeypad) ArmAbort() {
	k.armed.Inc()
}

func (k *EvdevKeypad) DisarmAbort() {
	k.armed.Dec()
}

func (k *EvdevKeypad) Close() error {
	k.closed.Store(true)
	return k.device.Close()
}
