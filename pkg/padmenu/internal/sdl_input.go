package internal

import (
	"context"
	"errors"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

var ErrQuit = errors.New("window closed")

// waitTimeout bounds each SDL wait so a cancelled context is noticed.
const waitTimeout = 50

// SDLInput reads key presses from the SDL event queue. While armed, a cancel
// press raises the abort latch; every other press is kept for the next Poll.
type SDLInput struct {
	processor *Processor
	latch     AbortLatch
	armed     atomic.Int32
	quit      bool
}

func NewSDLInput(processor *Processor) *SDLInput {
	if processor == nil {
		processor = NewInputProcessor(GetInputMapping())
	}
	return &SDLInput{processor: processor}
}

func (in *SDLInput) translate(event sdl.Event) (constants.KeyMask, error) {
	switch event.(type) {
	case *sdl.QuitEvent:
		return constants.KeyNone, ErrQuit
	case *sdl.KeyboardEvent, *sdl.ControllerButtonEvent, *sdl.JoyButtonEvent, *sdl.JoyHatEvent:
		if evt := in.processor.ProcessSDLEvent(event); evt != nil && evt.Pressed {
			return evt.Button.Mask(), nil
		}
	}
	return constants.KeyNone, nil
}

func (in *SDLInput) queued() constants.KeyMask {
	for evt := in.processor.Dequeue(); evt != nil; evt = in.processor.Dequeue() {
		if evt.Pressed {
			return evt.Button.Mask()
		}
	}
	return constants.KeyNone
}

// Poll blocks until a mapped button is pressed.
func (in *SDLInput) Poll(ctx context.Context) (constants.KeyMask, error) {
	for {
		if err := ctx.Err(); err != nil {
			return constants.KeyNone, err
		}
		if in.quit {
			return constants.KeyNone, ErrQuit
		}
		if mask := in.queued(); mask != constants.KeyNone {
			return mask, nil
		}

		event := sdl.WaitEventTimeout(waitTimeout)
		if event == nil {
			continue
		}
		mask, err := in.translate(event)
		if err != nil {
			return constants.KeyNone, err
		}
		if mask != constants.KeyNone {
			return mask, nil
		}
	}
}

// Peek drains pending events and returns the first press, if any.
func (in *SDLInput) Peek() constants.KeyMask {
	if mask := in.queued(); mask != constants.KeyNone {
		return mask
	}
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		mask, err := in.translate(event)
		if err != nil {
			return constants.KeyCancel
		}
		if mask != constants.KeyNone {
			return mask
		}
	}
	return constants.KeyNone
}

// AbortRequested pumps the event queue looking for a cancel press. Hooks run on
// the main thread, so this is the only chance to see input while they work.
func (in *SDLInput) AbortRequested() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			in.quit = true
			if in.armed.Load() > 0 {
				in.latch.Request()
			}
			continue
		}
		in.hold(in.processor.ProcessSDLEvent(event))
	}
	return in.latch.AbortRequested()
}

// hold latches an armed cancel press and queues anything else for Poll.
func (in *SDLInput) hold(evt *Event) {
	if evt == nil || !evt.Pressed {
		return
	}
	if evt.Button.Mask().Has(constants.KeyCancel) && in.armed.Load() > 0 {
		in.latch.Request()
		return
	}
	in.processor.Enqueue(evt)
}

func (in *SDLInput) ClearAbort() {
	in.latch.ClearAbort()
}

// ArmAbort and DisarmAbort nest like the evdev keypad's.
func (in *SDLInput) ArmAbort() {
	in.armed.Inc()
}

func (in *SDLInput) DisarmAbort() {
	in.armed.Dec()
}
