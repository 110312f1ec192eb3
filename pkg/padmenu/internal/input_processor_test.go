package internal

import (
	"context"
	"testing"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(sym sdl.Keycode, down bool, repeat uint8) *sdl.KeyboardEvent {
	typ := uint32(sdl.KEYUP)
	if down {
		typ = uint32(sdl.KEYDOWN)
	}
	return &sdl.KeyboardEvent{Type: typ, Repeat: repeat, Keysym: sdl.Keysym{Sym: sym}}
}

func TestProcessKeyboardEvent(t *testing.T) {
	p := NewInputProcessor(nil)

	evt := p.ProcessSDLEvent(keyEvent(sdl.K_RETURN, true, 0))
	require.NotNil(t, evt)
	assert.Equal(t, constants.VirtualButtonA, evt.Button)
	assert.True(t, evt.Pressed)
	assert.Equal(t, SourceKeyboard, evt.Source)

	evt = p.ProcessSDLEvent(keyEvent(sdl.K_RETURN, true, 1))
	require.NotNil(t, evt)
	assert.False(t, evt.Pressed, "auto repeat is not a press")

	evt = p.ProcessSDLEvent(keyEvent(sdl.K_RETURN, false, 0))
	require.NotNil(t, evt)
	assert.False(t, evt.Pressed)
}

func TestProcessHatQueuesDirectChange(t *testing.T) {
	p := NewInputProcessor(nil)

	evt := p.ProcessSDLEvent(&sdl.JoyHatEvent{Type: uint32(sdl.JOYHATMOTION), Value: sdl.HAT_UP})
	require.NotNil(t, evt)
	assert.Equal(t, constants.VirtualButtonUp, evt.Button)
	assert.True(t, evt.Pressed)

	evt = p.ProcessSDLEvent(&sdl.JoyHatEvent{Type: uint32(sdl.JOYHATMOTION), Value: sdl.HAT_DOWN})
	require.NotNil(t, evt)
	assert.Equal(t, constants.VirtualButtonUp, evt.Button)
	assert.False(t, evt.Pressed)

	queued := p.Dequeue()
	require.NotNil(t, queued)
	assert.Equal(t, constants.VirtualButtonDown, queued.Button)
	assert.True(t, queued.Pressed)
	assert.Nil(t, p.Dequeue())

	evt = p.ProcessSDLEvent(&sdl.JoyHatEvent{Type: uint32(sdl.JOYHATMOTION), Value: sdl.HAT_CENTERED})
	require.NotNil(t, evt)
	assert.Equal(t, constants.VirtualButtonDown, evt.Button)
	assert.False(t, evt.Pressed)
}

func TestSDLInputTranslate(t *testing.T) {
	in := NewSDLInput(NewInputProcessor(nil))

	mask, err := in.translate(keyEvent(sdl.K_DOWN, true, 0))
	require.NoError(t, err)
	assert.Equal(t, constants.KeyDown, mask)

	mask, err = in.translate(keyEvent(sdl.K_DOWN, false, 0))
	require.NoError(t, err)
	assert.Equal(t, constants.KeyNone, mask)

	_, err = in.translate(&sdl.QuitEvent{Type: uint32(sdl.QUIT)})
	assert.ErrorIs(t, err, ErrQuit)
}

func TestSDLInputQueuedHatPress(t *testing.T) {
	in := NewSDLInput(NewInputProcessor(nil))

	in.translate(&sdl.JoyHatEvent{Type: uint32(sdl.JOYHATMOTION), Value: sdl.HAT_UP})
	mask, err := in.translate(&sdl.JoyHatEvent{Type: uint32(sdl.JOYHATMOTION), Value: sdl.HAT_DOWN})
	require.NoError(t, err)
	assert.Equal(t, constants.KeyNone, mask)

	mask, err = in.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, constants.KeyDown, mask)
}

func TestSDLInputHoldKeepsPressesForPoll(t *testing.T) {
	in := NewSDLInput(NewInputProcessor(nil))
	in.ArmAbort()

	in.hold(&Event{Button: constants.VirtualButtonDown, Pressed: true})
	in.hold(&Event{Button: constants.VirtualButtonB, Pressed: true})
	in.hold(&Event{Button: constants.VirtualButtonA, Pressed: false})

	assert.True(t, in.latch.AbortRequested())
	assert.Equal(t, constants.KeyDown, in.queued())
	assert.Equal(t, constants.KeyNone, in.queued())
}

func TestSDLInputHoldQueuesCancelWhileDisarmed(t *testing.T) {
	in := NewSDLInput(NewInputProcessor(nil))
	in.ArmAbort()
	in.DisarmAbort()

	in.hold(&Event{Button: constants.VirtualButtonB, Pressed: true})

	assert.False(t, in.latch.AbortRequested())
	assert.Equal(t, constants.KeyCancel, in.queued())
}
