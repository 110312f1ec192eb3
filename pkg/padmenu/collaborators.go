package padmenu

import (
	"context"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
)

// Surface is the text display a menu is drawn on. Rows are counted in lines of
// the surface font.
type Surface interface {
	Clear()
	DrawText(row, col int, style constants.TextStyle, text string)
	Height() int
	FontHeight() int
}

// TextOffsetter is implemented by surfaces that can shift item rows by a pixel
// offset, used for smooth scrolling.
type TextOffsetter interface {
	SetTextOffset(dx, dy int)
}

// Presenter is implemented by surfaces that buffer a frame until it is presented.
type Presenter interface {
	Present()
}

// Input is the keypad a menu reads from. Poll blocks until a key is pressed or
// ctx is done.
type Input interface {
	Poll(ctx context.Context) (constants.KeyMask, error)
}

// Peeker is implemented by inputs that support a non blocking read. Peek
// returns constants.KeyNone when nothing is pending.
type Peeker interface {
	Peek() constants.KeyMask
}

// LabelResolver turns a label reference into display text.
type LabelResolver interface {
	Resolve(label string) string
}

// LabelResolverFunc adapts a function to LabelResolver.
type LabelResolverFunc func(label string) string

func (f LabelResolverFunc) Resolve(label string) string {
	return f(label)
}

// AbortSource reports an abort requested while a hook runs, such as the cancel
// key being held.
type AbortSource interface {
	AbortRequested() bool
	ClearAbort()
}

// AbortArmer is implemented by abort sources that only watch for aborts while a
// hook runs. The engine arms the source around every hook call and disarms it
// for the duration of a nested Run, so calls nest like a counter.
type AbortArmer interface {
	ArmAbort()
	DisarmAbort()
}
