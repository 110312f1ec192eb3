package term

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/pawndev/padmenu/pkg/padmenu/internal"
	"go.uber.org/atomic"
	"golang.org/x/term"
)

// ErrInterrupted is returned by Poll after Ctrl-C is typed.
var ErrInterrupted = errors.New("interrupted")

const (
	keyEsc       = 0x1b
	keyCtrlC     = 0x03
	keyBackspace = 0x7f
	keyCtrlH     = 0x08
)

// Input reads keys from a terminal. Cancel keys typed while armed raise the
// abort latch instead of being queued.
type Input struct {
	in       io.Reader
	fd       int
	oldState *term.State
	keys     chan constants.KeyMask
	errs     chan error
	armed    atomic.Int32
	closed   atomic.Bool
	latch    internal.AbortLatch
}

// NewInput puts f in raw mode when it is a terminal and starts reading from it.
func NewInput(f *os.File) (*Input, error) {
	i := newInput(f)
	i.fd = int(f.Fd())
	if term.IsTerminal(i.fd) {
		state, err := term.MakeRaw(i.fd)
		if err != nil {
			return nil, err
		}
		i.oldState = state
	}
	go i.run()
	return i, nil
}

// NewInputFromReader reads keys from r without touching terminal modes.
func NewInputFromReader(r io.Reader) *Input {
	i := newInput(r)
	go i.run()
	return i
}

func newInput(r io.Reader) *Input {
	return &Input{
		in:   r,
		fd:   -1,
		keys: make(chan constants.KeyMask, 16),
		errs: make(chan error, 1),
	}
}

// Raw reports whether the terminal was switched to raw mode.
func (i *Input) Raw() bool {
	return i.oldState != nil
}

func (i *Input) run() {
	buf := make([]byte, 64)
	for {
		n, err := i.in.Read(buf)
		if n > 0 {
			if !i.handle(DecodeKeys(buf[:n])) {
				i.errs <- ErrInterrupted
				return
			}
		}
		if err != nil {
			if !i.closed.Load() {
				i.errs <- err
			}
			return
		}
	}
}

// handle queues decoded keys and returns false when an interrupt was read.
func (i *Input) handle(keys []constants.KeyMask) bool {
	for _, mask := range keys {
		if mask == keyInterrupt {
			return false
		}
		if mask.Has(constants.KeyCancel) && i.armed.Load() > 0 {
			i.latch.Request()
			continue
		}
		select {
		case i.keys <- mask:
		default:
		}
	}
	return true
}

// keyInterrupt is never a real key combination.
const keyInterrupt = constants.KeyMask(^uint32(0))

// DecodeKeys maps a chunk of terminal input to keys. Arrow keys, vi keys and
// WASD move; Enter and space confirm; Esc, q and backspace cancel.
func DecodeKeys(chunk []byte) []constants.KeyMask {
	var keys []constants.KeyMask
	for idx := 0; idx < len(chunk); idx++ {
		c := chunk[idx]
		switch {
		case c == keyEsc && idx+2 < len(chunk) && (chunk[idx+1] == '[' || chunk[idx+1] == 'O'):
			switch chunk[idx+2] {
			case 'A':
				keys = append(keys, constants.KeyUp)
			case 'B':
				keys = append(keys, constants.KeyDown)
			case 'C':
				keys = append(keys, constants.KeyRight)
			case 'D':
				keys = append(keys, constants.KeyLeft)
			}
			idx += 2
		case c == keyEsc, c == 'q', c == keyBackspace, c == keyCtrlH:
			keys = append(keys, constants.KeyCancel)
		case c == '\r', c == '\n', c == ' ':
			keys = append(keys, constants.KeyOK)
		case c == 'k', c == 'w':
			keys = append(keys, constants.KeyUp)
		case c == 'j', c == 's':
			keys = append(keys, constants.KeyDown)
		case c == keyCtrlC:
			keys = append(keys, keyInterrupt)
		}
	}
	return keys
}

// Poll returns queued keys before a read error, so input ending in EOF is
// still delivered in full.
func (i *Input) Poll(ctx context.Context) (constants.KeyMask, error) {
	select {
	case <-ctx.Done():
		return constants.KeyNone, ctx.Err()
	case mask := <-i.keys:
		return mask, nil
	case err := <-i.errs:
		select {
		case mask := <-i.keys:
			i.errs <- err
			return mask, nil
		default:
			return constants.KeyNone, err
		}
	}
}

func (i *Input) Peek() constants.KeyMask {
	select {
	case mask := <-i.keys:
		return mask
	default:
		return constants.KeyNone
	}
}

func (i *Input) AbortRequested() bool {
	return i.latch.AbortRequested()
}

func (i *Input) ClearAbort() {
	i.latch.ClearAbort()
}

func (i *Input) ArmAbort() {
	i.armed.Inc()
}

func (i *Input) DisarmAbort() {
	i.armed.Dec()
}

// Close restores the terminal mode.
func (i *Input) Close() error {
	i.closed.Store(true)
	if i.oldState != nil {
		return term.Restore(i.fd, i.oldState)
	}
	return nil
}

// Size returns the terminal size, or the fallback when f is not a terminal.
func Size(f *os.File, fallbackWidth, fallbackHeight int) (int, int) {
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
