package internal

import "go.uber.org/atomic"

// AbortLatch records an abort request raised from an input reader while the
// control loop is busy running a hook.
type AbortLatch struct {
	requested atomic.Bool
}

func (l *AbortLatch) Request() {
	l.requested.Store(true)
}

func (l *AbortLatch) AbortRequested() bool {
	return l.requested.Load()
}

func (l *AbortLatch) ClearAbort() {
	l.requested.Store(false)
}
