package padmenu

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"go.uber.org/atomic"
)

const (
	busyFrameInterval = 16 * time.Millisecond
	busyBarCells      = 20
)

// BusyOptions configures the screen shown by Engine.Busy.
type BusyOptions struct {
	Progress *atomic.Float64 // Optional, 0 to 1
	Linger   time.Duration   // Time the screen stays up after the work is done
}

type busyResult struct {
	err error
}

// Busy wraps fn in a hook that shows message while fn runs on another
// goroutine. Abort requests are polled from the calling goroutine, which is the
// one allowed to read input, and cancel the context passed to fn. fn must not
// touch the surface.
func (e *Engine) Busy(message string, options BusyOptions, fn Hook) Hook {
	return func(ctx context.Context, userdata any) error {
		// fn only sees cancellation, never the input backed abort source.
		workCtx, cancel := context.WithCancel(context.WithValue(ctx, abortKey{}, nil))
		defer cancel()

		done := make(chan busyResult, 1)
		go func() {
			done <- busyResult{err: fn(workCtx, userdata)}
		}()

		ticker := time.NewTicker(busyFrameInterval)
		defer ticker.Stop()

		aborted := false
		for {
			e.renderBusy(message, options.Progress)

			select {
			case res := <-done:
				e.linger(ctx, message, options)
				if aborted && (res.err == nil || errors.Is(res.err, context.Canceled)) {
					return ErrAborted
				}
				return res.err
			case <-ticker.C:
			}

			if !aborted && (ctx.Err() != nil || e.abort != nil && e.abort.AbortRequested()) {
				e.logger.Debug("Busy work aborted", "message", message)
				aborted = true
				cancel()
			}
		}
	}
}

func (e *Engine) linger(ctx context.Context, message string, options BusyOptions) {
	if options.Linger <= 0 {
		return
	}
	timer := time.NewTimer(options.Linger)
	defer timer.Stop()
	e.renderBusy(message, options.Progress)
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (e *Engine) renderBusy(message string, progress *atomic.Float64) {
	e.surface.Clear()

	rows := e.surface.Height() / max(e.surface.FontHeight(), 1)
	row := max(rows/2-1, 0)
	e.surface.DrawText(row, 0, constants.StyleCenter|constants.StyleFill, e.resolve(message))
	if progress != nil {
		e.surface.DrawText(row+1, 0, constants.StyleCenter|constants.StyleFill, progressText(progress.Load()))
	}

	if presenter, ok := e.surface.(Presenter); ok {
		presenter.Present()
	}
}

func progressText(fraction float64) string {
	fraction = min(max(fraction, 0), 1)
	filled := int(fraction * busyBarCells)
	return fmt.Sprintf("[%s%s] %.0f%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", busyBarCells-filled),
		fraction*100)
}
