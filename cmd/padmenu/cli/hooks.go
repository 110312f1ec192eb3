package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/pawndev/padmenu/pkg/padmenu"
	"github.com/pawndev/padmenu/pkg/padmenu/menufile"
	"go.uber.org/atomic"
)

const (
	waitHookDuration = 3 * time.Second
	waitHookTick     = 50 * time.Millisecond
)

// builtinHooks are the hook names menu files can use with the padmenu command.
// engine may be nil when the hooks are only checked, never run.
func builtinHooks(logger *slog.Logger, engine *padmenu.Engine) menufile.Hooks {
	wait := func(progress *atomic.Float64) padmenu.Hook {
		return func(ctx context.Context, userdata any) error {
			if progress != nil {
				progress.Store(0)
			}
			start := time.Now()
			for elapsed := time.Duration(0); elapsed < waitHookDuration; elapsed = time.Since(start) {
				if padmenu.AbortRequested(ctx) {
					logger.Info("Wait aborted", "value", userdata)
					return padmenu.ErrAborted
				}
				if progress != nil {
					progress.Store(float64(elapsed) / float64(waitHookDuration))
				}
				time.Sleep(waitHookTick)
			}
			if progress != nil {
				progress.Store(1)
			}
			return nil
		}
	}

	hooks := menufile.Hooks{
		"log": func(ctx context.Context, userdata any) error {
			logger.Info("Menu item activated", "value", userdata)
			return nil
		},
		"wait": wait(nil),
	}
	if engine != nil {
		progress := atomic.NewFloat64(0)
		hooks["wait"] = engine.Busy("Working...", padmenu.BusyOptions{
			Progress: progress,
			Linger:   250 * time.Millisecond,
		}, wait(progress))
	}
	return hooks
}
