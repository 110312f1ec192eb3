package padmenu

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func TestProgressText(t *testing.T) {
	assert.Equal(t, "[--------------------] 0%", progressText(0))
	assert.Equal(t, "[##########----------] 50%", progressText(0.5))
	assert.Equal(t, "[####################] 100%", progressText(3))
}

func TestBusyRunsWorkAndShowsProgress(t *testing.T) {
	rig := newTestRig(6)
	progress := atomic.NewFloat64(0)

	hook := rig.engine.Busy("Copying", BusyOptions{Progress: progress}, func(ctx context.Context, userdata any) error {
		assert.Equal(t, "rom.zip", userdata)
		progress.Store(1)
		return nil
	})

	require.NoError(t, hook(context.Background(), "rom.zip"))

	frame := rig.surface.lastFrame()
	require.Len(t, frame, 2)
	assert.Equal(t, "Copying", frame[0].Text)
	assert.Equal(t, constants.StyleCenter|constants.StyleFill, frame[0].Style)
	assert.Equal(t, 2, frame[0].Row)
	assert.Contains(t, rig.surface.lastTexts()[1], "%")
}

func TestBusyReturnsWorkError(t *testing.T) {
	rig := newTestRig(6)
	boom := errors.New("disk full")

	hook := rig.engine.Busy("Copying", BusyOptions{}, func(context.Context, any) error {
		return boom
	})

	assert.ErrorIs(t, hook(context.Background(), nil), boom)
}

func TestBusyCancelsWorkOnAbort(t *testing.T) {
	rig := newTestRig(6)
	rig.abort.requested = true
	sawAbort := make(chan bool, 1)

	hook := rig.engine.Busy("Copying", BusyOptions{}, func(ctx context.Context, _ any) error {
		select {
		case <-ctx.Done():
		case <-time.After(5 * time.Second):
		}
		sawAbort <- AbortRequested(ctx)
		return nil
	})

	err := hook(context.Background(), nil)

	assert.ErrorIs(t, err, ErrAborted)
	assert.True(t, <-sawAbort)
}

type atomicAbort struct {
	requested atomic.Bool
}

func (a *atomicAbort) AbortRequested() bool { return a.requested.Load() }
func (a *atomicAbort) ClearAbort()          { a.requested.Store(false) }

func TestBusyHookAbortKeepsMenuOpen(t *testing.T) {
	abort := &atomicAbort{}
	engine := NewEngine(EngineOptions{
		Surface: newFakeSurface(6),
		Input:   &fakeInput{keys: []constants.KeyMask{keyOK, keyCancel}},
		Abort:   abort,
		Logger:  slog.New(slog.DiscardHandler),
	})
	items := RAMItems{{Label: "copy", Userdata: "copy"}}
	items[0].Hook = engine.Busy("Copying", BusyOptions{}, func(ctx context.Context, _ any) error {
		abort.requested.Store(true)
		<-ctx.Done()
		return ctx.Err()
	})

	_, err := engine.Run(context.Background(), &Menu{Items: items})

	require.ErrorIs(t, err, ErrCancelled)
	assert.False(t, abort.requested.Load())
}
