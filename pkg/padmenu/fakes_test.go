package padmenu

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
)

var errScriptDone = errors.New("input script exhausted")

type drawCall struct {
	Row   int
	Style constants.TextStyle
	Text  string
}

type fakeSurface struct {
	height     int
	fontHeight int
	frames     [][]drawCall
	offsets    []int
	presents   int
}

func newFakeSurface(rows int) *fakeSurface {
	return &fakeSurface{height: rows * 10, fontHeight: 10}
}

func (s *fakeSurface) Clear() {
	s.frames = append(s.frames, nil)
}

func (s *fakeSurface) DrawText(row, col int, style constants.TextStyle, text string) {
	last := len(s.frames) - 1
	s.frames[last] = append(s.frames[last], drawCall{Row: row, Style: style, Text: text})
}

func (s *fakeSurface) Height() int     { return s.height }
func (s *fakeSurface) FontHeight() int { return s.fontHeight }

func (s *fakeSurface) SetTextOffset(_, dy int) {
	s.offsets = append(s.offsets, dy)
}

func (s *fakeSurface) Present() {
	s.presents++
}

func (s *fakeSurface) lastFrame() []drawCall {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *fakeSurface) lastTexts() []string {
	var texts []string
	for _, call := range s.lastFrame() {
		texts = append(texts, call.Text)
	}
	return texts
}

// fakeInput replays a key script. Poll fails once the script is used up.
type fakeInput struct {
	keys   []constants.KeyMask
	polls  int
	peeks  int
	onPoll func(n int)
}

func (in *fakeInput) Poll(ctx context.Context) (constants.KeyMask, error) {
	if err := ctx.Err(); err != nil {
		return constants.KeyNone, err
	}
	in.polls++
	if in.onPoll != nil {
		in.onPoll(in.polls)
	}
	if len(in.keys) == 0 {
		return constants.KeyNone, errScriptDone
	}
	key := in.keys[0]
	in.keys = in.keys[1:]
	return key, nil
}

type peekingInput struct {
	fakeInput
}

func (in *peekingInput) Peek() constants.KeyMask {
	in.peeks++
	return constants.KeyNone
}

type fakeBar struct {
	inits  [][MenuBarSlots]string
	labels [MenuBarSlots]string
	draws  int
}

func (b *fakeBar) Init(labels [MenuBarSlots]string) {
	b.inits = append(b.inits, labels)
	b.labels = labels
}

func (b *fakeBar) SetLabel(slot int, text string) {
	b.labels[slot] = text
}

func (b *fakeBar) Draw() {
	b.draws++
}

// fakeAbort is an abort source with an arming counter.
type fakeAbort struct {
	requested bool
	armed     int
	cleared   int
}

func (a *fakeAbort) AbortRequested() bool { return a.requested }

func (a *fakeAbort) ClearAbort() {
	a.requested = false
	a.cleared++
}

func (a *fakeAbort) ArmAbort()    { a.armed++ }
func (a *fakeAbort) DisarmAbort() { a.armed-- }

type testRig struct {
	engine  *Engine
	surface *fakeSurface
	input   *fakeInput
	bar     *fakeBar
	abort   *fakeAbort
}

func newTestRig(rows int, keys ...constants.KeyMask) *testRig {
	rig := &testRig{
		surface: newFakeSurface(rows),
		input:   &fakeInput{keys: keys},
		bar:     &fakeBar{},
		abort:   &fakeAbort{},
	}
	rig.engine = NewEngine(EngineOptions{
		Surface: rig.surface,
		Input:   rig.input,
		MenuBar: rig.bar,
		Abort:   rig.abort,
		Logger:  slog.New(slog.DiscardHandler),
	})
	return rig
}
