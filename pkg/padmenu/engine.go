package padmenu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/pawndev/padmenu/pkg/padmenu/internal"
)

// EngineOptions wires the collaborators a menu runs against.
type EngineOptions struct {
	Surface Surface
	Input   Input
	MenuBar MenuBar       // Optional
	Labels  LabelResolver // Optional, labels are shown verbatim when nil
	Abort   AbortSource   // Optional

	SmoothScroll bool
	ScrollStep   int // Pixels per frame while smooth scrolling, defaults to 1

	ToggleOnSuffix  string
	ToggleOffSuffix string
	CheckGlyph      string

	Logger *slog.Logger
}

// Engine runs menus. An Engine holds no per menu state so hooks may call Run
// again to show a nested menu. An Engine is not safe for concurrent use.
type Engine struct {
	surface Surface
	input   Input
	bar     MenuBar
	labels  LabelResolver
	abort   AbortSource
	logger  *slog.Logger

	smooth     bool
	scrollStep int

	toggleOn  string
	toggleOff string
	check     string

	hookDepth int
}

func NewEngine(options EngineOptions) *Engine {
	e := &Engine{
		surface:    options.Surface,
		input:      options.Input,
		bar:        options.MenuBar,
		labels:     options.Labels,
		abort:      options.Abort,
		logger:     options.Logger,
		smooth:     options.SmoothScroll,
		scrollStep: options.ScrollStep,
		toggleOn:   options.ToggleOnSuffix,
		toggleOff:  options.ToggleOffSuffix,
		check:      options.CheckGlyph,
	}

	if e.logger == nil {
		e.logger = internal.GetInternalLogger()
	}
	if e.toggleOn == "" {
		e.toggleOn = constants.ToggleOnSuffix
	}
	if e.toggleOff == "" {
		e.toggleOff = constants.ToggleOffSuffix
	}
	if e.check == "" {
		e.check = constants.CheckGlyph
	}
	if e.scrollStep <= 0 {
		e.scrollStep = 1
	}

	return e
}

// ItemsPerPage is the number of item rows that fit under the title and above
// the menu bar.
func (e *Engine) ItemsPerPage(m *Menu) int {
	fontHeight := e.surface.FontHeight()
	if fontHeight <= 0 {
		fontHeight = 1
	}
	rows := e.surface.Height() / fontHeight
	if e.bar != nil {
		rows--
	}
	if m.Title != "" {
		rows--
	}
	return max(rows, 1)
}

// Run shows m until an item is activated or the menu is cancelled. It returns
// the userdata of the activated item, or ErrCancelled. Sticky menus only return
// on cancel. Run returns ctx.Err() once ctx is done.
func (e *Engine) Run(ctx context.Context, m *Menu) (any, error) {
	if m == nil || m.Items == nil || !HasVisible(m.Items) {
		return nil, ErrNoVisibleItems
	}

	// A nested menu reads the cancel key itself.
	if armer, ok := e.abort.(AbortArmer); ok && e.hookDepth > 0 {
		armer.DisarmAbort()
		defer armer.ArmAbort()
	}

	store := m.Items
	total := store.Count()

	barLabels := InitialBarLabels(m.Flags)
	for i := range barLabels {
		barLabels[i] = e.resolve(barLabels[i])
	}
	e.initBar(barLabels)

	start := m.Selected - 1
	if start < -1 || start >= total {
		start = -1
	}
	selected := NextVisible(store, start)

	pager := NewPaginator(e.ItemsPerPage(m))
	pager.Smooth = e.smooth
	pager.ScrollStep = e.scrollStep
	pager.LineHeight = e.surface.FontHeight()
	pager.Reset(selected)

	e.logger.Debug("Entering menu",
		"title", m.Title,
		"items", total,
		"items_per_page", pager.Capacity,
		"selected", selected)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		window := pager.Frame(store, selected)
		e.render(m, window, pager.Capacity, selected)

		key, err := e.poll(ctx, pager)
		if err != nil {
			return nil, fmt.Errorf("menu %q: polling input: %w", m.Title, err)
		}

		switch {
		case key.Has(constants.KeyOK):
			item, result := e.activate(ctx, m, selected)
			// A hook may have shown a nested menu with its own bar labels.
			e.initBar(barLabels)
			e.logger.Debug("Item activated", "title", m.Title, "index", selected, "result", result.String())
			if result == ActivationAborted {
				continue
			}
			if m.Flags&MenuSticky == 0 {
				e.saveSelection(m, selected)
				return item.Userdata, nil
			}
		case key.Has(constants.KeyUp):
			selected = PrevVisible(store, selected)
		case key.Has(constants.KeyDown):
			selected = NextVisible(store, selected)
		case key.Has(constants.KeyCancel) && !m.Flags.Has(MenuTopLevel):
			e.saveSelection(m, selected)
			return nil, ErrCancelled
		}
	}
}

func (e *Engine) initBar(labels [MenuBarSlots]string) {
	if e.bar != nil {
		e.bar.Init(labels)
	}
}

func (e *Engine) saveSelection(m *Menu, selected int) {
	if m.Flags.Has(MenuSaveSelection) {
		m.Selected = selected
	}
}

// poll blocks for a key unless a smooth scroll is still in flight, in which case
// a pending key is peeked so the next frame can be drawn.
func (e *Engine) poll(ctx context.Context, pager *Paginator) (constants.KeyMask, error) {
	if e.smooth && !pager.Settled() {
		if peeker, ok := e.input.(Peeker); ok {
			return peeker.Peek(), nil
		}
	}
	return e.input.Poll(ctx)
}

func (e *Engine) render(m *Menu, window Window, capacity, selected int) {
	store := m.Items
	offsetter, canOffset := e.surface.(TextOffsetter)

	e.surface.Clear()

	row := 0
	if m.Title != "" {
		if canOffset {
			offsetter.SetTextOffset(0, 0)
		}
		e.surface.DrawText(row, 0,
			constants.StyleUnderline|constants.StyleBold|constants.StyleCenter|constants.StyleFill,
			e.resolve(m.Title))
		row++
	}

	if canOffset {
		offsetter.SetTextOffset(0, window.Offset)
	}

	total := store.Count()
	for cnt := 0; cnt < capacity; cnt++ {
		index := window.First + cnt
		if index >= total {
			break
		}
		if store.Flags(index).Hidden() {
			continue
		}

		style := constants.StyleFill
		if index == selected {
			style |= constants.StyleInvert
		}
		e.surface.DrawText(row, 0, style, e.itemText(store.Item(index)))
		row++
	}

	if canOffset {
		offsetter.SetTextOffset(0, 0)
	}

	if e.bar != nil {
		label := ContextLabel(store.Flags(selected))
		e.bar.SetLabel(SlotContext, e.resolve(label))
		e.bar.Draw()
	}

	if presenter, ok := e.surface.(Presenter); ok {
		presenter.Present()
	}
}

func (e *Engine) itemText(item MenuItem) string {
	text := item.Label
	if !item.Flags.Has(FlagRAMLabel) {
		text = e.resolve(item.Label)
	}

	switch {
	case item.Flags.Toggle():
		if item.Flags.Checked() {
			return text + e.toggleOn
		}
		return text + e.toggleOff
	case item.Flags.Checked():
		return text + e.check
	default:
		return text
	}
}

func (e *Engine) resolve(label string) string {
	if label == "" {
		return ""
	}
	text := label
	if e.labels != nil {
		text = e.labels.Resolve(label)
	}
	if text == label {
		if fallback, ok := DefaultLabelText(label); ok {
			return fallback
		}
	}
	return text
}
