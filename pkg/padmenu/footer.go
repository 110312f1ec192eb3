package padmenu

import (
	"github.com/pawndev/padmenu/pkg/padmenu/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// footerButtons names the physical button drawn inside the pill of each slot.
var footerButtons = [MenuBarSlots]string{"B", "↑", "↓", "A"}

// footerBar is the SDL menu bar: a row of pills along the bottom edge of the
// window, one per non-empty slot.
type footerBar struct {
	window *internal.Window
	font   *ttf.Font
	labels [MenuBarSlots]string
}

func newFooterBar(window *internal.Window, font *ttf.Font) *footerBar {
	return &footerBar{window: window, font: font}
}

func (f *footerBar) Init(labels [MenuBarSlots]string) {
	f.labels = labels
}

func (f *footerBar) SetLabel(slot int, text string) {
	if slot < 0 || slot >= MenuBarSlots {
		return
	}
	f.labels[slot] = text
}

func (f *footerBar) Draw() {
	renderer := f.window.Renderer
	scaleFactor := internal.GetScaleFactor()
	windowWidth := f.window.GetWidth()
	windowHeight := f.window.GetHeight()

	margin := int32(float32(10) * scaleFactor)
	outerPillHeight := int32(internal.Fonts.MenuFont.Height())
	y := windowHeight - outerPillHeight

	theme := internal.GetTheme()
	renderer.SetDrawColor(theme.BackgroundColor.R, theme.BackgroundColor.G, theme.BackgroundColor.B, 255)
	renderer.FillRect(&sdl.Rect{X: 0, Y: y, W: windowWidth, H: outerPillHeight})

	innerPillMargin := int32(float32(4) * scaleFactor)

	// Back on the left, arrows in the middle, context on the right.
	if f.labels[SlotBack] != "" {
		f.renderPill(renderer, SlotBack, margin, y, outerPillHeight, innerPillMargin)
	}

	var middle int32
	for _, slot := range []int{SlotUp, SlotDown} {
		if f.labels[slot] != "" {
			middle += f.pillWidth(slot, outerPillHeight, innerPillMargin) + margin
		}
	}
	x := (windowWidth - middle) / 2
	for _, slot := range []int{SlotUp, SlotDown} {
		if f.labels[slot] != "" {
			x += f.renderPill(renderer, slot, x, y, outerPillHeight, innerPillMargin) + margin
		}
	}

	if f.labels[SlotContext] != "" {
		w := f.pillWidth(SlotContext, outerPillHeight, innerPillMargin)
		f.renderPill(renderer, SlotContext, windowWidth-margin-w, y, outerPillHeight, innerPillMargin)
	}
}

func (f *footerBar) pillWidth(slot int, outerPillHeight, innerPillMargin int32) int32 {
	innerPillHeight := outerPillHeight - innerPillMargin*2
	innerPillWidth := internal.Max32(innerPillHeight, internal.MeasureText(f.font, footerButtons[slot])+innerPillMargin*2)
	return innerPillMargin + innerPillWidth + innerPillMargin*2 + internal.MeasureText(f.font, f.labels[slot]) + innerPillMargin*2
}

func (f *footerBar) renderPill(renderer *sdl.Renderer, slot int, x, y, outerPillHeight, innerPillMargin int32) int32 {
	theme := internal.GetTheme()
	width := f.pillWidth(slot, outerPillHeight, innerPillMargin)

	internal.DrawRoundedRect(renderer, &sdl.Rect{X: x, Y: y, W: width, H: outerPillHeight}, outerPillHeight/2, theme.AccentColor)

	innerPillHeight := outerPillHeight - innerPillMargin*2
	buttonWidth := internal.MeasureText(f.font, footerButtons[slot])
	innerPillWidth := internal.Max32(innerPillHeight, buttonWidth+innerPillMargin*2)
	innerX := x + innerPillMargin

	if innerPillWidth == innerPillHeight {
		internal.DrawCircle(renderer, innerX+innerPillHeight/2, y+innerPillMargin+innerPillHeight/2, innerPillHeight/2, theme.HighlightColor)
	} else {
		internal.DrawRoundedRect(renderer, &sdl.Rect{X: innerX, Y: y + innerPillMargin, W: innerPillWidth, H: innerPillHeight}, innerPillHeight/2, theme.HighlightColor)
	}

	textY := y + (outerPillHeight-int32(f.font.Height()))/2
	internal.RenderText(renderer, f.font, footerButtons[slot], innerX+(innerPillWidth-buttonWidth)/2, textY, theme.ButtonLabelColor)
	internal.RenderText(renderer, f.font, f.labels[slot], innerX+innerPillWidth+innerPillMargin*2, textY, theme.HintColor)

	return width
}
