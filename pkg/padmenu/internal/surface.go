package internal

import (
	"github.com/pawndev/padmenu/pkg/padmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Surface draws menu text rows on the SDL window.
type Surface struct {
	window  *Window
	font    *ttf.Font
	margin  int32
	offsetX int32
	offsetY int32
}

func NewSurface(window *Window, font *ttf.Font) *Surface {
	return &Surface{
		window: window,
		font:   font,
		margin: int32(float32(20) * GetScaleFactor()),
	}
}

func (s *Surface) Clear() {
	s.window.RenderBackground()
}

func (s *Surface) Height() int {
	return int(s.window.GetHeight())
}

func (s *Surface) FontHeight() int {
	return s.font.Height()
}

func (s *Surface) SetTextOffset(dx, dy int) {
	s.offsetX = int32(dx)
	s.offsetY = int32(dy)
}

func (s *Surface) DrawText(row, col int, style constants.TextStyle, text string) {
	theme := GetTheme()
	renderer := s.window.Renderer
	width := s.window.GetWidth()
	lineHeight := int32(s.font.Height())

	y := int32(row)*lineHeight + s.offsetY
	x := s.margin + int32(col)*MeasureText(s.font, "M") + s.offsetX

	fontStyle := ttf.STYLE_NORMAL
	if style.Has(constants.StyleBold) {
		fontStyle |= ttf.STYLE_BOLD
	}
	if style.Has(constants.StyleUnderline) {
		fontStyle |= ttf.STYLE_UNDERLINE
	}
	previous := s.font.GetStyle()
	s.font.SetStyle(fontStyle)
	defer s.font.SetStyle(previous)

	textWidth := MeasureText(s.font, text)
	if style.Has(constants.StyleCenter) {
		x = (width - textWidth) / 2
	}

	color := theme.TextColor
	if style.Has(constants.StyleInvert) {
		rect := &sdl.Rect{X: x - s.margin/2, Y: y, W: textWidth + s.margin, H: lineHeight}
		if style.Has(constants.StyleFill) {
			rect.X = s.margin / 2
			rect.W = width - s.margin
		}
		DrawRoundedRect(renderer, rect, lineHeight/2, theme.HighlightColor)
		color = theme.HighlightedTextColor
	}

	RenderText(renderer, s.font, text, x, y, color)
}

func (s *Surface) Present() {
	s.window.Renderer.Present()
}
