package term

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pawndev/padmenu/pkg/padmenu"
	"github.com/pawndev/padmenu/pkg/padmenu/constants"
)

// MenuBar draws the button labels on the last row of a Surface.
type MenuBar struct {
	surface *Surface
	labels  [padmenu.MenuBarSlots]string
}

func NewMenuBar(surface *Surface) *MenuBar {
	return &MenuBar{surface: surface}
}

func (mb *MenuBar) Init(labels [padmenu.MenuBarSlots]string) {
	mb.labels = labels
}

func (mb *MenuBar) SetLabel(slot int, text string) {
	if slot < 0 || slot >= padmenu.MenuBarSlots {
		return
	}
	mb.labels[slot] = text
}

// Text lays the labels out in equal columns.
func (mb *MenuBar) Text() string {
	width := mb.surface.Width()
	cell := width / padmenu.MenuBarSlots
	var b strings.Builder
	for i, label := range mb.labels {
		if i == padmenu.MenuBarSlots-1 {
			cell = width - cell*(padmenu.MenuBarSlots-1)
		}
		label = runewidth.Truncate(label, cell, "")
		pad := (cell - runewidth.StringWidth(label)) / 2
		b.WriteString(runewidth.FillRight(strings.Repeat(" ", pad)+label, cell))
	}
	return b.String()
}

func (mb *MenuBar) Draw() {
	mb.surface.DrawText(mb.surface.Height()-1, 0, constants.StyleInvert, mb.Text())
}
