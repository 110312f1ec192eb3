// Package term runs menus in a terminal, for development on a host machine and
// for devices with a serial console instead of a display.
package term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/pawndev/padmenu/pkg/padmenu/constants"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	ellipsis    = "…"
)

// Surface is a character cell render surface. Every cell is one font line high.
type Surface struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	width    int
	height   int
	rows     []string
	raw      bool
}

// NewSurface creates a surface of width by height cells writing frames to out.
// In raw mode lines end with CRLF.
func NewSurface(out io.Writer, width, height int, raw bool) *Surface {
	return &Surface{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		width:    max(width, 1),
		height:   max(height, 1),
		rows:     make([]string, max(height, 1)),
		raw:      raw,
	}
}

func (s *Surface) Clear() {
	for i := range s.rows {
		s.rows[i] = ""
	}
}

func (s *Surface) Height() int {
	return s.height
}

func (s *Surface) FontHeight() int {
	return 1
}

func (s *Surface) Width() int {
	return s.width
}

func (s *Surface) style(style constants.TextStyle) lipgloss.Style {
	st := s.renderer.NewStyle()
	if style.Has(constants.StyleBold) {
		st = st.Bold(true)
	}
	if style.Has(constants.StyleUnderline) {
		st = st.Underline(true)
	}
	if style.Has(constants.StyleInvert) {
		st = st.Reverse(true)
	}
	return st
}

// layout fits text into the row, honouring the centre and fill bits.
func (s *Surface) layout(col int, style constants.TextStyle, text string) string {
	avail := s.width - col
	if avail <= 0 {
		return ""
	}
	text = runewidth.Truncate(text, avail, ellipsis)

	if style.Has(constants.StyleCenter) {
		pad := (avail - runewidth.StringWidth(text)) / 2
		text = strings.Repeat(" ", pad) + text
	}
	if style.Has(constants.StyleFill) {
		text = runewidth.FillRight(text, avail)
	}
	return text
}

func (s *Surface) DrawText(row, col int, style constants.TextStyle, text string) {
	if row < 0 || row >= s.height || col < 0 {
		return
	}
	body := s.layout(col, style, text)
	s.rows[row] = strings.Repeat(" ", col) + s.style(style).Render(body)
}

// Row returns the rendered content of a row.
func (s *Surface) Row(row int) string {
	if row < 0 || row >= s.height {
		return ""
	}
	return s.rows[row]
}

func (s *Surface) Present() {
	sep := "\n"
	if s.raw {
		sep = "\r\n"
	}
	io.WriteString(s.out, clearScreen+strings.Join(s.rows, sep))
}
