package sink

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

var (
	_ CursorResetter = (*Screen)(nil)
	_ Flusher        = (*Screen)(nil)
)

// Screen writes frames into a tcell screen. Text wider than one column
// advances the write position by its display width.
type Screen struct {
	screen tcell.Screen
	style  tcell.Style
	x, y   int
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s, style: tcell.StyleDefault}
}

// WithStyle sets the style applied to every written cell.
func (s *Screen) WithStyle(style tcell.Style) *Screen {
	s.style = style
	return s
}

func (s *Screen) WriteText(text string) error {
	if text == "\n" {
		s.x = 0
		s.y++
		return nil
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		s.screen.SetContent(s.x, s.y, runes[0], runes[1:], s.style)
		s.x += max(g.Width(), 1)
	}
	return nil
}

func (s *Screen) ResetCursor() error {
	s.x, s.y = 0, 0
	return nil
}

// Flush shows the written frame.
func (s *Screen) Flush() error {
	s.screen.Show()
	return nil
}
