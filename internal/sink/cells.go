package sink

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/rivo/uniseg"
)

var _ CursorResetter = (*Cells)(nil)

// Cells writes frames into a cellbuf buffer, e.g. to merge a frame into a
// larger view before rendering it. Writes past the buffer are dropped.
type Cells struct {
	buf  *cellbuf.Buffer
	x, y int
}

func NewCells(buf *cellbuf.Buffer) *Cells {
	return &Cells{buf: buf}
}

func (c *Cells) WriteText(text string) error {
	if text == "\n" {
		c.x = 0
		c.y++
		return nil
	}
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		runes := g.Runes()
		width := max(g.Width(), 1)
		c.buf.SetCell(c.x, c.y, &cellbuf.Cell{
			Rune:  runes[0],
			Comb:  runes[1:],
			Width: width,
		})
		c.x += width
	}
	return nil
}

func (c *Cells) ResetCursor() error {
	c.x, c.y = 0, 0
	return nil
}

// Buffer returns the destination buffer.
func (c *Cells) Buffer() *cellbuf.Buffer {
	return c.buf
}
