package screen

import (
	"strings"

	"github.com/charmbracelet/x/cellbuf"
)

// Cell holds one printable unit. The empty string is an empty cell.
type Cell string

// Empty reports whether nothing has been written to the cell.
func (c Cell) Empty() bool {
	return c == ""
}

// Buffer is a fixed-size grid of cells addressed as (x, y).
type Buffer struct {
	rows   [][]Cell
	width  int
	height int
}

// NewBuffer creates a buffer with every cell empty.
func NewBuffer(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
	}
	return &Buffer{rows: rows, width: width, height: height}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Bounds returns the buffer area anchored at the origin.
func (b *Buffer) Bounds() cellbuf.Rectangle {
	return cellbuf.Rect(0, 0, b.width, b.height)
}

func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y), or an empty cell outside the buffer.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return ""
	}
	return b.rows[y][x]
}

// Set writes a cell. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if !b.InBounds(x, y) {
		return
	}
	b.rows[y][x] = c
}

// Clear empties every cell.
func (b *Buffer) Clear() {
	for _, row := range b.rows {
		clear(row)
	}
}

// Clone copies every row so the result shares no storage with b.
func (b *Buffer) Clone() *Buffer {
	rows := make([][]Cell, len(b.rows))
	for y, row := range b.rows {
		rows[y] = append([]Cell(nil), row...)
	}
	return &Buffer{rows: rows, width: b.width, height: b.height}
}

// Row returns a copy of row y, or nil outside the buffer.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	return append([]Cell(nil), b.rows[y]...)
}

// Lines joins each row into a string, substituting background for empty cells.
func (b *Buffer) Lines(background Cell) []string {
	lines := make([]string, b.height)
	var sb strings.Builder
	for y, row := range b.rows {
		sb.Reset()
		for _, c := range row {
			if c.Empty() {
				c = background
			}
			sb.WriteString(string(c))
		}
		lines[y] = sb.String()
	}
	return lines
}
