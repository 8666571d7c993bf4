package render

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/clgl/internal/screen"
)

// Shade runs shader over the width x height rectangle at (x0, y0) and writes
// the results into buf.
//
// Every sample reads from a snapshot taken before the first write, so a
// shader never observes cells written earlier in the same pass. Rows are
// scanned top to bottom and cells left to right; the scan skips coordinates
// before the buffer and stops at the first one past its far edge.
//
// With fixedOrigin the shader is given absolute buffer coordinates, otherwise
// coordinates relative to the rectangle, starting at (0, 0).
func Shade(buf *screen.Buffer, x0, y0, width, height int, shader Shader, fixedOrigin bool) {
	if buf == nil || shader == nil || width <= 0 || height <= 0 {
		return
	}

	snapshot := buf.Clone()
	bufWidth, bufHeight := buf.Width(), buf.Height()

	for j := max(0, -y0); j < height; j++ {
		y := y0 + j
		if y >= bufHeight {
			break
		}
		for i := max(0, -x0); i < width; i++ {
			x := x0 + i
			if x >= bufWidth {
				break
			}
			sx, sy := i, j
			if fixedOrigin {
				sx, sy = x, y
			}
			if c, ok := shader(sx, sy, snapshot.At(x, y), snapshot); ok {
				buf.Set(x, y, c)
			}
		}
	}
}

// ShadeRect is Shade over a rectangle.
func ShadeRect(buf *screen.Buffer, rect cellbuf.Rectangle, shader Shader, fixedOrigin bool) {
	Shade(buf, rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(), shader, fixedOrigin)
}
