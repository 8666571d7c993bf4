package render

import (
	"github.com/idursun/clgl/internal/screen"
)

// ApplyEffects runs each effect over the whole buffer in order. Effects see
// absolute coordinates, so they can look at neighbouring cells, and each one
// reads from its own snapshot taken after the previous effect finished.
func ApplyEffects(buf *screen.Buffer, effects ...Shader) {
	if buf == nil {
		return
	}
	for _, effect := range effects {
		ShadeRect(buf, buf.Bounds(), effect, true)
	}
}

// DropShadow paints shadow into empty cells whose up-left neighbour is filled.
func DropShadow(shadow screen.Cell) Shader {
	return func(x, y int, current screen.Cell, buf *screen.Buffer) (screen.Cell, bool) {
		if !current.Empty() {
			return "", false
		}
		if buf.At(x-1, y-1).Empty() {
			return "", false
		}
		return shadow, true
	}
}

// Replace swaps every cell equal to from with to.
func Replace(from, to screen.Cell) Shader {
	return func(_, _ int, current screen.Cell, _ *screen.Buffer) (screen.Cell, bool) {
		if current != from {
			return "", false
		}
		return to, true
	}
}
