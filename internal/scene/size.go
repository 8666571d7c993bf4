package scene

import (
	"os"

	"github.com/charmbracelet/x/term"
)

const (
	fallbackWidth  = 30
	fallbackHeight = 20
)

// DefaultSize returns the stdout terminal size minus one in each direction,
// or 30x20 when stdout is not a terminal.
//
// Writing a newline after a completely filled terminal line produces an extra
// visual line break, hence the missing column.
func DefaultSize() (width, height int) {
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		return fallbackWidth, fallbackHeight
	}
	return orFallback(w-1, fallbackWidth), orFallback(h-1, fallbackHeight)
}

func orFallback(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}
