package sink

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

var (
	_ Sink           = (*Terminal)(nil)
	_ CursorResetter = (*Terminal)(nil)
)

// Terminal writes frames to a terminal, using escape sequences to home the
// cursor between frames.
type Terminal struct {
	out *termenv.Output
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w)}
}

// Stdout returns a terminal sink on os.Stdout.
func Stdout() *Terminal {
	return NewTerminal(os.Stdout)
}

func (t *Terminal) WriteText(s string) error {
	_, err := t.out.WriteString(s)
	return err
}

// ResetCursor moves the cursor to the top-left corner. termenv positions are
// one-based.
func (t *Terminal) ResetCursor() error {
	t.out.MoveCursor(1, 1)
	return nil
}
