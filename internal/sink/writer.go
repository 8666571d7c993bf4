package sink

import "io"

// Writer writes frames to a plain stream. It cannot reset the cursor.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (w *Writer) WriteText(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}
