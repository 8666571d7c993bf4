// Package sink defines where rendered frames are written.
//
// A Sink receives one WriteText call per cell and one "\n" between rows.
// Sinks that can move their write position back to the top-left corner
// implement CursorResetter; sinks that buffer output implement Flusher.
package sink

type Sink interface {
	WriteText(s string) error
}

// CursorResetter moves the write position to (0, 0).
type CursorResetter interface {
	ResetCursor() error
}

// Flusher is called once after a full frame has been written.
type Flusher interface {
	Flush() error
}
