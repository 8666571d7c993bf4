package sink

import "strings"

// Recorder keeps the most recent frame in memory. Resetting the cursor starts
// a new frame.
type Recorder struct {
	sb     strings.Builder
	resets int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) WriteText(s string) error {
	r.sb.WriteString(s)
	return nil
}

func (r *Recorder) ResetCursor() error {
	r.sb.Reset()
	r.resets++
	return nil
}

// Resets returns how many times the cursor was reset.
func (r *Recorder) Resets() int {
	return r.resets
}

func (r *Recorder) String() string {
	return r.sb.String()
}
