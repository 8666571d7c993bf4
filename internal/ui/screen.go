package ui

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/idursun/clgl/internal/sink"
)

// RunScreen plays the model directly on a tcell screen instead of through a
// bubbletea program. It returns when a quit key is pressed or ctx is done.
func (m *Model) RunScreen(ctx context.Context, screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	out := sink.NewScreen(screen)
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	if err := m.draw(screen, out); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !m.handleEvent(screen, ev) {
				return nil
			}
		case now := <-ticker.C:
			m.advance(now)
			if err := m.draw(screen, out); err != nil {
				return err
			}
		}
	}
}

func (m *Model) draw(screen tcell.Screen, out *sink.Screen) error {
	screen.Clear()
	return m.root.Tick(out, true)
}

// handleEvent reports whether the loop should keep running.
func (m *Model) handleEvent(screen tcell.Screen, ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k := keyName(ev)
		switch {
		case slices.Contains(m.keys.Quit.Keys(), k):
			return false
		case slices.Contains(m.keys.Pause.Keys(), k):
			m.paused = !m.paused
		}
	case *tcell.EventResize:
		screen.Sync()
	}
	return true
}

// keyName maps a tcell key event to the names used by key bindings.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		return string(ev.Rune())
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	}
	return ev.Name()
}
