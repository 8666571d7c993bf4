// Package ui runs a scene as an animated bubbletea program.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/clgl/internal/scene"
	"github.com/idursun/clgl/internal/sink"
)

const defaultInterval = time.Second / 10

// Animator mutates the scene between frames.
type Animator interface {
	Advance(dt time.Duration)
}

type frameMsg struct {
	at time.Time
}

var _ tea.Model = (*Model)(nil)

type Model struct {
	root     *scene.Root
	keys     KeyMap
	interval time.Duration
	animator Animator
	title    string
	paused   bool
	frames   int
	last     time.Time
	help     help.Model
	status   lipgloss.Style
}

type Option func(*Model)

// WithInterval sets the time between frames.
func WithInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

func WithAnimator(a Animator) Option {
	return func(m *Model) { m.animator = a }
}

func WithTitle(title string) Option {
	return func(m *Model) { m.title = title }
}

func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

func New(root *scene.Root, opts ...Option) *Model {
	m := &Model{
		root:     root,
		keys:     DefaultKeyMap(),
		interval: defaultInterval,
		title:    "clgl",
		help:     help.New(),
		status:   lipgloss.NewStyle().Faint(true),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg{at: t}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		}
		return m, nil
	case frameMsg:
		m.advance(msg.at)
		return m, m.tick()
	}
	return m, nil
}

// advance steps the animation to a frame taken at the given time unless paused.
func (m *Model) advance(at time.Time) {
	dt := m.interval
	if !m.last.IsZero() {
		dt = at.Sub(m.last)
	}
	m.last = at
	if m.paused {
		return
	}
	if m.animator != nil {
		m.animator.Advance(dt)
	}
	m.frames++
}

// View composes a fresh frame of the scene with a status line below it.
func (m *Model) View() string {
	buf := cellbuf.NewBuffer(m.root.Width(), m.root.Height())
	if err := m.root.Tick(sink.NewCells(buf), true); err != nil {
		return err.Error()
	}
	frame := strings.ReplaceAll(cellbuf.Render(buf), "\r", "")
	return lipgloss.JoinVertical(lipgloss.Left, frame, m.status.Render(m.statusLine()))
}

func (m *Model) statusLine() string {
	line := fmt.Sprintf("%s  frame %d  %s", m.title, m.frames, m.help.ShortHelpView(m.keys.ShortHelp()))
	if m.paused {
		line += "  [paused]"
	}
	return line
}

func (m *Model) Paused() bool {
	return m.paused
}

// Frames returns how many unpaused frames have elapsed.
func (m *Model) Frames() int {
	return m.frames
}
