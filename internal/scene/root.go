package scene

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/idursun/clgl/internal/render"
	"github.com/idursun/clgl/internal/screen"
	"github.com/idursun/clgl/internal/sink"
)

// Root owns the output buffer and the top-level nodes composed into it.
// Its size is fixed at construction.
type Root struct {
	// Background is written in place of empty cells when rendering.
	Background screen.Cell

	width   int
	height  int
	buffer  *screen.Buffer
	nodes   []*Node
	effects []render.Shader
	logger  *log.Logger
}

type rootConfig struct {
	width      int
	height     int
	hasWidth   bool
	hasHeight  bool
	background screen.Cell
	nodes      []*Node
	effects    []render.Shader
	logger     *log.Logger
}

// RootOption overrides one of the root defaults.
type RootOption func(*rootConfig)

func WithWidth(width int) RootOption {
	return func(c *rootConfig) {
		c.width = width
		c.hasWidth = true
	}
}

func WithHeight(height int) RootOption {
	return func(c *rootConfig) {
		c.height = height
		c.hasHeight = true
	}
}

func WithBackground(background screen.Cell) RootOption {
	return func(c *rootConfig) { c.background = background }
}

func WithNodes(nodes ...*Node) RootOption {
	return func(c *rootConfig) { c.nodes = append(c.nodes, nodes...) }
}

func WithEffects(effects ...render.Shader) RootOption {
	return func(c *rootConfig) { c.effects = append(c.effects, effects...) }
}

// WithLogger enables a debug line per Tick.
func WithLogger(logger *log.Logger) RootOption {
	return func(c *rootConfig) { c.logger = logger }
}

// NewRoot creates a root. Unless overridden, the size is one less than the
// terminal in each direction (see DefaultSize) and the background is a space.
func NewRoot(opts ...RootOption) *Root {
	cfg := rootConfig{background: " "}
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.hasWidth || !cfg.hasHeight {
		w, h := DefaultSize()
		if !cfg.hasWidth {
			cfg.width = w
		}
		if !cfg.hasHeight {
			cfg.height = h
		}
	}

	buffer := screen.NewBuffer(cfg.width, cfg.height)
	r := &Root{
		Background: cfg.background,
		width:      buffer.Width(),
		height:     buffer.Height(),
		buffer:     buffer,
		effects:    cfg.effects,
		logger:     cfg.logger,
	}
	for _, n := range cfg.nodes {
		r.Add(n)
	}
	return r
}

func (r *Root) Width() int  { return r.width }
func (r *Root) Height() int { return r.height }

// Buffer returns the live buffer the root composes into.
func (r *Root) Buffer() *screen.Buffer {
	return r.buffer
}

// --- Nodes ---

// Add appends n to the top-level nodes, detaching it from any parent first.
func (r *Root) Add(n *Node) {
	if n == nil {
		panic("clgl: cannot add nil node")
	}
	n.detach()
	n.root = r
	r.nodes = append(r.nodes, n)
}

// Insert places n at index among the top-level nodes.
func (r *Root) Insert(n *Node, index int) {
	if n == nil {
		panic("clgl: cannot add nil node")
	}
	n.detach()
	if index < 0 || index > len(r.nodes) {
		panic("clgl: node index out of range")
	}
	n.root = r
	r.nodes = insertAt(r.nodes, n, index)
}

// Remove detaches a top-level node.
// Panics if n is not a top-level node of r.
func (r *Root) Remove(n *Node) {
	if n == nil || n.root != r {
		panic("clgl: node is not attached to this root")
	}
	r.nodes = removePtr(r.nodes, n)
	n.root = nil
}

// Nodes returns the top-level nodes. The returned slice must not be mutated.
func (r *Root) Nodes() []*Node {
	return r.nodes
}

// Find searches every top-level subtree in order for a node named name.
func (r *Root) Find(name string) *Node {
	for _, n := range r.nodes {
		if found := n.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node of every top-level subtree in render order.
func (r *Root) Walk(fn func(*Node) bool) {
	for _, n := range r.nodes {
		n.Walk(fn)
	}
}

// --- Effects ---

// AddEffect appends whole-buffer passes run after the nodes are composed.
func (r *Root) AddEffect(effects ...render.Shader) {
	r.effects = append(r.effects, effects...)
}

func (r *Root) Effects() []render.Shader {
	return r.effects
}

func (r *Root) ClearEffects() {
	r.effects = nil
}

// --- Frame ---

// Clear empties every cell of the buffer.
func (r *Root) Clear() {
	r.buffer.Clear()
}

// Compose renders every top-level node in order, then applies the effects.
// Each node shades against its own snapshot, so later nodes observe what
// earlier ones painted.
func (r *Root) Compose() {
	for _, n := range r.nodes {
		n.Render(r.buffer)
	}
	render.ApplyEffects(r.buffer, r.effects...)
}

// Render writes the buffer to s row by row, one write per cell and a newline
// between rows. Empty cells are written as the background. A nil sink writes
// to stdout. The cursor is reset first when requested and supported by s.
func (r *Root) Render(s sink.Sink, resetCursor bool) error {
	if s == nil {
		s = sink.Stdout()
	}
	if resetCursor {
		if cr, ok := s.(sink.CursorResetter); ok {
			if err := cr.ResetCursor(); err != nil {
				return fmt.Errorf("reset cursor: %w", err)
			}
		}
	}

	for y := 0; y < r.height; y++ {
		if y > 0 {
			if err := s.WriteText("\n"); err != nil {
				return fmt.Errorf("write row separator: %w", err)
			}
		}
		for x := 0; x < r.width; x++ {
			c := r.buffer.At(x, y)
			if c.Empty() {
				c = r.Background
			}
			if err := s.WriteText(string(c)); err != nil {
				return fmt.Errorf("write cell (%d, %d): %w", x, y, err)
			}
		}
	}

	if f, ok := s.(sink.Flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	}
	return nil
}

// Tick produces one frame: Clear, Compose, then Render.
func (r *Root) Tick(s sink.Sink, resetCursor bool) error {
	start := time.Now()
	r.Clear()
	r.Compose()
	err := r.Render(s, resetCursor)
	if r.logger != nil {
		r.logger.Debug("tick", "nodes", len(r.nodes), "effects", len(r.effects), "elapsed", time.Since(start))
	}
	return err
}

// String returns the current buffer as text without composing.
func (r *Root) String() string {
	return strings.Join(r.buffer.Lines(r.Background), "\n")
}
