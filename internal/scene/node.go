package scene

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/clgl/internal/render"
	"github.com/idursun/clgl/internal/screen"
)

// Node is a rectangular region of the scene painted by its Shader.
// Geometry is in absolute buffer coordinates; a child is not offset by its
// parent's position.
type Node struct {
	Name        string
	Visible     bool
	Left        int
	Top         int
	Width       int
	Height      int
	Shader      render.Shader
	FixedOrigin bool

	parent   *Node
	root     *Root
	children []*Node
}

// NodeOption overrides one of the node defaults.
type NodeOption func(*Node)

// NewNode creates a visible 1x1 node at the origin with no shader, then
// applies opts in order.
func NewNode(opts ...NodeOption) *Node {
	n := &Node{
		Visible: true,
		Width:   1,
		Height:  1,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func WithName(name string) NodeOption {
	return func(n *Node) { n.Name = name }
}

func WithVisible(visible bool) NodeOption {
	return func(n *Node) { n.Visible = visible }
}

func WithPosition(left, top int) NodeOption {
	return func(n *Node) {
		n.Left = left
		n.Top = top
	}
}

func WithSize(width, height int) NodeOption {
	return func(n *Node) {
		n.Width = width
		n.Height = height
	}
}

// WithRect sets position and size from r.
func WithRect(r cellbuf.Rectangle) NodeOption {
	return func(n *Node) { n.SetBounds(r) }
}

func WithShader(s render.Shader) NodeOption {
	return func(n *Node) { n.Shader = s }
}

func WithFixedOrigin(fixed bool) NodeOption {
	return func(n *Node) { n.FixedOrigin = fixed }
}

// WithChildren appends children with the same semantics as AddChild.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) {
		for _, child := range children {
			n.AddChild(child)
		}
	}
}

// Bounds returns the node's rectangle in buffer coordinates. A negative size
// yields an empty rectangle at the node's position.
func (n *Node) Bounds() cellbuf.Rectangle {
	return cellbuf.Rectangle{
		Min: cellbuf.Pos(n.Left, n.Top),
		Max: cellbuf.Pos(n.Left+max(n.Width, 0), n.Top+max(n.Height, 0)),
	}
}

func (n *Node) SetBounds(r cellbuf.Rectangle) {
	n.Left = r.Min.X
	n.Top = r.Min.Y
	n.Width = r.Dx()
	n.Height = r.Dy()
}

// ToLocal converts buffer coordinates to coordinates relative to the node.
func (n *Node) ToLocal(x, y int) (int, int) {
	return x - n.Left, y - n.Top
}

// Render paints the node and then its children into buf. Nothing is painted,
// children included, when the node is hidden or has no shader.
func (n *Node) Render(buf *screen.Buffer) {
	if !n.Visible {
		return
	}
	if n.Shader == nil {
		return
	}

	render.Shade(buf, n.Left, n.Top, n.Width, n.Height, n.Shader, n.FixedOrigin)

	for _, child := range n.children {
		child.Render(buf)
	}
}

// Find returns the first node named name in a pre-order walk of the subtree
// rooted at n, including n itself.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, child := range n.children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and its descendants in render order. Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// --- Tree manipulation ---

// Parent returns the node this node is a child of, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends child. A child that already belongs to another node or to
// a root is detached from it first.
// Panics if child is nil or is an ancestor of n.
func (n *Node) AddChild(child *Node) {
	n.checkChild(child)
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
}

// AddChildAt inserts child at index with the same detach semantics as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	n.checkChild(child)
	child.detach()
	if index < 0 || index > len(n.children) {
		panic("clgl: child index out of range")
	}
	child.parent = n
	n.children = insertAt(n.children, child, index)
}

// RemoveChild detaches child from n.
// Panics if child's parent is not n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.parent != n {
		panic("clgl: child's parent is not this node")
	}
	n.children = removePtr(n.children, child)
	child.parent = nil
}

// RemoveChildAt removes and returns the child at index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("clgl: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches n from its parent node or root.
// No-op if n is not attached.
func (n *Node) RemoveFromParent() {
	n.detach()
}

// RemoveChildren detaches every child.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.parent = nil
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice must not be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child == nil || child.parent != n {
		panic("clgl: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("clgl: child index out of range")
	}
	n.children = insertAt(removePtr(n.children, child), child, index)
}

func (n *Node) checkChild(child *Node) {
	if child == nil {
		panic("clgl: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("clgl: adding child would create a cycle")
	}
}

// detach removes n from whichever parent node or root currently holds it.
func (n *Node) detach() {
	switch {
	case n.parent != nil:
		n.parent.RemoveChild(n)
	case n.root != nil:
		n.root.Remove(n)
	}
}

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func insertAt(nodes []*Node, node *Node, index int) []*Node {
	nodes = append(nodes, nil)
	copy(nodes[index+1:], nodes[index:])
	nodes[index] = node
	return nodes
}

// removePtr removes node from nodes, clearing the vacated slot so the backing
// array does not retain it.
func removePtr(nodes []*Node, node *Node) []*Node {
	for i, c := range nodes {
		if c == node {
			copy(nodes[i:], nodes[i+1:])
			nodes[len(nodes)-1] = nil
			return nodes[:len(nodes)-1]
		}
	}
	return nodes
}
