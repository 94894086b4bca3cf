package tree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// String formats the color as an SVG/CSS rgb() function.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Node is one category at one level of the hierarchy.
//
// The geometry and color fields are zero until the corresponding pass has
// run: [Aggregate] sets Value on interior nodes, layout.Assign sets the
// angles and radii, and styles.Assign sets Color.
type Node struct {
	Name  string
	Depth int

	Value float64

	AngleStart  float64
	AngleEnd    float64
	InnerRadius float64
	OuterRadius float64

	Color RGB

	parent   *Node
	children []*Node // sorted by Name
	valued   bool
	line     int // source row that assigned Value, 0 if none
}

// NewRoot returns an empty synthetic root node.
func NewRoot() *Node {
	return &Node{}
}

// IsRoot reports whether n is the synthetic root.
func (n *Node) IsRoot() bool { return n.parent == nil }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the children sorted ascending by name.
// The returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// Child returns the child with the given name.
func (n *Node) Child(name string) (*Node, bool) {
	i, ok := n.search(name)
	if !ok {
		return nil, false
	}
	return n.children[i], true
}

// AddChild returns the child named name, creating it in sorted position if
// it does not exist yet.
func (n *Node) AddChild(name string) *Node {
	i, ok := n.search(name)
	if ok {
		return n.children[i]
	}
	c := &Node{Name: name, Depth: n.Depth + 1, parent: n}
	n.children = slices.Insert(n.children, i, c)
	return c
}

// SetValue assigns a leaf value supplied by the input.
func (n *Node) SetValue(v float64) {
	n.Value = v
	n.valued = true
}

// Span returns AngleEnd - AngleStart.
func (n *Node) Span() float64 { return n.AngleEnd - n.AngleStart }

// Path returns the names from the top-level branch down to n.
// The root has an empty path.
func (n *Node) Path() []string {
	var path []string
	for cur := n; cur != nil && !cur.IsRoot(); cur = cur.parent {
		path = append(path, cur.Name)
	}
	slices.Reverse(path)
	return path
}

// Key joins Path with "/" for use in messages and identifiers.
func (n *Node) Key() string {
	return strings.Join(n.Path(), "/")
}

// Branch returns the top-level ancestor of n (n itself at depth 1).
// It returns nil for the root.
func (n *Node) Branch() *Node {
	if n.IsRoot() {
		return nil
	}
	cur := n
	for !cur.parent.IsRoot() {
		cur = cur.parent
	}
	return cur
}

func (n *Node) search(name string) (int, bool) {
	return slices.BinarySearchFunc(n.children, name, func(c *Node, name string) int {
		return cmp.Compare(c.Name, name)
	})
}

// Walk visits n and its descendants in document order: a node first, then
// its children in ascending name order. Returning false from fn skips the
// node's subtree.
func Walk(n *Node, fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		Walk(c, fn)
	}
}

// Count returns the number of nodes below root (root excluded).
func Count(root *Node) int {
	count := 0
	Walk(root, func(n *Node) bool {
		if n != root {
			count++
		}
		return true
	})
	return count
}

// MaxDepth returns the depth of the deepest node.
func MaxDepth(root *Node) int {
	depth := 0
	Walk(root, func(n *Node) bool {
		depth = max(depth, n.Depth)
		return true
	})
	return depth
}
