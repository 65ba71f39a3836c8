// Package red implements the lazy, addressable wrapper over a green tree
// described in spec.md §3/§4.6: a Node gives one visit to a green subtree a
// parent link and an absolute byte offset, computed by accumulating
// preceding siblings' text lengths. Red nodes are never stored in the green
// tree and are cheap enough to discard freely (GLOSSARY, "Red tree").
package red

import (
	"github.com/dekarrin/sdlparse/green"
	"github.com/dekarrin/sdlparse/token"
)

// Node is a transient, stack-style wrapper: a green node plus its parent and
// absolute offset. Because it caches a parent pointer, a Node must not be
// shared across goroutines (spec.md §5, "red wrappers are thread-local").
type Node struct {
	g       green.Node
	parent  *Node
	index   int
	offset  uint32
}

// NewRoot wraps g as the root of a red tree at offset 0.
func NewRoot(g green.Node) *Node {
	return &Node{g: g, offset: 0}
}

// Green returns the wrapped green node.
func (n *Node) Green() green.Node { return n.g }

// Kind returns the wrapped node's terminal or nonterminal tag.
func (n *Node) Kind() token.Kind { return n.g.Kind() }

// Text returns the node's source text (its own text for a terminal, the
// concatenation of its subtree for an internal node).
func (n *Node) Text() string { return n.g.Text() }

// IsTerminal reports whether this wraps a leaf (terminal) green node.
func (n *Node) IsTerminal() bool { return n.g.IsTerminal() }

// Offset returns the absolute byte offset of the first byte of this node's
// text within the original source.
func (n *Node) Offset() uint32 { return n.offset }

// End returns the absolute byte offset one past the last byte of this
// node's text.
func (n *Node) End() uint32 { return n.offset + uint32(n.g.Len()) }

// Parent returns the enclosing node, or nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns freshly-wrapped red nodes for every child, in order,
// with absolute offsets computed by walking preceding siblings.
func (n *Node) Children() []*Node {
	gc := n.g.Children()
	if len(gc) == 0 {
		return nil
	}
	out := make([]*Node, len(gc))
	off := n.offset
	for i, c := range gc {
		out[i] = &Node{g: c, parent: n, index: i, offset: off}
		off += uint32(c.Len())
	}
	return out
}

// FirstChild returns the first child, or nil if this node has none (either
// it is a terminal, or an internal node produced by error recovery with no
// children).
func (n *Node) FirstChild() *Node {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// NextSibling returns the next child of this node's parent, or nil if this
// is the last child or the root.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	siblings := n.parent.Children()
	if n.index+1 >= len(siblings) {
		return nil
	}
	return siblings[n.index+1]
}

// ChildrenOfKind returns every direct child whose Kind equals kind, in
// order. Typed views use this to implement repeated-child accessors over
// sum nonterminals (spec.md §4.7).
func (n *Node) ChildrenOfKind(kind token.Kind) []*Node {
	var out []*Node
	for _, c := range n.Children() {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstChildOfKind(kind token.Kind) *Node {
	for _, c := range n.Children() {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// FirstToken returns the leftmost terminal in this node's subtree, or nil
// for an empty internal node.
func (n *Node) FirstToken() *Node {
	if n.IsTerminal() {
		return n
	}
	for _, c := range n.Children() {
		if t := c.FirstToken(); t != nil {
			return t
		}
	}
	return nil
}

// LastToken returns the rightmost terminal in this node's subtree, or nil
// for an empty internal node.
func (n *Node) LastToken() *Node {
	if n.IsTerminal() {
		return n
	}
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if t := children[i].LastToken(); t != nil {
			return t
		}
	}
	return nil
}

// Tokens returns every terminal in this node's subtree in source order.
// Concatenating their Text reproduces the subtree's full source text
// (spec.md §4.6).
func (n *Node) Tokens() []*Node {
	var out []*Node
	n.collectTokens(&out)
	return out
}

func (n *Node) collectTokens(out *[]*Node) {
	if n.IsTerminal() {
		*out = append(*out, n)
		return
	}
	for _, c := range n.Children() {
		c.collectTokens(out)
	}
}
