// Package green implements the immutable, structurally-shared syntax tree
// described in spec.md §3/§4.4. A Green value is either an Internal node
// (a nonterminal with ordered children) or a Terminal (a token's kind and
// owned text). Green trees are never mutated after the builder finishes
// them, so they may be shared freely — including across threads (spec.md
// §5, "the finished SyntaxTree is immutable and freely shareable").
package green

import (
	"strings"

	"github.com/dekarrin/sdlparse/token"
)

// Node is one green tree node: either an Internal nonterminal with children,
// or a Terminal token. This mirrors the teacher's types.ParseTree
// (internal/ictiobus/types/tree.go), which also unifies terminal and
// nonterminal nodes behind one struct distinguished by a boolean; the green
// tree splits the two representations out because a Terminal never has
// children and a Internal never owns text directly, and keeping them
// distinct lets the builder intern each independently.
type Node interface {
	// Kind is the node's terminal or nonterminal tag.
	Kind() token.Kind
	// Text returns the node's full source text: the token's own text for a
	// Terminal, or the concatenation of every child's Text for an Internal.
	// Concatenating the Text of a DOCUMENT root reproduces the original
	// input verbatim (spec.md §3, losslessness invariant).
	Text() string
	// Len is len(Text()), cached for Internal nodes so computing an
	// absolute offset during red-tree traversal doesn't re-walk subtrees.
	Len() int
	// Children returns this node's ordered children; always empty for a
	// Terminal.
	Children() []Node
	// IsTerminal reports whether this is a Terminal (leaf) node.
	IsTerminal() bool
}

// Terminal is a leaf node: a token's kind and the exact text it covers.
type Terminal struct {
	kind token.Kind
	text string
}

func NewTerminal(kind token.Kind, text string) *Terminal {
	return &Terminal{kind: kind, text: text}
}

func (t *Terminal) Kind() token.Kind  { return t.kind }
func (t *Terminal) Text() string     { return t.text }
func (t *Terminal) Len() int         { return len(t.text) }
func (t *Terminal) Children() []Node { return nil }
func (t *Terminal) IsTerminal() bool { return true }

// Internal is a nonterminal node: a kind plus an ordered list of children.
type Internal struct {
	kind     token.Kind
	children []Node
	text     string // cached concatenation, computed once at construction
	length   int
}

// NewInternal builds an Internal node over children, which must not be
// mutated afterwards — green nodes are shared by value and the builder may
// hand the same []Node slice (or sub-slices of it) to more than one caller
// once interning (below) is in play.
func NewInternal(kind token.Kind, children []Node) *Internal {
	var sb strings.Builder
	for _, c := range children {
		sb.WriteString(c.Text())
	}
	text := sb.String()
	return &Internal{kind: kind, children: children, text: text, length: len(text)}
}

func (n *Internal) Kind() token.Kind  { return n.kind }
func (n *Internal) Text() string     { return n.text }
func (n *Internal) Len() int         { return n.length }
func (n *Internal) Children() []Node { return n.children }
func (n *Internal) IsTerminal() bool { return false }
