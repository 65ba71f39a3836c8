package green

import (
	"fmt"

	"github.com/dekarrin/sdlparse/token"
)

// Builder accumulates start_node/token/finish_node events and assembles
// them into an immutable Green tree (spec.md §4.4). It is single-use: once
// Finish is called it must not be reused.
//
// Builder interns terminals with short, common text (punctuators and
// keywords) and structurally-identical internal nodes, so two occurrences
// of e.g. the same "{" token or the same empty ARGUMENTS node share one
// allocation. This is purely a memory optimization: the tree shape it
// produces is identical to one built with no interning at all (spec.md
// §4.4, "Structural sharing").
type Builder struct {
	stack   []frame
	interned map[string]*Internal
	termCache map[termKey]*Terminal
	done    bool
}

type frame struct {
	kind     token.Kind
	children []Node
	root     bool
}

type termKey struct {
	kind token.Kind
	text string
}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder() *Builder {
	return &Builder{
		interned:  make(map[string]*Internal),
		termCache: make(map[termKey]*Terminal),
	}
}

// StartNode opens a new internal node of the given kind. It must be paired
// with exactly one FinishNode call, directly or via a scope guard; unmatched
// calls are a programming error, asserted at Finish time (spec.md §4.4).
func (b *Builder) StartNode(kind token.Kind) {
	b.stack = append(b.stack, frame{kind: kind})
}

// Token appends a terminal child of kind covering text to the
// innermost open node.
func (b *Builder) Token(kind token.Kind, text string) {
	if len(b.stack) == 0 {
		panic("green.Builder: Token called with no open node")
	}
	term := b.internTerminal(kind, text)
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, term)
}

// internTerminal returns a shared *Terminal for short, frequently-repeated
// token text (punctuators, contextual keywords, short identifiers) and a
// fresh one otherwise — interning long literal text (strings, big
// documents) would just grow the cache for no reuse benefit.
func (b *Builder) internTerminal(kind token.Kind, text string) *Terminal {
	if len(text) > 16 {
		return NewTerminal(kind, text)
	}
	key := termKey{kind: kind, text: text}
	if t, ok := b.termCache[key]; ok {
		return t
	}
	t := NewTerminal(kind, text)
	b.termCache[key] = t
	return t
}

// FinishNode closes the most recently opened node, materializing it into a
// Green node (reusing an existing allocation if an identical subtree was
// already built) and appending it as a child of its new parent.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		panic("green.Builder: FinishNode called with no open node")
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	node := b.intern(top.kind, top.children)

	if len(b.stack) == 0 {
		// This was the root; stash it as the sole remaining stack entry's
		// pseudo-child so Finish can retrieve it uniformly.
		b.stack = append(b.stack, frame{children: []Node{node}, root: true})
		return
	}

	parent := &b.stack[len(b.stack)-1]
	parent.children = append(parent.children, node)
}

// intern looks up (or records) an Internal node by structural key so that
// repeated identical subtrees collapse to one allocation.
func (b *Builder) intern(kind token.Kind, children []Node) *Internal {
	key := structuralKey(kind, children)
	if existing, ok := b.interned[key]; ok {
		return existing
	}
	node := NewInternal(kind, children)
	b.interned[key] = node
	return node
}

// structuralKey builds a cheap identity key from kind and each child's
// identity (pointer for interned terminals/internals, which is sound
// because children are always already-interned or fresh allocations by the
// time their parent is finished).
func structuralKey(kind token.Kind, children []Node) string {
	key := fmt.Sprintf("%d:", kind)
	for _, c := range children {
		key += fmt.Sprintf("%p,", c)
	}
	return key
}

// Checkpoint marks a position among the children accumulated so far in the
// innermost open node. Pair it with a later StartNodeAt to retroactively
// wrap everything emitted since the checkpoint in a new enclosing node —
// needed for left-recursive-looking productions like NonNullType, where the
// wrapping node's kind (and the fact that it wraps at all) isn't known
// until after its contents have already been parsed (spec.md §4.3,
// "NonNullType binds tighter").
func (b *Builder) Checkpoint() int {
	if len(b.stack) == 0 {
		panic("green.Builder: Checkpoint called with no open node")
	}
	top := &b.stack[len(b.stack)-1]
	return len(top.children)
}

// StartNodeAt opens a new node of the given kind and moves every child
// appended to the innermost open node since cp under it, then pushes the
// new node as the innermost open node. A matching FinishNode closes it.
func (b *Builder) StartNodeAt(cp int, kind token.Kind) {
	if len(b.stack) == 0 {
		panic("green.Builder: StartNodeAt called with no open node")
	}
	top := &b.stack[len(b.stack)-1]
	if cp > len(top.children) {
		panic("green.Builder: StartNodeAt checkpoint out of range")
	}
	wrapped := append([]Node(nil), top.children[cp:]...)
	top.children = top.children[:cp]
	b.stack = append(b.stack, frame{kind: kind, children: wrapped})
}

// Finish asserts the builder is balanced (exactly one root remains) and
// returns it. Calling Finish more than once panics.
func (b *Builder) Finish() Node {
	if b.done {
		panic("green.Builder: Finish called twice")
	}
	b.done = true
	if len(b.stack) != 1 || !b.stack[0].root || len(b.stack[0].children) != 1 {
		panic("green.Builder: unbalanced start_node/finish_node calls")
	}
	return b.stack[0].children[0]
}
