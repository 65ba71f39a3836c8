package ast

import (
	"github.com/dekarrin/sdlparse/diag"
	"github.com/dekarrin/sdlparse/green"
	"github.com/dekarrin/sdlparse/red"
)

// SyntaxTree is the final artifact of a parse: an immutable green tree plus
// its flat, ordered error list (spec.md §3, §6). It is safe to share across
// goroutines; red wrappers obtained from it are not (spec.md §5).
type SyntaxTree struct {
	root   green.Node
	errors []diag.Error
}

// New builds a SyntaxTree from a finished green root and its diagnostics.
// Called by the parser driver once parsing completes; not meant to be
// constructed directly by consumers.
func New(root green.Node, errors []diag.Error) *SyntaxTree {
	return &SyntaxTree{root: root, errors: errors}
}

// Document returns the typed root view over this tree.
func (t *SyntaxTree) Document() Document {
	return Document{view{red.NewRoot(t.root)}}
}

// Errors returns every diagnostic produced while building this tree, in the
// order they were encountered (spec.md §4.5).
func (t *SyntaxTree) Errors() []diag.Error {
	return t.errors
}

// Root returns a red wrapper over the tree's DOCUMENT node, for callers
// that want to walk the tree generically rather than through typed views
// (spec.md §4.6).
func (t *SyntaxTree) Root() *red.Node {
	return red.NewRoot(t.root)
}

// Text returns the entire source text the tree covers; by construction
// this equals the original input (spec.md §3, losslessness invariant).
func (t *SyntaxTree) Text() string {
	return t.root.Text()
}

// Dump renders the tree using the teacher-style branch-art indentation
// (SPEC_FULL §12.3), for the CLI's --format tree and for test failure
// output.
func (t *SyntaxTree) Dump() string {
	return green.Dump(t.root)
}
