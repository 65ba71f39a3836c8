// Package sdlparse is a lossless, error-resilient parser for a
// GraphQL-SDL-like schema and query language: a hand-written lexer feeds a
// recursive-descent parser that builds an immutable green/red syntax tree,
// over which a typed-view layer exposes named grammar accessors (spec.md
// §1-§2).
//
// Parsing never fails outright. Malformed input still produces a tree
// covering every byte of the source, plus a list of diagnostics describing
// what went wrong and where.
package sdlparse

import (
	"github.com/dekarrin/sdlparse/ast"
	"github.com/dekarrin/sdlparse/parse"
)

// Parser drives a single parse of one source string. It is not safe for
// concurrent use and must not be reused after Parse is called (spec.md §5,
// §6).
type Parser struct {
	p *parse.Parser
}

// Option configures a Parser at construction time.
type Option = parse.Option

// WithRecursionLimit overrides the default grammar-nesting depth guard
// (spec.md §5, §13.2).
func WithRecursionLimit(n int) Option {
	return parse.WithRecursionLimit(n)
}

// New constructs a Parser over source. Lexing happens immediately; parsing
// happens when Parse is called (spec.md §6).
func New(source string, opts ...Option) *Parser {
	return &Parser{p: parse.New(source, opts...)}
}

// Parse runs the grammar and returns the finished SyntaxTree. Consuming the
// Parser this way guarantees the underlying builder is finalized: a Parser
// should not be used again afterward.
func (p *Parser) Parse() *ast.SyntaxTree {
	return p.p.Parse()
}

// Parse is the one-shot convenience form of New(source).Parse(), for
// callers that don't need to set any Option.
func Parse(source string) *ast.SyntaxTree {
	return New(source).Parse()
}
