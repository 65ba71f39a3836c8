// Package parse implements the recursive-descent grammar driver and
// productions described in spec.md §4.2-§4.3: a Parser owns a reversed
// token buffer and a green.Builder, and exposes the primitives
// (peek/bump/start_node/push_err) every grammar routine is written against.
package parse

import (
	"fmt"

	"github.com/dekarrin/sdlparse/diag"
	"github.com/dekarrin/sdlparse/green"
	"github.com/dekarrin/sdlparse/lex"
	"github.com/dekarrin/sdlparse/token"
)

// DefaultRecursionLimit bounds grammar nesting depth; exceeding it emits a
// syntactic error and truncates the current production rather than
// overflowing the Go call stack (spec.md §5, §13.2).
const DefaultRecursionLimit = 500

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithRecursionLimit overrides DefaultRecursionLimit.
func WithRecursionLimit(n int) Option {
	return func(p *Parser) { p.recursionLimit = n }
}

// Parser drives a single, synchronous, single-threaded parse (spec.md §5):
// there is no suspension and no I/O performed by the parser itself. Source
// is supplied in full up front by New.
type Parser struct {
	// toks holds tokens in reverse order: toks[len(toks)-1] is the next
	// token to consume. This is an implementation tactic (spec.md §9,
	// "Reverse token buffer"), not a contract; it makes peek/bump
	// tail-of-slice operations.
	toks           []token.Token
	sourceLen      uint32
	builder        *green.Builder
	errors         []diag.Error
	recursionLimit int
	depth          int
}

// New constructs a Parser over source. Lexing happens immediately (spec.md
// §4.2, "Lexer errors are loaded first"); parsing itself only happens when
// Parse is called.
func New(source string, opts ...Option) *Parser {
	toks, lexErrs := lex.Lex(source)

	// reverse into a stack so the last element is the first token.
	reversed := make([]token.Token, len(toks))
	for i, t := range toks {
		reversed[len(toks)-1-i] = t
	}

	p := &Parser{
		toks:           reversed,
		sourceLen:      uint32(len(source)),
		builder:        green.NewBuilder(),
		errors:         append([]diag.Error(nil), lexErrs...),
		recursionLimit: DefaultRecursionLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// guard is the scope-guard design note (spec.md §9) made concrete: a
// capability that closes exactly one builder node when Finish is called,
// whether that happens at the natural end of a production or via an early
// return guarded by defer.
type guard struct {
	p      *Parser
	closed bool
}

func (g *guard) Finish() {
	if g.closed {
		return
	}
	g.closed = true
	g.p.builder.FinishNode()
}

// startNode opens a node of the given kind and returns a guard; the caller
// is expected to `defer g.Finish()` immediately.
func (p *Parser) startNode(kind token.Kind) *guard {
	p.builder.StartNode(kind)
	return &guard{p: p}
}

// startNodeAt opens a node of kind at a previously taken checkpoint,
// wrapping everything emitted since as its children (spec.md §4.3,
// "NonNullType", and SPEC_FULL §12.4's Description-prefixed definitions).
func (p *Parser) startNodeAt(cp int, kind token.Kind) *guard {
	p.builder.StartNodeAt(cp, kind)
	return &guard{p: p}
}

// withOptionalDescription opens a node of kind, first consuming and
// wrapping a leading Description if one is present (SPEC_FULL §12.4: Field,
// InputValue, EnumValue, and every type-system Definition may be preceded
// by a string description).
func (p *Parser) withOptionalDescription(kind token.Kind) *guard {
	cp := p.builder.Checkpoint()
	if p.at(token.STRING) || p.at(token.BLOCK_STRING) {
		p.description()
		return p.startNodeAt(cp, kind)
	}
	return p.startNode(kind)
}

// startNodeMaybeAt is withOptionalDescription's variant for callers that
// already parsed the description themselves and captured the checkpoint
// before knowing which concrete production follows (document-level
// type-system definitions, dispatched by the keyword after the
// description).
func (p *Parser) startNodeMaybeAt(cp *int, kind token.Kind) *guard {
	if cp != nil {
		return p.startNodeAt(*cp, kind)
	}
	return p.startNode(kind)
}

// expectKeyword bumps the next token as kind if it's an IDENT whose text is
// data — the mechanism contextual keywords are recognized by (spec.md
// §4.8). Otherwise it records a missing-token diagnostic and leaves the
// token unconsumed, like expect.
func (p *Parser) expectKeyword(data string, kind token.Kind, human string) bool {
	if p.at(token.IDENT) && p.peekData() == data {
		p.bump(kind)
		return true
	}
	p.pushErr(diag.Missingf(p.nthSignificant(1).Offset, "expected %s", human))
	return false
}

// recoverUnexpected absorbs tokens that don't belong to any expected
// first-set into a single ERROR node with one diagnostic, stopping once
// stop reports true or input is exhausted (spec.md §4.3, "Unexpected token
// inside a list production").
func (p *Parser) recoverUnexpected(stop func(token.Kind) bool, context string) {
	if p.atEOF() || stop(p.peek()) {
		return
	}
	start := p.nthSignificant(1).Offset
	g := p.startNode(token.ERROR)
	for !p.atEOF() && !stop(p.peek()) {
		p.bumpAny()
	}
	g.Finish()
	end := p.sourceLen
	if !p.atEOF() {
		end = p.nthSignificant(1).Offset
	}
	p.pushErr(diag.NewSyntactic("unexpected token in "+context, start, end-start))
}

// parseList drives a list production's member loop: it repeatedly parses
// member while canStart reports true for the upcoming token, and once that
// stops being the case, recovers past an unexpected token and resumes the
// member loop if recovery landed on another member rather than close
// (spec.md §4.3, "skip tokens until a recognized list-element first-set or
// the closing delimiter" — the skip is a resumption point, not an early
// exit). The recursion-depth guard can also end the member loop; in that
// case parseList stops outright rather than looping, since p.enter() will
// keep failing.
func (p *Parser) parseList(canStart func(token.Kind) bool, member func(), closeKind token.Kind, context string) {
	stop := func(k token.Kind) bool { return k == closeKind || canStart(k) }
	for !p.atEOF() && !p.at(closeKind) {
		depthExceeded := false
		for canStart(p.peek()) {
			if !p.enter() {
				depthExceeded = true
				break
			}
			member()
			p.exit()
		}
		if depthExceeded || p.atEOF() || p.at(closeKind) {
			break
		}
		p.recoverUnexpected(stop, context)
	}
}

// nthSignificant returns the kth (1-based) upcoming token that is not
// trivia, without consuming anything. Running off the end of input yields a
// synthetic EOF token at the end of the source (spec.md §4.2).
func (p *Parser) nthSignificant(k int) token.Token {
	count := 0
	for i := len(p.toks) - 1; i >= 0; i-- {
		if p.toks[i].Kind.IsTrivia() {
			continue
		}
		count++
		if count == k {
			return p.toks[i]
		}
	}
	return token.Token{Kind: token.EOF, Offset: p.sourceLen}
}

// peek returns the kind of the next significant token.
func (p *Parser) peek() token.Kind { return p.nthSignificant(1).Kind }

// peekN returns the kind of the kth upcoming significant token.
func (p *Parser) peekN(k int) token.Kind { return p.nthSignificant(k).Kind }

// peekData returns the next significant token's text, needed to
// disambiguate contextual keywords (spec.md §4.2, §4.8).
func (p *Parser) peekData() string { return p.nthSignificant(1).Text }

// peekDataN returns the kth upcoming significant token's text.
func (p *Parser) peekDataN(k int) string { return p.nthSignificant(k).Text }

// at reports whether the next significant token has the given kind.
func (p *Parser) at(kind token.Kind) bool { return p.peek() == kind }

// atEOF reports whether no significant tokens remain.
func (p *Parser) atEOF() bool { return p.peek() == token.EOF }

// flushTrivia attaches any whitespace/comment tokens immediately ahead of
// the next significant token to whichever node is currently open, so they
// remain siblings of the grammar tokens around them (spec.md §4.1,
// "Trivia tokens ... attach to the tree as siblings of grammar tokens").
func (p *Parser) flushTrivia() {
	for len(p.toks) > 0 && p.toks[len(p.toks)-1].Kind.IsTrivia() {
		t := p.toks[len(p.toks)-1]
		p.toks = p.toks[:len(p.toks)-1]
		p.builder.Token(t.Kind, t.Text)
	}
}

// bump pops the next significant token and emits it to the builder as
// kind — the caller classifies it (e.g. an IDENT "query" becomes
// token.QUERY_KW). Any leading trivia is flushed first. bump on EOF with no
// tokens left is a no-op, which keeps callers that assume "bump always
// makes progress when not atEOF" safe.
func (p *Parser) bump(kind token.Kind) {
	p.flushTrivia()
	if len(p.toks) == 0 {
		return
	}
	t := p.toks[len(p.toks)-1]
	p.toks = p.toks[:len(p.toks)-1]
	p.builder.Token(kind, t.Text)
}

// bumpAny consumes the next significant token under its own lexed kind,
// used by error recovery to absorb tokens that don't belong to any expected
// first-set (spec.md §4.3, "Unexpected token inside a list production").
func (p *Parser) bumpAny() {
	next := p.nthSignificant(1)
	p.bump(next.Kind)
}

// pushErr appends a diagnostic without aborting the parse (spec.md §4.2,
// §7).
func (p *Parser) pushErr(e diag.Error) {
	p.errors = append(p.errors, e)
}

// errHere builds a Syntactic diagnostic at the next significant token's
// offset.
func (p *Parser) errHere(format string, args ...interface{}) diag.Error {
	return diag.NewSyntactic(fmt.Sprintf(format, args...), p.nthSignificant(1).Offset, 0)
}

// expect bumps kind if it's next, classifying the token as kind; otherwise
// it emits a zero-length "missing token" diagnostic and synthesizes
// nothing (spec.md §4.3, "Missing required token"). Returns whether the
// token was actually present.
func (p *Parser) expect(kind token.Kind, human string) bool {
	if p.at(kind) {
		p.bump(kind)
		return true
	}
	p.pushErr(diag.Missingf(p.nthSignificant(1).Offset, "expected %s", human))
	return false
}

// enter increments recursion depth and reports whether the caller should
// proceed; at the configured limit it records a diagnostic, leaves the depth
// unchanged, and tells the caller to stop descending further (spec.md §5,
// §13.2). Pair each successful enter with a call to p.exit(); a refused
// enter needs none.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.recursionLimit {
		p.depth--
		p.pushErr(p.errHere("maximum nesting depth exceeded"))
		return false
	}
	return true
}

func (p *Parser) exit() { p.depth-- }
