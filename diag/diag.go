// Package diag holds the uniform diagnostic representation shared by the
// lexer and the parser driver (spec.md §4.5). There is no severity and no
// error-code taxonomy; callers that want to distinguish a lexical problem
// from a syntactic one inspect Kind.
package diag

import "fmt"

// Kind distinguishes where a diagnostic originated. It carries no other
// meaning: both kinds use the same Error representation and the same
// accumulation policy (spec.md §7).
type Kind int

const (
	// Lexical marks a diagnostic raised while tokenizing: an invalid escape,
	// an unterminated string, a malformed number, a stray byte.
	Lexical Kind = iota
	// Syntactic marks a diagnostic raised while parsing: a missing token, an
	// unexpected token, an unrecognized top-level construct.
	Syntactic
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntactic"
	default:
		return "unknown"
	}
}

// Error describes one lexical or syntactic problem found while producing a
// syntax tree. Errors are accumulated, never raised (spec.md §7): producing
// one never aborts the parse of sibling constructs.
type Error struct {
	Kind    Kind
	Message string
	// Offset is the byte offset of the first byte the diagnostic concerns.
	Offset uint32
	// Length is the number of bytes the diagnostic spans; zero for
	// diagnostics about a missing token (spec.md §4.3, "Missing required
	// token").
	Length uint32
}

func (e Error) String() string {
	return fmt.Sprintf("%s error at %d: %s", e.Kind, e.Offset, e.Message)
}

// NewLexical builds a Lexical diagnostic covering [offset, offset+length).
func NewLexical(message string, offset, length uint32) Error {
	return Error{Kind: Lexical, Message: message, Offset: offset, Length: length}
}

// NewSyntactic builds a Syntactic diagnostic covering [offset, offset+length).
func NewSyntactic(message string, offset, length uint32) Error {
	return Error{Kind: Syntactic, Message: message, Offset: offset, Length: length}
}

// Missingf builds a zero-length Syntactic diagnostic at offset, the shape
// used for "missing required token" recovery (spec.md §4.3).
func Missingf(offset uint32, format string, args ...interface{}) Error {
	return Error{Kind: Syntactic, Message: fmt.Sprintf(format, args...), Offset: offset}
}
