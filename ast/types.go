package ast

import "github.com/dekarrin/sdlparse/token"

// NamedType wraps a NAMED_TYPE node: a single Name.
type NamedType struct{ view }

func (t NamedType) Name() Name { return Name{view{child(t.n, token.NAME)}} }

// ListType wraps a LIST_TYPE node: '[' Type ']'.
type ListType struct{ view }

func (t ListType) Type() Type { return firstTypeChild(t.n) }

// NonNullType wraps a NON_NULL_TYPE node: (NamedType | ListType) '!'. It
// binds tighter than both of the types it may wrap (spec.md §4.3).
type NonNullType struct{ view }

func (t NonNullType) NamedType() NamedType {
	return NamedType{view{child(t.n, token.NAMED_TYPE)}}
}

func (t NonNullType) ListType() ListType {
	return ListType{view{child(t.n, token.LIST_TYPE)}}
}
