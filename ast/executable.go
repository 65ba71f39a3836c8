package ast

import "github.com/dekarrin/sdlparse/token"

// Name wraps a NAME node: a single IDENT token giving it an identifier's
// text.
type Name struct{ view }

func (n Name) IDENT() string {
	if n.n == nil {
		return ""
	}
	if t := child(n.n, token.IDENT); t != nil {
		return t.Text()
	}
	return ""
}

// Document is the typed root view: a DOCUMENT node containing zero or more
// Definitions (spec.md §4.3, §6).
type Document struct{ view }

// Definitions iterates every top-level Definition this document contains,
// in source order.
func (d Document) Definitions() []Definition {
	if d.n == nil {
		return nil
	}
	var out []Definition
	for _, c := range d.n.Children() {
		if isDefinition(c.Kind()) {
			out = append(out, Definition{view{c}})
		}
	}
	return out
}

// OperationDefinition wraps an OPERATION_DEFINITION node: an explicit
// operation type and optional name, or the anonymous shorthand (just a
// SelectionSet).
type OperationDefinition struct{ view }

// OperationType returns the leading query/mutation/subscription keyword
// token's text, or "query" for the anonymous shorthand per the GraphQL
// executable grammar's default.
func (o OperationDefinition) OperationType() string {
	if o.n == nil {
		return ""
	}
	if t := child(o.n, token.OPERATION_TYPE); t != nil {
		if kw := t.LastToken(); kw != nil {
			return kw.Text()
		}
	}
	return "query"
}

func (o OperationDefinition) Name() Name {
	return Name{view{child(o.n, token.NAME)}}
}

func (o OperationDefinition) VariableDefinitions() VariableDefinitions {
	return VariableDefinitions{view{child(o.n, token.VARIABLE_DEFINITIONS)}}
}

func (o OperationDefinition) Directives() Directives {
	return Directives{view{child(o.n, token.DIRECTIVES)}}
}

func (o OperationDefinition) SelectionSet() SelectionSet {
	return SelectionSet{view{child(o.n, token.SELECTION_SET)}}
}

// VariableDefinitions wraps a VARIABLE_DEFINITIONS node: zero or more
// VariableDefinition children inside parens.
type VariableDefinitions struct{ view }

func (v VariableDefinitions) Definitions() []VariableDefinition {
	var out []VariableDefinition
	for _, c := range childrenOf(v.n, token.VARIABLE_DEFINITION) {
		out = append(out, VariableDefinition{view{c}})
	}
	return out
}

// VariableDefinition wraps a VARIABLE_DEFINITION node: $name: Type = default.
type VariableDefinition struct{ view }

func (v VariableDefinition) Variable() Variable {
	return Variable{view{child(v.n, token.VARIABLE)}}
}

func (v VariableDefinition) Type() Type {
	return firstTypeChild(v.n)
}

func (v VariableDefinition) DefaultValue() DefaultValue {
	return DefaultValue{view{child(v.n, token.DEFAULT_VALUE)}}
}

func (v VariableDefinition) Directives() Directives {
	return Directives{view{child(v.n, token.DIRECTIVES)}}
}

// Variable wraps a VARIABLE node: $ followed by a Name.
type Variable struct{ view }

func (v Variable) Name() Name { return Name{view{child(v.n, token.NAME)}} }

// DefaultValue wraps a DEFAULT_VALUE node: = followed by a Value.
type DefaultValue struct{ view }

func (d DefaultValue) Value() Value { return firstValueChild(d.n) }

// SelectionSet wraps a SELECTION_SET node: a brace-delimited list of
// Selections.
type SelectionSet struct{ view }

func (s SelectionSet) Selections() []Selection {
	if s.n == nil {
		return nil
	}
	var out []Selection
	for _, c := range s.n.Children() {
		if isSelection(c.Kind()) {
			out = append(out, Selection{view{c}})
		}
	}
	return out
}

// Field wraps a FIELD node: an optional alias, a name, optional arguments,
// directives, and a nested selection set.
type Field struct{ view }

func (f Field) Alias() Alias { return Alias{view{child(f.n, token.ALIAS)}} }
func (f Field) Name() Name   { return Name{view{child(f.n, token.NAME)}} }
func (f Field) Arguments() Arguments {
	return Arguments{view{child(f.n, token.ARGUMENTS)}}
}
func (f Field) Directives() Directives {
	return Directives{view{child(f.n, token.DIRECTIVES)}}
}
func (f Field) SelectionSet() SelectionSet {
	return SelectionSet{view{child(f.n, token.SELECTION_SET)}}
}

// Alias wraps an ALIAS node: Name ':'.
type Alias struct{ view }

func (a Alias) Name() Name { return Name{view{child(a.n, token.NAME)}} }

// Arguments wraps an ARGUMENTS node: a paren-delimited list of Argument.
type Arguments struct{ view }

func (a Arguments) Arguments() []Argument {
	var out []Argument
	for _, c := range childrenOf(a.n, token.ARGUMENT) {
		out = append(out, Argument{view{c}})
	}
	return out
}

// Argument wraps an ARGUMENT node: Name ':' Value.
type Argument struct{ view }

func (a Argument) Name() Name   { return Name{view{child(a.n, token.NAME)}} }
func (a Argument) Value() Value { return firstValueChild(a.n) }

// FragmentSpread wraps a FRAGMENT_SPREAD node: '...' FragmentName Directives.
type FragmentSpread struct{ view }

func (f FragmentSpread) FragmentName() FragmentName {
	return FragmentName{view{child(f.n, token.FRAGMENT_NAME)}}
}
func (f FragmentSpread) Directives() Directives {
	return Directives{view{child(f.n, token.DIRECTIVES)}}
}

// InlineFragment wraps an INLINE_FRAGMENT node: '...' optional TypeCondition
// Directives SelectionSet.
type InlineFragment struct{ view }

func (i InlineFragment) TypeCondition() TypeCondition {
	return TypeCondition{view{child(i.n, token.TYPE_CONDITION)}}
}
func (i InlineFragment) Directives() Directives {
	return Directives{view{child(i.n, token.DIRECTIVES)}}
}
func (i InlineFragment) SelectionSet() SelectionSet {
	return SelectionSet{view{child(i.n, token.SELECTION_SET)}}
}

// FragmentDefinition wraps a FRAGMENT_DEFINITION node.
type FragmentDefinition struct{ view }

func (f FragmentDefinition) FragmentName() FragmentName {
	return FragmentName{view{child(f.n, token.FRAGMENT_NAME)}}
}
func (f FragmentDefinition) TypeCondition() TypeCondition {
	return TypeCondition{view{child(f.n, token.TYPE_CONDITION)}}
}
func (f FragmentDefinition) Directives() Directives {
	return Directives{view{child(f.n, token.DIRECTIVES)}}
}
func (f FragmentDefinition) SelectionSet() SelectionSet {
	return SelectionSet{view{child(f.n, token.SELECTION_SET)}}
}

// FragmentName wraps a FRAGMENT_NAME node: a Name guaranteed not to be "on".
type FragmentName struct{ view }

func (f FragmentName) Name() Name { return Name{view{child(f.n, token.NAME)}} }

// TypeCondition wraps a TYPE_CONDITION node: 'on' NamedType.
type TypeCondition struct{ view }

func (t TypeCondition) NamedType() NamedType {
	return NamedType{view{child(t.n, token.NAMED_TYPE)}}
}

// Directives wraps a DIRECTIVES node: one or more Directive.
type Directives struct{ view }

func (d Directives) Directives() []Directive {
	var out []Directive
	for _, c := range childrenOf(d.n, token.DIRECTIVE) {
		out = append(out, Directive{view{c}})
	}
	return out
}

// Directive wraps a DIRECTIVE node: '@' Name optional Arguments.
type Directive struct{ view }

func (d Directive) Name() Name           { return Name{view{child(d.n, token.NAME)}} }
func (d Directive) Arguments() Arguments { return Arguments{view{child(d.n, token.ARGUMENTS)}} }

