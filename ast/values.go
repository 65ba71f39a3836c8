package ast

import "github.com/dekarrin/sdlparse/token"

// IntValue, FloatValue, StringValue, BooleanValue, NullValue, and EnumValue
// are all thin leaf wrappers: their only content is the literal token's own
// text, so each just forwards to view.Text(). They're still distinct Go
// types (rather than one typed-string alias) so a caller narrowing a Value
// via its Kind() gets a type matching what the grammar says it is.

type IntValue struct{ view }
type FloatValue struct{ view }
type StringValue struct{ view }
type BooleanValue struct{ view }
type NullValue struct{ view }
type EnumValue struct{ view }

// ListValue wraps a LIST_VALUE node: '[' zero or more Value ']'.
type ListValue struct{ view }

func (l ListValue) Values() []Value {
	if l.n == nil {
		return nil
	}
	var out []Value
	for _, c := range l.n.Children() {
		if isValue(c.Kind()) {
			out = append(out, Value{view{c}})
		}
	}
	return out
}

// ObjectValue wraps an OBJECT_VALUE node: '{' zero or more ObjectField '}'.
type ObjectValue struct{ view }

func (o ObjectValue) Fields() []ObjectField {
	var out []ObjectField
	for _, c := range childrenOf(o.n, token.OBJECT_FIELD) {
		out = append(out, ObjectField{view{c}})
	}
	return out
}

// ObjectField wraps an OBJECT_FIELD node: Name ':' Value.
type ObjectField struct{ view }

func (o ObjectField) Name() Name   { return Name{view{child(o.n, token.NAME)}} }
func (o ObjectField) Value() Value { return firstValueChild(o.n) }
