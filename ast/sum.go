package ast

import "github.com/dekarrin/sdlparse/token"

// Sum nonterminals (spec.md §4.7) are tagged unions over a fixed set of
// concrete nonterminals. Casting from an untyped node is a kind-check: a
// node is a member of a sum iff its Kind is in the sum's fixed variant set.

func isExecutableDefinition(k token.Kind) bool {
	return k == token.OPERATION_DEFINITION || k == token.FRAGMENT_DEFINITION
}

func isTypeDefinition(k token.Kind) bool {
	switch k {
	case token.SCALAR_TYPE_DEFINITION, token.OBJECT_TYPE_DEFINITION,
		token.INTERFACE_TYPE_DEFINITION, token.UNION_TYPE_DEFINITION,
		token.ENUM_TYPE_DEFINITION, token.INPUT_OBJECT_TYPE_DEFINITION:
		return true
	default:
		return false
	}
}

func isTypeExtension(k token.Kind) bool {
	switch k {
	case token.SCALAR_TYPE_EXTENSION, token.OBJECT_TYPE_EXTENSION,
		token.INTERFACE_TYPE_EXTENSION, token.UNION_TYPE_EXTENSION,
		token.ENUM_TYPE_EXTENSION, token.INPUT_OBJECT_TYPE_EXTENSION:
		return true
	default:
		return false
	}
}

func isTypeSystemDefinition(k token.Kind) bool {
	return k == token.SCHEMA_DEFINITION || k == token.DIRECTIVE_DEFINITION || isTypeDefinition(k)
}

func isTypeSystemExtension(k token.Kind) bool {
	return k == token.SCHEMA_EXTENSION || isTypeExtension(k)
}

func isDefinition(k token.Kind) bool {
	return isExecutableDefinition(k) || isTypeSystemDefinition(k) || isTypeSystemExtension(k)
}

func isSelection(k token.Kind) bool {
	return k == token.FIELD || k == token.FRAGMENT_SPREAD || k == token.INLINE_FRAGMENT
}

func isValue(k token.Kind) bool {
	switch k {
	case token.VARIABLE, token.INT_VALUE, token.FLOAT_VALUE, token.STRING_VALUE,
		token.BOOLEAN_VALUE, token.NULL_VALUE, token.ENUM_VALUE, token.LIST_VALUE,
		token.OBJECT_VALUE:
		return true
	default:
		return false
	}
}

func isType(k token.Kind) bool {
	return k == token.NAMED_TYPE || k == token.LIST_TYPE || k == token.NON_NULL_TYPE
}

// Definition is the sum over every top-level construct a Document may
// contain: executable definitions, type-system definitions, and
// type-system extensions.
type Definition struct{ view }

// AsOperationDefinition narrows a Definition to an OperationDefinition, if
// that's what it wraps.
func (d Definition) AsOperationDefinition() (OperationDefinition, bool) {
	if d.n != nil && d.n.Kind() == token.OPERATION_DEFINITION {
		return OperationDefinition{view{d.n}}, true
	}
	return OperationDefinition{}, false
}

// AsFragmentDefinition narrows a Definition to a FragmentDefinition.
func (d Definition) AsFragmentDefinition() (FragmentDefinition, bool) {
	if d.n != nil && d.n.Kind() == token.FRAGMENT_DEFINITION {
		return FragmentDefinition{view{d.n}}, true
	}
	return FragmentDefinition{}, false
}

// AsSchemaDefinition narrows a Definition to a SchemaDefinition.
func (d Definition) AsSchemaDefinition() (SchemaDefinition, bool) {
	if d.n != nil && d.n.Kind() == token.SCHEMA_DEFINITION {
		return SchemaDefinition{view{d.n}}, true
	}
	return SchemaDefinition{}, false
}

// AsDirectiveDefinition narrows a Definition to a DirectiveDefinition.
func (d Definition) AsDirectiveDefinition() (DirectiveDefinition, bool) {
	if d.n != nil && d.n.Kind() == token.DIRECTIVE_DEFINITION {
		return DirectiveDefinition{view{d.n}}, true
	}
	return DirectiveDefinition{}, false
}

// AsTypeDefinition narrows a Definition to the TypeDefinition sum (any of
// the six *TypeDefinition productions), if it is one.
func (d Definition) AsTypeDefinition() (TypeDefinition, bool) {
	if d.n != nil && isTypeDefinition(d.n.Kind()) {
		return TypeDefinition{view{d.n}}, true
	}
	return TypeDefinition{}, false
}

// AsTypeExtension narrows a Definition to the TypeExtension sum.
func (d Definition) AsTypeExtension() (TypeExtension, bool) {
	if d.n != nil && isTypeExtension(d.n.Kind()) {
		return TypeExtension{view{d.n}}, true
	}
	return TypeExtension{}, false
}

// AsSchemaExtension narrows a Definition to a SchemaExtension.
func (d Definition) AsSchemaExtension() (SchemaExtension, bool) {
	if d.n != nil && d.n.Kind() == token.SCHEMA_EXTENSION {
		return SchemaExtension{view{d.n}}, true
	}
	return SchemaExtension{}, false
}

// TypeDefinition is the sum over the six *TypeDefinition productions.
type TypeDefinition struct{ view }

func (t TypeDefinition) AsScalarTypeDefinition() (ScalarTypeDefinition, bool) {
	if t.n != nil && t.n.Kind() == token.SCALAR_TYPE_DEFINITION {
		return ScalarTypeDefinition{view{t.n}}, true
	}
	return ScalarTypeDefinition{}, false
}

func (t TypeDefinition) AsObjectTypeDefinition() (ObjectTypeDefinition, bool) {
	if t.n != nil && t.n.Kind() == token.OBJECT_TYPE_DEFINITION {
		return ObjectTypeDefinition{view{t.n}}, true
	}
	return ObjectTypeDefinition{}, false
}

func (t TypeDefinition) AsInterfaceTypeDefinition() (InterfaceTypeDefinition, bool) {
	if t.n != nil && t.n.Kind() == token.INTERFACE_TYPE_DEFINITION {
		return InterfaceTypeDefinition{view{t.n}}, true
	}
	return InterfaceTypeDefinition{}, false
}

func (t TypeDefinition) AsUnionTypeDefinition() (UnionTypeDefinition, bool) {
	if t.n != nil && t.n.Kind() == token.UNION_TYPE_DEFINITION {
		return UnionTypeDefinition{view{t.n}}, true
	}
	return UnionTypeDefinition{}, false
}

func (t TypeDefinition) AsEnumTypeDefinition() (EnumTypeDefinition, bool) {
	if t.n != nil && t.n.Kind() == token.ENUM_TYPE_DEFINITION {
		return EnumTypeDefinition{view{t.n}}, true
	}
	return EnumTypeDefinition{}, false
}

func (t TypeDefinition) AsInputObjectTypeDefinition() (InputObjectTypeDefinition, bool) {
	if t.n != nil && t.n.Kind() == token.INPUT_OBJECT_TYPE_DEFINITION {
		return InputObjectTypeDefinition{view{t.n}}, true
	}
	return InputObjectTypeDefinition{}, false
}

// TypeExtension is the sum over the six *TypeExtension productions.
type TypeExtension struct{ view }

func (t TypeExtension) AsScalarTypeExtension() (ScalarTypeExtension, bool) {
	if t.n != nil && t.n.Kind() == token.SCALAR_TYPE_EXTENSION {
		return ScalarTypeExtension{view{t.n}}, true
	}
	return ScalarTypeExtension{}, false
}

func (t TypeExtension) AsObjectTypeExtension() (ObjectTypeExtension, bool) {
	if t.n != nil && t.n.Kind() == token.OBJECT_TYPE_EXTENSION {
		return ObjectTypeExtension{view{t.n}}, true
	}
	return ObjectTypeExtension{}, false
}

func (t TypeExtension) AsInterfaceTypeExtension() (InterfaceTypeExtension, bool) {
	if t.n != nil && t.n.Kind() == token.INTERFACE_TYPE_EXTENSION {
		return InterfaceTypeExtension{view{t.n}}, true
	}
	return InterfaceTypeExtension{}, false
}

func (t TypeExtension) AsUnionTypeExtension() (UnionTypeExtension, bool) {
	if t.n != nil && t.n.Kind() == token.UNION_TYPE_EXTENSION {
		return UnionTypeExtension{view{t.n}}, true
	}
	return UnionTypeExtension{}, false
}

func (t TypeExtension) AsEnumTypeExtension() (EnumTypeExtension, bool) {
	if t.n != nil && t.n.Kind() == token.ENUM_TYPE_EXTENSION {
		return EnumTypeExtension{view{t.n}}, true
	}
	return EnumTypeExtension{}, false
}

func (t TypeExtension) AsInputObjectTypeExtension() (InputObjectTypeExtension, bool) {
	if t.n != nil && t.n.Kind() == token.INPUT_OBJECT_TYPE_EXTENSION {
		return InputObjectTypeExtension{view{t.n}}, true
	}
	return InputObjectTypeExtension{}, false
}

// Selection is the sum over Field, FragmentSpread, and InlineFragment.
type Selection struct{ view }

func (s Selection) AsField() (Field, bool) {
	if s.n != nil && s.n.Kind() == token.FIELD {
		return Field{view{s.n}}, true
	}
	return Field{}, false
}

func (s Selection) AsFragmentSpread() (FragmentSpread, bool) {
	if s.n != nil && s.n.Kind() == token.FRAGMENT_SPREAD {
		return FragmentSpread{view{s.n}}, true
	}
	return FragmentSpread{}, false
}

func (s Selection) AsInlineFragment() (InlineFragment, bool) {
	if s.n != nil && s.n.Kind() == token.INLINE_FRAGMENT {
		return InlineFragment{view{s.n}}, true
	}
	return InlineFragment{}, false
}

// Value is the sum over every literal/reference value production.
type Value struct{ view }

// Kind returns the underlying node's concrete kind, or token.ERROR if
// absent.
func (v Value) Kind() token.Kind {
	if v.n == nil {
		return token.ERROR
	}
	return v.n.Kind()
}

func (v Value) AsVariable() (Variable, bool) {
	if v.n != nil && v.n.Kind() == token.VARIABLE {
		return Variable{view{v.n}}, true
	}
	return Variable{}, false
}

func (v Value) AsIntValue() (IntValue, bool) {
	if v.n != nil && v.n.Kind() == token.INT_VALUE {
		return IntValue{view{v.n}}, true
	}
	return IntValue{}, false
}

func (v Value) AsFloatValue() (FloatValue, bool) {
	if v.n != nil && v.n.Kind() == token.FLOAT_VALUE {
		return FloatValue{view{v.n}}, true
	}
	return FloatValue{}, false
}

func (v Value) AsStringValue() (StringValue, bool) {
	if v.n != nil && v.n.Kind() == token.STRING_VALUE {
		return StringValue{view{v.n}}, true
	}
	return StringValue{}, false
}

func (v Value) AsBooleanValue() (BooleanValue, bool) {
	if v.n != nil && v.n.Kind() == token.BOOLEAN_VALUE {
		return BooleanValue{view{v.n}}, true
	}
	return BooleanValue{}, false
}

func (v Value) AsNullValue() (NullValue, bool) {
	if v.n != nil && v.n.Kind() == token.NULL_VALUE {
		return NullValue{view{v.n}}, true
	}
	return NullValue{}, false
}

func (v Value) AsEnumValue() (EnumValue, bool) {
	if v.n != nil && v.n.Kind() == token.ENUM_VALUE {
		return EnumValue{view{v.n}}, true
	}
	return EnumValue{}, false
}

func (v Value) AsListValue() (ListValue, bool) {
	if v.n != nil && v.n.Kind() == token.LIST_VALUE {
		return ListValue{view{v.n}}, true
	}
	return ListValue{}, false
}

func (v Value) AsObjectValue() (ObjectValue, bool) {
	if v.n != nil && v.n.Kind() == token.OBJECT_VALUE {
		return ObjectValue{view{v.n}}, true
	}
	return ObjectValue{}, false
}

// Type is the sum over NamedType, ListType, and NonNullType.
type Type struct{ view }

func (t Type) AsNamedType() (NamedType, bool) {
	if t.n != nil && t.n.Kind() == token.NAMED_TYPE {
		return NamedType{view{t.n}}, true
	}
	return NamedType{}, false
}

func (t Type) AsListType() (ListType, bool) {
	if t.n != nil && t.n.Kind() == token.LIST_TYPE {
		return ListType{view{t.n}}, true
	}
	return ListType{}, false
}

func (t Type) AsNonNullType() (NonNullType, bool) {
	if t.n != nil && t.n.Kind() == token.NON_NULL_TYPE {
		return NonNullType{view{t.n}}, true
	}
	return NonNullType{}, false
}
