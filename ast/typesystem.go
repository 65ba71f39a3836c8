package ast

import "github.com/dekarrin/sdlparse/token"

// Description wraps an optional DESCRIPTION node preceding most
// type-system definitions: a String or BlockString value (SPEC_FULL §12.4).
type Description struct{ view }

func (d Description) Value() Value { return firstValueChild(d.n) }

// SchemaDefinition wraps a SCHEMA_DEFINITION node.
type SchemaDefinition struct{ view }

func (s SchemaDefinition) Description() Description {
	return Description{view{child(s.n, token.DESCRIPTION)}}
}
func (s SchemaDefinition) Directives() Directives {
	return Directives{view{child(s.n, token.DIRECTIVES)}}
}
func (s SchemaDefinition) RootOperationTypeDefinitions() []RootOperationTypeDefinition {
	var out []RootOperationTypeDefinition
	for _, c := range childrenOf(s.n, token.ROOT_OPERATION_TYPE_DEFINITION) {
		out = append(out, RootOperationTypeDefinition{view{c}})
	}
	return out
}

// RootOperationTypeDefinition wraps a ROOT_OPERATION_TYPE_DEFINITION node:
// OperationType ':' NamedType.
type RootOperationTypeDefinition struct{ view }

func (r RootOperationTypeDefinition) OperationType() string {
	if t := child(r.n, token.OPERATION_TYPE); t != nil {
		if kw := t.LastToken(); kw != nil {
			return kw.Text()
		}
	}
	return ""
}
func (r RootOperationTypeDefinition) NamedType() NamedType {
	return NamedType{view{child(r.n, token.NAMED_TYPE)}}
}

// ScalarTypeDefinition wraps a SCALAR_TYPE_DEFINITION node.
type ScalarTypeDefinition struct{ view }

func (s ScalarTypeDefinition) Description() Description {
	return Description{view{child(s.n, token.DESCRIPTION)}}
}
func (s ScalarTypeDefinition) Name() Name { return Name{view{child(s.n, token.NAME)}} }
func (s ScalarTypeDefinition) Directives() Directives {
	return Directives{view{child(s.n, token.DIRECTIVES)}}
}

// ObjectTypeDefinition wraps an OBJECT_TYPE_DEFINITION node.
type ObjectTypeDefinition struct{ view }

func (o ObjectTypeDefinition) Description() Description {
	return Description{view{child(o.n, token.DESCRIPTION)}}
}
func (o ObjectTypeDefinition) Name() Name { return Name{view{child(o.n, token.NAME)}} }
func (o ObjectTypeDefinition) ImplementsInterfaces() ImplementsInterfaces {
	return ImplementsInterfaces{view{child(o.n, token.IMPLEMENTS_INTERFACES)}}
}
func (o ObjectTypeDefinition) Directives() Directives {
	return Directives{view{child(o.n, token.DIRECTIVES)}}
}
func (o ObjectTypeDefinition) FieldsDefinition() FieldsDefinition {
	return FieldsDefinition{view{child(o.n, token.FIELDS_DEFINITION)}}
}

// ImplementsInterfaces wraps an IMPLEMENTS_INTERFACES node: 'implements'
// '&'-separated NamedType list.
type ImplementsInterfaces struct{ view }

func (i ImplementsInterfaces) NamedTypes() []NamedType {
	var out []NamedType
	for _, c := range childrenOf(i.n, token.NAMED_TYPE) {
		out = append(out, NamedType{view{c}})
	}
	return out
}

// FieldsDefinition wraps a FIELDS_DEFINITION node: '{' FieldDefinition* '}'.
type FieldsDefinition struct{ view }

func (f FieldsDefinition) Definitions() []FieldDefinition {
	var out []FieldDefinition
	for _, c := range childrenOf(f.n, token.FIELD_DEFINITION) {
		out = append(out, FieldDefinition{view{c}})
	}
	return out
}

// FieldDefinition wraps a FIELD_DEFINITION node.
type FieldDefinition struct{ view }

func (f FieldDefinition) Description() Description {
	return Description{view{child(f.n, token.DESCRIPTION)}}
}
func (f FieldDefinition) Name() Name { return Name{view{child(f.n, token.NAME)}} }
func (f FieldDefinition) ArgumentsDefinition() ArgumentsDefinition {
	return ArgumentsDefinition{view{child(f.n, token.ARGUMENTS_DEFINITION)}}
}
func (f FieldDefinition) Type() Type { return firstTypeChild(f.n) }
func (f FieldDefinition) Directives() Directives {
	return Directives{view{child(f.n, token.DIRECTIVES)}}
}

// ArgumentsDefinition wraps an ARGUMENTS_DEFINITION node: '(' InputValueDefinition* ')'.
type ArgumentsDefinition struct{ view }

func (a ArgumentsDefinition) Definitions() []InputValueDefinition {
	var out []InputValueDefinition
	for _, c := range childrenOf(a.n, token.INPUT_VALUE_DEFINITION) {
		out = append(out, InputValueDefinition{view{c}})
	}
	return out
}

// InputValueDefinition wraps an INPUT_VALUE_DEFINITION node.
type InputValueDefinition struct{ view }

func (i InputValueDefinition) Description() Description {
	return Description{view{child(i.n, token.DESCRIPTION)}}
}
func (i InputValueDefinition) Name() Name { return Name{view{child(i.n, token.NAME)}} }
func (i InputValueDefinition) Type() Type { return firstTypeChild(i.n) }
func (i InputValueDefinition) DefaultValue() DefaultValue {
	return DefaultValue{view{child(i.n, token.DEFAULT_VALUE)}}
}
func (i InputValueDefinition) Directives() Directives {
	return Directives{view{child(i.n, token.DIRECTIVES)}}
}

// InterfaceTypeDefinition wraps an INTERFACE_TYPE_DEFINITION node.
type InterfaceTypeDefinition struct{ view }

func (i InterfaceTypeDefinition) Description() Description {
	return Description{view{child(i.n, token.DESCRIPTION)}}
}
func (i InterfaceTypeDefinition) Name() Name { return Name{view{child(i.n, token.NAME)}} }
func (i InterfaceTypeDefinition) ImplementsInterfaces() ImplementsInterfaces {
	return ImplementsInterfaces{view{child(i.n, token.IMPLEMENTS_INTERFACES)}}
}
func (i InterfaceTypeDefinition) Directives() Directives {
	return Directives{view{child(i.n, token.DIRECTIVES)}}
}
func (i InterfaceTypeDefinition) FieldsDefinition() FieldsDefinition {
	return FieldsDefinition{view{child(i.n, token.FIELDS_DEFINITION)}}
}

// UnionTypeDefinition wraps a UNION_TYPE_DEFINITION node.
type UnionTypeDefinition struct{ view }

func (u UnionTypeDefinition) Description() Description {
	return Description{view{child(u.n, token.DESCRIPTION)}}
}
func (u UnionTypeDefinition) Name() Name { return Name{view{child(u.n, token.NAME)}} }
func (u UnionTypeDefinition) Directives() Directives {
	return Directives{view{child(u.n, token.DIRECTIVES)}}
}
func (u UnionTypeDefinition) UnionMemberTypes() UnionMemberTypes {
	return UnionMemberTypes{view{child(u.n, token.UNION_MEMBER_TYPES)}}
}

// UnionMemberTypes wraps a UNION_MEMBER_TYPES node: '=' '|'-separated
// NamedType list.
type UnionMemberTypes struct{ view }

func (u UnionMemberTypes) NamedTypes() []NamedType {
	var out []NamedType
	for _, c := range childrenOf(u.n, token.NAMED_TYPE) {
		out = append(out, NamedType{view{c}})
	}
	return out
}

// EnumTypeDefinition wraps an ENUM_TYPE_DEFINITION node.
type EnumTypeDefinition struct{ view }

func (e EnumTypeDefinition) Description() Description {
	return Description{view{child(e.n, token.DESCRIPTION)}}
}
func (e EnumTypeDefinition) Name() Name { return Name{view{child(e.n, token.NAME)}} }
func (e EnumTypeDefinition) Directives() Directives {
	return Directives{view{child(e.n, token.DIRECTIVES)}}
}
func (e EnumTypeDefinition) EnumValuesDefinition() EnumValuesDefinition {
	return EnumValuesDefinition{view{child(e.n, token.ENUM_VALUES_DEFINITION)}}
}

// EnumValuesDefinition wraps an ENUM_VALUES_DEFINITION node: '{' EnumValueDefinition* '}'.
type EnumValuesDefinition struct{ view }

func (e EnumValuesDefinition) Definitions() []EnumValueDefinition {
	var out []EnumValueDefinition
	for _, c := range childrenOf(e.n, token.ENUM_VALUE_DEFINITION) {
		out = append(out, EnumValueDefinition{view{c}})
	}
	return out
}

// EnumValueDefinition wraps an ENUM_VALUE_DEFINITION node.
type EnumValueDefinition struct{ view }

func (e EnumValueDefinition) Description() Description {
	return Description{view{child(e.n, token.DESCRIPTION)}}
}
func (e EnumValueDefinition) EnumValue() EnumValue {
	return EnumValue{view{child(e.n, token.ENUM_VALUE)}}
}
func (e EnumValueDefinition) Directives() Directives {
	return Directives{view{child(e.n, token.DIRECTIVES)}}
}

// InputObjectTypeDefinition wraps an INPUT_OBJECT_TYPE_DEFINITION node.
type InputObjectTypeDefinition struct{ view }

func (i InputObjectTypeDefinition) Description() Description {
	return Description{view{child(i.n, token.DESCRIPTION)}}
}
func (i InputObjectTypeDefinition) Name() Name { return Name{view{child(i.n, token.NAME)}} }
func (i InputObjectTypeDefinition) Directives() Directives {
	return Directives{view{child(i.n, token.DIRECTIVES)}}
}
func (i InputObjectTypeDefinition) InputFieldsDefinition() InputFieldsDefinition {
	return InputFieldsDefinition{view{child(i.n, token.INPUT_FIELDS_DEFINITION)}}
}

// InputFieldsDefinition wraps an INPUT_FIELDS_DEFINITION node: '{' InputValueDefinition* '}'.
type InputFieldsDefinition struct{ view }

func (i InputFieldsDefinition) Definitions() []InputValueDefinition {
	var out []InputValueDefinition
	for _, c := range childrenOf(i.n, token.INPUT_VALUE_DEFINITION) {
		out = append(out, InputValueDefinition{view{c}})
	}
	return out
}

// DirectiveDefinition wraps a DIRECTIVE_DEFINITION node.
type DirectiveDefinition struct{ view }

func (d DirectiveDefinition) Description() Description {
	return Description{view{child(d.n, token.DESCRIPTION)}}
}
func (d DirectiveDefinition) Name() Name { return Name{view{child(d.n, token.NAME)}} }
func (d DirectiveDefinition) ArgumentsDefinition() ArgumentsDefinition {
	return ArgumentsDefinition{view{child(d.n, token.ARGUMENTS_DEFINITION)}}
}
func (d DirectiveDefinition) Repeatable() bool {
	t := child(d.n, token.IDENT)
	return t != nil && t.Text() == "repeatable"
}
func (d DirectiveDefinition) DirectiveLocations() DirectiveLocations {
	return DirectiveLocations{view{child(d.n, token.DIRECTIVE_LOCATIONS)}}
}

// DirectiveLocations wraps a DIRECTIVE_LOCATIONS node: '|'-separated list of
// DirectiveLocation.
type DirectiveLocations struct{ view }

func (d DirectiveLocations) Locations() []DirectiveLocation {
	var out []DirectiveLocation
	for _, c := range childrenOf(d.n, token.DIRECTIVE_LOCATION) {
		out = append(out, DirectiveLocation{view{c}})
	}
	return out
}

// DirectiveLocation wraps a DIRECTIVE_LOCATION node: one of the fixed
// uppercase location names (SPEC_FULL §12.2).
type DirectiveLocation struct{ view }

func (d DirectiveLocation) Name() string {
	if d.n == nil {
		return ""
	}
	if tok := d.n.LastToken(); tok != nil {
		return tok.Text()
	}
	return ""
}
