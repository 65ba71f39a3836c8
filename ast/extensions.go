package ast

import "github.com/dekarrin/sdlparse/token"

// SchemaExtension wraps a SCHEMA_EXTENSION node: 'extend' 'schema' ... The
// extension productions mirror their corresponding *Definition exactly
// minus Description, per the GraphQL extension grammar and the original
// grammar's generated nodes (SPEC_FULL §12.1).
type SchemaExtension struct{ view }

func (s SchemaExtension) Directives() Directives {
	return Directives{view{child(s.n, token.DIRECTIVES)}}
}
func (s SchemaExtension) RootOperationTypeDefinitions() []RootOperationTypeDefinition {
	var out []RootOperationTypeDefinition
	for _, c := range childrenOf(s.n, token.ROOT_OPERATION_TYPE_DEFINITION) {
		out = append(out, RootOperationTypeDefinition{view{c}})
	}
	return out
}

// ScalarTypeExtension wraps a SCALAR_TYPE_EXTENSION node.
type ScalarTypeExtension struct{ view }

func (s ScalarTypeExtension) Name() Name { return Name{view{child(s.n, token.NAME)}} }
func (s ScalarTypeExtension) Directives() Directives {
	return Directives{view{child(s.n, token.DIRECTIVES)}}
}

// ObjectTypeExtension wraps an OBJECT_TYPE_EXTENSION node.
type ObjectTypeExtension struct{ view }

func (o ObjectTypeExtension) Name() Name { return Name{view{child(o.n, token.NAME)}} }
func (o ObjectTypeExtension) ImplementsInterfaces() ImplementsInterfaces {
	return ImplementsInterfaces{view{child(o.n, token.IMPLEMENTS_INTERFACES)}}
}
func (o ObjectTypeExtension) Directives() Directives {
	return Directives{view{child(o.n, token.DIRECTIVES)}}
}
func (o ObjectTypeExtension) FieldsDefinition() FieldsDefinition {
	return FieldsDefinition{view{child(o.n, token.FIELDS_DEFINITION)}}
}

// InterfaceTypeExtension wraps an INTERFACE_TYPE_EXTENSION node.
type InterfaceTypeExtension struct{ view }

func (i InterfaceTypeExtension) Name() Name { return Name{view{child(i.n, token.NAME)}} }
func (i InterfaceTypeExtension) ImplementsInterfaces() ImplementsInterfaces {
	return ImplementsInterfaces{view{child(i.n, token.IMPLEMENTS_INTERFACES)}}
}
func (i InterfaceTypeExtension) Directives() Directives {
	return Directives{view{child(i.n, token.DIRECTIVES)}}
}
func (i InterfaceTypeExtension) FieldsDefinition() FieldsDefinition {
	return FieldsDefinition{view{child(i.n, token.FIELDS_DEFINITION)}}
}

// UnionTypeExtension wraps a UNION_TYPE_EXTENSION node.
type UnionTypeExtension struct{ view }

func (u UnionTypeExtension) Name() Name { return Name{view{child(u.n, token.NAME)}} }
func (u UnionTypeExtension) Directives() Directives {
	return Directives{view{child(u.n, token.DIRECTIVES)}}
}
func (u UnionTypeExtension) UnionMemberTypes() UnionMemberTypes {
	return UnionMemberTypes{view{child(u.n, token.UNION_MEMBER_TYPES)}}
}

// EnumTypeExtension wraps an ENUM_TYPE_EXTENSION node.
type EnumTypeExtension struct{ view }

func (e EnumTypeExtension) Name() Name { return Name{view{child(e.n, token.NAME)}} }
func (e EnumTypeExtension) Directives() Directives {
	return Directives{view{child(e.n, token.DIRECTIVES)}}
}
func (e EnumTypeExtension) EnumValuesDefinition() EnumValuesDefinition {
	return EnumValuesDefinition{view{child(e.n, token.ENUM_VALUES_DEFINITION)}}
}

// InputObjectTypeExtension wraps an INPUT_OBJECT_TYPE_EXTENSION node.
type InputObjectTypeExtension struct{ view }

func (i InputObjectTypeExtension) Name() Name { return Name{view{child(i.n, token.NAME)}} }
func (i InputObjectTypeExtension) Directives() Directives {
	return Directives{view{child(i.n, token.DIRECTIVES)}}
}
func (i InputObjectTypeExtension) InputFieldsDefinition() InputFieldsDefinition {
	return InputFieldsDefinition{view{child(i.n, token.INPUT_FIELDS_DEFINITION)}}
}
