package parse

import "github.com/dekarrin/sdlparse/token"

// canStartTypeSystemMember reports whether kind begins a member of a
// Description-prefixed list production (FieldDefinition,
// InputValueDefinition, EnumValueDefinition all allow a leading string).
func canStartTypeSystemMember(k token.Kind) bool {
	return k == token.IDENT || k == token.STRING || k == token.BLOCK_STRING
}

// typeSystemDefinitionWithDescription parses a leading DESCRIPTION and
// dispatches to whichever type-system Definition follows it, wrapping both
// under the resulting node via a builder checkpoint taken before the
// description is parsed (spec.md §4.3; SPEC_FULL §12.4).
func (p *Parser) typeSystemDefinitionWithDescription() {
	cp := p.builder.Checkpoint()
	p.description()
	switch p.peekData() {
	case "schema":
		p.schemaDefinition(&cp)
	case "scalar":
		p.scalarTypeDefinition(&cp)
	case "type":
		p.objectTypeDefinition(&cp)
	case "interface":
		p.interfaceTypeDefinition(&cp)
	case "union":
		p.unionTypeDefinition(&cp)
	case "enum":
		p.enumTypeDefinition(&cp)
	case "input":
		p.inputObjectTypeDefinition(&cp)
	case "directive":
		p.directiveDefinition(&cp)
	}
}

// schemaDefinition parses a SCHEMA_DEFINITION: 'schema' Directives? '{'
// RootOperationTypeDefinition+ '}'.
func (p *Parser) schemaDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.SCHEMA_DEFINITION)
	defer g.Finish()
	p.bump(token.SCHEMA_KW)
	p.directives()
	if !p.expect(token.LBRACE, "\"{\"") {
		return
	}
	p.parseList(func(k token.Kind) bool { return k == token.IDENT }, p.rootOperationTypeDefinition, token.RBRACE, "schema definition")
	p.expect(token.RBRACE, "\"}\"")
}

// rootOperationTypeDefinition parses a ROOT_OPERATION_TYPE_DEFINITION:
// OperationType ':' NamedType.
func (p *Parser) rootOperationTypeDefinition() {
	g := p.startNode(token.ROOT_OPERATION_TYPE_DEFINITION)
	defer g.Finish()
	kind, ok := classifyOperationType(p.peekData())
	otg := p.startNode(token.OPERATION_TYPE)
	if ok {
		p.bump(kind)
	} else {
		p.pushErr(p.errHere("expected \"query\", \"mutation\", or \"subscription\""))
	}
	otg.Finish()
	p.expect(token.COLON, "\":\"")
	p.namedType()
}

// scalarTypeDefinition parses a SCALAR_TYPE_DEFINITION: Description?
// 'scalar' Name Directives?.
func (p *Parser) scalarTypeDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.SCALAR_TYPE_DEFINITION)
	defer g.Finish()
	p.bump(token.SCALAR_KW)
	p.name()
	p.directives()
}

// objectTypeDefinition parses an OBJECT_TYPE_DEFINITION: Description?
// 'type' Name ImplementsInterfaces? Directives? FieldsDefinition?.
func (p *Parser) objectTypeDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.OBJECT_TYPE_DEFINITION)
	defer g.Finish()
	p.bump(token.TYPE_KW)
	p.name()
	p.implementsInterfaces()
	p.directives()
	p.fieldsDefinition()
}

// implementsInterfaces parses an optional IMPLEMENTS_INTERFACES node:
// 'implements' '&'? NamedType ('&' NamedType)*.
func (p *Parser) implementsInterfaces() {
	if p.peekData() != "implements" {
		return
	}
	g := p.startNode(token.IMPLEMENTS_INTERFACES)
	defer g.Finish()
	p.bump(token.IMPLEMENTS_KW)
	if p.at(token.AMP) {
		p.bump(token.AMP)
	}
	for {
		if !p.at(token.IDENT) {
			p.pushErr(p.errHere("expected interface name"))
			break
		}
		p.namedType()
		if !p.at(token.AMP) {
			break
		}
		p.bump(token.AMP)
	}
}

// fieldsDefinition parses an optional FIELDS_DEFINITION node: '{'
// FieldDefinition+ '}'.
func (p *Parser) fieldsDefinition() {
	if !p.at(token.LBRACE) {
		return
	}
	g := p.startNode(token.FIELDS_DEFINITION)
	defer g.Finish()
	p.bump(token.LBRACE)
	p.parseList(canStartTypeSystemMember, p.fieldDefinition, token.RBRACE, "fields definition")
	p.expect(token.RBRACE, "\"}\"")
}

// fieldDefinition parses a FIELD_DEFINITION: Description? Name
// ArgumentsDefinition? ':' Type Directives?.
func (p *Parser) fieldDefinition() {
	g := p.withOptionalDescription(token.FIELD_DEFINITION)
	defer g.Finish()
	p.name()
	p.argumentsDefinition()
	p.expect(token.COLON, "\":\"")
	p.type_()
	p.directives()
}

// argumentsDefinition parses an optional ARGUMENTS_DEFINITION node: '('
// InputValueDefinition+ ')'.
func (p *Parser) argumentsDefinition() {
	if !p.at(token.LPAREN) {
		return
	}
	g := p.startNode(token.ARGUMENTS_DEFINITION)
	defer g.Finish()
	p.bump(token.LPAREN)
	p.parseList(canStartTypeSystemMember, p.inputValueDefinition, token.RPAREN, "arguments definition")
	p.expect(token.RPAREN, "\")\"")
}

// inputValueDefinition parses an INPUT_VALUE_DEFINITION: Description? Name
// ':' Type DefaultValue? Directives?.
func (p *Parser) inputValueDefinition() {
	g := p.withOptionalDescription(token.INPUT_VALUE_DEFINITION)
	defer g.Finish()
	p.name()
	p.expect(token.COLON, "\":\"")
	p.type_()
	if p.at(token.EQUALS) {
		p.defaultValue()
	}
	p.directives()
}

// interfaceTypeDefinition parses an INTERFACE_TYPE_DEFINITION: Description?
// 'interface' Name ImplementsInterfaces? Directives? FieldsDefinition?.
func (p *Parser) interfaceTypeDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.INTERFACE_TYPE_DEFINITION)
	defer g.Finish()
	p.bump(token.INTERFACE_KW)
	p.name()
	p.implementsInterfaces()
	p.directives()
	p.fieldsDefinition()
}

// unionTypeDefinition parses a UNION_TYPE_DEFINITION: Description? 'union'
// Name Directives? UnionMemberTypes?.
func (p *Parser) unionTypeDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.UNION_TYPE_DEFINITION)
	defer g.Finish()
	p.bump(token.UNION_KW)
	p.name()
	p.directives()
	p.unionMemberTypes()
}

// unionMemberTypes parses an optional UNION_MEMBER_TYPES node: '=' '|'?
// NamedType ('|' NamedType)*.
func (p *Parser) unionMemberTypes() {
	if !p.at(token.EQUALS) {
		return
	}
	g := p.startNode(token.UNION_MEMBER_TYPES)
	defer g.Finish()
	p.bump(token.EQUALS)
	if p.at(token.PIPE) {
		p.bump(token.PIPE)
	}
	for {
		if !p.at(token.IDENT) {
			p.pushErr(p.errHere("expected member type name"))
			break
		}
		p.namedType()
		if !p.at(token.PIPE) {
			break
		}
		p.bump(token.PIPE)
	}
}

// enumTypeDefinition parses an ENUM_TYPE_DEFINITION: Description? 'enum'
// Name Directives? EnumValuesDefinition?.
func (p *Parser) enumTypeDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.ENUM_TYPE_DEFINITION)
	defer g.Finish()
	p.bump(token.ENUM_KW)
	p.name()
	p.directives()
	p.enumValuesDefinition()
}

// enumValuesDefinition parses an optional ENUM_VALUES_DEFINITION node: '{'
// EnumValueDefinition+ '}'.
func (p *Parser) enumValuesDefinition() {
	if !p.at(token.LBRACE) {
		return
	}
	g := p.startNode(token.ENUM_VALUES_DEFINITION)
	defer g.Finish()
	p.bump(token.LBRACE)
	p.parseList(canStartTypeSystemMember, p.enumValueDefinition, token.RBRACE, "enum values definition")
	p.expect(token.RBRACE, "\"}\"")
}

// enumValueDefinition parses an ENUM_VALUE_DEFINITION: Description?
// EnumValue Directives?.
func (p *Parser) enumValueDefinition() {
	g := p.withOptionalDescription(token.ENUM_VALUE_DEFINITION)
	defer g.Finish()
	p.enumValue()
	p.directives()
}

// inputObjectTypeDefinition parses an INPUT_OBJECT_TYPE_DEFINITION:
// Description? 'input' Name Directives? InputFieldsDefinition?.
func (p *Parser) inputObjectTypeDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.INPUT_OBJECT_TYPE_DEFINITION)
	defer g.Finish()
	p.bump(token.INPUT_KW)
	p.name()
	p.directives()
	p.inputFieldsDefinition()
}

// inputFieldsDefinition parses an optional INPUT_FIELDS_DEFINITION node:
// '{' InputValueDefinition+ '}'.
func (p *Parser) inputFieldsDefinition() {
	if !p.at(token.LBRACE) {
		return
	}
	g := p.startNode(token.INPUT_FIELDS_DEFINITION)
	defer g.Finish()
	p.bump(token.LBRACE)
	p.parseList(canStartTypeSystemMember, p.inputValueDefinition, token.RBRACE, "input fields definition")
	p.expect(token.RBRACE, "\"}\"")
}

// directiveDefinition parses a DIRECTIVE_DEFINITION: Description?
// 'directive' '@' Name ArgumentsDefinition? 'repeatable'? 'on'
// DirectiveLocations.
func (p *Parser) directiveDefinition(descCP *int) {
	g := p.startNodeMaybeAt(descCP, token.DIRECTIVE_DEFINITION)
	defer g.Finish()
	p.bump(token.DIRECTIVE_KW)
	p.expect(token.AT, "\"@\"")
	p.name()
	p.argumentsDefinition()
	if p.peekData() == "repeatable" {
		p.bump(token.IDENT)
	}
	p.expectKeyword("on", token.ON_KW, "\"on\"")
	p.directiveLocations()
}

// directiveLocations parses a DIRECTIVE_LOCATIONS node: '|'? Location
// ('|' Location)*.
func (p *Parser) directiveLocations() {
	g := p.startNode(token.DIRECTIVE_LOCATIONS)
	defer g.Finish()
	if p.at(token.PIPE) {
		p.bump(token.PIPE)
	}
	for {
		if !p.at(token.IDENT) {
			p.pushErr(p.errHere("expected directive location"))
			break
		}
		p.directiveLocation()
		if !p.at(token.PIPE) {
			break
		}
		p.bump(token.PIPE)
	}
}

// directiveLocation parses a DIRECTIVE_LOCATION wrapping one of the fixed
// uppercase location names (SPEC_FULL §12.2); an unrecognized name is still
// attached, under IDENT, alongside a diagnostic.
func (p *Parser) directiveLocation() {
	g := p.startNode(token.DIRECTIVE_LOCATION)
	defer g.Finish()
	kind, ok := classifyDirectiveLocation(p.peekData())
	if !ok {
		p.pushErr(p.errHere("unknown directive location %q", p.peekData()))
		p.bump(token.IDENT)
		return
	}
	p.bump(kind)
}

func classifyDirectiveLocation(s string) (token.Kind, bool) {
	switch s {
	case "QUERY":
		return token.QUERY_LOC, true
	case "MUTATION":
		return token.MUTATION_LOC, true
	case "SUBSCRIPTION":
		return token.SUBSCRIPTION_LOC, true
	case "FIELD":
		return token.FIELD_LOC, true
	case "FRAGMENT_DEFINITION":
		return token.FRAGMENT_DEFINITION_LOC, true
	case "FRAGMENT_SPREAD":
		return token.FRAGMENT_SPREAD_LOC, true
	case "INLINE_FRAGMENT":
		return token.INLINE_FRAGMENT_LOC, true
	case "VARIABLE_DEFINITION":
		return token.VARIABLE_DEFINITION_LOC, true
	case "SCHEMA":
		return token.SCHEMA_LOC, true
	case "SCALAR":
		return token.SCALAR_LOC, true
	case "OBJECT":
		return token.OBJECT_LOC, true
	case "FIELD_DEFINITION":
		return token.FIELD_DEFINITION_LOC, true
	case "ARGUMENT_DEFINITION":
		return token.ARGUMENT_DEFINITION_LOC, true
	case "INTERFACE":
		return token.INTERFACE_LOC, true
	case "UNION":
		return token.UNION_LOC, true
	case "ENUM":
		return token.ENUM_LOC, true
	case "ENUM_VALUE":
		return token.ENUM_VALUE_LOC, true
	case "INPUT_OBJECT":
		return token.INPUT_OBJECT_LOC, true
	case "INPUT_FIELD_DEFINITION":
		return token.INPUT_FIELD_DEFINITION_LOC, true
	default:
		return token.ERROR, false
	}
}
