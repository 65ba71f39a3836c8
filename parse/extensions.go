package parse

import "github.com/dekarrin/sdlparse/token"

// extension dispatches 'extend' to whichever *Extension production follows,
// looked up by the keyword directly after 'extend' (spec.md §4.3,
// SPEC_FULL §12.1: extensions mirror their *Definition counterpart minus
// Description).
func (p *Parser) extension() {
	switch p.peekDataN(2) {
	case "schema":
		p.schemaExtension()
	case "scalar":
		p.scalarTypeExtension()
	case "type":
		p.objectTypeExtension()
	case "interface":
		p.interfaceTypeExtension()
	case "union":
		p.unionTypeExtension()
	case "enum":
		p.enumTypeExtension()
	case "input":
		p.inputObjectTypeExtension()
	default:
		g := p.startNode(token.ERROR)
		p.bump(token.EXTEND_KW)
		g.Finish()
		p.pushErr(p.errHere("expected a type system definition after \"extend\""))
	}
}

func (p *Parser) schemaExtension() {
	g := p.startNode(token.SCHEMA_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.SCHEMA_KW)
	p.directives()
	if p.at(token.LBRACE) {
		p.bump(token.LBRACE)
		p.parseList(func(k token.Kind) bool { return k == token.IDENT }, p.rootOperationTypeDefinition, token.RBRACE, "schema extension")
		p.expect(token.RBRACE, "\"}\"")
	}
}

func (p *Parser) scalarTypeExtension() {
	g := p.startNode(token.SCALAR_TYPE_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.SCALAR_KW)
	p.name()
	p.directives()
}

func (p *Parser) objectTypeExtension() {
	g := p.startNode(token.OBJECT_TYPE_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.TYPE_KW)
	p.name()
	p.implementsInterfaces()
	p.directives()
	p.fieldsDefinition()
}

func (p *Parser) interfaceTypeExtension() {
	g := p.startNode(token.INTERFACE_TYPE_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.INTERFACE_KW)
	p.name()
	p.implementsInterfaces()
	p.directives()
	p.fieldsDefinition()
}

func (p *Parser) unionTypeExtension() {
	g := p.startNode(token.UNION_TYPE_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.UNION_KW)
	p.name()
	p.directives()
	p.unionMemberTypes()
}

func (p *Parser) enumTypeExtension() {
	g := p.startNode(token.ENUM_TYPE_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.ENUM_KW)
	p.name()
	p.directives()
	p.enumValuesDefinition()
}

func (p *Parser) inputObjectTypeExtension() {
	g := p.startNode(token.INPUT_OBJECT_TYPE_EXTENSION)
	defer g.Finish()
	p.bump(token.EXTEND_KW)
	p.bump(token.INPUT_KW)
	p.name()
	p.directives()
	p.inputFieldsDefinition()
}
