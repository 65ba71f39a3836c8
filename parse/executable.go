package parse

import (
	"github.com/dekarrin/sdlparse/ast"
	"github.com/dekarrin/sdlparse/diag"
	"github.com/dekarrin/sdlparse/token"
)

// Parse runs the grammar over the Parser's source and returns the finished
// syntax tree. Consuming the parser this way guarantees the builder is
// finalized: New lexes, Parse builds the tree, and the returned SyntaxTree
// is the only way to get at either (spec.md §6).
func (p *Parser) Parse() *ast.SyntaxTree {
	p.document()
	root := p.builder.Finish()
	return ast.New(root, p.errors)
}

// document parses the DOCUMENT root: zero or more Definitions. Reaching a
// token that starts none of them stops the loop without consuming it as a
// Definition; any bytes left over are absorbed as trailing children of
// DOCUMENT (preserving losslessness) with at most one diagnostic, per the
// "unknown top-level construct" recovery policy (spec.md §4.3).
func (p *Parser) document() {
	g := p.startNode(token.DOCUMENT)
	defer g.Finish()
	for !p.atEOF() && p.startsDefinition(p.peek()) {
		p.definition()
	}
	p.consumeTrailingBytes()
}

// consumeTrailingBytes absorbs whatever remains after document's loop
// stops. Pure trailing trivia is flushed silently; any remaining
// significant token is wrapped in one ERROR node with one diagnostic
// rather than one per leftover token.
func (p *Parser) consumeTrailingBytes() {
	if p.atEOF() {
		p.flushTrivia()
		return
	}
	start := p.nthSignificant(1).Offset
	g := p.startNode(token.ERROR)
	for !p.atEOF() {
		p.bumpAny()
	}
	g.Finish()
	p.flushTrivia()
	p.pushErr(diag.NewSyntactic("unrecognized top-level construct", start, p.sourceLen-start))
}

// startsDefinition reports whether the upcoming token(s) begin a
// Definition: an anonymous query's '{', a leading description followed by
// a type-system keyword, or one of the executable/type-system/extension
// leading keywords (spec.md §4.3, §4.8).
func (p *Parser) startsDefinition(k token.Kind) bool {
	switch k {
	case token.LBRACE:
		return true
	case token.STRING, token.BLOCK_STRING:
		return isTypeSystemKeyword(p.peekDataN(2))
	case token.IDENT:
		return isExecutableKeyword(p.peekData()) || isTypeSystemKeyword(p.peekData()) || p.peekData() == "extend"
	default:
		return false
	}
}

func isExecutableKeyword(s string) bool {
	switch s {
	case "query", "mutation", "subscription", "fragment":
		return true
	default:
		return false
	}
}

func isTypeSystemKeyword(s string) bool {
	switch s {
	case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive":
		return true
	default:
		return false
	}
}

// definition dispatches a single Definition by its leading token(s).
func (p *Parser) definition() {
	switch {
	case p.at(token.LBRACE):
		p.operationDefinition()
	case p.at(token.STRING) || p.at(token.BLOCK_STRING):
		p.typeSystemDefinitionWithDescription()
	case p.peekData() == "query", p.peekData() == "mutation", p.peekData() == "subscription":
		p.operationDefinition()
	case p.peekData() == "fragment":
		p.fragmentDefinition()
	case p.peekData() == "schema":
		p.schemaDefinition(nil)
	case p.peekData() == "scalar":
		p.scalarTypeDefinition(nil)
	case p.peekData() == "type":
		p.objectTypeDefinition(nil)
	case p.peekData() == "interface":
		p.interfaceTypeDefinition(nil)
	case p.peekData() == "union":
		p.unionTypeDefinition(nil)
	case p.peekData() == "enum":
		p.enumTypeDefinition(nil)
	case p.peekData() == "input":
		p.inputObjectTypeDefinition(nil)
	case p.peekData() == "directive":
		p.directiveDefinition(nil)
	case p.peekData() == "extend":
		p.extension()
	}
}

// classifyOperationType maps an operation-type keyword's text to its
// terminal kind.
func classifyOperationType(data string) (token.Kind, bool) {
	switch data {
	case "query":
		return token.QUERY_KW, true
	case "mutation":
		return token.MUTATION_KW, true
	case "subscription":
		return token.SUBSCRIPTION_KW, true
	default:
		return token.ERROR, false
	}
}

// operationDefinition parses an OPERATION_DEFINITION: either the anonymous
// shorthand (just a SelectionSet) or an explicit operation type, optional
// name, variable definitions, directives, and selection set (spec.md
// §4.3, §4.8).
func (p *Parser) operationDefinition() {
	g := p.startNode(token.OPERATION_DEFINITION)
	defer g.Finish()
	if p.at(token.LBRACE) {
		p.selectionSet()
		return
	}
	kind, _ := classifyOperationType(p.peekData())
	otg := p.startNode(token.OPERATION_TYPE)
	p.bump(kind)
	otg.Finish()
	if p.at(token.IDENT) {
		p.name()
	}
	p.variableDefinitions()
	p.directives()
	p.selectionSet()
}

// variableDefinitions parses an optional VARIABLE_DEFINITIONS node: '('
// VariableDefinition* ')'.
func (p *Parser) variableDefinitions() {
	if !p.at(token.LPAREN) {
		return
	}
	g := p.startNode(token.VARIABLE_DEFINITIONS)
	defer g.Finish()
	p.bump(token.LPAREN)
	p.parseList(func(k token.Kind) bool { return k == token.DOLLAR }, p.variableDefinition, token.RPAREN, "variable definitions")
	p.expect(token.RPAREN, "\")\"")
}

// variableDefinition parses a VARIABLE_DEFINITION: Variable ':' Type
// DefaultValue? Directives?.
func (p *Parser) variableDefinition() {
	g := p.startNode(token.VARIABLE_DEFINITION)
	defer g.Finish()
	p.variable()
	p.expect(token.COLON, "\":\"")
	p.type_()
	if p.at(token.EQUALS) {
		p.defaultValue()
	}
	p.directives()
}

// canStartSelection reports whether kind begins a Selection.
func canStartSelection(k token.Kind) bool {
	return k == token.IDENT || k == token.SPREAD
}

// selectionSet parses a SELECTION_SET node: '{' Selection+ '}'.
func (p *Parser) selectionSet() {
	g := p.startNode(token.SELECTION_SET)
	defer g.Finish()
	if !p.expect(token.LBRACE, "\"{\"") {
		return
	}
	p.parseList(canStartSelection, p.selection, token.RBRACE, "selection set")
	p.expect(token.RBRACE, "\"}\"")
}

// selection dispatches a single Selection: Field, FragmentSpread, or
// InlineFragment, the latter two distinguished by the token(s) following
// '...' (spec.md §4.8).
func (p *Parser) selection() {
	switch {
	case p.at(token.SPREAD):
		switch {
		case p.peekDataN(2) == "on" || p.peekN(2) == token.LBRACE || p.peekN(2) == token.AT:
			p.inlineFragment()
		case p.peekN(2) == token.IDENT:
			p.fragmentSpread()
		default:
			g := p.startNode(token.ERROR)
			p.bump(token.SPREAD)
			g.Finish()
			p.pushErr(p.errHere("expected fragment name, \"on\", \"@\", or \"{\" after \"...\""))
		}
	case p.at(token.IDENT):
		p.field()
	default:
		p.pushErr(p.errHere("expected selection"))
	}
}

// field parses a FIELD: Alias? Name Arguments? Directives? SelectionSet?.
// An alias is recognized by a second lookahead token of ':' after the
// leading Name (spec.md §4.3).
func (p *Parser) field() {
	g := p.startNode(token.FIELD)
	defer g.Finish()
	if p.peekN(2) == token.COLON {
		ag := p.startNode(token.ALIAS)
		p.name()
		p.expect(token.COLON, "\":\"")
		ag.Finish()
	}
	p.name()
	p.arguments()
	p.directives()
	if p.at(token.LBRACE) {
		p.selectionSet()
	}
}

// fragmentSpread parses a FRAGMENT_SPREAD: '...' FragmentName Directives?.
func (p *Parser) fragmentSpread() {
	g := p.startNode(token.FRAGMENT_SPREAD)
	defer g.Finish()
	p.bump(token.SPREAD)
	p.fragmentName()
	p.directives()
}

// inlineFragment parses an INLINE_FRAGMENT: '...' TypeCondition? Directives?
// SelectionSet.
func (p *Parser) inlineFragment() {
	g := p.startNode(token.INLINE_FRAGMENT)
	defer g.Finish()
	p.bump(token.SPREAD)
	if p.peekData() == "on" {
		p.typeCondition()
	}
	p.directives()
	p.selectionSet()
}

// typeCondition parses a TYPE_CONDITION: 'on' NamedType.
func (p *Parser) typeCondition() {
	g := p.startNode(token.TYPE_CONDITION)
	defer g.Finish()
	p.expectKeyword("on", token.ON_KW, "\"on\"")
	p.namedType()
}

// fragmentDefinition parses a FRAGMENT_DEFINITION: 'fragment' FragmentName
// TypeCondition Directives? SelectionSet.
func (p *Parser) fragmentDefinition() {
	g := p.startNode(token.FRAGMENT_DEFINITION)
	defer g.Finish()
	p.bump(token.FRAGMENT_KW)
	p.fragmentName()
	p.typeCondition()
	p.directives()
	p.selectionSet()
}
