package parse

import "github.com/dekarrin/sdlparse/token"

// name parses a NAME node: a single IDENT. Missing entirely, it still opens
// the node and records a zero-length diagnostic, so callers always get a
// NAME back rather than having to special-case its absence (spec.md §4.3,
// §4.7).
func (p *Parser) name() {
	g := p.startNode(token.NAME)
	defer g.Finish()
	if p.at(token.IDENT) {
		p.bump(token.IDENT)
		return
	}
	p.pushErr(p.errHere("expected name"))
}

// fragmentName parses a FRAGMENT_NAME node: a Name that must not be the
// text "on" (spec.md §4.8; GraphQL reserves it to disambiguate fragment
// spreads from inline fragments).
func (p *Parser) fragmentName() {
	g := p.startNode(token.FRAGMENT_NAME)
	defer g.Finish()
	if p.at(token.IDENT) && p.peekData() != "on" {
		p.name()
		return
	}
	p.pushErr(p.errHere("expected fragment name"))
}

// description parses a DESCRIPTION node wrapping a single string Value.
// Callers check for STRING/BLOCK_STRING lookahead before calling this.
func (p *Parser) description() {
	g := p.startNode(token.DESCRIPTION)
	defer g.Finish()
	p.stringValue()
}

func (p *Parser) stringValue() {
	p.flushTrivia()
	g := p.startNode(token.STRING_VALUE)
	defer g.Finish()
	switch {
	case p.at(token.STRING):
		p.bump(token.STRING)
	case p.at(token.BLOCK_STRING):
		p.bump(token.BLOCK_STRING)
	default:
		p.pushErr(p.errHere("expected string"))
	}
}

// canStartValue reports whether kind begins the Value grammar (spec.md
// §4.3).
func canStartValue(k token.Kind) bool {
	switch k {
	case token.DOLLAR, token.INT, token.FLOAT, token.STRING, token.BLOCK_STRING,
		token.IDENT, token.LBRACKET, token.LBRACE:
		return true
	default:
		return false
	}
}

// value parses the Value sum: Variable, Int/Float/String/Boolean/Null/Enum
// literal, ListValue, or ObjectValue (spec.md §4.3, §4.8).
func (p *Parser) value() {
	p.flushTrivia()
	switch {
	case p.at(token.DOLLAR):
		p.variable()
	case p.at(token.INT):
		g := p.startNode(token.INT_VALUE)
		p.bump(token.INT)
		g.Finish()
	case p.at(token.FLOAT):
		g := p.startNode(token.FLOAT_VALUE)
		p.bump(token.FLOAT)
		g.Finish()
	case p.at(token.STRING) || p.at(token.BLOCK_STRING):
		p.stringValue()
	case p.at(token.IDENT):
		p.identLikeValue()
	case p.at(token.LBRACKET):
		p.listValue()
	case p.at(token.LBRACE):
		p.objectValue()
	default:
		p.pushErr(p.errHere("expected value"))
	}
}

// identLikeValue classifies a bare identifier as boolean, null, or enum, in
// that fixed order (spec.md §4.8): "true"/"false" and "null" are reserved
// and can never themselves be an EnumValue.
func (p *Parser) identLikeValue() {
	switch p.peekData() {
	case "true":
		g := p.startNode(token.BOOLEAN_VALUE)
		p.bump(token.TRUE_KW)
		g.Finish()
	case "false":
		g := p.startNode(token.BOOLEAN_VALUE)
		p.bump(token.FALSE_KW)
		g.Finish()
	case "null":
		g := p.startNode(token.NULL_VALUE)
		p.bump(token.NULL_KW)
		g.Finish()
	default:
		p.enumValue()
	}
}

func (p *Parser) enumValue() {
	p.flushTrivia()
	g := p.startNode(token.ENUM_VALUE)
	defer g.Finish()
	if !p.at(token.IDENT) {
		p.pushErr(p.errHere("expected enum value"))
		return
	}
	p.bump(token.IDENT)
}

// variable parses a VARIABLE node: '$' Name.
func (p *Parser) variable() {
	g := p.startNode(token.VARIABLE)
	defer g.Finish()
	p.expect(token.DOLLAR, "\"$\"")
	p.name()
}

// defaultValue parses a DEFAULT_VALUE node: '=' Value.
func (p *Parser) defaultValue() {
	g := p.startNode(token.DEFAULT_VALUE)
	defer g.Finish()
	p.bump(token.EQUALS)
	p.value()
}

// listValue parses a LIST_VALUE node: '[' Value* ']'.
func (p *Parser) listValue() {
	g := p.startNode(token.LIST_VALUE)
	defer g.Finish()
	p.bump(token.LBRACKET)
	p.parseList(canStartValue, p.value, token.RBRACKET, "list value")
	p.expect(token.RBRACKET, "\"]\"")
}

// objectValue parses an OBJECT_VALUE node: '{' ObjectField* '}'.
func (p *Parser) objectValue() {
	g := p.startNode(token.OBJECT_VALUE)
	defer g.Finish()
	p.bump(token.LBRACE)
	p.parseList(func(k token.Kind) bool { return k == token.IDENT }, p.objectField, token.RBRACE, "object value")
	p.expect(token.RBRACE, "\"}\"")
}

// objectField parses an OBJECT_FIELD node: Name ':' Value. If the value is
// missing and the next significant token looks like the start of another
// field (an IDENT immediately followed by ':'), the value is left absent
// rather than swallowing that next field's name (spec.md §4.3, "Missing
// required token").
func (p *Parser) objectField() {
	g := p.startNode(token.OBJECT_FIELD)
	defer g.Finish()
	p.name()
	if !p.expect(token.COLON, "\":\"") {
		return
	}
	if p.canStartFieldValue() {
		p.value()
		return
	}
	p.pushErr(p.errHere("expected value"))
}

// canStartFieldValue is canStartValue with the Name-then-colon lookahead
// that disambiguates a missing value from the next Name-':'-Value pair in
// an enclosing list (used by both objectField and argument).
func (p *Parser) canStartFieldValue() bool {
	if !canStartValue(p.peek()) {
		return false
	}
	if p.at(token.IDENT) && p.peekN(2) == token.COLON {
		return false
	}
	return true
}

// canStartType reports whether kind begins the Type grammar.
func canStartType(k token.Kind) bool {
	return k == token.IDENT || k == token.LBRACKET
}

// type_ parses the Type sum: NamedType, ListType, or either wrapped in a
// NonNullType. NonNullType binds tighter than both of the productions it
// wraps, so the trailing '!' is detected after the base type is fully
// parsed and the base is retroactively wrapped via a builder checkpoint
// (spec.md §4.3, "NonNullType").
func (p *Parser) type_() {
	if !p.enter() {
		return
	}
	defer p.exit()

	cp := p.builder.Checkpoint()
	switch {
	case p.at(token.LBRACKET):
		g := p.startNode(token.LIST_TYPE)
		p.bump(token.LBRACKET)
		if canStartType(p.peek()) {
			p.type_()
		} else {
			p.pushErr(p.errHere("expected type"))
		}
		p.expect(token.RBRACKET, "\"]\"")
		g.Finish()
	case p.at(token.IDENT):
		g := p.startNode(token.NAMED_TYPE)
		p.name()
		g.Finish()
	default:
		p.pushErr(p.errHere("expected type"))
		return
	}
	if p.at(token.BANG) {
		g := p.startNodeAt(cp, token.NON_NULL_TYPE)
		p.bump(token.BANG)
		g.Finish()
	}
}

// namedType parses a bare NAMED_TYPE node (no non-null wrapping), used by
// productions whose grammar spells out NamedType directly rather than the
// general Type sum: ImplementsInterfaces, UnionMemberTypes, TypeCondition,
// RootOperationTypeDefinition (spec.md §4.3).
func (p *Parser) namedType() {
	g := p.startNode(token.NAMED_TYPE)
	defer g.Finish()
	p.name()
}

// directives parses zero or more '@'-prefixed Directive into a DIRECTIVES
// node. Absent entirely when there's no leading '@', matching the typed
// view's Present()-false convention for omitted optional children.
func (p *Parser) directives() {
	if !p.at(token.AT) {
		return
	}
	g := p.startNode(token.DIRECTIVES)
	defer g.Finish()
	for p.at(token.AT) {
		if !p.enter() {
			break
		}
		p.directive()
		p.exit()
	}
}

// directive parses a DIRECTIVE node: '@' Name Arguments?.
func (p *Parser) directive() {
	g := p.startNode(token.DIRECTIVE)
	defer g.Finish()
	p.bump(token.AT)
	p.name()
	p.arguments()
}

// arguments parses an optional ARGUMENTS node: '(' Argument+ ')'.
func (p *Parser) arguments() {
	if !p.at(token.LPAREN) {
		return
	}
	g := p.startNode(token.ARGUMENTS)
	defer g.Finish()
	p.bump(token.LPAREN)
	p.parseList(func(k token.Kind) bool { return k == token.IDENT }, p.argument, token.RPAREN, "arguments")
	p.expect(token.RPAREN, "\")\"")
}

// argument parses an ARGUMENT node: Name ':' Value, with the same
// missing-value lookahead as objectField.
func (p *Parser) argument() {
	g := p.startNode(token.ARGUMENT)
	defer g.Finish()
	p.name()
	if !p.expect(token.COLON, "\":\"") {
		return
	}
	if p.canStartFieldValue() {
		p.value()
		return
	}
	p.pushErr(p.errHere("expected value"))
}
