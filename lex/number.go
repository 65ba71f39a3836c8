package lex

import "github.com/dekarrin/sdlparse/diag"
import "github.com/dekarrin/sdlparse/token"

// lexNumber implements spec.md §4.1's Int/Float rules. An Int is an optional
// '-' then either a bare '0' or a nonzero digit run; a Float adds a
// fractional part and/or an exponent, at least one of which must be present.
// An int immediately followed by '.', 'e', 'E', a letter, or '_' is
// re-attempted as a float; if that also fails to consume the offending
// character, the whole run is a malformed-number lexical error.
func (l *lexer) lexNumber() {
	start := l.pos

	if l.peek() == '-' {
		l.advance()
	}

	if !isDigit(l.peek()) {
		// a lone '-' with no following digit: not a valid number at all.
		l.errs = append(l.errs, diag.NewLexical("malformed numeric literal", start, l.pos-start))
		l.emit(token.ERROR, start)
		return
	}

	if l.peek() == '0' {
		l.advance()
	} else {
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	isFloat := false

	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.advance() // '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		save := l.pos
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		if isDigit(l.peek()) {
			isFloat = true
			for isDigit(l.peek()) {
				l.advance()
			}
		} else {
			l.pos = save
		}
	}

	next := l.peek()
	if next == '.' || next == 'e' || next == 'E' || isLetter(next) {
		// the combined span was attempted as a float and still doesn't form
		// a valid literal; consume the offending run too so later tokens
		// resync on a clean boundary, and report the whole thing as one
		// malformed literal.
		for isIdentCont(l.peek()) || l.peek() == '.' {
			l.advance()
		}
		l.errs = append(l.errs, diag.NewLexical("malformed numeric literal", start, l.pos-start))
		kind := token.INT
		if isFloat {
			kind = token.FLOAT
		}
		l.emit(kind, start)
		return
	}

	kind := token.INT
	if isFloat {
		kind = token.FLOAT
	}
	l.emit(kind, start)
}
