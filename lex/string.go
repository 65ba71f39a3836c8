package lex

import "github.com/dekarrin/sdlparse/diag"
import "github.com/dekarrin/sdlparse/token"

// validEscape reports whether b is one of the single-character escapes
// spec.md §4.1 recognizes after a backslash inside a regular string.
func validEscape(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't', 'u':
		return true
	default:
		return false
	}
}

func isHex(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// lexString consumes a regular "..." string, validating escapes as it goes.
// An unterminated string (EOF or a bare line break before the closing
// quote) or an invalid escape yields a LexicalError spanning the offending
// run, but the STRING token still covers everything scanned so the tree
// remains lossless (spec.md §4.1, §7 invariant 2).
func (l *lexer) lexString() {
	start := l.pos
	l.advance() // opening quote

	for {
		c := l.peek()
		switch {
		case c == '"':
			l.advance()
			l.emit(token.STRING, start)
			return

		case c == 0 && l.pos >= uint32(len(l.src)):
			l.errs = append(l.errs, diag.NewLexical("unterminated string", start, l.pos-start))
			l.emit(token.STRING, start)
			return

		case c == '\n' || c == '\r':
			l.errs = append(l.errs, diag.NewLexical("unterminated string: line break before closing quote", start, l.pos-start))
			l.emit(token.STRING, start)
			return

		case c == '\\':
			escStart := l.pos
			l.advance()
			esc := l.peek()
			if !validEscape(esc) {
				if l.pos < uint32(len(l.src)) {
					l.advance()
				}
				l.errs = append(l.errs, diag.NewLexical("invalid escape sequence", escStart, l.pos-escStart))
				continue
			}
			l.advance()
			if esc == 'u' {
				for i := 0; i < 4; i++ {
					if !isHex(l.peek()) {
						l.errs = append(l.errs, diag.NewLexical("invalid unicode escape sequence", escStart, l.pos-escStart))
						break
					}
					l.advance()
				}
			}

		default:
			l.advance()
		}
	}
}

// lexBlockString consumes a """...""" string. Its only escape is \""" (a
// literal """ that does not close the string); it may span multiple lines.
// An unterminated block string consumes to end of input and is reported as
// a single lexical error (spec.md §4.1).
func (l *lexer) lexBlockString() {
	start := l.pos
	l.pos += 3 // opening """

	for {
		if l.pos >= uint32(len(l.src)) {
			l.errs = append(l.errs, diag.NewLexical("unterminated block string", start, l.pos-start))
			l.emit(token.BLOCK_STRING, start)
			return
		}
		if l.peek() == '\\' && l.peekAt(1) == '"' && l.peekAt(2) == '"' && l.peekAt(3) == '"' {
			l.pos += 4
			continue
		}
		if l.peek() == '"' && l.peekAt(1) == '"' && l.peekAt(2) == '"' {
			l.pos += 3
			l.emit(token.BLOCK_STRING, start)
			return
		}
		l.advance()
	}
}
