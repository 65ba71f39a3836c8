package token

// Token is an immutable value describing one lexical unit of source text:
// its kind, the exact slice of bytes it covers, and the byte offset of its
// first byte (spec.md §3). A Token never outlives the parse that produced
// it — it is consumed into the green tree and afterwards only its Kind and
// Text survive, as a terminal node.
type Token struct {
	Kind Kind
	// Text is the verbatim slice of source this token covers. Concatenating
	// every token's Text in source order reproduces the input exactly
	// (spec.md §3, losslessness).
	Text string
	// Offset is the number of bytes from the start of the source to the
	// first byte of Text.
	Offset uint32
}

// End returns the offset one past the last byte of the token.
func (t Token) End() uint32 {
	return t.Offset + uint32(len(t.Text))
}

func (t Token) String() string {
	return t.Kind.String() + " " + quote(t.Text)
}

// quote renders s the way Go's %q would, without pulling in fmt for the hot
// lexer path — tokens are constructed far more often than they are printed,
// so this keeps Token cheap to build.
func quote(s string) string {
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\n':
			out = append(out, '\\', 'n')
		case '\t':
			out = append(out, '\\', 't')
		case '\r':
			out = append(out, '\\', 'r')
		default:
			out = append(out, c)
		}
	}
	out = append(out, '"')
	return string(out)
}
