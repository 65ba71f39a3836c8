package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func Test_Lex_kindSequence(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    []token.Kind
		expectErr bool
	}{
		{name: "empty", input: "", expect: nil},
		{name: "anonymous query braces", input: "{ }", expect: []token.Kind{
			token.LBRACE, token.WHITESPACE, token.RBRACE,
		}},
		{name: "spread", input: "...", expect: []token.Kind{token.SPREAD}},
		{name: "comma is whitespace", input: "a, b", expect: []token.Kind{
			token.IDENT, token.WHITESPACE, token.IDENT,
		}},
		{name: "line comment", input: "# hello\nquery", expect: []token.Kind{
			token.COMMENT, token.WHITESPACE, token.IDENT,
		}},
		{name: "int literal", input: "42", expect: []token.Kind{token.INT}},
		{name: "negative int literal", input: "-7", expect: []token.Kind{token.INT}},
		{name: "float literal", input: "3.14", expect: []token.Kind{token.FLOAT}},
		{name: "exponent float", input: "6.022e23", expect: []token.Kind{token.FLOAT}},
		{name: "string literal", input: `"hi"`, expect: []token.Kind{token.STRING}},
		{name: "block string literal", input: `"""hi"""`, expect: []token.Kind{token.BLOCK_STRING}},
		{name: "one or two dots is a lexical error", input: "..", expect: []token.Kind{token.ERROR}, expectErr: true},
		{name: "unterminated string is a lexical error", input: `"abc`, expect: []token.Kind{token.STRING}, expectErr: true},
		{name: "stray byte is a lexical error", input: "^", expect: []token.Kind{token.ERROR}, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			toks, errs := Lex(tc.input)

			assert.Equal(tc.expect, kinds(toks))
			if tc.expectErr {
				assert.NotEmpty(errs)
			} else {
				assert.Empty(errs)
			}
		})
	}
}

func Test_Lex_tokensReproduceInput(t *testing.T) {
	testCases := []string{
		"",
		"{ hero { name } }",
		"query Q($id: ID!) { hero(id: $id) { name ...F } }",
		`"""
		a block string
		"""`,
		"# a comment\ntype T { f: Int }",
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			assert := assert.New(t)

			toks, _ := Lex(input)

			var rebuilt string
			for _, tok := range toks {
				rebuilt += tok.Text
			}
			assert.Equal(input, rebuilt)
		})
	}
}

func Test_Lex_numberBoundary(t *testing.T) {
	assert := assert.New(t)

	// a second '.' after a valid fractional part can't form a second valid
	// float, so the whole run is absorbed into one malformed-literal token
	// rather than splitting at an arbitrary byte.
	toks, errs := Lex("1.2.3")
	assert.Equal([]token.Kind{token.FLOAT}, kinds(toks))
	assert.Equal("1.2.3", toks[0].Text)
	assert.NotEmpty(errs)
}
