package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Kind_String(t *testing.T) {
	testCases := []struct {
		name   string
		k      Kind
		expect string
	}{
		{name: "error is the zero value", k: ERROR, expect: "ERROR"},
		{name: "eof", k: EOF, expect: "EOF"},
		{name: "punctuator", k: LBRACE, expect: "LBRACE"},
		{name: "contextual keyword renders its text", k: QUERY_KW, expect: "query"},
		{name: "directive location renders its uppercase name", k: ENUM_VALUE_LOC, expect: "ENUM_VALUE"},
		{name: "nonterminal", k: OBJECT_TYPE_DEFINITION, expect: "OBJECT_TYPE_DEFINITION"},
		{name: "out of range falls back to numeric", k: kindCount, expect: "Kind(" + itoa(uint(kindCount)) + ")"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.k.String())
		})
	}
}

func Test_Kind_IsTrivia(t *testing.T) {
	assert := assert.New(t)

	assert.True(WHITESPACE.IsTrivia())
	assert.True(COMMENT.IsTrivia())
	assert.False(IDENT.IsTrivia())
	assert.False(DOCUMENT.IsTrivia())
}

func Test_Kind_IsTerminal(t *testing.T) {
	testCases := []struct {
		name   string
		k      Kind
		expect bool
	}{
		{name: "eof", k: EOF, expect: true},
		{name: "trivia", k: WHITESPACE, expect: true},
		{name: "literal", k: STRING, expect: true},
		{name: "punctuator", k: RBRACE, expect: true},
		{name: "contextual keyword", k: DIRECTIVE_KW, expect: true},
		{name: "directive location", k: INPUT_FIELD_DEFINITION_LOC, expect: true},
		{name: "nonterminal", k: DOCUMENT, expect: false},
		{name: "error is not a terminal", k: ERROR, expect: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(tc.expect, tc.k.IsTerminal())
		})
	}
}
