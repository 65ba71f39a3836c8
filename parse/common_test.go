package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse_valueKinds(t *testing.T) {
	testCases := []struct {
		name  string
		value string
	}{
		{name: "int", value: "42"},
		{name: "negative int", value: "-7"},
		{name: "float", value: "3.14"},
		{name: "string", value: `"hi"`},
		{name: "boolean true", value: "true"},
		{name: "boolean false", value: "false"},
		{name: "null", value: "null"},
		{name: "enum", value: "NEWHOPE"},
		{name: "variable", value: "$x"},
		{name: "empty list", value: "[]"},
		{name: "list of ints", value: "[1, 2, 3]"},
		{name: "empty object", value: "{}"},
		{name: "object with fields", value: `{x: 1, y: "a"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			src := `{ f(x: ` + tc.value + `) }`
			tree := New(src).Parse()
			assert.Empty(tree.Errors())
			assert.Equal(src, tree.Text())

			op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
			field, _ := op.SelectionSet().Selections()[0].AsField()
			args := field.Arguments().Arguments()
			assert.Len(args, 1)
			assert.True(args[0].Value().Present())
		})
	}
}

func Test_Parse_listValueNesting(t *testing.T) {
	assert := assert.New(t)

	src := `{ f(x: [[1, 2], [3]]) }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	field, _ := op.SelectionSet().Selections()[0].AsField()
	val := field.Arguments().Arguments()[0].Value()

	outer, ok := val.AsListValue()
	assert.True(ok)
	inner := outer.Values()
	assert.Len(inner, 2)

	firstList, ok := inner[0].AsListValue()
	assert.True(ok)
	assert.Len(firstList.Values(), 2)
}

func Test_Parse_objectValueFields(t *testing.T) {
	assert := assert.New(t)

	src := `{ f(x: {episode: NEWHOPE, review: {stars: 5}}) }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	field, _ := op.SelectionSet().Selections()[0].AsField()
	val := field.Arguments().Arguments()[0].Value()

	obj, ok := val.AsObjectValue()
	assert.True(ok)
	fields := obj.Fields()
	assert.Len(fields, 2)
	assert.Equal("episode", fields[0].Name().IDENT())

	nested, ok := fields[1].Value().AsObjectValue()
	assert.True(ok)
	assert.Equal("stars", nested.Fields()[0].Name().IDENT())
}

func Test_Parse_directiveWithoutArguments(t *testing.T) {
	assert := assert.New(t)

	src := `{ hero @deprecated { name } }`
	tree := New(src).Parse()
	assert.Empty(tree.Errors())

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	field, _ := op.SelectionSet().Selections()[0].AsField()
	directives := field.Directives().Directives()
	assert.Len(directives, 1)
	assert.Equal("deprecated", directives[0].Name().IDENT())
	assert.False(directives[0].Arguments().Present())
}
