package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/diag"
)

func Test_Parse_anonymousQuery(t *testing.T) {
	assert := assert.New(t)

	tree := New("{ hero { name } }").Parse()
	assert.Empty(tree.Errors())
	assert.Equal("{ hero { name } }", tree.Text())

	defs := tree.Document().Definitions()
	assert.Len(defs, 1)

	op, ok := defs[0].AsOperationDefinition()
	assert.True(ok)
	assert.Equal("query", op.OperationType())
	assert.False(op.Name().Present())

	selections := op.SelectionSet().Selections()
	assert.Len(selections, 1)
	field, ok := selections[0].AsField()
	assert.True(ok)
	assert.Equal("hero", field.Name().IDENT())

	nested := field.SelectionSet().Selections()
	assert.Len(nested, 1)
	nestedField, ok := nested[0].AsField()
	assert.True(ok)
	assert.Equal("name", nestedField.Name().IDENT())
}

func Test_Parse_namedQueryWithVariablesAndDirectives(t *testing.T) {
	assert := assert.New(t)

	tree := New(`query Q($id: ID!) { hero(id: $id) @include(if: true) { name } }`).Parse()
	assert.Empty(tree.Errors())

	defs := tree.Document().Definitions()
	op, ok := defs[0].AsOperationDefinition()
	assert.True(ok)
	assert.Equal("query", op.OperationType())
	assert.Equal("Q", op.Name().IDENT())

	varDefs := op.VariableDefinitions().Definitions()
	assert.Len(varDefs, 1)
	assert.Equal("id", varDefs[0].Variable().Name().IDENT())

	nonNull, ok := varDefs[0].Type().AsNonNullType()
	assert.True(ok)
	assert.Equal("ID", nonNull.NamedType().Name().IDENT())

	field, ok := op.SelectionSet().Selections()[0].AsField()
	assert.True(ok)
	args := field.Arguments().Arguments()
	assert.Len(args, 1)
	assert.Equal("id", args[0].Name().IDENT())

	directives := field.Directives().Directives()
	assert.Len(directives, 1)
	assert.Equal("include", directives[0].Name().IDENT())
}

func Test_Parse_fragmentDefinitionAndSpread(t *testing.T) {
	assert := assert.New(t)

	tree := New(`{ hero { ...Fields } } fragment Fields on Character { name }`).Parse()
	assert.Empty(tree.Errors())

	defs := tree.Document().Definitions()
	assert.Len(defs, 2)

	frag, ok := defs[1].AsFragmentDefinition()
	assert.True(ok)
	assert.Equal("Fields", frag.FragmentName().Name().IDENT())
	assert.Equal("Character", frag.TypeCondition().NamedType().Name().IDENT())

	op, _ := defs[0].AsOperationDefinition()
	heroField, _ := op.SelectionSet().Selections()[0].AsField()
	spread, ok := heroField.SelectionSet().Selections()[0].AsFragmentSpread()
	assert.True(ok)
	assert.Equal("Fields", spread.FragmentName().Name().IDENT())
}

func Test_Parse_inlineFragmentWithoutTypeCondition(t *testing.T) {
	assert := assert.New(t)

	tree := New(`{ hero { ... @defer { name } } }`).Parse()
	assert.Empty(tree.Errors())

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	heroField, _ := op.SelectionSet().Selections()[0].AsField()
	inline, ok := heroField.SelectionSet().Selections()[0].AsInlineFragment()
	assert.True(ok)
	assert.False(inline.TypeCondition().Present())
	assert.Len(inline.Directives().Directives(), 1)
}

func Test_Parse_aliasedField(t *testing.T) {
	assert := assert.New(t)

	tree := New(`{ heroAlias: hero { name } }`).Parse()
	assert.Empty(tree.Errors())

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	field, ok := op.SelectionSet().Selections()[0].AsField()
	assert.True(ok)
	assert.Equal("heroAlias", field.Alias().Name().IDENT())
	assert.Equal("hero", field.Name().IDENT())
}

func Test_Parse_missingArgumentValueRecoversAndReportsOneError(t *testing.T) {
	assert := assert.New(t)

	tree := New(`{ f(x: , y: 1) }`).Parse()
	assert.Len(tree.Errors(), 1)

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	field, _ := op.SelectionSet().Selections()[0].AsField()
	args := field.Arguments().Arguments()
	assert.Len(args, 2)
	assert.Equal("x", args[0].Name().IDENT())
	assert.False(args[0].Value().Present())
	assert.Equal("y", args[1].Name().IDENT())
	assert.True(args[1].Value().Present())

	assert.Equal("{ f(x: , y: 1) }", tree.Text())
}

func Test_Parse_unterminatedStringStillProducesLosslessTree(t *testing.T) {
	assert := assert.New(t)

	src := `{ f(x: "abc) }`
	tree := New(src).Parse()
	assert.NotEmpty(tree.Errors())
	assert.Equal(src, tree.Text())
}

func Test_Parse_blockStringIsPreservedVerbatim(t *testing.T) {
	assert := assert.New(t)

	src := "\"\"\"\n\tdescribes Character\n\t\"\"\"\ntype Character { name: String }"
	tree := New(src).Parse()
	assert.Empty(tree.Errors())
	assert.Equal(src, tree.Text())

	defs := tree.Document().Definitions()
	typeDef, ok := defs[0].AsTypeDefinition()
	assert.True(ok)
	obj, ok := typeDef.AsObjectTypeDefinition()
	assert.True(ok)
	assert.Equal("Character", obj.Name().IDENT())
}

func Test_Parse_unknownTopLevelConstructIsRecoveredIntoOneError(t *testing.T) {
	assert := assert.New(t)

	src := `{ hero { name } } %%% garbage`
	tree := New(src).Parse()
	assert.Equal(src, tree.Text())
	// each stray '%' also carries its own lexical error; the recovery of the
	// unknown construct itself reports exactly one syntactic error.
	syntactic := 0
	for _, e := range tree.Errors() {
		if e.Kind == diag.Syntactic {
			syntactic++
		}
	}
	assert.Equal(1, syntactic)

	defs := tree.Document().Definitions()
	assert.Len(defs, 1) // the trailing garbage is absorbed, not parsed as a second definition
}

func Test_Parse_deeplyNestedSelectionSetsHitRecursionLimit(t *testing.T) {
	assert := assert.New(t)

	src := ""
	for i := 0; i < 10; i++ {
		src += "{ a "
	}
	src += "x"
	for i := 0; i < 10; i++ {
		src += " }"
	}

	p := New(src, WithRecursionLimit(3))
	tree := p.Parse()
	assert.NotEmpty(tree.Errors())
}

func Test_Parse_nonNullListType(t *testing.T) {
	assert := assert.New(t)

	tree := New(`query Q($ids: [ID!]!) { hero(ids: $ids) { name } }`).Parse()
	assert.Empty(tree.Errors())

	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	varDef := op.VariableDefinitions().Definitions()[0]

	outer, ok := varDef.Type().AsNonNullType()
	assert.True(ok)

	listType, ok := outer.ListType().Type().AsNonNullType()
	assert.True(ok)
	assert.Equal("ID", listType.NamedType().Name().IDENT())
}

func Test_Parse_isDeterministicAcrossRuns(t *testing.T) {
	assert := assert.New(t)

	src := `query Q($id: ID!) { hero(id: $id) { name ...Fields } } fragment Fields on Character { age }`
	tree1 := New(src).Parse()
	tree2 := New(src).Parse()

	assert.Equal(tree1.Dump(), tree2.Dump())
	assert.Equal(len(tree1.Errors()), len(tree2.Errors()))
}

