package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/diag"
	"github.com/dekarrin/sdlparse/green"
	"github.com/dekarrin/sdlparse/token"
)

// buildAnonymousQuery constructs the green tree for "{ hero }" directly,
// bypassing the parser, so the typed-view layer can be exercised in
// isolation from grammar concerns.
func buildAnonymousQuery() green.Node {
	b := green.NewBuilder()
	b.StartNode(token.DOCUMENT)
	b.StartNode(token.OPERATION_DEFINITION)
	b.StartNode(token.SELECTION_SET)
	b.Token(token.LBRACE, "{")
	b.Token(token.WHITESPACE, " ")
	b.StartNode(token.FIELD)
	b.StartNode(token.NAME)
	b.Token(token.IDENT, "hero")
	b.FinishNode()
	b.FinishNode()
	b.Token(token.WHITESPACE, " ")
	b.Token(token.RBRACE, "}")
	b.FinishNode()
	b.FinishNode()
	b.FinishNode()
	return b.Finish()
}

func Test_SyntaxTree_textIsLossless(t *testing.T) {
	assert := assert.New(t)

	tree := New(buildAnonymousQuery(), nil)
	assert.Equal("{ hero }", tree.Text())
	assert.Empty(tree.Errors())
}

func Test_SyntaxTree_errorsAreReturnedVerbatim(t *testing.T) {
	assert := assert.New(t)

	errs := []diag.Error{diag.NewSyntactic("boom", 0, 1)}
	tree := New(buildAnonymousQuery(), errs)
	assert.Equal(errs, tree.Errors())
}

func Test_Document_definitionsNarrowToOperationDefinition(t *testing.T) {
	assert := assert.New(t)

	tree := New(buildAnonymousQuery(), nil)
	defs := tree.Document().Definitions()
	assert.Len(defs, 1)

	op, ok := defs[0].AsOperationDefinition()
	assert.True(ok)
	assert.Equal("query", op.OperationType())

	_, ok = defs[0].AsFragmentDefinition()
	assert.False(ok)
}

func Test_SelectionSet_fieldAccessorsRoundtrip(t *testing.T) {
	assert := assert.New(t)

	tree := New(buildAnonymousQuery(), nil)
	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()
	selections := op.SelectionSet().Selections()
	assert.Len(selections, 1)

	field, ok := selections[0].AsField()
	assert.True(ok)
	assert.Equal("hero", field.Name().IDENT())
	assert.False(field.Alias().Present())
	assert.False(field.Arguments().Present())
	assert.False(field.SelectionSet().Present())
}

func Test_view_missingChildIsNotPresent(t *testing.T) {
	assert := assert.New(t)

	tree := New(buildAnonymousQuery(), nil)
	op, _ := tree.Document().Definitions()[0].AsOperationDefinition()

	assert.False(op.Name().Present())
	assert.Equal("", op.Name().IDENT())
	assert.Equal("", op.Name().Text())
	assert.Equal(uint32(0), op.Name().Offset())
}

func Test_SyntaxTree_dumpRendersEveryNode(t *testing.T) {
	assert := assert.New(t)

	tree := New(buildAnonymousQuery(), nil)
	dump := tree.Dump()
	assert.Contains(dump, "DOCUMENT")
	assert.Contains(dump, "OPERATION_DEFINITION")
	assert.Contains(dump, "FIELD")
	assert.Contains(dump, `"hero"`)
}

func Test_SyntaxTree_rootExposesRedNode(t *testing.T) {
	assert := assert.New(t)

	tree := New(buildAnonymousQuery(), nil)
	root := tree.Root()
	assert.Equal(token.DOCUMENT, root.Kind())
	assert.Equal("{ hero }", root.Text())
}
