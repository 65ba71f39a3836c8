package red

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/green"
	"github.com/dekarrin/sdlparse/token"
)

// buildFieldTree builds the green tree for "{ hero }" without going through
// the parser, to exercise the red layer in isolation.
func buildFieldTree() green.Node {
	b := green.NewBuilder()
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
	return b.Finish()
}

func Test_Node_offsetsAccumulateAcrossSiblings(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot(buildFieldTree())
	children := root.Children()

	assert.Equal(uint32(0), children[0].Offset()) // "{"
	assert.Equal(uint32(1), children[1].Offset()) // " "
	assert.Equal(uint32(2), children[2].Offset()) // FIELD
	assert.Equal(uint32(6), children[3].Offset()) // " "
	assert.Equal(uint32(7), children[4].Offset()) // "}"
	assert.Equal(uint32(8), children[4].End())
}

func Test_Node_parentLinksBack(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot(buildFieldTree())
	field := root.FirstChildOfKind(token.FIELD)
	assert.NotNil(field)
	assert.Same(root, field.Parent())
}

func Test_Node_nextSibling(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot(buildFieldTree())
	children := root.Children()
	for i := 0; i < len(children)-1; i++ {
		assert.Equal(children[i+1].Offset(), children[i].NextSibling().Offset())
	}
	assert.Nil(children[len(children)-1].NextSibling())
}

func Test_Node_tokensReproduceSubtreeText(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot(buildFieldTree())
	var rebuilt string
	for _, tok := range root.Tokens() {
		rebuilt += tok.Text()
	}
	assert.Equal(root.Text(), rebuilt)
	assert.Equal("{ hero }", rebuilt)
}

func Test_Node_firstAndLastToken(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot(buildFieldTree())
	assert.Equal("{", root.FirstToken().Text())
	assert.Equal("}", root.LastToken().Text())
}

func Test_Node_childrenOfKindFiltersByKind(t *testing.T) {
	assert := assert.New(t)

	root := NewRoot(buildFieldTree())
	fields := root.ChildrenOfKind(token.FIELD)
	assert.Len(fields, 1)
	assert.Nil(root.FirstChildOfKind(token.ARGUMENT))
}
