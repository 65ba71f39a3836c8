package green

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/token"
)

func Test_Builder_simpleTree(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.StartNode(token.NAME)
	b.Token(token.IDENT, "hero")
	b.FinishNode()

	root := b.Finish()

	assert.Equal(token.NAME, root.Kind())
	assert.Equal("hero", root.Text())
	assert.False(root.IsTerminal())
	assert.Len(root.Children(), 1)
	assert.True(root.Children()[0].IsTerminal())
}

func Test_Builder_textIsLosslessAcrossNesting(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
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

	root := b.Finish()

	assert.Equal("{ hero }", root.Text())
}

func Test_Builder_finishWithoutMatchingStartPanics(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	assert.Panics(func() { b.FinishNode() })
}

func Test_Builder_finishCalledTwicePanics(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.StartNode(token.NAME)
	b.FinishNode()
	b.Finish()

	assert.Panics(func() { b.Finish() })
}

func Test_Builder_unbalancedStartPanicsAtFinish(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.StartNode(token.NAME)

	assert.Panics(func() { b.Finish() })
}

func Test_Builder_checkpointWrapsSubsequentNodes(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.StartNode(token.DOCUMENT)
	cp := b.Checkpoint()
	b.StartNode(token.NAMED_TYPE)
	b.StartNode(token.NAME)
	b.Token(token.IDENT, "Int")
	b.FinishNode()
	b.FinishNode()
	b.StartNodeAt(cp, token.NON_NULL_TYPE)
	b.Token(token.BANG, "!")
	b.FinishNode()
	b.FinishNode()

	root := b.Finish()

	assert.Equal("Int!", root.Text())
	assert.Len(root.Children(), 1)
	nonNull := root.Children()[0]
	assert.Equal(token.NON_NULL_TYPE, nonNull.Kind())
	assert.Len(nonNull.Children(), 2)
	assert.Equal(token.NAMED_TYPE, nonNull.Children()[0].Kind())
	assert.Equal(token.BANG, nonNull.Children()[1].Kind())
}

func Test_Builder_internsIdenticalTerminals(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.StartNode(token.DOCUMENT)
	b.Token(token.LBRACE, "{")
	b.Token(token.LBRACE, "{")
	b.FinishNode()

	root := b.Finish()
	children := root.Children()
	assert.Same(children[0], children[1])
}
