package green

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/token"
)

func Test_Dump_rendersEveryNode(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder()
	b.StartNode(token.NAME)
	b.Token(token.IDENT, "hero")
	b.FinishNode()
	root := b.Finish()

	out := Dump(root)

	lines := strings.Split(out, "\n")
	assert.Len(lines, 2)
	assert.Contains(lines[0], "NAME")
	assert.Contains(lines[1], "IDENT")
	assert.Contains(lines[1], `"hero"`)
}

func Test_Dump_leafHasNoChildLines(t *testing.T) {
	assert := assert.New(t)

	term := NewTerminal(token.LBRACE, "{")
	out := Dump(term)

	assert.NotContains(out, "\n")
	assert.Contains(out, "LBRACE")
}
