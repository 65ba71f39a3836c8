package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/diag"
)

func Test_EncodeDecode_roundTrip(t *testing.T) {
	assert := assert.New(t)

	errs := []diag.Error{
		diag.NewLexical("unterminated string", 4, 5),
		diag.Missingf(10, "expected %q", "}"),
	}

	data, err := Encode(errs)
	assert.NoError(err)

	decoded, err := Decode(data)
	assert.NoError(err)
	assert.Equal(errs, decoded)
}

func Test_EncodeDecode_emptyErrorList(t *testing.T) {
	assert := assert.New(t)

	data, err := Encode(nil)
	assert.NoError(err)

	decoded, err := Decode(data)
	assert.NoError(err)
	assert.Empty(decoded)
}
