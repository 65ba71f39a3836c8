package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/sdlparse/diag"
)

func Test_Diagnostic_includesKindOffsetAndMessage(t *testing.T) {
	assert := assert.New(t)

	out := Diagnostic(diag.NewSyntactic("unexpected token", 12, 3))
	assert.Contains(out, "syntactic error at 12(+3)")
	assert.Contains(out, "unexpected token")
}

func Test_Diagnostics_noErrorsMessage(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("no errors", Diagnostics(nil))
}

func Test_Diagnostics_joinsMultipleBlocks(t *testing.T) {
	assert := assert.New(t)

	errs := []diag.Error{
		diag.NewLexical("bad escape", 1, 2),
		diag.Missingf(5, "expected %q", "}"),
	}
	out := Diagnostics(errs)
	assert.Contains(out, "bad escape")
	assert.Contains(out, "expected \"}\"")
}

func Test_Table_rendersHeaderAndRows(t *testing.T) {
	assert := assert.New(t)

	errs := []diag.Error{diag.NewSyntactic("oops", 0, 1)}
	out := Table(errs)
	assert.Contains(out, "offset")
	assert.Contains(out, "oops")
}
