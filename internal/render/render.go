// Package render formats diagnostics and syntax trees for terminal output:
// the CLI's text and tree formats, and the REPL's per-line feedback
// (SPEC_FULL §11.1, §12.3). It wraps long diagnostic messages and indents
// tree dumps with github.com/dekarrin/rosed, the same library the teacher
// uses project-wide for CLI text (internal/game/debug.go,
// tunascript/syntax/ast.go).
package render

import (
	"fmt"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/sdlparse/ast"
	"github.com/dekarrin/sdlparse/diag"
)

// messageWidth is the column at which a wrapped diagnostic message breaks,
// chosen to match a standard terminal width the way the teacher's table
// renders do (internal/game/debug.go uses 80 throughout).
const messageWidth = 80

// Diagnostic formats one diag.Error as a single wrapped block: "<kind> error
// at <offset>(+<length>): <message>", with the message wrapped at
// messageWidth the way engine.go wraps console output before printing it.
func Diagnostic(e diag.Error) string {
	header := fmt.Sprintf("%s error at %d(+%d): ", e.Kind, e.Offset, e.Length)
	return rosed.Edit(header + e.Message).Wrap(messageWidth).String()
}

// Diagnostics formats every diagnostic in errs, one per Diagnostic block,
// separated by a blank line. Returns "no errors" if errs is empty, matching
// cmd/sdlcheck's text format for a clean parse.
func Diagnostics(errs []diag.Error) string {
	if len(errs) == 0 {
		return "no errors"
	}
	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = Diagnostic(e)
	}
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n\n" + l
	}
	return out
}

// Tree renders tree's green root via ast.SyntaxTree.Dump, the teacher-style
// branch-art indentation, for the CLI's --format tree.
func Tree(tree *ast.SyntaxTree) string {
	return tree.Dump()
}

// Table renders a list of diagnostics as a three-column table (offset,
// kind, message), the presentation internal/game/debug.go uses for its DEBUG
// command listings (InsertTableOpts with TableHeaders).
func Table(errs []diag.Error) string {
	data := [][]string{{"offset", "kind", "message"}}
	for _, e := range errs {
		data = append(data, []string{
			fmt.Sprintf("%d", e.Offset),
			e.Kind.String(),
			e.Message,
		})
	}

	opts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}
	return rosed.Edit("").InsertTableOpts(0, data, messageWidth, opts).String()
}
