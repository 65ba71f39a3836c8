package green

import (
	"fmt"
	"strings"
)

// Dump renders node as a prettified tree, in the same "|"/"\" branch-art
// style as the teacher's types.ParseTree.String()/leveledStr
// (internal/ictiobus/types/tree.go). It's a debugging and CLI aid (SPEC_FULL
// §12.3), not part of the tree's structural contract.
func Dump(node Node) string {
	return leveledDump(node, "", "")
}

const (
	dumpLevelEmpty   = "        "
	dumpLevelOngoing = "  |     "
	dumpPrefix       = "  |%s: "
	dumpPrefixLast   = `  \%s: `
	dumpPadChar      = '-'
	dumpPadAmount    = 3
)

func pad(msg string) string {
	for len([]rune(msg)) < dumpPadAmount {
		msg = string(dumpPadChar) + msg
	}
	return msg
}

func leveledDump(node Node, firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if node.IsTerminal() {
		sb.WriteString(fmt.Sprintf("(TERM %s %q)", node.Kind(), node.Text()))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", node.Kind()))
	}

	children := node.Children()
	for i, child := range children {
		sb.WriteByte('\n')
		var childFirst, childCont string
		if i+1 < len(children) {
			childFirst = contPrefix + fmt.Sprintf(dumpPrefix, pad(""))
			childCont = contPrefix + dumpLevelOngoing
		} else {
			childFirst = contPrefix + fmt.Sprintf(dumpPrefixLast, pad(""))
			childCont = contPrefix + dumpLevelEmpty
		}
		sb.WriteString(leveledDump(child, childFirst, childCont))
	}
	return sb.String()
}
