// Package diff turns a whole-document reformat into the minimal list of
// line-level edits the editor needs to apply.
package diff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Edits computes a line-level edit script between old and new and converts
// each non-equal op into one region replacement:
//
//   - equal spans produce nothing
//   - deletions span whole lines, from (start, 0) to (end, 0), with empty text
//   - insertions are zero-width edits at (index, 0)
//   - replacements span the old lines and carry the new ones
//
// Replacement text keeps each new line's own terminator, so the formatted
// output's line-ending convention round-trips untouched. An unchanged
// document yields an empty list, never zero-length edits.
func Edits(old, new string) []protocol.TextEdit {
	newLines := splitLines(new)
	matcher := difflib.NewMatcher(splitLines(old), newLines)

	edits := []protocol.TextEdit{}
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			continue
		case 'd':
			edits = append(edits, protocol.TextEdit{
				Range:   lineSpan(op.I1, op.I2),
				NewText: "",
			})
		case 'i':
			edits = append(edits, protocol.TextEdit{
				Range:   lineSpan(op.I1, op.I1),
				NewText: strings.Join(newLines[op.J1:op.J2], ""),
			})
		case 'r':
			edits = append(edits, protocol.TextEdit{
				Range:   lineSpan(op.I1, op.I2),
				NewText: strings.Join(newLines[op.J1:op.J2], ""),
			})
		}
	}
	return edits
}

// lineSpan covers full lines [start, end): character 0 of the start line
// through character 0 of the line after the last one.
func lineSpan(start, end int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(start), Character: 0},
		End:   protocol.Position{Line: uint32(end), Character: 0},
	}
}

// splitLines splits keeping terminators, without difflib.SplitLines'
// phantom trailing line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
