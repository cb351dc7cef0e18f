package document

import (
	"fmt"
	"strings"
)

// Position is a line/character location in a document. Characters count
// UTF-8 code units, the same unit the stored text is addressed in.
type Position struct {
	Line      uint32
	Character uint32
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position
	End   Position
}

// PositionOffset resolves pos to a byte offset into text. Lines keep their
// trailing terminator, so the offset of (line, 0) is the running sum of the
// lengths of all earlier lines. A line at or past the end of the document is
// an error, never clamped, as is an offset past the end of the text.
func PositionOffset(text string, pos Position) (int, error) {
	start := 0
	for line := uint32(0); line < pos.Line; line++ {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return 0, fmt.Errorf("line %d does not exist in the document", pos.Line)
		}
		start += nl + 1
	}
	if start >= len(text) {
		return 0, fmt.Errorf("line %d does not exist in the document", pos.Line)
	}
	offset := start + int(pos.Character)
	if offset > len(text) {
		return 0, fmt.Errorf(
			"position %d:%d is %d bytes past the end of the document",
			pos.Line, pos.Character, offset-len(text),
		)
	}
	return offset, nil
}
