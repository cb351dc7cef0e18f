package diff_test

import (
	"testing"

	"fmtls/internal/diff"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func edit(startLine, endLine uint32, text string) protocol.TextEdit {
	return protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: startLine, Character: 0},
			End:   protocol.Position{Line: endLine, Character: 0},
		},
		NewText: text,
	}
}

func TestEdits(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
		want []protocol.TextEdit
	}{
		{
			name: "identical text yields no edits",
			old:  "a\nb\nc\n",
			new:  "a\nb\nc\n",
			want: []protocol.TextEdit{},
		},
		{
			name: "single line replaced",
			old:  "a\nb\nc\n",
			new:  "a\nx\nc\n",
			want: []protocol.TextEdit{edit(1, 2, "x\n")},
		},
		{
			name: "line appended",
			old:  "a\n",
			new:  "a\nb\n",
			want: []protocol.TextEdit{edit(1, 1, "b\n")},
		},
		{
			name: "line deleted",
			old:  "a\nb\nc\n",
			new:  "a\nc\n",
			want: []protocol.TextEdit{edit(1, 2, "")},
		},
		{
			name: "leading lines deleted",
			old:  "x\ny\nkeep\n",
			new:  "keep\n",
			want: []protocol.TextEdit{edit(0, 2, "")},
		},
		{
			name: "separated changes stay separate edits",
			old:  "a\nb\nc\nd\ne\n",
			new:  "a\nB\nc\nD\ne\n",
			want: []protocol.TextEdit{edit(1, 2, "B\n"), edit(3, 4, "D\n")},
		},
		{
			name: "adjacent replaced lines merge into one edit",
			old:  "a\nb\nc\nd\n",
			new:  "a\nx\ny\nd\n",
			want: []protocol.TextEdit{edit(1, 3, "x\ny\n")},
		},
		{
			name: "replacement grows the document",
			old:  "a\nb\nc\n",
			new:  "a\nx\ny\nz\nc\n",
			want: []protocol.TextEdit{edit(1, 2, "x\ny\nz\n")},
		},
		{
			name: "last line without terminator replaced",
			old:  "a\nb",
			new:  "a\nB",
			want: []protocol.TextEdit{edit(1, 2, "B")},
		},
		{
			name: "crlf replacement keeps its endings",
			old:  "a\r\nb\r\n",
			new:  "a\r\nx\r\n",
			want: []protocol.TextEdit{edit(1, 2, "x\r\n")},
		},
		{
			name: "everything replaced",
			old:  "a\nb\n",
			new:  "x\ny\n",
			want: []protocol.TextEdit{edit(0, 2, "x\ny\n")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diff.Edits(tt.old, tt.new)
			if len(got) != len(tt.want) {
				t.Fatalf("Edits() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Edits()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// Applying the edits to the old text must reproduce the new text exactly.
func TestEditsRoundTrip(t *testing.T) {
	pairs := []struct{ old, new string }{
		{"a\nb\nc\n", "a\nx\nc\n"},
		{"a\n", "a\nb\n"},
		{"one\ntwo\nthree\n", "three\n"},
		{"", "fresh\n"},
		{"stale\n", ""},
		{"a\nb\nc\nd\ne\nf\n", "a\nB\nc\nd\nE\nF\n"},
		{"no newline", "still no newline"},
	}

	for _, pair := range pairs {
		got := applyEdits(pair.old, diff.Edits(pair.old, pair.new))
		if got != pair.new {
			t.Errorf("apply(Edits(%q, %q)) = %q", pair.old, pair.new, got)
		}
	}
}

// applyEdits replays line-addressed edits against text. Edits arrive in
// document order and do not overlap, so they are applied back to front.
func applyEdits(text string, edits []protocol.TextEdit) string {
	for i := len(edits) - 1; i >= 0; i-- {
		start := lineOffset(text, edits[i].Range.Start.Line)
		end := lineOffset(text, edits[i].Range.End.Line)
		text = text[:start] + edits[i].NewText + text[end:]
	}
	return text
}

func lineOffset(text string, line uint32) int {
	offset := 0
	for ; line > 0; line-- {
		for offset < len(text) && text[offset] != '\n' {
			offset++
		}
		if offset < len(text) {
			offset++
		}
	}
	return offset
}
