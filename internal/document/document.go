package document

import (
	"fmt"
	"sync"
)

// Change is one content change event. A nil Range replaces the whole
// document with Text; otherwise the text between the range's offsets is
// replaced by Text.
type Change struct {
	Range *Range
	Text  string
}

// Document holds the current text of one open document. Each document
// carries its own lock, so mutating one never blocks readers of another.
type Document struct {
	mu      sync.RWMutex
	content string
}

func newDocument(content string) *Document {
	return &Document{content: content}
}

// Content returns a snapshot of the document's current text.
func (d *Document) Content() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.content
}

// Apply applies an ordered batch of changes. Each change's range is resolved
// against the content as of that change, so later events see the effect of
// earlier ones. A range that does not resolve aborts the batch with an
// error; the protocol requires clients to send ranges valid against the
// server's current state, so this is a client bug, not something to clamp.
func (d *Document) Apply(changes []Change) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, change := range changes {
		if change.Range == nil {
			d.content = change.Text
			continue
		}
		start, err := PositionOffset(d.content, change.Range.Start)
		if err != nil {
			return err
		}
		end, err := PositionOffset(d.content, change.Range.End)
		if err != nil {
			return err
		}
		if start > end {
			return fmt.Errorf("change range %d:%d..%d:%d is inverted",
				change.Range.Start.Line, change.Range.Start.Character,
				change.Range.End.Line, change.Range.End.Character)
		}
		d.content = d.content[:start] + change.Text + d.content[end:]
	}
	return nil
}
