package server

import (
	"fmtls/internal/document"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	s.log.Debugf("open %s", uri)
	if err := s.docs.Open(uri, params.TextDocument.Text); err != nil {
		return invalidParams("textDocument/didOpen: %s", err)
	}
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	doc, ok := s.docs.Get(uri)
	if !ok {
		return invalidParams("textDocument/didChange: document not open: %s", uri)
	}

	changes := make([]document.Change, 0, len(params.ContentChanges))
	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			changes = append(changes, document.Change{Text: change.Text})
		case protocol.TextDocumentContentChangeEvent:
			if change.Range == nil {
				changes = append(changes, document.Change{Text: change.Text})
				continue
			}
			changes = append(changes, document.Change{
				Range: &document.Range{
					Start: changePosition(change.Range.Start),
					End:   changePosition(change.Range.End),
				},
				Text: change.Text,
			})
		default:
			return invalidParams("textDocument/didChange: unexpected change event type %T", raw)
		}
	}

	if err := doc.Apply(changes); err != nil {
		return invalidParams("textDocument/didChange: %s", err)
	}
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	uri := string(params.TextDocument.URI)
	s.log.Debugf("close %s", uri)
	if err := s.docs.Close(uri); err != nil {
		return invalidParams("textDocument/didClose: %s", err)
	}
	return nil
}

func changePosition(pos protocol.Position) document.Position {
	return document.Position{Line: pos.Line, Character: pos.Character}
}
