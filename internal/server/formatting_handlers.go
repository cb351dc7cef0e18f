package server

import (
	"fmt"

	"fmtls/internal/config"
	"fmtls/internal/diff"
	"fmtls/internal/document"
	"fmtls/internal/engine"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) textDocumentFormatting(
	context *glsp.Context,
	params *protocol.DocumentFormattingParams,
) ([]protocol.TextEdit, error) {
	return s.formatDocument(string(params.TextDocument.URI), params.Options, nil)
}

func (s *Server) textDocumentRangeFormatting(
	context *glsp.Context,
	params *protocol.DocumentRangeFormattingParams,
) ([]protocol.TextEdit, error) {
	return s.formatDocument(string(params.TextDocument.URI), params.Options, &params.Range)
}

// formatDocument is the whole request: snapshot the document, resolve the
// effective configuration, narrow to the requested range, run the engine
// and diff its output back into edits. An empty edit list means the
// document was already formatted; errors never carry partial edits.
func (s *Server) formatDocument(
	uri string,
	options protocol.FormattingOptions,
	rng *protocol.Range,
) ([]protocol.TextEdit, error) {
	doc, ok := s.docs.Get(uri)
	if !ok {
		return nil, invalidParams("document not open: %s", uri)
	}
	text := doc.Content()

	cfg, err := s.resolveConfig(uri, options)
	if err != nil {
		return nil, fmt.Errorf("resolve configuration for %s: %w", uri, err)
	}

	var offsets *engine.Range
	if rng != nil {
		start, err := document.PositionOffset(text, changePosition(rng.Start))
		if err != nil {
			return nil, invalidParams("format range start: %s", err)
		}
		end, err := document.PositionOffset(text, changePosition(rng.End))
		if err != nil {
			return nil, invalidParams("format range end: %s", err)
		}
		offsets = &engine.Range{Start: start, End: end}
	}

	if s.engine == nil {
		return nil, fmt.Errorf("no formatter engine configured")
	}
	formatted, err := s.engine.Format(text, cfg, offsets)
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", uri, err)
	}

	return diff.Edits(text, formatted), nil
}

// resolveConfig loads the project configuration for the file and overrides
// its indentation width and style with the editor-supplied options; those
// two fields are the editor's to decide, everything else is the project's.
func (s *Server) resolveConfig(
	uri string,
	options protocol.FormattingOptions,
) (config.Config, error) {
	cfg, err := s.resolver.Resolve(uriToPath(uri))
	if err != nil {
		return config.Config{}, err
	}

	if tabSize, ok := options["tabSize"]; ok {
		switch v := tabSize.(type) {
		case float64:
			if v > 0 {
				cfg.IndentWidth = int(v)
			}
		case int:
			if v > 0 {
				cfg.IndentWidth = v
			}
		}
	}
	if insertSpaces, ok := options["insertSpaces"].(bool); ok {
		if insertSpaces {
			cfg.IndentStyle = config.IndentSpaces
		} else {
			cfg.IndentStyle = config.IndentTabs
		}
	}

	return cfg, nil
}
