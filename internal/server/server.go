package server

import (
	"fmtls/internal/config"
	"fmtls/internal/document"
	"fmtls/internal/engine"
	"fmtls/internal/workspace"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	glspserver "github.com/tliron/glsp/server"
)

const lsName = "fmtls"

var version = "0.1.0"

// Server holds the state of one editor session: the open-document mirror,
// the workspace folders, and the two collaborators (config resolver and
// formatting engine) the format handlers drive.
type Server struct {
	handler  *protocol.Handler
	log      commonlog.Logger
	docs     *document.Store
	folders  *workspace.Registry
	resolver config.Resolver
	engine   engine.Engine
}

// NewServer wires the protocol handlers. eng may be nil, in which case the
// formatter command is taken from the client's initialization options.
func NewServer(resolver config.Resolver, eng engine.Engine) *Server {
	s := &Server{
		log:      commonlog.GetLogger(lsName),
		docs:     document.NewStore(),
		folders:  workspace.NewRegistry(),
		resolver: resolver,
		engine:   eng,
	}

	s.handler = &protocol.Handler{
		Initialize:                         s.initialize,
		Initialized:                        s.initialized,
		Shutdown:                           s.shutdown,
		SetTrace:                           s.setTrace,
		TextDocumentDidOpen:                s.textDocumentDidOpen,
		TextDocumentDidChange:              s.textDocumentDidChange,
		TextDocumentDidClose:               s.textDocumentDidClose,
		TextDocumentFormatting:             s.textDocumentFormatting,
		TextDocumentRangeFormatting:        s.textDocumentRangeFormatting,
		WorkspaceDidChangeWorkspaceFolders: s.workspaceDidChangeWorkspaceFolders,
	}

	return s
}

// RunStdio serves the session over stdin/stdout until the client hangs up.
func (s *Server) RunStdio() error {
	return glspserver.NewServer(s.handler, lsName, false).RunStdio()
}
