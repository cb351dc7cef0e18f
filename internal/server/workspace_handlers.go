package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func (s *Server) workspaceDidChangeWorkspaceFolders(
	context *glsp.Context,
	params *protocol.DidChangeWorkspaceFoldersParams,
) error {
	s.folders.Update(params.Event.Added, params.Event.Removed)
	s.log.Debugf("workspace folders changed: %d added, %d removed",
		len(params.Event.Added), len(params.Event.Removed))
	return nil
}
