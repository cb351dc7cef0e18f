package server

import (
	"encoding/json"
	"slices"

	"fmtls/internal/engine"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const positionEncodingUTF8 = "utf-8"

// initializeOptions are the server's runtime options, sent by the client
// as initializationOptions.
type initializeOptions struct {
	// Command is the external formatter invocation, argv-style.
	Command []string `json:"command"`
}

// The positionEncodings capability postdates the generated 3.16 structs,
// so it is read from the raw params.
type initializeCapabilities struct {
	Capabilities struct {
		General struct {
			PositionEncodings []string `json:"positionEncodings"`
		} `json:"general"`
	} `json:"capabilities"`
}

// serverCapabilities extends the generated capabilities with the
// positionEncoding and workspace-folder fields the handshake needs. The
// outer fields shadow the embedded ones when marshalled.
type serverCapabilities struct {
	protocol.ServerCapabilities
	PositionEncoding string                `json:"positionEncoding"`
	Workspace        workspaceCapabilities `json:"workspace"`
}

type workspaceCapabilities struct {
	WorkspaceFolders workspaceFoldersCapabilities `json:"workspaceFolders"`
}

type workspaceFoldersCapabilities struct {
	Supported           bool `json:"supported"`
	ChangeNotifications bool `json:"changeNotifications"`
}

type initializeResult struct {
	Capabilities serverCapabilities                   `json:"capabilities"`
	ServerInfo   *protocol.InitializeResultServerInfo `json:"serverInfo,omitempty"`
}

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	var caps initializeCapabilities
	if err := json.Unmarshal(context.Params, &caps); err != nil {
		return nil, invalidParams("malformed initialize params: %s", err)
	}
	if !slices.Contains(caps.Capabilities.General.PositionEncodings, positionEncodingUTF8) {
		return nil, invalidParams("%s only supports %s as position encoding", lsName, positionEncodingUTF8)
	}

	if len(params.WorkspaceFolders) > 0 {
		s.folders.Replace(params.WorkspaceFolders)
	}

	if s.engine == nil {
		var opts initializeOptions
		raw, err := json.Marshal(params.InitializationOptions)
		if err != nil {
			return nil, invalidParams("malformed initialization options: %s", err)
		}
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, invalidParams("malformed initialization options: %s", err)
		}
		command, err := engine.NewCommand(opts.Command)
		if err != nil {
			return nil, invalidParams("no formatter configured: %s", err)
		}
		s.engine = command
	}

	capabilities := s.handler.CreateServerCapabilities()
	syncKind := protocol.TextDocumentSyncKindIncremental
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}

	return initializeResult{
		Capabilities: serverCapabilities{
			ServerCapabilities: capabilities,
			PositionEncoding:   positionEncodingUTF8,
			Workspace: workspaceCapabilities{
				WorkspaceFolders: workspaceFoldersCapabilities{
					Supported:           true,
					ChangeNotifications: true,
				},
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &version,
		},
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	s.log.Info("client initialized")
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	s.log.Info("shutting down")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}
