package server

import (
	"fmt"

	"github.com/sourcegraph/jsonrpc2"
)

// invalidParams reports a protocol contract violation (unknown document,
// unresolvable range, unsupported encoding) as a structured JSON-RPC error
// instead of an assertion, so one malformed request never takes the server
// down.
func invalidParams(format string, args ...any) error {
	return &jsonrpc2.Error{
		Code:    jsonrpc2.CodeInvalidParams,
		Message: fmt.Sprintf(format, args...),
	}
}
