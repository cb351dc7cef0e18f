// Package workspace tracks the root folders the server is scoped to.
package workspace

import (
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Registry is the set of workspace folders, read by many handlers and
// mutated by folder-change notifications. Updates are atomic: no reader
// observes removals without the matching additions.
type Registry struct {
	mu      sync.RWMutex
	folders []protocol.WorkspaceFolder
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Replace sets the folder list wholesale, as sent during initialization.
func (r *Registry) Replace(folders []protocol.WorkspaceFolder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.folders = append([]protocol.WorkspaceFolder(nil), folders...)
}

// Update applies a folder-change event: removed folders are dropped first,
// then added ones appended, all under one write lock. Folders are
// identified by URI.
func (r *Registry) Update(added, removed []protocol.WorkspaceFolder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]protocol.WorkspaceFolder, 0, len(r.folders)+len(added))
	for _, folder := range r.folders {
		if !containsURI(removed, folder.URI) {
			kept = append(kept, folder)
		}
	}
	r.folders = append(kept, added...)
}

// All returns a snapshot of the current folder list.
func (r *Registry) All() []protocol.WorkspaceFolder {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]protocol.WorkspaceFolder(nil), r.folders...)
}

func containsURI(folders []protocol.WorkspaceFolder, uri string) bool {
	for _, folder := range folders {
		if folder.URI == uri {
			return true
		}
	}
	return false
}
