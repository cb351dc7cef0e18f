package document

import (
	"fmt"
	"sync"
)

// Store maps document URIs to their in-memory text. The store lock only
// guards the map itself; document content is guarded per document, so
// concurrent operations on different documents do not serialize.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Open registers a document with its initial text. Opening a URI that is
// already open is a protocol violation by the client.
func (s *Store) Open(uri string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[uri]; exists {
		return fmt.Errorf("document already open: %s", uri)
	}
	s.docs[uri] = newDocument(text)
	return nil
}

// Get returns the open document for uri. The store never invents content:
// a URI that was not opened, or was closed, reports false.
func (s *Store) Get(uri string) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.docs[uri]
	return doc, exists
}

// Close forgets a document. Closing a URI that is not open is a protocol
// violation by the client.
func (s *Store) Close(uri string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.docs[uri]; !exists {
		return fmt.Errorf("document not open: %s", uri)
	}
	delete(s.docs, uri)
	return nil
}
