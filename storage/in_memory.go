package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hupe1980/agentforge/core"
)

// InMemoryStore is a volatile DocumentStore keeping the archive document in
// process memory. It is safe for concurrent access and best suited for tests
// or ephemeral demo runs. The document is round-tripped through JSON on save
// and load so tests exercise the same serialization path as the file store.
type InMemoryStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewInMemoryStore constructs an empty in-memory document store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Load decodes the stored document or returns ErrNotFound when nothing has
// been saved yet.
func (s *InMemoryStore) Load() (*core.ArchiveDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, ErrNotFound
	}

	var doc core.ArchiveDocument
	if err := json.Unmarshal(s.data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse archive document: %w", err)
	}
	if doc.Agents == nil {
		return nil, fmt.Errorf("archive document missing agents field")
	}

	return &doc, nil
}

// Save encodes and stores a snapshot of the document.
func (s *InMemoryStore) Save(doc *core.ArchiveDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode archive document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data

	return nil
}

// Corrupt overwrites the stored bytes with unparseable content. Test helper
// for the self-healing reseed path.
func (s *InMemoryStore) Corrupt() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = []byte("{not json")
}
