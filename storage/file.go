package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/hupe1980/agentforge/core"
)

// FileStore persists the archive document as a single JSON file at a
// caller-provided path. Writes are synchronous: Save returns only after the
// document has been written. The parent directory is created on first write
// if absent.
//
// Concurrency: guarded by a mutex so a single store instance embedded in a
// larger process is not torn by overlapping calls. The design still assumes
// single-writer access per path; coordinating multiple processes is an
// integration concern.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore constructs a file-backed store for the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the configured document location.
func (s *FileStore) Path() string { return s.path }

// Load reads and parses the archive document. A missing file is reported as
// ErrNotFound; a file that exists but does not parse is reported as a plain
// error so callers can treat corruption distinctly from absence.
func (s *FileStore) Load() (*core.ArchiveDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read archive document: %w", err)
	}

	var doc core.ArchiveDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse archive document: %w", err)
	}
	if doc.Agents == nil {
		return nil, fmt.Errorf("archive document missing agents field")
	}

	return &doc, nil
}

// Save writes the full archive document, creating the parent directory if
// needed. A write failure propagates to the caller; there is no retry or
// deferred flush.
func (s *FileStore) Save(doc *core.ArchiveDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode archive document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write archive document: %w", err)
	}

	return nil
}
