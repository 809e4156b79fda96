package core

// ArchiveDocument is the persisted archive shape: a single JSON-like document
// holding every design ever produced. There is no schema versioning; a
// document missing the expected shape triggers reseeding on load.
type ArchiveDocument struct {
	Agents []*Design `json:"agents"`
}

// DocumentStore persists the archive document at a caller-provided location.
// Load must return storage.ErrNotFound (or a wrapped equivalent) when no
// prior document exists so the archive can distinguish absence from a failed
// read. Save must be synchronous: when it returns, the document is durable.
type DocumentStore interface {
	Load() (*ArchiveDocument, error)
	Save(doc *ArchiveDocument) error
}
