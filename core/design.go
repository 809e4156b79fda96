package core

import (
	"time"

	"github.com/google/uuid"
)

// OriginKind distinguishes how a design entered the archive.
type OriginKind string

const (
	// OriginSeed marks a design from the fixed baseline library installed
	// when no prior archive exists.
	OriginSeed OriginKind = "seed"
	// OriginGenerated marks a design produced by the candidate generator
	// during a search run.
	OriginGenerated OriginKind = "generated"
)

// Origin is a tagged variant identifying a design's provenance: either a
// position in the seed library or the generation index that produced it.
// Using a structured tag instead of a string-formatting convention keeps the
// seed/generated distinction type-checkable.
type Origin struct {
	Kind       OriginKind `json:"kind"`
	Index      int        `json:"index,omitempty"`      // seed library position (OriginSeed)
	Generation int        `json:"generation,omitempty"` // positive generation index (OriginGenerated)
}

// SeedOrigin returns the origin tag for the seed library entry at index.
func SeedOrigin(index int) Origin {
	return Origin{Kind: OriginSeed, Index: index}
}

// GeneratedOrigin returns the origin tag for a design produced in the given
// generation.
func GeneratedOrigin(generation int) Origin {
	return Origin{Kind: OriginGenerated, Generation: generation}
}

// IsSeed reports whether the design predates any search run.
func (o Origin) IsSeed() bool { return o.Kind == OriginSeed }

// Fitness tracks the running evaluation statistics of a design: the exact
// incremental mean accuracy over Count observations plus a 95%
// normal-approximation confidence interval, each bound clamped to [0,1].
type Fitness struct {
	Mean  float64 `json:"mean"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// Design is one candidate agent strategy record in the archive.
//
// Contract:
//   - ID is assigned once at creation and never reused
//   - Fitness.Count is monotonically non-decreasing
//   - Enabled transitions true -> false exactly once (retirement); a retired
//     design is never re-enabled and never removed from the archive
type Design struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rationale string    `json:"rationale"` // informational only, never parsed
	Body      string    `json:"body"`      // opaque payload; execution belongs to the Evaluator
	Origin    Origin    `json:"origin"`
	Fitness   Fitness   `json:"fitness"`
	CreatedAt time.Time `json:"created_at"`
	Enabled   bool      `json:"enabled"`
}

// Clone returns a copy of the design safe for independent mutation.
func (d *Design) Clone() *Design {
	cp := *d
	return &cp
}

// Candidate is the unstored output of one generation round, prior to id
// assignment and archival.
type Candidate struct {
	Name       string `json:"name"`
	Rationale  string `json:"rationale"`
	Body       string `json:"body"`
	Generation int    `json:"generation"`
}

// Proposal is the structured completion shape exchanged with the Oracle for
// both initial generation and refinement rounds.
type Proposal struct {
	Name      string `json:"name" description:"Short human-readable strategy name"`
	Rationale string `json:"rationale" description:"Why this strategy should perform well"`
	Body      string `json:"body" description:"Executable strategy content"`
}

// NewID generates a new unique identifier for runs and evaluations.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }
