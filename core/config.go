package core

// SearchConfig is the immutable per-run configuration of the search loop.
type SearchConfig struct {
	// MaxGenerations bounds the number of propose -> refine -> evaluate
	// iterations in one RunSearch call.
	MaxGenerations int `json:"max_generations"`

	// EvalsPerDesign is the number of evaluations the caller intends to run
	// per design. Informational: the core does not enforce per-design
	// evaluation counts beyond what the caller requests.
	EvalsPerDesign int `json:"evals_per_design"`

	// RefinementRounds is the number of self-critique passes applied to a
	// freshly generated design before storage.
	RefinementRounds int `json:"refinement_rounds"`

	// MinFitnessThreshold is the minimum accuracy for a generation's output
	// to be reported as discovered.
	MinFitnessThreshold float64 `json:"min_fitness_threshold"`
}

// TopDesign is one entry of the status summary's leaderboard.
type TopDesign struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Fitness Fitness `json:"fitness"`
}

// SearchStatus is a read-only summary derived from archive state. Producing
// it never mutates the archive.
type SearchStatus struct {
	TotalDesigns  int         `json:"total_designs"`
	EnabledCount  int         `json:"enabled_count"`
	Generation    int         `json:"generation"`
	TopPerformers []TopDesign `json:"top_performers"`
}
