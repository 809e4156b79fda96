package archive

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/fitness"
	"github.com/hupe1980/agentforge/logging"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Seeds overrides the baseline design library used when no prior archive
	// exists or the persisted document cannot be parsed.
	Seeds []Seed
	// Logging services.
	Logger logging.Logger
}

// Archive is the durable store of all designs plus derived ranking views.
// Public methods are safe for concurrent use; the load-mutate-persist
// sequence inside Add and UpdateFitness is a critical section and assumes a
// single writer per storage location.
type Archive struct {
	store  core.DocumentStore
	seeds  []Seed
	logger logging.Logger

	mu      sync.RWMutex
	designs []*core.Design
	index   map[string]*core.Design
}

// New constructs an Archive over the given document store with optional
// overrides. Call Initialize before any other method.
func New(store core.DocumentStore, optFns ...func(o *Options)) *Archive {
	opts := Options{
		Seeds:  BaselineSeeds(),
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Archive{
		store:  store,
		seeds:  opts.Seeds,
		logger: opts.Logger,
		index:  make(map[string]*core.Design),
	}
}

// Initialize loads the persisted archive if one exists. Absence or a parse
// failure is self-healing: the archive is reseeded from the baseline library
// and persisted immediately, so load problems are never surfaced to the
// caller. Only a persist failure is returned.
func (a *Archive) Initialize() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	doc, err := a.store.Load()
	if err == nil {
		a.designs = make([]*core.Design, 0, len(doc.Agents))
		a.index = make(map[string]*core.Design, len(doc.Agents))
		for _, d := range doc.Agents {
			a.designs = append(a.designs, d)
			a.index[d.ID] = d
		}
		a.logger.Info("archive loaded", "designs", len(a.designs))
		return nil
	}

	a.logger.Warn("archive unavailable, reseeding", "reason", err.Error())

	a.designs = a.designs[:0]
	a.index = make(map[string]*core.Design)
	now := time.Now()
	for i, s := range a.seeds {
		d := &core.Design{
			ID:        fmt.Sprintf("seed-%d", i+1),
			Name:      s.Name,
			Rationale: s.Rationale,
			Body:      s.Body,
			Origin:    core.SeedOrigin(i + 1),
			Fitness:   fitness.Initial(s.StartingMean),
			CreatedAt: now,
			Enabled:   true,
		}
		a.designs = append(a.designs, d)
		a.index[d.ID] = d
	}

	return a.persistLocked()
}

// Add assigns a fresh id, default fitness and timestamp to the candidate,
// appends it to the archive, persists synchronously and returns the stored
// design (as a clone safe for caller mutation).
func (a *Archive) Add(c core.Candidate) (*core.Design, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Sequence suffix keeps ids locally unique even when two adds land on
	// the same clock reading.
	d := &core.Design{
		ID:        fmt.Sprintf("design-gen%d-%d-%d", c.Generation, time.Now().UnixNano(), len(a.designs)),
		Name:      c.Name,
		Rationale: c.Rationale,
		Body:      c.Body,
		Origin:    core.GeneratedOrigin(c.Generation),
		Fitness:   core.Fitness{},
		CreatedAt: time.Now(),
		Enabled:   true,
	}

	a.designs = append(a.designs, d)
	a.index[d.ID] = d

	if err := a.persistLocked(); err != nil {
		return nil, err
	}

	a.logger.Debug("design added", "id", d.ID, "name", d.Name, "generation", c.Generation)

	return d.Clone(), nil
}

// All returns every design in insertion order, retired ones included.
func (a *Archive) All() []*core.Design {
	a.mu.RLock()
	defer a.mu.RUnlock()

	res := make([]*core.Design, 0, len(a.designs))
	for _, d := range a.designs {
		res = append(res, d.Clone())
	}
	return res
}

// Enabled returns the non-retired designs in insertion order.
func (a *Archive) Enabled() []*core.Design {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.enabledLocked()
}

func (a *Archive) enabledLocked() []*core.Design {
	res := make([]*core.Design, 0, len(a.designs))
	for _, d := range a.designs {
		if d.Enabled {
			res = append(res, d.Clone())
		}
	}
	return res
}

// TopPerforming returns up to n enabled designs sorted by mean fitness
// descending. The sort is stable so ties keep insertion order.
func (a *Archive) TopPerforming(n int) []*core.Design {
	a.mu.RLock()
	defer a.mu.RUnlock()

	res := a.enabledLocked()
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Fitness.Mean > res[j].Fitness.Mean
	})
	if len(res) > n {
		res = res[:n]
	}
	return res
}

// Get returns a clone of the design with the given id, or false.
func (a *Archive) Get(id string) (*core.Design, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	d, ok := a.index[id]
	if !ok {
		return nil, false
	}
	return d.Clone(), true
}

// Len returns the total number of designs, retired ones included.
func (a *Archive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.designs)
}

// UpdateFitness folds one observed accuracy into the design's statistics and
// persists the archive. An unknown id is a silent no-op. When the updated
// statistics cross the retirement rule the design is disabled; the
// transition is one-way and survives all subsequent updates.
func (a *Archive) UpdateFitness(id string, accuracy float64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	d, ok := a.index[id]
	if !ok {
		a.logger.Debug("fitness update for unknown design ignored", "id", id)
		return nil
	}

	d.Fitness = fitness.Observe(d.Fitness, accuracy)

	if d.Enabled && fitness.ShouldRetire(d.Fitness) {
		d.Enabled = false
		a.logger.Info("design retired",
			"id", d.ID, "name", d.Name,
			"mean", d.Fitness.Mean, "count", d.Fitness.Count)
	}

	return a.persistLocked()
}

// persistLocked writes the full archive document. Caller must hold the write
// lock. A write failure propagates; there is no batching.
func (a *Archive) persistLocked() error {
	doc := &core.ArchiveDocument{Agents: a.designs}
	if err := a.store.Save(doc); err != nil {
		return fmt.Errorf("failed to persist archive: %w", err)
	}
	return nil
}
