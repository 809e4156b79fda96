package archive

import (
	"fmt"
	"testing"

	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(t *testing.T) (*Archive, *storage.InMemoryStore) {
	t.Helper()
	store := storage.NewInMemoryStore()
	a := New(store)
	require.NoError(t, a.Initialize())
	return a, store
}

func TestInitialize_SeedsEmptyStore(t *testing.T) {
	a, store := newTestArchive(t)

	seeds := BaselineSeeds()
	all := a.All()
	require.Len(t, all, len(seeds))

	for i, d := range all {
		assert.Equal(t, seeds[i].Name, d.Name)
		assert.Equal(t, seeds[i].StartingMean, d.Fitness.Mean)
		assert.Zero(t, d.Fitness.Count)
		assert.True(t, d.Enabled)
		assert.True(t, d.Origin.IsSeed())
	}

	// Seeding persisted immediately.
	doc, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, doc.Agents, len(seeds))
}

func TestInitialize_ReseedsOnCorruption(t *testing.T) {
	store := storage.NewInMemoryStore()
	store.Corrupt()

	a := New(store)
	require.NoError(t, a.Initialize(), "corruption is self-healing, never surfaced")
	assert.Len(t, a.All(), len(BaselineSeeds()))
}

func TestInitialize_LoadsExistingArchive(t *testing.T) {
	store := storage.NewInMemoryStore()

	a := New(store)
	require.NoError(t, a.Initialize())
	added, err := a.Add(core.Candidate{Name: "Extra", Body: "x", Generation: 1})
	require.NoError(t, err)
	require.NoError(t, a.UpdateFitness(added.ID, 0.8))

	// Fresh in-process state over the same store.
	b := New(store)
	require.NoError(t, b.Initialize())

	require.Equal(t, a.Len(), b.Len())
	for i, d := range a.All() {
		other := b.All()[i]
		assert.Equal(t, d.ID, other.ID)
		assert.Equal(t, d.Fitness, other.Fitness)
		assert.Equal(t, d.Enabled, other.Enabled)
	}
}

func TestAdd_AssignsDefaults(t *testing.T) {
	a, _ := newTestArchive(t)
	before := a.Len()

	d, err := a.Add(core.Candidate{
		Name:       "Tree Searcher",
		Rationale:  "explores branches",
		Body:       "search the tree",
		Generation: 3,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, d.ID)
	assert.True(t, d.Enabled)
	assert.Zero(t, d.Fitness.Count)
	assert.Equal(t, core.OriginGenerated, d.Origin.Kind)
	assert.Equal(t, 3, d.Origin.Generation)
	assert.False(t, d.CreatedAt.IsZero())

	all := a.All()
	require.Len(t, all, before+1)
	assert.Equal(t, d.ID, all[len(all)-1].ID, "insertion order preserved")
}

func TestAdd_IDsLocallyUnique(t *testing.T) {
	a, _ := newTestArchive(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		d, err := a.Add(core.Candidate{Name: fmt.Sprintf("d%d", i), Generation: 1})
		require.NoError(t, err)
		assert.False(t, seen[d.ID], "duplicate id %s", d.ID)
		seen[d.ID] = true
	}
}

func TestTopPerforming(t *testing.T) {
	a, _ := newTestArchive(t)

	// Seed means: 0.50, 0.55, 0.58, 0.52.
	top := a.TopPerforming(2)
	require.Len(t, top, 2)
	assert.Equal(t, "Plan-then-Execute Solver", top[0].Name)
	assert.Equal(t, "Self-Consistency Voter", top[1].Name)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Fitness.Mean, top[i].Fitness.Mean)
	}
}

func TestTopPerforming_TiesKeepInsertionOrder(t *testing.T) {
	store := storage.NewInMemoryStore()
	a := New(store, func(o *Options) {
		o.Seeds = []Seed{
			{Name: "first", StartingMean: 0.5},
			{Name: "second", StartingMean: 0.5},
			{Name: "third", StartingMean: 0.5},
		}
	})
	require.NoError(t, a.Initialize())

	top := a.TopPerforming(3)
	require.Len(t, top, 3)
	assert.Equal(t, "first", top[0].Name)
	assert.Equal(t, "second", top[1].Name)
	assert.Equal(t, "third", top[2].Name)
}

func TestTopPerforming_ExcludesRetired(t *testing.T) {
	a, _ := newTestArchive(t)

	victim := a.All()[2] // highest seed mean
	for i := 0; i < 5; i++ {
		require.NoError(t, a.UpdateFitness(victim.ID, 0.0))
	}

	for _, d := range a.TopPerforming(10) {
		assert.NotEqual(t, victim.ID, d.ID)
		assert.True(t, d.Enabled)
	}
}

func TestUpdateFitness_UnknownIDIsNoOp(t *testing.T) {
	a, _ := newTestArchive(t)
	before := a.All()

	require.NoError(t, a.UpdateFitness("no-such-id", 0.9))

	assert.Equal(t, before, a.All())
}

func TestUpdateFitness_RetirementScenario(t *testing.T) {
	a, _ := newTestArchive(t)

	d := a.All()[0] // the 0.50 seed
	require.Equal(t, 0.50, d.Fitness.Mean)

	for i := 0; i < 4; i++ {
		require.NoError(t, a.UpdateFitness(d.ID, 0.1))
	}

	got, ok := a.Get(d.ID)
	require.True(t, ok)
	assert.Equal(t, 4, got.Fitness.Count)
	assert.InDelta(t, 0.1, got.Fitness.Mean, 1e-12)
	assert.True(t, got.Enabled, "retirement needs five observations")

	require.NoError(t, a.UpdateFitness(d.ID, 0.1))

	got, ok = a.Get(d.ID)
	require.True(t, ok)
	assert.Equal(t, 5, got.Fitness.Count)
	assert.False(t, got.Enabled, "fifth poor observation retires the design")
}

func TestUpdateFitness_RetirementIsMonotonic(t *testing.T) {
	a, _ := newTestArchive(t)
	d := a.All()[0]

	for i := 0; i < 5; i++ {
		require.NoError(t, a.UpdateFitness(d.ID, 0.0))
	}
	got, _ := a.Get(d.ID)
	require.False(t, got.Enabled)

	// Even a streak of perfect scores never re-enables.
	for i := 0; i < 10; i++ {
		require.NoError(t, a.UpdateFitness(d.ID, 1.0))
	}
	got, _ = a.Get(d.ID)
	assert.False(t, got.Enabled)
	assert.Equal(t, 15, got.Fitness.Count, "count keeps growing after retirement")
}

func TestUpdateFitness_PersistsEveryUpdate(t *testing.T) {
	a, store := newTestArchive(t)
	d := a.All()[1]

	require.NoError(t, a.UpdateFitness(d.ID, 0.7))

	doc, err := store.Load()
	require.NoError(t, err)
	for _, stored := range doc.Agents {
		if stored.ID == d.ID {
			assert.Equal(t, 1, stored.Fitness.Count)
			assert.InDelta(t, 0.7, stored.Fitness.Mean, 1e-12)
			return
		}
	}
	t.Fatalf("design %s not found in persisted document", d.ID)
}

func TestBuildPrompt(t *testing.T) {
	a, _ := newTestArchive(t)

	prompt := a.BuildPrompt(2)

	assert.Contains(t, prompt, "Plan-then-Execute Solver")
	assert.Contains(t, prompt, "(fitness: 0.58)")
	assert.Contains(t, prompt, "Self-Consistency Voter")
	assert.NotContains(t, prompt, "Chain-of-Thought Reasoner", "only top n designs rendered")

	// Retired designs never appear.
	victim := a.All()[2]
	for i := 0; i < 5; i++ {
		require.NoError(t, a.UpdateFitness(victim.ID, 0.0))
	}
	assert.NotContains(t, a.BuildPrompt(10), victim.Name)
}
