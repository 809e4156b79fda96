package agentforge

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/evaluation"
	"github.com/hupe1980/agentforge/oracle"
	"github.com/hupe1980/agentforge/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	forge, err := New()
	require.NoError(t, err)

	status := forge.Status()
	assert.Equal(t, 4, status.TotalDesigns, "baseline seed library installed")
	assert.Equal(t, 4, status.EnabledCount)
	assert.Zero(t, status.Generation)
}

func TestRunSearch_EndToEnd(t *testing.T) {
	mock := oracle.NewMockOracle()
	mock.EnqueueProposal(core.Proposal{Name: "Candidate", Rationale: "r", Body: "b"})

	eval := evaluation.NewMockEvaluator(0.3)
	eval.Enqueue(0.75)

	forge, err := New(func(o *Options) {
		o.Oracle = mock
		o.Evaluator = eval
		o.Config = core.SearchConfig{
			MaxGenerations:      1,
			RefinementRounds:    0,
			MinFitnessThreshold: 0.6,
		}
	})
	require.NoError(t, err)

	discovered, err := forge.RunSearch(context.Background(), []core.Task{{ID: "t1"}}, nil)
	require.NoError(t, err)

	require.Len(t, discovered, 1)
	assert.Equal(t, "Candidate", discovered[0].Name)
	assert.InDelta(t, 0.75, discovered[0].Fitness.Mean, 1e-12)
}

func TestNew_FileBackedArchiveSurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")

	first, err := New(func(o *Options) { o.Store = storage.NewFileStore(path) })
	require.NoError(t, err)

	d, err := first.RunGeneration(context.Background())
	require.NoError(t, err)

	// New process lifetime: archive persists, generation counter does not.
	second, err := New(func(o *Options) { o.Store = storage.NewFileStore(path) })
	require.NoError(t, err)

	status := second.Status()
	assert.Equal(t, 5, status.TotalDesigns)
	assert.Zero(t, status.Generation, "counter is scoped to the engine instance")

	got, ok := second.Archive().Get(d.ID)
	require.True(t, ok)
	assert.Equal(t, d.Name, got.Name)
}
