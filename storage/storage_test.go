package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/agentforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertions)
var (
	_ core.DocumentStore = (*FileStore)(nil)
	_ core.DocumentStore = (*InMemoryStore)(nil)
)

func sampleDoc() *core.ArchiveDocument {
	return &core.ArchiveDocument{Agents: []*core.Design{
		{
			ID:        "seed-1",
			Name:      "Baseline",
			Rationale: "known good",
			Body:      "do the task",
			Origin:    core.SeedOrigin(1),
			Fitness:   core.Fitness{Mean: 0.5, Lower: 0.5, Upper: 0.5},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
			Enabled:   true,
		},
	}}
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "archive.json"))

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "archive.json")
	store := NewFileStore(path)

	require.NoError(t, store.Save(sampleDoc()), "parent directories are created on demand")

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded.Agents, 1)
	assert.Equal(t, "seed-1", loaded.Agents[0].ID)
	assert.Equal(t, 0.5, loaded.Agents[0].Fitness.Mean)
	assert.Equal(t, core.OriginSeed, loaded.Agents[0].Origin.Kind)
}

func TestFileStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound, "corruption is distinct from absence")
}

func TestFileStore_LoadWrongShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "archive.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"something":"else"}`), 0o644))

	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestInMemoryStore_RoundTrip(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(sampleDoc()))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Len(t, loaded.Agents, 1)
}

func TestInMemoryStore_Corrupt(t *testing.T) {
	store := NewInMemoryStore()
	require.NoError(t, store.Save(sampleDoc()))

	store.Corrupt()

	_, err := store.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
