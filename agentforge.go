// Package agentforge provides a high-level façade over the archive, the
// candidate generator and the search engine, enabling rapid construction of
// archive-based meta-search over agent designs. Most applications interact
// with this package by:
//  1. Creating an AgentForge via New() (supplying an oracle, an evaluator and
//     a storage location; unset services default to in-memory/mock versions)
//  2. Running searches (RunSearch) or single generations (RunGeneration)
//  3. Inspecting progress via Status() and the underlying Archive()
//
// All defaults are safe for local development and testing; production
// deployments supply a real oracle adapter, a durable file store and a
// structured logger.
package agentforge

import (
	"context"

	"github.com/hupe1980/agentforge/archive"
	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/engine"
	"github.com/hupe1980/agentforge/evaluation"
	"github.com/hupe1980/agentforge/generator"
	"github.com/hupe1980/agentforge/logging"
	"github.com/hupe1980/agentforge/oracle"
	"github.com/hupe1980/agentforge/storage"
)

// Options configures the AgentForge instance.
type Options struct {
	// Config tunes the search loop (generation budget, refinement rounds,
	// discovery threshold).
	Config core.SearchConfig

	// Store persists the archive document (defaults to an in-memory store;
	// use storage.NewFileStore for durability across restarts).
	Store core.DocumentStore

	// Oracle supplies design proposals and refinements (defaults to the mock).
	Oracle core.Oracle

	// Evaluator scores design bodies against task suites (defaults to a mock
	// reporting 0.5 for everything).
	Evaluator core.Evaluator

	// Seeds overrides the baseline design library.
	Seeds []archive.Seed

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// AgentForge is the high-level façade aggregating the archive and the search
// engine behind a small API surface.
type AgentForge struct {
	opts    Options
	archive *archive.Archive
	engine  *engine.Engine
}

// New creates a new AgentForge instance with optional overrides and
// initializes the archive: a prior persisted archive is loaded, otherwise
// the baseline seed library is installed and persisted. The only error
// surfaced here is a persistence failure.
func New(optFns ...func(o *Options)) (*AgentForge, error) {
	opts := Options{
		Config:    engine.DefaultConfig,
		Store:     storage.NewInMemoryStore(),
		Oracle:    oracle.NewMockOracle(),
		Evaluator: evaluation.NewMockEvaluator(0.5),
		Seeds:     archive.BaselineSeeds(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	arch := archive.New(opts.Store, func(o *archive.Options) {
		o.Seeds = opts.Seeds
		o.Logger = opts.Logger
	})
	if err := arch.Initialize(); err != nil {
		return nil, err
	}

	gen := generator.New(opts.Oracle, arch, func(o *generator.Options) {
		o.RefinementRounds = opts.Config.RefinementRounds
		o.Logger = opts.Logger
	})

	eng := engine.New(arch, gen, opts.Evaluator, func(o *engine.Options) {
		o.Config = opts.Config
		o.Logger = opts.Logger
	})

	return &AgentForge{opts: opts, archive: arch, engine: eng}, nil
}

// Archive returns the underlying archive for direct inspection.
func (f *AgentForge) Archive() *archive.Archive { return f.archive }

// RunGeneration produces, refines and archives a single new design.
func (f *AgentForge) RunGeneration(ctx context.Context) (*core.Design, error) {
	return f.engine.RunGeneration(ctx)
}

// EvaluateAgent scores one archived design against the task suite and folds
// the result into its fitness statistics.
func (f *AgentForge) EvaluateAgent(ctx context.Context, id string, tasks []core.Task) (*core.EvalResult, error) {
	return f.engine.EvaluateAgent(ctx, id, tasks)
}

// RunSearch runs the full generation budget against the task suite and
// returns the designs that met the discovery threshold.
func (f *AgentForge) RunSearch(ctx context.Context, tasks []core.Task, onProgress engine.ProgressFunc) ([]*core.Design, error) {
	return f.engine.RunSearch(ctx, tasks, onProgress)
}

// Status returns a read-only summary of archive and search state.
func (f *AgentForge) Status() core.SearchStatus { return f.engine.Status() }
