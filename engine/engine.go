package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hupe1980/agentforge/archive"
	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/generator"
	"github.com/hupe1980/agentforge/logging"
)

// DefaultConfig provides conservative default search parameters: a small
// generation budget, two refinement rounds and a discovery threshold above
// the seed library's starting fitness.
var DefaultConfig = core.SearchConfig{
	MaxGenerations:      10,
	EvalsPerDesign:      5,
	RefinementRounds:    2,
	MinFitnessThreshold: 0.6,
}

// ProgressFunc is invoked after each discovered design with the generation
// index that produced it.
type ProgressFunc func(generation int, design *core.Design)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Config tunes the search run (budget, threshold, refinement rounds).
	Config core.SearchConfig
	// Logging services.
	Logger logging.Logger
}

// Engine orchestrates successive search generations over one archive.
//
// The generation counter is scoped to the engine instance and is not
// persisted: restarting the process resets it while the archive itself
// survives, so generation numbers on stored designs are not globally unique
// across restarts. Provenance that must survive restarts should use the
// design's Origin tag together with the run id.
type Engine struct {
	archive   *archive.Archive
	generator *generator.Generator
	evaluator core.Evaluator

	config core.SearchConfig
	logger logging.Logger

	mu         sync.Mutex
	generation int
}

// New constructs an Engine with optional overrides.
func New(arch *archive.Archive, gen *generator.Generator, eval core.Evaluator, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Config: DefaultConfig,
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		archive:   arch,
		generator: gen,
		evaluator: eval,
		config:    opts.Config,
		logger:    opts.Logger,
	}
}

// Config returns the immutable search configuration of this engine.
func (e *Engine) Config() core.SearchConfig { return e.config }

// Generation returns the current in-memory generation counter.
func (e *Engine) Generation() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generation
}

// RunGeneration increments the generation counter and invokes the candidate
// generator once. A nil design with an error means the oracle aborted the
// attempt; the archive is untouched in that case.
func (e *Engine) RunGeneration(ctx context.Context) (*core.Design, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	start := time.Now()
	d, err := e.generator.Generate(ctx, gen)
	if err != nil {
		e.logger.Warn("generation aborted", "generation", gen, "error", err.Error())
		return nil, err
	}

	e.logger.Info("generation completed",
		"generation", gen, "design_id", d.ID, "name", d.Name,
		"duration", time.Since(start))

	return d, nil
}

// EvaluateAgent evaluates the design with the given id against the task
// suite and feeds the reported accuracy into the archive's fitness
// statistics. An unknown id or a failed evaluator call yields a structured
// failure result with no archive mutation. The returned error is non-nil
// only when persisting the fitness update failed; that is a hard fault.
func (e *Engine) EvaluateAgent(ctx context.Context, id string, tasks []core.Task) (*core.EvalResult, error) {
	d, ok := e.archive.Get(id)
	if !ok {
		return &core.EvalResult{
			Success:  false,
			Accuracy: 0,
			Errors:   []string{fmt.Sprintf("unknown design id: %s", id)},
			Duration: 0,
		}, nil
	}

	evalID := uuid.NewString()
	start := time.Now()

	res, err := e.evaluator.Evaluate(ctx, d.Body, tasks)
	if err != nil {
		e.logger.Warn("evaluation failed",
			"eval_id", evalID, "design_id", id, "error", err.Error())
		return &core.EvalResult{
			Success:  false,
			Accuracy: 0,
			Errors:   []string{err.Error()},
			Duration: time.Since(start),
		}, nil
	}

	e.logger.Debug("evaluation completed",
		"eval_id", evalID, "design_id", id,
		"accuracy", res.Accuracy, "tasks", len(tasks),
		"duration", time.Since(start))

	if err := e.archive.UpdateFitness(id, res.Accuracy); err != nil {
		return res, err
	}

	return res, nil
}

// RunSearch runs up to MaxGenerations iterations of generate -> evaluate.
// A generation whose oracle call aborted is skipped, not counted as a
// failure; designs scoring at or above MinFitnessThreshold are collected as
// discovered and reported through onProgress when supplied. The loop always
// completes its budget and an empty discovered list is valid output; only
// context cancellation or a persistence fault cut it short, surfacing as an
// error alongside whatever was discovered so far. No pruning happens
// here: below-threshold designs stay in the archive and are only ever
// retired by the fitness rule.
func (e *Engine) RunSearch(ctx context.Context, tasks []core.Task, onProgress ProgressFunc) ([]*core.Design, error) {
	runID := uuid.NewString()
	e.logger.Info("search started",
		"run_id", runID, "max_generations", e.config.MaxGenerations,
		"threshold", e.config.MinFitnessThreshold, "tasks", len(tasks))

	var discovered []*core.Design

	for i := 0; i < e.config.MaxGenerations; i++ {
		if err := ctx.Err(); err != nil {
			return discovered, err
		}

		d, err := e.RunGeneration(ctx)
		if err != nil || d == nil {
			continue
		}

		res, err := e.EvaluateAgent(ctx, d.ID, tasks)
		if err != nil {
			return discovered, err
		}

		if res.Accuracy >= e.config.MinFitnessThreshold {
			updated, ok := e.archive.Get(d.ID)
			if ok {
				d = updated
			}
			discovered = append(discovered, d)
			e.logger.Info("design discovered",
				"run_id", runID, "design_id", d.ID, "accuracy", res.Accuracy)
			if onProgress != nil {
				onProgress(e.Generation(), d)
			}
		}
	}

	e.logger.Info("search finished", "run_id", runID, "discovered", len(discovered))

	return discovered, nil
}

// Status derives a read-only summary from archive state: totals, the current
// in-memory generation counter and the top three designs with their
// confidence intervals and evaluation counts.
func (e *Engine) Status() core.SearchStatus {
	all := e.archive.All()
	enabled := 0
	for _, d := range all {
		if d.Enabled {
			enabled++
		}
	}

	top := e.archive.TopPerforming(3)
	performers := make([]core.TopDesign, 0, len(top))
	for _, d := range top {
		performers = append(performers, core.TopDesign{ID: d.ID, Name: d.Name, Fitness: d.Fitness})
	}

	return core.SearchStatus{
		TotalDesigns:  len(all),
		EnabledCount:  enabled,
		Generation:    e.Generation(),
		TopPerformers: performers,
	}
}
