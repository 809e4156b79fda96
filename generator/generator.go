package generator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hupe1980/agentforge/archive"
	"github.com/hupe1980/agentforge/core"
	"github.com/hupe1980/agentforge/logging"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// RefinementRounds is the number of self-critique passes. At most
	// len(critiquePrompts) rounds are available; zero disables refinement.
	RefinementRounds int
	// TopN is how many archive designs are rendered into the prompt.
	TopN int
	// Logging services.
	Logger logging.Logger
}

// Generator builds one new design per call by querying the oracle against
// the current archive ranking and refining the result.
type Generator struct {
	oracle  core.Oracle
	archive *archive.Archive

	refinementRounds int
	topN             int
	logger           logging.Logger
}

// New constructs a Generator with optional overrides.
func New(oracle core.Oracle, arch *archive.Archive, optFns ...func(o *Options)) *Generator {
	opts := Options{
		RefinementRounds: len(critiquePrompts),
		TopN:             5,
		Logger:           logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.RefinementRounds > len(critiquePrompts) {
		opts.RefinementRounds = len(critiquePrompts)
	}

	return &Generator{
		oracle:           oracle,
		archive:          arch,
		refinementRounds: opts.RefinementRounds,
		topN:             opts.TopN,
		logger:           opts.Logger,
	}
}

// Generate produces, refines and archives one design for the given
// generation index. A failure of the initial oracle call aborts the whole
// attempt with no archive mutation and is not retried here; a failed
// refinement round is skipped with the prior design state kept.
func (g *Generator) Generate(ctx context.Context, generation int) (*core.Design, error) {
	prompt := g.buildProposePrompt()

	var proposal core.Proposal
	if err := g.oracle.CompleteStructured(ctx, prompt, systemPrompt, &proposal); err != nil {
		return nil, fmt.Errorf("design generation failed: %w", err)
	}

	for round := 0; round < g.refinementRounds; round++ {
		refined, err := g.refine(ctx, proposal, critiquePrompts[round])
		if err != nil {
			g.logger.Warn("refinement round skipped",
				"generation", generation, "round", round+1, "error", err.Error())
			continue
		}
		proposal = refined
	}

	return g.archive.Add(core.Candidate{
		Name:       proposal.Name,
		Rationale:  proposal.Rationale,
		Body:       proposal.Body,
		Generation: generation,
	})
}

// buildProposePrompt composes the archive rendering with the fixed
// "interestingly different" instruction.
func (g *Generator) buildProposePrompt() string {
	return g.archive.BuildPrompt(g.topN) + "\n" + proposeInstruction
}

// refine submits the current proposal plus one critique prompt and returns
// the possibly revised proposal.
func (g *Generator) refine(ctx context.Context, p core.Proposal, critique string) (core.Proposal, error) {
	serialized, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return core.Proposal{}, fmt.Errorf("failed to serialize proposal: %w", err)
	}

	prompt := fmt.Sprintf("%s\n\nCurrent design:\n%s", critique, serialized)

	var refined core.Proposal
	if err := g.oracle.CompleteStructured(ctx, prompt, systemPrompt, &refined); err != nil {
		return core.Proposal{}, err
	}

	return refined, nil
}
