package core

import "context"

// Oracle is the generative completion service consulted for new design
// proposals and refinements. Implementations must return a distinguishable
// error on transport failure or malformed structured output; they must not
// silently truncate.
type Oracle interface {
	// Complete returns a free-text completion for the prompt.
	Complete(ctx context.Context, prompt, systemPrompt string) (string, error)

	// CompleteStructured unmarshals a structured completion into out. For
	// this module out is always a *Proposal, but the contract is kept
	// shape-agnostic so adapters stay reusable.
	CompleteStructured(ctx context.Context, prompt, systemPrompt string, out any) error
}
