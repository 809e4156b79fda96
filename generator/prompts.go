package generator

// systemPrompt is the fixed framing sent with every oracle call.
const systemPrompt = `You are an expert in agent design, searching for novel agentic strategies that outperform an existing archive. You draw on ideas from the research literature and adjacent fields rather than making incremental tweaks. Strategy bodies must be complete, self-contained instructions an executor can follow without further context.`

// proposeInstruction closes the archive rendering in the initial prompt.
const proposeInstruction = `Propose a new agent design that is interestingly different from every design shown above. Prefer synthesizing ideas from outside literature over tweaking the archive. Provide a short name, a rationale explaining why it should perform well, and the full strategy body.`

// critiquePrompts are the per-round self-review instructions, applied in
// order. Their count is the default refinement round count.
var critiquePrompts = []string{
	`Review the design below against two criteria: (1) is it genuinely distinct from common archive strategies rather than a rewording, and (2) is the strategy body correct and complete enough to execute as written? Return the design, revised wherever it falls short. Keep the same three fields.`,

	`Review the design below for robustness: how does it behave on malformed input, ambiguous tasks, and cases where an intermediate step fails? Revise the strategy body so these edge cases are handled explicitly. Return the design with the same three fields.`,
}
