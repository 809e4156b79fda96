package archive

// Seed describes one entry of the fixed baseline library installed when no
// prior archive exists. The library is a static asset: order and content are
// part of the system definition, not derived at runtime. Each seed carries a
// plausible non-zero starting mean (with zero observations) so the very
// first ranking round is not degenerate.
type Seed struct {
	Name         string
	Rationale    string
	Body         string
	StartingMean float64
}

// BaselineSeeds returns the default seed library of known-good strategies.
func BaselineSeeds() []Seed {
	return []Seed{
		{
			Name:         "Chain-of-Thought Reasoner",
			Rationale:    "Decomposing a task into explicit intermediate reasoning steps before committing to an answer reliably improves accuracy on multi-step problems.",
			Body:         "Read the task. Produce a numbered list of reasoning steps, resolving each step before moving on. Derive the final answer only from the completed steps and state it on the last line.",
			StartingMean: 0.50,
		},
		{
			Name:         "Self-Consistency Voter",
			Rationale:    "Sampling several independent reasoning paths and taking the majority answer averages out individual reasoning slips.",
			Body:         "Solve the task three times independently with different reasoning approaches. Compare the three answers. Output the answer that appears most often; on a three-way tie, output the answer from the most detailed attempt.",
			StartingMean: 0.55,
		},
		{
			Name:         "Plan-then-Execute Solver",
			Rationale:    "Separating planning from execution keeps long tasks on track: a short upfront plan prevents the solution from drifting mid-way.",
			Body:         "First write a plan of at most five steps covering the whole task. Then execute the plan step by step, marking each step done. If a step fails, revise only that step and continue. Output the result of the final step.",
			StartingMean: 0.58,
		},
		{
			Name:         "Reflective Reviser",
			Rationale:    "A dedicated self-review pass after drafting catches errors the drafting pass is blind to, at the cost of one extra round.",
			Body:         "Draft a complete solution. Then review the draft as a critical examiner: list concrete mistakes or gaps. Produce a revised solution fixing every listed issue and output only the revision.",
			StartingMean: 0.52,
		},
	}
}
