// Package generator produces one new candidate design per invocation: it
// renders the archive's top performers into a prompt, asks the oracle for a
// proposal that departs from the shown set, then applies a fixed number of
// self-critique refinement rounds before the design is archived.
//
// The refinement count is bounded on purpose. A single generative pass tends
// toward superficially plausible but under-specified designs; a fixed, small
// number of critique rounds improves quality while keeping cost and latency
// predictable, unlike open-ended iteration.
package generator
