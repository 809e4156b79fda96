// Package core provides the foundational domain types and interfaces used by
// AgentForge. It defines the core abstractions for:
//
//   - Designs (candidate agent strategies with fitness statistics)
//   - The archive document format persisted between runs
//   - Pluggable collaborators: the generative Oracle, the task Evaluator and
//     the DocumentStore used for archive persistence
//   - Search configuration and status reporting
//
// The package intentionally keeps implementation concerns (persistence,
// prompt construction, the search loop itself) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
