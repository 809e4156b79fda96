// Package oracle contains concrete Oracle implementations. The Oracle
// interface and the Proposal completion shape reside in the core package;
// depend on core.Oracle in your code and select an implementation (Anthropic,
// OpenAI or the mock below) at wiring time.
package oracle
