// Package storage contains concrete DocumentStore implementations. The store
// interface and archive document shape reside in the core package. Import
// github.com/hupe1980/agentforge/core and depend on core.DocumentStore in
// your code; select an implementation (file-backed or the in-memory store
// below) at wiring time.
//
// Rationale: keeps domain contracts centralized while allowing pluggable
// backends (object storage, databases, etc.) to be added without introducing
// dependency cycles.
package storage
