// Package archive implements the durable, ranked population of all designs
// ever produced. The archive is append-only: designs are added by the
// candidate generator and mutated only through fitness updates; retirement is
// the only terminal transition and nothing is ever deleted. Every mutation is
// followed by a synchronous full-document persist so the on-disk state always
// matches the in-process state.
package archive
