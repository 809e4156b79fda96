// Package engine drives the search loop: successive generations of
// propose -> refine -> evaluate -> archive-update, up to a configured
// generation budget. Generations execute strictly sequentially because each
// depends on the previous generation's effect on archive ranking; there is
// no parallel generation within one run.
package engine
