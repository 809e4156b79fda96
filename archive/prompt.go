package archive

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the top n enabled designs into the textual archive
// context shown to the oracle: name, mean fitness to two decimals, rationale
// and body per design. Retired designs never appear. The selection criterion
// is deliberately the plain top-n-by-mean ranking; it implicitly favors
// early high performers and changing it alters fitness dynamics.
func (a *Archive) BuildPrompt(n int) string {
	top := a.TopPerforming(n)

	var b strings.Builder
	b.WriteString("Current top-performing agent designs in the archive:\n")
	for i, d := range top {
		fmt.Fprintf(&b, "\n%d. %s (fitness: %.2f)\n", i+1, d.Name, d.Fitness.Mean)
		fmt.Fprintf(&b, "Rationale: %s\n", d.Rationale)
		fmt.Fprintf(&b, "Design:\n%s\n", d.Body)
	}
	return b.String()
}
