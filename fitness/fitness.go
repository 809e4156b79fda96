// Package fitness implements the incremental statistics behind design
// ranking: an exact running mean over observed accuracies, a 95%
// normal-approximation confidence interval using the binomial-proportion
// standard error, and the irreversible retirement rule applied once enough
// evidence of poor performance has accumulated.
package fitness

import (
	"math"

	"github.com/hupe1980/agentforge/core"
)

const (
	// zScore is the two-sided 95% critical value of the standard normal
	// distribution used for the confidence bounds.
	zScore = 1.96

	// RetirementMinCount is the minimum number of observations before the
	// retirement rule may fire.
	RetirementMinCount = 5

	// RetirementMeanBelow is the mean-accuracy threshold under which a
	// design with enough observations is retired.
	RetirementMeanBelow = 0.3
)

// Observe folds one observed accuracy into the running statistics and
// returns the updated value. The mean is the exact incremental average over
// all observations; the variance estimate is mean*(1-mean)/count and the
// bounds are mean -/+ 1.96 standard errors, each clamped to [0,1].
func Observe(f core.Fitness, accuracy float64) core.Fitness {
	count := f.Count + 1
	mean := (f.Mean*float64(f.Count) + accuracy) / float64(count)

	variance := mean * (1 - mean) / float64(count)
	stdErr := math.Sqrt(variance)

	return core.Fitness{
		Mean:  mean,
		Lower: clamp01(mean - zScore*stdErr),
		Upper: clamp01(mean + zScore*stdErr),
		Count: count,
	}
}

// ShouldRetire reports whether the statistics have crossed the retirement
// rule: at least RetirementMinCount observations with a mean below
// RetirementMeanBelow. Retirement itself is applied by the archive and is a
// one-way transition.
func ShouldRetire(f core.Fitness) bool {
	return f.Count >= RetirementMinCount && f.Mean < RetirementMeanBelow
}

// Initial returns the statistics for a seed design: a plausible starting
// mean with no observations yet. Bounds collapse onto the mean because no
// evidence exists either way.
func Initial(mean float64) core.Fitness {
	return core.Fitness{Mean: mean, Lower: mean, Upper: mean, Count: 0}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
