// Package evaluation contains Evaluator implementations for tests and local
// wiring. The Evaluator contract itself lives in the core package; real task
// execution belongs to an external collaborator; the search core only
// consumes the reported accuracy.
package evaluation

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/agentforge/core"
)

// FixedEvaluator reports the same accuracy for every design. Useful for
// wiring demos and threshold tests.
type FixedEvaluator struct {
	Accuracy float64
}

// Evaluate implements core.Evaluator.
func (e *FixedEvaluator) Evaluate(_ context.Context, _ string, tasks []core.Task) (*core.EvalResult, error) {
	return &core.EvalResult{
		Success:  true,
		Accuracy: e.Accuracy,
		Duration: time.Duration(len(tasks)) * time.Millisecond,
	}, nil
}

// MockEvaluator serves scripted results in FIFO order, falling back to a
// default accuracy once the script is exhausted. A permanent error can be
// installed to exercise evaluation failure handling.
type MockEvaluator struct {
	mu       sync.Mutex
	scripted []float64
	fallback float64
	err      error
	calls    int
}

// NewMockEvaluator constructs a mock evaluator with the given fallback accuracy.
func NewMockEvaluator(fallback float64) *MockEvaluator {
	return &MockEvaluator{fallback: fallback}
}

// Enqueue scripts accuracies returned by the next calls, in order.
func (e *MockEvaluator) Enqueue(accuracies ...float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scripted = append(e.scripted, accuracies...)
}

// FailWith installs a permanent error returned by every subsequent call.
func (e *MockEvaluator) FailWith(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.err = err
}

// Calls returns the number of Evaluate calls made so far.
func (e *MockEvaluator) Calls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls
}

// Evaluate implements core.Evaluator.
func (e *MockEvaluator) Evaluate(_ context.Context, _ string, _ []core.Task) (*core.EvalResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls++
	if e.err != nil {
		return nil, e.err
	}

	accuracy := e.fallback
	if len(e.scripted) > 0 {
		accuracy = e.scripted[0]
		e.scripted = e.scripted[1:]
	}

	return &core.EvalResult{Success: true, Accuracy: accuracy, Duration: time.Millisecond}, nil
}
