package core

import (
	"context"
	"time"
)

// Task is one unit of the benchmark suite a design is scored against. The
// payload format is a private matter between the caller and the Evaluator.
type Task struct {
	ID       string `json:"id"`
	Input    string `json:"input"`
	Expected string `json:"expected,omitempty"`
}

// EvalResult is the outcome of evaluating one design body against a task
// suite. Accuracy is treated as ground truth by the search loop; no
// independent validation is performed.
type EvalResult struct {
	Success  bool          `json:"success"`
	Accuracy float64       `json:"accuracy"` // in [0,1]
	Errors   []string      `json:"errors,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Evaluator executes a design body against a task suite and reports accuracy.
// Execution is entirely the evaluator's responsibility; the search core never
// parses or runs a design body itself.
type Evaluator interface {
	Evaluate(ctx context.Context, body string, tasks []Task) (*EvalResult, error)
}
