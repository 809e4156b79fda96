package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/hupe1980/agentforge/core"
)

// MockOracle is a lightweight in-memory Oracle useful for tests & examples.
// Structured completions are served from a scripted queue in FIFO order;
// free-text completions come from a prompt -> response map. A permanent
// failure can be installed to exercise the abort paths of the search loop.
type MockOracle struct {
	mu        sync.Mutex
	responses map[string]string
	scripted  []scriptedCompletion
	failErr   error
	calls     int
}

type scriptedCompletion struct {
	proposal core.Proposal
	err      error
}

// NewMockOracle constructs an empty mock oracle.
func NewMockOracle() *MockOracle {
	return &MockOracle{responses: make(map[string]string)}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockOracle) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// EnqueueProposal scripts the next structured completion.
func (m *MockOracle) EnqueueProposal(p core.Proposal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripted = append(m.scripted, scriptedCompletion{proposal: p})
}

// EnqueueError scripts a one-shot failure for the next structured completion.
func (m *MockOracle) EnqueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scripted = append(m.scripted, scriptedCompletion{err: err})
}

// FailWith installs a permanent failure returned by every subsequent call.
func (m *MockOracle) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
}

// Calls returns the number of completion calls made so far.
func (m *MockOracle) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Complete implements core.Oracle.
func (m *MockOracle) Complete(_ context.Context, prompt, _ string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.failErr != nil {
		return "", m.failErr
	}
	if resp, ok := m.responses[prompt]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", prompt), nil
}

// CompleteStructured implements core.Oracle. With an empty script it echoes a
// generic proposal so simple wiring tests do not need scripting.
func (m *MockOracle) CompleteStructured(_ context.Context, _, _ string, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.failErr != nil {
		return m.failErr
	}

	next := scriptedCompletion{proposal: core.Proposal{
		Name:      "Mock Strategy",
		Rationale: "Canned proposal from the mock oracle.",
		Body:      "Do the task directly and output the answer.",
	}}
	if len(m.scripted) > 0 {
		next = m.scripted[0]
		m.scripted = m.scripted[1:]
	}
	if next.err != nil {
		return next.err
	}

	data, err := json.Marshal(next.proposal)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
