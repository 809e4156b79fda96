package oracle

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/agentforge/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.Oracle = (*MockOracle)(nil)

func TestMockOracle_ScriptedProposals(t *testing.T) {
	m := NewMockOracle()
	m.EnqueueProposal(core.Proposal{Name: "A"})
	m.EnqueueProposal(core.Proposal{Name: "B"})

	var p core.Proposal
	require.NoError(t, m.CompleteStructured(context.Background(), "p", "s", &p))
	assert.Equal(t, "A", p.Name)

	require.NoError(t, m.CompleteStructured(context.Background(), "p", "s", &p))
	assert.Equal(t, "B", p.Name)

	// Exhausted script falls back to the generic proposal.
	require.NoError(t, m.CompleteStructured(context.Background(), "p", "s", &p))
	assert.Equal(t, "Mock Strategy", p.Name)
	assert.Equal(t, 3, m.Calls())
}

func TestMockOracle_ScriptedError(t *testing.T) {
	m := NewMockOracle()
	m.EnqueueError(fmt.Errorf("boom"))
	m.EnqueueProposal(core.Proposal{Name: "after"})

	var p core.Proposal
	require.Error(t, m.CompleteStructured(context.Background(), "p", "s", &p))
	require.NoError(t, m.CompleteStructured(context.Background(), "p", "s", &p))
	assert.Equal(t, "after", p.Name)
}

func TestMockOracle_Complete(t *testing.T) {
	m := NewMockOracle()
	m.AddResponse("ping", "pong")

	resp, err := m.Complete(context.Background(), "ping", "")
	require.NoError(t, err)
	assert.Equal(t, "pong", resp)

	resp, err = m.Complete(context.Background(), "other", "")
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: other", resp)
}
