package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleShape struct {
	Name     string  `json:"name" description:"short label"`
	Score    float64 `json:"score"`
	Optional string  `json:"optional,omitempty"`
	hidden   int
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(&sampleShape{})

	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "score")
	assert.Contains(t, props, "optional")
	assert.NotContains(t, props, "hidden")

	name := props["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "short label", name["description"])

	score := props["score"].(map[string]any)
	assert.Equal(t, "number", score["type"])

	required, ok := schema["required"].([]string)
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"name", "score"}, required)
}

func TestCreateSchema_NonStruct(t *testing.T) {
	schema := CreateSchema("just a string")

	assert.Equal(t, "object", schema["type"])
	assert.Empty(t, schema["properties"])
}
