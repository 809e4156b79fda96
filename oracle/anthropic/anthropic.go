// Package anthropic provides an Oracle implementation backed by the
// Anthropic Claude Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
	"github.com/hupe1980/agentforge/internal/util"
)

// recordTool is the synthetic tool name used to obtain structured
// completions: the model is asked to "call" it with the desired shape as
// input, which the API returns as a typed tool_use block instead of prose.
const recordTool = "record_result"

// Options configures the Anthropic oracle adapter (model id, temperature,
// max tokens, API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Oracle wraps the Anthropic Messages API behind the core.Oracle interface.
type Oracle struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic oracle using the official client.
func New(optFns ...func(o *Options)) *Oracle {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Oracle{client: &client, opts: opts}
}

// NewFromClient creates a new Anthropic oracle from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Oracle {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Oracle{client: client, opts: opts}
}

// Complete implements core.Oracle; returns the concatenated text blocks of a
// single non-streaming completion.
func (o *Oracle) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	resp, err := o.client.Messages.New(ctx, o.buildParams(prompt, systemPrompt, nil))
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.AsText().Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("anthropic returned no text content")
	}

	return text, nil
}

// CompleteStructured implements core.Oracle. The desired shape is exposed as
// the input schema of a synthetic tool; the returned tool_use input is
// unmarshaled into out. A completion without a matching tool_use block is a
// malformed-output error, never silently truncated.
func (o *Oracle) CompleteStructured(ctx context.Context, prompt, systemPrompt string, out any) error {
	tool := o.buildRecordTool(out)

	instruction := prompt + fmt.Sprintf("\n\nRecord your answer by calling the %s tool with all fields filled in.", recordTool)

	resp, err := o.client.Messages.New(ctx, o.buildParams(instruction, systemPrompt, []anthropic.ToolUnionParam{tool}))
	if err != nil {
		return fmt.Errorf("anthropic api error: %w", err)
	}

	for _, block := range resp.Content {
		if block.Type != "tool_use" {
			continue
		}
		toolBlock := block.AsToolUse()
		if toolBlock.Name != recordTool {
			continue
		}
		data, err := json.Marshal(toolBlock.Input)
		if err != nil {
			return fmt.Errorf("failed to encode tool input: %w", err)
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("malformed structured output: %w", err)
		}
		return nil
	}

	return fmt.Errorf("anthropic returned no %s tool call", recordTool)
}

// buildParams assembles the message request shared by both completion paths.
func (o *Oracle) buildParams(prompt, systemPrompt string, tools []anthropic.ToolUnionParam) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:       o.opts.Model,
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
		MaxTokens:   o.opts.MaxTokens,
		Temperature: anthropic.Float(o.opts.Temperature),
	}

	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}
	if len(tools) > 0 {
		params.Tools = tools
	}

	return params
}

// buildRecordTool derives the synthetic tool definition from the output shape.
func (o *Oracle) buildRecordTool(out any) anthropic.ToolUnionParam {
	schema := util.CreateSchema(out)

	inputSchema := anthropic.ToolInputSchemaParam{
		Type: constant.Object("object"),
	}
	if properties, ok := schema["properties"]; ok {
		inputSchema.Properties = properties
	}
	if required, ok := schema["required"].([]string); ok {
		inputSchema.Required = required
	}

	return anthropic.ToolUnionParamOfTool(inputSchema, recordTool)
}
