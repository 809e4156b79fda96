// Package openai provides an Oracle implementation backed by the OpenAI
// Chat Completions API. Structured completions use function calling: the
// desired shape is exposed as a tool definition and the tool call arguments
// are unmarshaled into the caller's value.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/agentforge/internal/util"
	"github.com/openai/openai-go"
)

const recordTool = "record_result"

// Options configure the OpenAI oracle adapter. Fields mirror a subset of
// Chat Completion parameters intentionally kept minimal; extend via
// functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Oracle wraps the OpenAI Chat Completions API behind the core.Oracle interface.
type Oracle struct {
	client *openai.Client
	opts   Options
}

// New creates a new OpenAI oracle using the official client.
func New(optFns ...func(o *Options)) *Oracle {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a new OpenAI oracle from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Oracle {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Oracle{client: client, opts: opts}
}

// Complete implements core.Oracle; returns the first choice's text content.
func (o *Oracle) Complete(ctx context.Context, prompt, systemPrompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, o.buildParams(prompt, systemPrompt, nil))
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("openai returned no text content")
	}

	return text, nil
}

// CompleteStructured implements core.Oracle. Preference order: a tool call
// carrying the shape as arguments, then raw JSON in the text content
// (code fences stripped). Anything else is a malformed-output error.
func (o *Oracle) CompleteStructured(ctx context.Context, prompt, systemPrompt string, out any) error {
	tools := []openai.ChatCompletionToolParam{o.buildRecordTool(out)}

	instruction := prompt + fmt.Sprintf("\n\nRecord your answer by calling the %s function with all fields filled in.", recordTool)

	resp, err := o.client.Chat.Completions.New(ctx, o.buildParams(instruction, systemPrompt, tools))
	if err != nil {
		return fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return fmt.Errorf("no choices returned")
	}

	msg := resp.Choices[0].Message
	for _, tc := range msg.ToolCalls {
		if tc.Function.Name != recordTool {
			continue
		}
		if err := json.Unmarshal([]byte(tc.Function.Arguments), out); err != nil {
			return fmt.Errorf("malformed structured output: %w", err)
		}
		return nil
	}

	if text := stripCodeFences(msg.Content); text != "" {
		if err := json.Unmarshal([]byte(text), out); err != nil {
			return fmt.Errorf("malformed structured output: %w", err)
		}
		return nil
	}

	return fmt.Errorf("openai returned no %s call and no JSON content", recordTool)
}

// buildParams assembles the request parameters shared by both completion paths.
func (o *Oracle) buildParams(prompt, systemPrompt string, tools []openai.ChatCompletionToolParam) openai.ChatCompletionNewParams {
	var messages []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(prompt))

	params := openai.ChatCompletionNewParams{
		Messages:            messages,
		Model:               o.opts.Model,
		Temperature:         openai.Float(o.opts.Temperature),
		MaxCompletionTokens: openai.Int(o.opts.MaxCompletionTokens),
	}
	if len(tools) > 0 {
		params.Tools = tools
	}
	return params
}

// buildRecordTool derives the function definition from the output shape.
func (o *Oracle) buildRecordTool(out any) openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Type: "function",
		Function: openai.FunctionDefinitionParam{
			Name:        recordTool,
			Description: openai.String("Record the structured result of this request."),
			Parameters:  util.CreateSchema(out),
		},
	}
}

// stripCodeFences removes a surrounding markdown code fence if present.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
