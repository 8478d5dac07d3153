package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/parrotlabs/parley/core"
)

// ModelOptions configures the LLM-backed adapter.
type ModelOptions struct {
	Model       anthropic.Model
	MaxTokens   int64
	Temperature float64
	// System is an optional system prompt prepended to every turn.
	System string
	// Confidence is the fixed score assigned to every model answer; position
	// it between the fallback and the rule adapters so deterministic rules
	// keep winning when they fire.
	Confidence float64
	APIKey     string
}

// Model is the LLM extension point: an always-eligible adapter that asks the
// Anthropic Messages API for a reply and reports it at a fixed confidence.
// The session is not forwarded to the model.
type Model struct {
	client *anthropic.Client
	opts   ModelOptions
}

var _ core.LogicAdapter = (*Model)(nil)

// NewModel creates a model adapter using the official client. The API key
// falls back to the ANTHROPIC_API_KEY environment variable when unset.
func NewModel(optFns ...func(o *ModelOptions)) *Model {
	opts := defaultModelOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	client := anthropic.NewClient(clientOpts...)

	return &Model{client: &client, opts: opts}
}

// NewModelFromClient creates a model adapter from an existing client.
func NewModelFromClient(client *anthropic.Client, optFns ...func(o *ModelOptions)) *Model {
	opts := defaultModelOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, opts: opts}
}

func defaultModelOptions() ModelOptions {
	return ModelOptions{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		MaxTokens:   1024,
		Temperature: 0.7,
		Confidence:  0.5,
	}
}

// Name implements core.LogicAdapter.
func (a *Model) Name() string { return "model" }

// CanProcess implements core.LogicAdapter.
func (a *Model) CanProcess(context.Context, string, *core.Session) (bool, error) {
	return true, nil
}

// Process implements core.LogicAdapter.
func (a *Model) Process(ctx context.Context, utterance string, _ *core.Session) (core.Response, error) {
	params := anthropic.MessageNewParams{
		Model:       a.opts.Model,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: anthropic.Float(a.opts.Temperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(utterance)),
		},
	}
	if a.opts.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: a.opts.System}}
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return core.Response{}, fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	if sb.Len() == 0 {
		return core.Response{}, fmt.Errorf("anthropic returned no text content")
	}

	return core.NewResponse(sb.String(), a.opts.Confidence), nil
}
