package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOllamaBaseURL = "http://localhost:11434/v1"

// OllamaProvider targets a locally hosted Ollama daemon through its
// OpenAI-compatible endpoint. This is the default provider: the engine is
// built to run fully offline against a local model.
//
// Ollama has no server-side structured output, so schema conformance is
// requested via JSON mode plus prompt rules and validated after the fact by
// the caller's defensive parser.
type OllamaProvider struct {
	client *openai.Client
	model  string
}

// NewOllamaProvider creates a provider for a local Ollama daemon.
// No API key is required; the base URL defaults to localhost:11434.
func NewOllamaProvider(cfg OllamaConfig) (*OllamaProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOllamaBaseURL
	}

	// The SDK insists on a token; Ollama ignores it.
	config := openai.DefaultConfig("ollama")
	config.BaseURL = baseURL

	return &OllamaProvider{
		client: openai.NewClientWithConfig(config),
		model:  cfg.Model,
	}, nil
}

func (p *OllamaProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    buildOpenAIMessages(req),
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	// Best effort: ask for a JSON object. Local models still wrap output
	// in prose or fences often enough that callers must parse defensively.
	if req.Schema != nil {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("no choices in Ollama response"),
		}
	}

	model := resp.Model
	if model == "" {
		model = p.model
	}

	return &Response{
		Content: json.RawMessage(resp.Choices[0].Message.Content),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
		Model:      model,
		StopReason: mapOpenAIStopReason(resp.Choices[0].FinishReason),
	}, nil
}

func (p *OllamaProvider) ModelID() string {
	return p.model
}
