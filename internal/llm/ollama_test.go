package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

func newTestOllamaProvider(t *testing.T, handler http.HandlerFunc) *OllamaProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("ollama")
	config.BaseURL = server.URL + "/v1"

	return &OllamaProvider{
		client: openai.NewClientWithConfig(config),
		model:  "qwen3:8b",
	}
}

func TestNewOllamaProvider_Defaults(t *testing.T) {
	p, err := NewOllamaProvider(OllamaConfig{Model: "qwen3:8b"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "qwen3:8b" {
		t.Errorf("ModelID = %q", p.ModelID())
	}

	if _, err := NewOllamaProvider(OllamaConfig{}); err == nil {
		t.Error("missing model not rejected")
	}
}

func TestOllamaProvider_HappyPath(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-local",
			"object":  "chat.completion",
			"created": 1234567890,
			"model":   "qwen3:8b",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": `{"question":"What is 2+3?","correct_answer":"5"}`,
					},
					"finish_reason": "stop",
				},
			},
			"usage": map[string]any{
				"prompt_tokens":     40,
				"completion_tokens": 25,
				"total_tokens":      65,
			},
		})
	}

	p := newTestOllamaProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "system",
		Messages:  []Message{{Role: RoleUser, Content: "generate"}},
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatal(err)
	}

	var parsed map[string]string
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		t.Fatalf("content not JSON: %v", err)
	}
	if parsed["correct_answer"] != "5" {
		t.Errorf("correct_answer = %q", parsed["correct_answer"])
	}
	if resp.Usage.TotalTokens != 65 {
		t.Errorf("total tokens = %d", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q", resp.StopReason)
	}
}

func TestOllamaProvider_ServerError(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}

	p := newTestOllamaProvider(t, handler)
	_, err := p.Generate(context.Background(), Request{
		Messages: []Message{{Role: RoleUser, Content: "generate"}},
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
