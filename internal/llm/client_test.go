package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// stubCompleter records requests and returns canned responses.
type stubCompleter struct {
	requests  []openai.ChatCompletionRequest
	responses []stubResponse
}

type stubResponse struct {
	content string
	err     error
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.requests = append(s.requests, req)
	idx := len(s.requests) - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	r := s.responses[idx]
	if r.err != nil {
		return openai.ChatCompletionResponse{}, r.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: r.content}},
		},
	}, nil
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty uses default", "", DefaultModel},
		{"allowed model kept", openai.GPT4oMini, openai.GPT4oMini},
		{"unknown falls back", "gpt-imaginary", DefaultModel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveModel(tt.in); got != tt.want {
				t.Errorf("ResolveModel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompleteSendsJSONMode(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{content: `{"ok":true}`}}}
	client := NewClientWithCompleter(stub, ClientConfig{Model: openai.GPT4})

	got, err := client.Complete(context.Background(), "system", "user", Options{
		Temperature: 0.8,
		MaxTokens:   1000,
		JSONMode:    true,
	})
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("Complete() = %q", got)
	}

	req := stub.requests[0]
	if req.ResponseFormat == nil || req.ResponseFormat.Type != openai.ChatCompletionResponseFormatTypeJSONObject {
		t.Error("request missing JSON response format")
	}
	if req.Temperature != 0.8 {
		t.Errorf("Temperature = %v, want 0.8", req.Temperature)
	}
	if req.MaxTokens != 1000 {
		t.Errorf("MaxTokens = %d, want 1000", req.MaxTokens)
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Error("expected system+user message pair")
	}
}

func TestCompleteJSONModeFallback(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{
		{err: errors.New("400: response_format is not supported for this model")},
		{content: `{"ok":true}`},
	}}
	client := NewClientWithCompleter(stub, ClientConfig{Model: openai.GPT4})

	got, err := client.Complete(context.Background(), "s", "u", Options{JSONMode: true})
	if err != nil {
		t.Fatalf("Complete() error: %v", err)
	}
	if got != `{"ok":true}` {
		t.Errorf("Complete() = %q", got)
	}

	if len(stub.requests) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(stub.requests))
	}
	if stub.requests[1].ResponseFormat != nil {
		t.Error("retry should not include response_format")
	}
}

func TestCompleteNoFallbackForOtherErrors(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{
		{err: errors.New("429: rate limit exceeded")},
	}}
	client := NewClientWithCompleter(stub, ClientConfig{Model: openai.GPT4})

	_, err := client.Complete(context.Background(), "s", "u", Options{JSONMode: true})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("error = %v, want ErrRateLimited", err)
	}
	if len(stub.requests) != 1 {
		t.Errorf("expected 1 request, got %d", len(stub.requests))
	}
}

func TestCompleteEmptyResponse(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{content: "   "}}}
	client := NewClientWithCompleter(stub, ClientConfig{Model: openai.GPT4})

	_, err := client.Complete(context.Background(), "s", "u", Options{})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("error = %v, want ErrEmptyResponse", err)
	}
}

func TestCompleteOperatorOverrides(t *testing.T) {
	stub := &stubCompleter{responses: []stubResponse{{content: "ok"}}}
	client := NewClientWithCompleter(stub, ClientConfig{
		Model:               openai.GPT4,
		TemperatureOverride: 0.3,
		MaxTokensOverride:   256,
	})

	if _, err := client.Complete(context.Background(), "s", "u", Options{Temperature: 0.8, MaxTokens: 1000}); err != nil {
		t.Fatalf("Complete() error: %v", err)
	}

	req := stub.requests[0]
	if req.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want override 0.3", req.Temperature)
	}
	if req.MaxTokens != 256 {
		t.Errorf("MaxTokens = %d, want override 256", req.MaxTokens)
	}
}
