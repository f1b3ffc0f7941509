package llm

import (
	"context"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when OPENAI_MODEL is unset or not on the allow-list.
const DefaultModel = openai.GPT4

// supportedModels is the allow-list of chat models this service will call.
var supportedModels = map[string]bool{
	openai.GPT4:          true,
	openai.GPT4Turbo:     true,
	openai.GPT4o:         true,
	openai.GPT4oMini:     true,
	openai.GPT3Dot5Turbo: true,
}

// ResolveModel validates a configured model name against the allow-list,
// falling back to DefaultModel with a warning for unknown names.
func ResolveModel(name string) string {
	if name == "" {
		return DefaultModel
	}
	if supportedModels[name] {
		return name
	}
	slog.Warn("unsupported model configured, using default", "model", name, "default", DefaultModel)
	return DefaultModel
}

// ChatCompleter is the slice of the OpenAI client the Client needs.
// *openai.Client satisfies it; tests substitute a stub.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Options control a single completion call. Zero values fall back to the
// client-level overrides and then the caller's defaults.
type Options struct {
	Temperature float32
	MaxTokens   int
	JSONMode    bool
}

// Client issues chat completions with consistent settings and fallbacks.
type Client struct {
	api    ChatCompleter
	model  string
	logger *slog.Logger

	// operator overrides from config, applied over per-call options
	temperatureOverride float32
	maxTokensOverride   int
}

// ClientConfig configures a Client.
type ClientConfig struct {
	APIKey              string
	BaseURL             string // optional OpenAI-compatible endpoint
	Model               string
	TemperatureOverride float32
	MaxTokensOverride   int
	Logger              *slog.Logger
}

// NewClient builds a Client talking to the OpenAI API.
func NewClient(cfg ClientConfig) *Client {
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return newClient(openai.NewClientWithConfig(apiCfg), cfg)
}

// NewClientWithCompleter builds a Client over an existing completer.
// Used by tests to substitute a stub.
func NewClientWithCompleter(api ChatCompleter, cfg ClientConfig) *Client {
	return newClient(api, cfg)
}

func newClient(api ChatCompleter, cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api:                 api,
		model:               ResolveModel(cfg.Model),
		logger:              logger,
		temperatureOverride: cfg.TemperatureOverride,
		maxTokensOverride:   cfg.MaxTokensOverride,
	}
}

// Model returns the resolved model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a system+user prompt pair and returns the raw completion
// text. When JSONMode is requested and the model rejects response_format,
// the request is retried once without it; the prompt itself still demands
// JSON, so downstream normalization handles the rest.
func (c *Client) Complete(ctx context.Context, system, user string, opts Options) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature(opts),
		MaxTokens:   c.maxTokens(opts),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	}
	if opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil && opts.JSONMode && isJSONModeUnsupported(err) {
		c.logger.Warn("model rejected JSON mode, retrying without response_format",
			"model", c.model, "error", err)
		req.ResponseFormat = nil
		resp, err = c.api.CreateChatCompletion(ctx, req)
	}
	if err != nil {
		return "", Classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}

	c.logger.Debug("completion received",
		"model", c.model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return content, nil
}

func (c *Client) temperature(opts Options) float32 {
	if c.temperatureOverride > 0 {
		return c.temperatureOverride
	}
	return opts.Temperature
}

func (c *Client) maxTokens(opts Options) int {
	if c.maxTokensOverride > 0 {
		return c.maxTokensOverride
	}
	return opts.MaxTokens
}
