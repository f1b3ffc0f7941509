// Package llm wraps the OpenAI chat completion API for the generation
// services: model selection, generation settings, and a JSON-mode fallback
// for models that reject response_format.
package llm

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyResponse indicates the provider returned no choices or an
	// empty message. Distinct from malformed output, which the normalizer
	// reports.
	ErrEmptyResponse = errors.New("model returned an empty response")

	// ErrInvalidAPIKey indicates the configured API key was rejected.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrRateLimited indicates the provider rate limit was hit.
	ErrRateLimited = errors.New("rate limited by provider")

	// ErrProviderUnavailable indicates a transient provider-side failure.
	ErrProviderUnavailable = errors.New("provider unavailable")
)

// isJSONModeUnsupported reports whether an error indicates the model
// rejected the response_format parameter. These requests are retried once
// without JSON mode.
func isJSONModeUnsupported(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	patterns := []string{
		"response_format",
		"json mode",
		"json_object",
		"structured output not supported",
	}
	for _, p := range patterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// Classify maps a provider error onto one of the package sentinels so
// callers can branch with errors.Is. Unrecognized errors pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "invalid api key") || strings.Contains(msg, "incorrect api key"):
		return errors.Join(ErrInvalidAPIKey, err)
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit"):
		return errors.Join(ErrRateLimited, err)
	case strings.Contains(msg, "502") || strings.Contains(msg, "503") || strings.Contains(msg, "overloaded") ||
		strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return errors.Join(ErrProviderUnavailable, err)
	}
	return err
}
