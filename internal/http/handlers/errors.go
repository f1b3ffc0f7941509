package handlers

import (
	"errors"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dropshipai/branding-api/internal/llm"
	"github.com/dropshipai/branding-api/internal/service"
	"github.com/dropshipai/branding-api/internal/webfetch"
)

// mapServiceError converts service-layer errors into API responses.
// Unusable model completions are logged with the raw text server-side but
// surface as a generic 500; the raw completion never reaches clients.
func mapServiceError(err error, logger *slog.Logger) error {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		return huma.Error400BadRequest(validation.Error())
	}

	if errors.Is(err, service.ErrProjectNotFound) {
		return huma.Error404NotFound("Project not found or inaccessible")
	}

	if errors.Is(err, webfetch.ErrNoContent) {
		return huma.Error502BadGateway("Failed to fetch website content")
	}

	var modelErr *service.ModelResponseError
	if errors.As(err, &modelErr) {
		logger.Error("model completion could not be normalized",
			"error", modelErr.Err, "raw_completion", modelErr.Raw)
		return huma.Error500InternalServerError("Invalid response format from AI")
	}

	var persistence *service.PersistenceError
	if errors.As(err, &persistence) {
		logger.Error("database write failed", "op", persistence.Op, "error", persistence.Err)
		return huma.Error500InternalServerError("Failed to " + persistence.Op)
	}

	switch {
	case errors.Is(err, llm.ErrInvalidAPIKey):
		logger.Error("model provider rejected the API key")
		return huma.Error500InternalServerError("Server misconfiguration")
	case errors.Is(err, llm.ErrRateLimited):
		return huma.Error503ServiceUnavailable("The AI service is busy, please try again shortly")
	case errors.Is(err, llm.ErrEmptyResponse):
		// An empty completion is an unusable response, same as a parse failure
		logger.Error("model returned an empty completion")
		return huma.Error500InternalServerError("Invalid response format from AI")
	case errors.Is(err, llm.ErrProviderUnavailable):
		logger.Error("model provider failed", "error", err)
		return huma.Error502BadGateway("The AI service is unavailable")
	}

	logger.Error("request failed", "error", err)
	return huma.Error500InternalServerError("Internal server error")
}
