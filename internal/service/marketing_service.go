package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dropshipai/branding-api/internal/llm"
	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/normalize"
	"github.com/dropshipai/branding-api/internal/prompts"
)

// planOptions are the generation settings for marketing plans. The plan
// document is large, so the token budget is generous.
var planOptions = llm.Options{
	Temperature: 0.4,
	MaxTokens:   4000,
}

// MarketingService generates geo-aware marketing plans.
type MarketingService struct {
	completer Completer
	logger    *slog.Logger
}

// NewMarketingService creates a new marketing service.
func NewMarketingService(completer Completer, logger *slog.Logger) *MarketingService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MarketingService{completer: completer, logger: logger}
}

// GeneratePlan asks the model for an executive summary plus a structured
// plan document. JSON mode is not used here: the completion deliberately
// mixes prose and JSON, and the normalizer splits them.
func (s *MarketingService) GeneratePlan(ctx context.Context, input models.MarketingPlanInput) (*models.MarketingPlan, error) {
	if err := validatePlanInput(input); err != nil {
		return nil, err
	}

	raw, err := s.completer.Complete(ctx, prompts.MarketingPlanSystem, prompts.MarketingPlan(input), planOptions)
	if err != nil {
		return nil, err
	}

	plan, err := normalize.MarketingPlan(raw)
	if err != nil {
		var malformed *normalize.MalformedError
		if errors.As(err, &malformed) {
			return nil, &ModelResponseError{Raw: malformed.Raw, Err: err}
		}
		return nil, &ModelResponseError{Raw: raw, Err: err}
	}

	s.logger.Info("marketing plan generated",
		"brand", input.Brand, "segments", len(input.HelixSegments))

	return plan, nil
}

func validatePlanInput(input models.MarketingPlanInput) error {
	switch {
	case input.Brand == "":
		return missingField("brand")
	case input.ProductOrService == "":
		return missingField("productOrService")
	case input.Geography.Country == "":
		return missingField("geography.country")
	case len(input.HelixSegments) == 0:
		return missingField("helixSegments")
	}
	return nil
}
