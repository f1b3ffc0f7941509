package handlers

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/service"
)

// MarketingHandler handles marketing plan endpoints.
type MarketingHandler struct {
	marketingSvc *service.MarketingService
	logger       *slog.Logger
}

// NewMarketingHandler creates a new marketing handler.
func NewMarketingHandler(marketingSvc *service.MarketingService, logger *slog.Logger) *MarketingHandler {
	return &MarketingHandler{marketingSvc: marketingSvc, logger: logger}
}

// MarketingPlanInput represents a marketing plan request.
type MarketingPlanInput struct {
	Body models.MarketingPlanInput
}

// MarketingPlanOutput represents a marketing plan response.
type MarketingPlanOutput struct {
	Body struct {
		Success          bool           `json:"success"`
		ExecutiveSummary string         `json:"executiveSummary"`
		Plan             map[string]any `json:"plan"`
	}
}

// GeneratePlan produces a geo-aware Helix persona marketing plan.
func (h *MarketingHandler) GeneratePlan(ctx context.Context, input *MarketingPlanInput) (*MarketingPlanOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	plan, err := h.marketingSvc.GeneratePlan(ctx, input.Body)
	if err != nil {
		return nil, mapServiceError(err, h.logger)
	}

	out := &MarketingPlanOutput{}
	out.Body.Success = true
	out.Body.ExecutiveSummary = plan.ExecutiveSummary
	out.Body.Plan = plan.Plan
	return out, nil
}
