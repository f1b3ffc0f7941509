package handlers

import (
	"context"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dropshipai/branding-api/internal/service"
)

// AnalyzeHandler handles website analysis endpoints.
type AnalyzeHandler struct {
	analyzerSvc *service.AnalyzerService
	logger      *slog.Logger
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(analyzerSvc *service.AnalyzerService, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{analyzerSvc: analyzerSvc, logger: logger}
}

// AnalyzeWebsiteInput represents an analysis request.
type AnalyzeWebsiteInput struct {
	Body struct {
		URL               string   `json:"url" minLength:"1" doc:"Storefront URL to analyze"`
		AvailableSegments []string `json:"availableSegments,omitempty" doc:"Segment labels to choose from; defaults to the current catalog"`
		Locale            string   `json:"locale,omitempty" doc:"Market locale, defaults to Australia"`
		TopN              int      `json:"topN,omitempty" minimum:"1" maximum:"10" doc:"How many segments to recommend, defaults to 3"`
	}
}

// AnalyzeWebsiteOutput represents an analysis response.
type AnalyzeWebsiteOutput struct {
	Body struct {
		Success             bool     `json:"success"`
		RecommendedSegments []string `json:"recommendedSegments"`
		CustomSegments      []string `json:"customSegments,omitempty"`
		ReasoningSummary    string   `json:"reasoningSummary,omitempty"`
		ProductName         string   `json:"productName,omitempty"`
		ProductDescription  string   `json:"productDescription,omitempty"`
		AnalyzedURL         string   `json:"analyzedUrl"`
		IsGenericPage       bool     `json:"isGenericPage"`
	}
}

// AnalyzeWebsite fetches a storefront and recommends Helix segments.
func (h *AnalyzeHandler) AnalyzeWebsite(ctx context.Context, input *AnalyzeWebsiteInput) (*AnalyzeWebsiteOutput, error) {
	userID := getUserID(ctx)
	if userID == "" {
		return nil, huma.Error401Unauthorized("unauthorized")
	}

	result, err := h.analyzerSvc.Analyze(ctx, service.AnalyzeInput{
		URL:               input.Body.URL,
		AvailableSegments: input.Body.AvailableSegments,
		Locale:            input.Body.Locale,
		TopN:              input.Body.TopN,
	})
	if err != nil {
		return nil, mapServiceError(err, h.logger)
	}

	out := &AnalyzeWebsiteOutput{}
	out.Body.Success = true
	out.Body.RecommendedSegments = result.RecommendedSegments
	out.Body.CustomSegments = result.CustomSegments
	out.Body.ReasoningSummary = result.ReasoningSummary
	out.Body.ProductName = result.ProductName
	out.Body.ProductDescription = result.ProductDescription
	out.Body.AnalyzedURL = result.AnalyzedURL
	out.Body.IsGenericPage = result.IsGenericPage
	return out, nil
}
