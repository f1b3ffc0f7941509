package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dropshipai/branding-api/internal/llm"
	"github.com/dropshipai/branding-api/internal/models"
	"github.com/dropshipai/branding-api/internal/normalize"
	"github.com/dropshipai/branding-api/internal/prompts"
	"github.com/dropshipai/branding-api/internal/segments"
	"github.com/dropshipai/branding-api/internal/webfetch"
)

// segmentOptions are the generation settings for segment recommendations.
// Classification against a fixed label list wants a low temperature.
var segmentOptions = llm.Options{
	Temperature: 0.2,
	MaxTokens:   700,
	JSONMode:    true,
}

// SiteFetcher is the slice of the webfetch fetcher the analyzer needs.
type SiteFetcher interface {
	SiteText(ctx context.Context, rawURL string) (string, error)
}

// AnalyzerService maps storefront websites to Helix persona segments.
type AnalyzerService struct {
	fetcher   SiteFetcher
	completer Completer
	catalog   *segments.Catalog
	logger    *slog.Logger
}

// NewAnalyzerService creates a new analyzer service.
func NewAnalyzerService(fetcher SiteFetcher, completer Completer, catalog *segments.Catalog, logger *slog.Logger) *AnalyzerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalyzerService{fetcher: fetcher, completer: completer, catalog: catalog, logger: logger}
}

// AnalyzeInput carries the analysis request parameters. Zero values for
// Locale and TopN take the defaults.
type AnalyzeInput struct {
	URL               string
	AvailableSegments []string
	Locale            string
	TopN              int
}

// AnalyzeResult is a segment recommendation resolved against the offered
// label list. CustomSegments holds recommended labels that were not in that
// list. IsGenericPage reports that the site read as a homepage or collection
// rather than a single product page.
type AnalyzeResult struct {
	models.SegmentRecommendation
	CustomSegments []string
	AnalyzedURL    string
	IsGenericPage  bool
}

// Analyze fetches the site's text and asks the model for the closest
// segments. Callers may pin their own segment list; otherwise the current
// catalog is offered. Labels outside the offered list are kept but logged,
// since media buyers sometimes work with custom segments.
func (s *AnalyzerService) Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	if input.URL == "" {
		return nil, missingField("url")
	}
	if input.Locale == "" {
		input.Locale = "Australia"
	}
	if input.TopN <= 0 {
		input.TopN = 3
	}

	available := input.AvailableSegments
	if len(available) == 0 {
		s.catalog.Refresh(ctx)
		available = s.catalog.Labels()
	}

	base, err := webfetch.NormalizeURL(input.URL)
	if err != nil {
		return nil, &ValidationError{Field: "url", Message: "is not a valid URL"}
	}

	text, err := s.fetcher.SiteText(ctx, input.URL)
	if err != nil {
		if errors.Is(err, webfetch.ErrInvalidURL) {
			return nil, &ValidationError{Field: "url", Message: "is not a valid URL"}
		}
		return nil, err
	}

	prompt := prompts.SegmentRecommendation(text, available, input.Locale, input.TopN)
	raw, err := s.completer.Complete(ctx, prompts.SegmentsSystem, prompt, segmentOptions)
	if err != nil {
		return nil, err
	}

	result, err := normalize.Segments(raw)
	if err != nil {
		var malformed *normalize.MalformedError
		if errors.As(err, &malformed) {
			return nil, &ModelResponseError{Raw: malformed.Raw, Err: err}
		}
		return nil, &ModelResponseError{Raw: raw, Err: err}
	}

	offered := make(map[string]bool, len(available))
	for _, label := range available {
		offered[label] = true
	}
	var custom []string
	for _, label := range result.RecommendedSegments {
		if !offered[label] {
			s.logger.Warn("model recommended a segment outside the offered list", "segment", label)
			custom = append(custom, label)
		}
	}

	// The prompt tells the model to leave the product fields empty on
	// generic homepage or collection pages
	return &AnalyzeResult{
		SegmentRecommendation: *result,
		CustomSegments:        custom,
		AnalyzedURL:           base.String(),
		IsGenericPage:         result.ProductName == "" && result.ProductDescription == "",
	}, nil
}
