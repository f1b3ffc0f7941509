package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dropshipai/branding-api/internal/segments"
	"github.com/dropshipai/branding-api/internal/webfetch"
)

type stubFetcher struct {
	text string
	err  error
	urls []string
}

func (s *stubFetcher) SiteText(_ context.Context, rawURL string) (string, error) {
	s.urls = append(s.urls, rawURL)
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

const validSegmentsJSON = `{
	"recommendedSegments": ["Health and Wellness Enthusiasts", "Young Professional Urbanites", "Tech-Savvy Early Adopters"],
	"reasoningSummary": "The store sells fitness wearables at a premium price.",
	"productName": "Posture Corrector",
	"productDescription": "A wearable brace that fixes slouching."
}`

func newAnalyzer(fetcher SiteFetcher, completer Completer) *AnalyzerService {
	return NewAnalyzerService(fetcher, completer, segments.NewCatalog(nil, nil), nil)
}

func TestAnalyzeDefaults(t *testing.T) {
	fetcher := &stubFetcher{text: "fitness wearables for desk workers"}
	stub := &stubCompleter{responses: []string{validSegmentsJSON}}
	svc := newAnalyzer(fetcher, stub)

	result, err := svc.Analyze(context.Background(), AnalyzeInput{URL: "example.com"})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(result.RecommendedSegments) != 3 {
		t.Errorf("RecommendedSegments = %v", result.RecommendedSegments)
	}
	if result.ProductName != "Posture Corrector" {
		t.Errorf("ProductName = %q", result.ProductName)
	}
	if result.AnalyzedURL != "https://example.com" {
		t.Errorf("AnalyzedURL = %q", result.AnalyzedURL)
	}
	if result.IsGenericPage {
		t.Error("IsGenericPage = true for a single-product result")
	}
	if len(result.CustomSegments) != 0 {
		t.Errorf("CustomSegments = %v, want none for catalog labels", result.CustomSegments)
	}

	prompt := stub.calls[0].User
	if !strings.Contains(prompt, "Australia") {
		t.Error("prompt missing default locale")
	}
	if !strings.Contains(prompt, "top 3") {
		t.Error("prompt missing default topN")
	}
	if !strings.Contains(prompt, "Rural Traditionalists") {
		t.Error("prompt missing catalog segments")
	}
	if !strings.Contains(prompt, "fitness wearables for desk workers") {
		t.Error("prompt missing website text")
	}
	if stub.calls[0].Opts.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", stub.calls[0].Opts.Temperature)
	}
}

func TestAnalyzeCustomSegments(t *testing.T) {
	fetcher := &stubFetcher{text: "site text"}
	stub := &stubCompleter{responses: []string{validSegmentsJSON}}
	svc := newAnalyzer(fetcher, stub)

	_, err := svc.Analyze(context.Background(), AnalyzeInput{
		URL:               "example.com",
		AvailableSegments: []string{"Alpha", "Beta"},
		Locale:            "New Zealand",
		TopN:              2,
	})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}

	prompt := stub.calls[0].User
	if !strings.Contains(prompt, "Alpha, Beta") {
		t.Error("prompt missing custom segments")
	}
	if strings.Contains(prompt, "Rural Traditionalists") {
		t.Error("prompt should not offer catalog segments when pinned")
	}
	if !strings.Contains(prompt, "New Zealand") {
		t.Error("prompt missing locale")
	}
}

func TestAnalyzeMissingURL(t *testing.T) {
	svc := newAnalyzer(&stubFetcher{}, &stubCompleter{responses: []string{validSegmentsJSON}})

	_, err := svc.Analyze(context.Background(), AnalyzeInput{})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
}

func TestAnalyzeInvalidURL(t *testing.T) {
	fetcher := &stubFetcher{err: webfetch.ErrInvalidURL}
	svc := newAnalyzer(fetcher, &stubCompleter{responses: []string{validSegmentsJSON}})

	_, err := svc.Analyze(context.Background(), AnalyzeInput{URL: "::::"})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if validation.Field != "url" {
		t.Errorf("Field = %q", validation.Field)
	}
}

func TestAnalyzeFetchFailurePassesThrough(t *testing.T) {
	fetcher := &stubFetcher{err: webfetch.ErrNoContent}
	svc := newAnalyzer(fetcher, &stubCompleter{responses: []string{validSegmentsJSON}})

	_, err := svc.Analyze(context.Background(), AnalyzeInput{URL: "example.com"})
	if !errors.Is(err, webfetch.ErrNoContent) {
		t.Errorf("error = %v, want ErrNoContent", err)
	}
}

func TestAnalyzeKeepsOutOfListSegments(t *testing.T) {
	fetcher := &stubFetcher{text: "site text"}
	stub := &stubCompleter{responses: []string{`{"recommendedSegments": ["Completely Custom Segment"]}`}}
	svc := newAnalyzer(fetcher, stub)

	result, err := svc.Analyze(context.Background(), AnalyzeInput{URL: "example.com"})
	if err != nil {
		t.Fatalf("Analyze() error: %v", err)
	}
	if len(result.RecommendedSegments) != 1 || result.RecommendedSegments[0] != "Completely Custom Segment" {
		t.Errorf("RecommendedSegments = %v, want the verbatim label", result.RecommendedSegments)
	}
	if len(result.CustomSegments) != 1 || result.CustomSegments[0] != "Completely Custom Segment" {
		t.Errorf("CustomSegments = %v, want the out-of-list label", result.CustomSegments)
	}
	if !result.IsGenericPage {
		t.Error("IsGenericPage = false with empty product fields")
	}
}
