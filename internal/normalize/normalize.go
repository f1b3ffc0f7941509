// Package normalize turns raw model completions into validated domain
// results. Models drift: they wrap JSON in prose or code fences, emit
// trailing commas, or return lists as bullet-pointed strings. The pipeline
// here is parse, repair, coerce, then validate required fields; anything
// still unusable is reported with the raw text preserved for logging.
package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/dropshipai/branding-api/internal/models"
)

// MalformedError indicates no JSON object could be recovered from the
// completion, even after brace extraction and repair. Raw carries the
// original completion for server-side logging.
type MalformedError struct {
	Raw string
}

func (e *MalformedError) Error() string {
	return "completion is not valid JSON"
}

// MissingFieldError indicates the completion parsed but a required field is
// absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("completion missing required field: %s", e.Field)
}

// ParseObject recovers a JSON object from a raw completion. It tries the
// text as-is, then the first-brace-to-last-brace slice (dropping prose and
// code fences), then a repair pass over that slice.
func ParseObject(raw string) (map[string]any, error) {
	candidates := []string{strings.TrimSpace(raw)}
	if extracted, ok := extractObject(raw); ok {
		candidates = append(candidates, extracted)
	}

	for _, candidate := range candidates {
		var obj map[string]any
		if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
			return obj, nil
		}
	}

	// Repair the extracted slice (or the whole text if no braces found)
	target := candidates[len(candidates)-1]
	repaired, err := jsonrepair.JSONRepair(target)
	if err != nil {
		return nil, &MalformedError{Raw: raw}
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, &MalformedError{Raw: raw}
	}
	return obj, nil
}

// extractObject returns the substring between the first '{' and the last
// '}' inclusive, when both exist in order.
func extractObject(raw string) (string, bool) {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// listItemMarker matches leading bullet or numbered-list markers.
var listItemMarker = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)

// inlineSeparator matches bullet separators inside a single line. A bare
// bullet always splits; an asterisk only when space-delimited, so emphasis
// markers survive.
var inlineSeparator = regexp.MustCompile(`\s*•\s*|\s+\*\s+`)

// StringList coerces a decoded JSON value into a clean list of strings.
// Native arrays have elements stringified and blanks dropped. A single
// string is split on newlines, list markers, and inline bullet separators;
// if splitting yields nothing usable the whole trimmed string becomes the
// only element.
func StringList(v any) []string {
	switch val := v.(type) {
	case []any:
		var out []string
		for _, item := range val {
			if s := stringify(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitListString(val)
	case nil:
		return nil
	default:
		if s := stringify(val); s != "" {
			return []string{s}
		}
		return nil
	}
}

func splitListString(s string) []string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = listItemMarker.ReplaceAllString(line, "")
		for _, part := range inlineSeparator.Split(line, -1) {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return []string{trimmed}
	}
	return out
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		// JSON numbers decode as float64; render integers without decimals
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%v", val)
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return ""
	}
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key]; ok {
		return stringify(v)
	}
	return ""
}

// Branding validates a branding completion. All seven fields must be
// present and non-empty; the list fields are coerced first.
func Branding(raw string) (*models.BrandingResult, error) {
	obj, err := ParseObject(raw)
	if err != nil {
		return nil, err
	}

	result := &models.BrandingResult{
		BrandName:       stringField(obj, "brandName"),
		Tagline:         stringField(obj, "tagline"),
		LandingPageCopy: stringField(obj, "landingPageCopy"),
		AdHeadlines:     StringList(obj["adHeadlines"]),
		TiktokScripts:   StringList(obj["tiktokScripts"]),
		AdPlatforms:     StringList(obj["adPlatforms"]),
		BudgetStrategy:  stringField(obj, "budgetStrategy"),
	}

	switch {
	case result.BrandName == "":
		return nil, &MissingFieldError{Field: "brandName"}
	case result.Tagline == "":
		return nil, &MissingFieldError{Field: "tagline"}
	case result.LandingPageCopy == "":
		return nil, &MissingFieldError{Field: "landingPageCopy"}
	case len(result.AdHeadlines) == 0:
		return nil, &MissingFieldError{Field: "adHeadlines"}
	case len(result.TiktokScripts) == 0:
		return nil, &MissingFieldError{Field: "tiktokScripts"}
	case len(result.AdPlatforms) == 0:
		return nil, &MissingFieldError{Field: "adPlatforms"}
	case result.BudgetStrategy == "":
		return nil, &MissingFieldError{Field: "budgetStrategy"}
	}

	return result, nil
}

// Segments validates a segment recommendation completion. Only the
// recommended segment list is required; descriptive fields pass through
// empty when the page was not a single product.
func Segments(raw string) (*models.SegmentRecommendation, error) {
	obj, err := ParseObject(raw)
	if err != nil {
		return nil, err
	}

	result := &models.SegmentRecommendation{
		RecommendedSegments: StringList(obj["recommendedSegments"]),
		ReasoningSummary:    stringField(obj, "reasoningSummary"),
		ProductName:         stringField(obj, "productName"),
		ProductDescription:  stringField(obj, "productDescription"),
	}

	if len(result.RecommendedSegments) == 0 {
		return nil, &MissingFieldError{Field: "recommendedSegments"}
	}

	return result, nil
}

// requiredPlanSections are the top-level keys a plan document must carry.
// Nested structure is model-defined and passed through untouched.
var requiredPlanSections = []string{"inputs", "geoHierarchy", "segments", "crossSegmentBestFit"}

// MarketingPlan splits a plan completion into its prose executive summary
// (everything before the first brace) and the JSON plan document, then
// validates the document's top-level sections.
func MarketingPlan(raw string) (*models.MarketingPlan, error) {
	start := strings.IndexByte(raw, '{')
	summary := raw
	if start >= 0 {
		summary = raw[:start]
	}
	summary = strings.TrimSpace(summary)

	obj, err := ParseObject(raw)
	if err != nil {
		return nil, err
	}

	for _, section := range requiredPlanSections {
		if _, ok := obj[section]; !ok {
			return nil, &MissingFieldError{Field: section}
		}
	}

	return &models.MarketingPlan{
		ExecutiveSummary: summary,
		Plan:             obj,
	}, nil
}
