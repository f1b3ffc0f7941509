// Package models defines the domain types shared across services,
// repositories, and handlers.
package models

import "time"

// Project is a user's branding request. One row is created per generation;
// regeneration reuses the project and appends outputs.
type Project struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	TargetPersona      string    `json:"target_persona"`
	Locality           string    `json:"locality"`
	BrandTone          string    `json:"brand_tone,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Output is one generated branding package tied to a project.
// Outputs are append-only and never mutated; a project accumulates one
// output per (re)generation, ordered by recency.
type Output struct {
	ID              string    `json:"id"`
	ProjectID       string    `json:"project_id"`
	BrandName       string    `json:"brand_name"`
	Tagline         string    `json:"tagline"`
	LandingPageCopy string    `json:"landing_page_copy"`
	AdHeadlines     []string  `json:"ad_headlines"`
	TiktokScripts   []string  `json:"tiktok_scripts"`
	AdPlatforms     []string  `json:"ad_platforms"`
	BudgetStrategy  string    `json:"budget_strategy"`
	CreatedAt       time.Time `json:"created_at"`
}

// BrandingInput carries the form fields for one branding generation.
// It is never persisted directly; only derived rows are.
type BrandingInput struct {
	Product  string `json:"product"`
	Persona  string `json:"persona"`
	Tone     string `json:"tone"`
	Location string `json:"location"`
}

// BrandingResult is the normalized model completion for a branding request.
// All seven fields are required and non-empty after normalization; the array
// fields are guaranteed non-empty.
type BrandingResult struct {
	BrandName       string   `json:"brandName"`
	Tagline         string   `json:"tagline"`
	LandingPageCopy string   `json:"landingPageCopy"`
	AdHeadlines     []string `json:"adHeadlines"`
	TiktokScripts   []string `json:"tiktokScripts"`
	AdPlatforms     []string `json:"adPlatforms"`
	BudgetStrategy  string   `json:"budgetStrategy"`
}

// SegmentRecommendation is the normalized model completion for a website
// analysis. Labels are returned verbatim; resolution against the Helix
// catalog happens in the analyzer service, not here.
type SegmentRecommendation struct {
	RecommendedSegments []string `json:"recommendedSegments"`
	ReasoningSummary    string   `json:"reasoningSummary,omitempty"`
	ProductName         string   `json:"productName,omitempty"`
	ProductDescription  string   `json:"productDescription,omitempty"`
}

// HelixSegment is one entry of the externally managed audience taxonomy.
type HelixSegment struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	GroupName   string `json:"group_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Geography describes the location input for a marketing plan. Fields other
// than Country are optional; the model infers sensible defaults.
type Geography struct {
	Country          string `json:"country"`
	StateOrTerritory string `json:"stateOrTerritory,omitempty"`
	City             string `json:"city,omitempty"`
	Suburb           string `json:"suburb,omitempty"`
	Postcode         string `json:"postcode,omitempty"`
}

// CRMAssets describes first-party audience assets available for seeding
// lookalike audiences.
type CRMAssets struct {
	HashedEmailsAvailable         *bool `json:"hashedEmailsAvailable,omitempty"`
	CustomerCount                 *int  `json:"customerCount,omitempty"`
	PastPurchasersEligibleForSeed *bool `json:"pastPurchasersEligibleForSeed,omitempty"`
}

// MarketingPlanInput carries the structured brief for a geo-aware marketing
// plan generation.
type MarketingPlanInput struct {
	Brand              string    `json:"brand"`
	ProductOrService   string    `json:"productOrService"`
	PricePoint         string    `json:"pricePoint"`
	Objectives         []string  `json:"objectives"`
	PrimaryKPIs        []string  `json:"primaryKPIs"`
	TimeframeStart     string    `json:"timeframeStart"`
	TimeframeEnd       string    `json:"timeframeEnd"`
	TotalBudget        *float64  `json:"totalBudget,omitempty"`
	Geography          Geography `json:"geography"`
	HelixSegments      []string  `json:"helixSegments"`
	ApprovedChannels   []string  `json:"approvedChannels,omitempty"`
	DisallowedChannels []string  `json:"disallowedChannels,omitempty"`
	CRMAssets          CRMAssets `json:"crmAssets,omitempty"`
	PromotionsOffers   []string  `json:"promotionsOffers,omitempty"`
	Competitors        []string  `json:"competitors,omitempty"`
	SeasonalityNotes   []string  `json:"seasonalityNotes,omitempty"`
	Constraints        []string  `json:"constraints,omitempty"`
}

// MarketingPlan is the normalized model completion for a marketing plan
// request: a prose executive summary plus the machine-readable plan document.
// The plan document is validated for its top-level sections only; the nested
// structure is model-defined and passed through as-is.
type MarketingPlan struct {
	ExecutiveSummary string         `json:"executiveSummary"`
	Plan             map[string]any `json:"plan"`
}
