package prompts

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dropshipai/branding-api/internal/models"
)

// MarketingPlanSystem is the system message for marketing plan generation.
const MarketingPlanSystem = "You are a senior marketing strategist. Follow the requested output format exactly."

// marketingPlanSchema is the machine-readable plan shape the model must
// emit after the executive summary.
const marketingPlanSchema = `{
    "inputs": {
      "brand": string,
      "productOrService": string,
      "pricePoint": string,
      "objectives": [string],
      "primaryKPIs": [string],
      "timeframe": { "start": string, "end": string },
      "totalBudget": number | null,
      "geographyInput": {
        "country": string,
        "stateOrTerritory": string | null,
        "city": string | null,
        "suburb": string | null,
        "postcode": string | null
      },
      "helixSegmentsSelected": [string],
      "approvedChannels": [string] | null,
      "disallowedChannels": [string] | null,
      "crmAssets": {
        "hashedEmailsAvailable": boolean | null,
        "customerCount": number | null,
        "pastPurchasersEligibleForSeed": boolean | null
      },
      "promotionsOffers": [string] | null,
      "competitors": [string] | null,
      "seasonalityNotes": [string] | null,
      "constraints": [string] | null
    },
    "geoHierarchy": {
      "micro": {
        "label": string,
        "postcodes": [string] | null,
        "notableHotspots": [string]
      },
      "subRegion": {
        "label": string,
        "suburbsIncluded": [string],
        "postcodesIncluded": [string]
      },
      "region": { "label": string }
    },
    "segments": [
      {
        "name": string,
        "fitScores": { "micro": number, "subRegion": number },
        "fitRationale": string,
        "audienceStrategy": {
          "crmSeed": { "available": boolean, "recommendedSize": number | null },
          "lookalike": { "percent": number, "geo": "micro" | "subRegion", "notes": string },
          "interestBehavioral": [string],
          "retargeting": [string]
        },
        "plans": {
          "micro": {
            "objectives": [string],
            "kpis": [string],
            "channels": [
              {
                "name": string,
                "budgetPercent": number,
                "budgetAmount": number | null,
                "geoTargeting": { "radiusKm": number | null, "postcodes": [string] | null, "hotspots": [string] | null },
                "biddingOptimization": string,
                "frequencyCap": string | null,
                "creative": {
                  "messages": [string],
                  "hooks": [string],
                  "formats": [string],
                  "examples": { "headline": [string], "primaryText": [string], "cta": [string] }
                },
                "landing": { "url": string | null, "modules": [string], "localProofPoints": [string] },
                "experiments": [string]
              }
            ],
            "flighting": { "phases": [string], "daypartingNotes": [string] | null },
            "measurement": { "tracking": [string], "incrementality": [string], "successGates": [string] }
          },
          "subRegion": {
            "objectives": [string],
            "kpis": [string],
            "channels": [/* same structure as micro */],
            "flighting": { "phases": [string], "daypartingNotes": [string] | null },
            "measurement": { "tracking": [string], "incrementality": [string], "successGates": [string] }
          }
        }
      }
    ],
    "crossSegmentBestFit": {
      "strategy": [string],
      "channelCore": [string],
      "geoPrioritization": [string],
      "budgetSummary": {
        "byChannelPercent": [{ "channel": string, "percent": number }],
        "byGeoPercent": [{ "geo": "micro" | "subRegion", "percent": number }]
      },
      "calendar": [{ "phase": string, "start": string, "end": string }],
      "measurement": { "sharedAudiences": [string], "reportingCadence": string, "upliftDesign": [string] },
      "risks": [{ "risk": string, "mitigation": string }]
    }
  }`

// MarketingPlan builds the geo-aware marketing plan prompt: location
// expansion into a micro/sub-region/region hierarchy, per-segment plans at
// each geo level, and a cross-segment best-fit plan.
func MarketingPlan(input models.MarketingPlanInput) string {
	var b strings.Builder

	b.WriteString(`You are a senior marketing strategist specializing in Australian Helix Personas and localized, data-driven media planning. Create bespoke, geo-aware plans that align segment psychographics with sub-regional context. Think stepwise but output only concise rationales, not chain-of-thought. Follow the requested output format, include actionable geo-targeting parameters, and provide concrete, testable recommendations.

Method and constraints to follow:
1) Location expansion
- Given a location input (may be suburb, postcode, LGA, or city), infer a practical sub-regional "market area" for planning. Use common-sense Australian geography where applicable (e.g., suburbs cluster into SA2/SA3, tourism/commuter flows, coastal vs hinterland splits).
- Produce a 3-level geo hierarchy:
  a) Micro: suburb/postcode/local hotspots
  b) Sub-region: e.g., "Southern Gold Coast" (list core suburbs/postcodes)
  c) Region: e.g., "Gold Coast" / "SEQ" / "Greater Brisbane" as relevant
- If outside Australia, analogize to appropriate sub-regional groupings.

2) Segment-location fit
- For each selected Helix Persona segment, profile local behaviors and likely hotspots within the sub-region. Include a segment-location fit score (0-100) and brief rationale.
- Assume localized lookalike audiences (1-5%) are purchasable across major walled gardens and programmatic. Recommend seed size and LAL % by segment given local density.

3) Per-segment, per-geo plans
- For each segment and each geo level (micro, sub-region), produce a bespoke plan with:
  - Objectives and leading KPIs (with target benchmarks)
  - Channel mix with budget allocation (% and $, if budget given)
  - Geo-targeting parameters: radius, postcode list, SA2/SA3 hints, key hotspots
  - Audience build: retargeting, CRM match, LAL %, interest/behavioral targeting
  - Creative: key messages, hooks, CTAs, offers, format specs, 2-3 headline/primary text examples
  - Landing experience: page variants, content blocks, local proof points
  - Bidding/optimization: event priorities, bid strategies, frequency caps
  - Flighting: phases, dayparting (if relevant), seasonal timing
  - Experiments: 2-3 tests (creative, audience, geo-split, offer)
  - Measurement: tracking, incrementality, success gates to scale/kill

4) Cross-segment "best fit" plan
- Synthesize overlaps to propose a unifying plan: shared creative platforms, channel core, geo prioritization, frequency management, retargeting pools, and budget summary.
- Include a single calendar/timeline and a cross-geo allocation.

5) Risks and ops
- Note compliance, supply-side constraints, seasonality, tourist/commuter surges, brand safety, and mitigation.

6) Output
- Produce:
  A) Executive summary (bulleted, concise)
  B) A machine-readable JSON object strictly matching the schema below
- Keep explanations concise. No chain-of-thought.

JSON schema to follow exactly:
`)
	b.WriteString(marketingPlanSchema)
	b.WriteString(`

Example: location expansion rule
- Input: Currumbin Waters, 4223
- Output within the plan:
  - Micro: label "Currumbin Waters (4223)", postcodes ["4223"], hotspots ["Currumbin Beachfront", "Thrower Dr precinct", "Palm Beach Ave border"]
  - Sub-region: label "Southern Gold Coast", suburbsIncluded ["Currumbin", "Currumbin Waters", "Tugun", "Palm Beach", "Elanora", "Bilinga", "Coolangatta"], postcodesIncluded ["4223","4221","4224","4225"]
  - Region: label "Gold Coast (SEQ)"

Use the following inputs to generate the plans. If a field is null or missing, infer sensible defaults and note assumptions explicitly.

`)

	fmt.Fprintf(&b, "- brand: %s\n", input.Brand)
	fmt.Fprintf(&b, "- productOrService: %s\n", input.ProductOrService)
	fmt.Fprintf(&b, "- pricePoint: %s\n", input.PricePoint)
	fmt.Fprintf(&b, "- objectives: %s\n", jsonList(input.Objectives))
	fmt.Fprintf(&b, "- primaryKPIs: %s\n", jsonList(input.PrimaryKPIs))
	fmt.Fprintf(&b, "- timeframe: %s to %s\n", input.TimeframeStart, input.TimeframeEnd)
	fmt.Fprintf(&b, "- totalBudget: %s\n", floatOrNull(input.TotalBudget))
	fmt.Fprintf(&b, "- geographyInput:\n")
	fmt.Fprintf(&b, "  country: %s\n", input.Geography.Country)
	fmt.Fprintf(&b, "  stateOrTerritory: %s\n", stringOrNull(input.Geography.StateOrTerritory))
	fmt.Fprintf(&b, "  city: %s\n", stringOrNull(input.Geography.City))
	fmt.Fprintf(&b, "  suburb: %s\n", stringOrNull(input.Geography.Suburb))
	fmt.Fprintf(&b, "  postcode: %s\n", stringOrNull(input.Geography.Postcode))
	fmt.Fprintf(&b, "- helixSegmentsSelected: %s\n", jsonList(input.HelixSegments))
	fmt.Fprintf(&b, "- approvedChannels: %s\n", jsonListOrNull(input.ApprovedChannels))
	fmt.Fprintf(&b, "- disallowedChannels: %s\n", jsonListOrNull(input.DisallowedChannels))
	fmt.Fprintf(&b, "- crmAssets:\n")
	fmt.Fprintf(&b, "  hashedEmailsAvailable: %s\n", boolOrNull(input.CRMAssets.HashedEmailsAvailable))
	fmt.Fprintf(&b, "  customerCount: %s\n", intOrNull(input.CRMAssets.CustomerCount))
	fmt.Fprintf(&b, "  pastPurchasersEligibleForSeed: %s\n", boolOrNull(input.CRMAssets.PastPurchasersEligibleForSeed))
	fmt.Fprintf(&b, "- promotionsOffers: %s\n", jsonListOrNull(input.PromotionsOffers))
	fmt.Fprintf(&b, "- competitors: %s\n", jsonListOrNull(input.Competitors))
	fmt.Fprintf(&b, "- seasonalityNotes: %s\n", jsonListOrNull(input.SeasonalityNotes))
	fmt.Fprintf(&b, "- constraints: %s\n", jsonListOrNull(input.Constraints))

	b.WriteString(`
Deliver:
A) Executive summary bullets
B) JSON strictly matching the schema`)

	return b.String()
}

func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func jsonListOrNull(items []string) string {
	if len(items) == 0 {
		return "null"
	}
	data, _ := json.Marshal(items)
	return string(data)
}

func stringOrNull(s string) string {
	if s == "" {
		return "null"
	}
	return s
}

func floatOrNull(f *float64) string {
	if f == nil {
		return "null"
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func intOrNull(i *int) string {
	if i == nil {
		return "null"
	}
	return strconv.Itoa(*i)
}

func boolOrNull(b *bool) string {
	if b == nil {
		return "null"
	}
	return strconv.FormatBool(*b)
}
