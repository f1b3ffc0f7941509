// Package prompts builds the model prompts for branding generation, website
// analysis, and marketing plans. Prompt text is assembled here and nowhere
// else so wording changes stay reviewable in one place.
package prompts

import (
	"fmt"

	"github.com/dropshipai/branding-api/internal/models"
)

// BrandingSystem is the system message for branding generation.
const BrandingSystem = "You are a creative branding strategist. Always respond with valid JSON only."

// Branding builds the user prompt for a complete branding package.
func Branding(input models.BrandingInput) string {
	return fmt.Sprintf(`You are a creative branding strategist specializing in dropshipping businesses. A dropshipper wants help crafting a compelling brand identity and marketing strategy.

Their product is: %s
Their target audience matches the %s segment in Australia
The brand should feel: %s
They are based in: %s

Please provide a complete branding package in the following JSON format:

{
  "brandName": "A catchy, memorable brand name that fits the tone and target audience",
  "tagline": "A compelling tagline that captures the brand essence",
  "landingPageCopy": "A 2-sentence pitch for the landing page that hooks visitors",
  "adHeadlines": [
    "3 short, punchy ad headlines for Facebook/Google ads",
    "Each should be under 40 characters and action-oriented",
    "Focus on benefits and urgency"
  ],
  "tiktokScripts": [
    "2 TikTok ad scripts (15-30 seconds each)",
    "Include hooks, pain points, and clear CTAs",
    "Make them engaging and platform-appropriate"
  ],
  "adPlatforms": [
    "3-4 recommended ad platforms based on the target persona",
    "Consider Facebook, Instagram, TikTok, Google, YouTube, etc."
  ],
  "budgetStrategy": "A brief budget allocation strategy (e.g., 'Start with $50/day on Facebook, $30/day on Google, test TikTok with $20/day')"
}

Make sure the brand name, tagline, and copy are:
- Relevant to the Australian market and location
- Appropriate for the target Helix persona
- Consistent with the chosen brand tone
- Optimized for conversion and memorability

Return only valid JSON, no additional text.`,
		input.Product, input.Persona, input.Tone, input.Location)
}
