// Package assets renders channel-specific campaign copy from an accepted
// strategy. Every generator is a pure function with no failure path: missing
// strategy fields degrade to filler text, and truncation is by raw character
// count so rendered output is stable enough for golden tests.
package assets

import (
	"strings"

	"github.com/nexflow/campaign-engine/internal/types"
)

// Truncation lengths for web copy, in characters (runes).
const (
	heroHeadlineChars = 70
	adHeadlineChars   = 50
)

// Filler text used when a strategy field is empty.
const (
	fallbackProofPoint = "Strong strategic foundation"
	fallbackInsight    = "Unlock Your Growth Potential"
	fallbackValueProp  = "AI-powered marketing automation"
	fallbackAngle      = "AI-Driven Growth"
)

// LinkedInPost renders the organic social post: insight, value proposition,
// bulleted proof points, strategic angle, and the fixed hashtag suffix.
func LinkedInPost(strategy *types.Strategy) string {
	proofText := formatProofPoints(strategy.SupportingProofPoints, 0)

	var sb strings.Builder
	sb.WriteString(strategy.KeyInsight)
	sb.WriteString("\n\n")
	sb.WriteString(strategy.ValueProposition)
	sb.WriteString("\n\nWhy this matters:\n")
	sb.WriteString(proofText)
	sb.WriteString("\n\nStrategic Focus:\n")
	sb.WriteString(strategy.StrategicCampaignAngle)
	sb.WriteString("\n\n#B2BMarketing #SaaS #Growth")
	return strings.TrimSpace(sb.String())
}

// ColdEmail renders the outreach email with a fixed subject and closing,
// limited to two proof points for brevity.
func ColdEmail(strategy *types.Strategy) string {
	proofText := formatProofPoints(strategy.SupportingProofPoints, 2)

	var sb strings.Builder
	sb.WriteString("Subject: Strategic Growth Opportunity\n\nHi [Name],\n\n")
	sb.WriteString(strategy.KeyInsight)
	sb.WriteString("\n\n")
	sb.WriteString(strategy.ValueProposition)
	sb.WriteString("\n\nHere’s what makes this powerful:\n")
	sb.WriteString(proofText)
	sb.WriteString("\n\nLet’s connect and explore how this can drive measurable results.\n\nBest,\n[Your Name]")
	return strings.TrimSpace(sb.String())
}

// LandingHero renders headline, subheadline, and CTA for the landing page.
// The headline keeps the first 70 characters of the insight with trailing
// punctuation and spaces trimmed.
func LandingHero(strategy *types.Strategy) string {
	insight := strategy.KeyInsight
	if insight == "" {
		insight = fallbackInsight
	}
	valueProp := strategy.ValueProposition
	if valueProp == "" {
		valueProp = fallbackValueProp
	}

	headline := strings.TrimRight(truncateChars(insight, heroHeadlineChars), " .,!?")

	var sb strings.Builder
	sb.WriteString("\nHeadline: ")
	sb.WriteString(headline)
	sb.WriteString(" – Powered by NexFlow\nSubheadline: ")
	sb.WriteString(valueProp)
	sb.WriteString(". Join 150+ companies with 38% better leads.\nCTA: Start Free Trial Today\n")
	return sb.String()
}

// PaidAd renders short-form ad copy: the first 50 characters of the strategic
// angle as headline, exactly one proof point (bullet marker stripped) in the
// description, and a fixed CTA.
func PaidAd(strategy *types.Strategy) string {
	angle := strategy.StrategicCampaignAngle
	if angle == "" {
		angle = fallbackAngle
	}

	proofText := strings.Trim(formatProofPoints(strategy.SupportingProofPoints, 1), "- \n")

	var sb strings.Builder
	sb.WriteString("\nHeadline: ")
	sb.WriteString(truncateChars(angle, adHeadlineChars))
	sb.WriteString("... – Scale Smarter\nDescription: ")
	sb.WriteString(proofText)
	sb.WriteString(" 38% more qualified leads. Proven in DACH region.\nCTA: Get Started – Free Trial\n")
	return sb.String()
}

// Render produces the assets covered by the channel focus. An empty focus
// renders everything.
func Render(strategy *types.Strategy, focus types.ChannelFocus) *types.CampaignAssets {
	result := &types.CampaignAssets{}
	if focus.IncludesLinkedIn() {
		result.LinkedInPost = LinkedInPost(strategy)
	}
	if focus.IncludesEmail() {
		result.ColdEmail = ColdEmail(strategy)
	}
	if focus.IncludesWeb() {
		result.LandingHero = LandingHero(strategy)
		result.PaidAd = PaidAd(strategy)
	}
	return result
}

// formatProofPoints renders proof points as a bulleted block with a trailing
// newline. maxPoints of 0 means no limit. An empty list yields a single
// filler bullet so downstream templates never render an empty section.
func formatProofPoints(proofs []string, maxPoints int) string {
	if len(proofs) == 0 {
		return "- " + fallbackProofPoint + "\n"
	}
	if maxPoints > 0 && len(proofs) > maxPoints {
		proofs = proofs[:maxPoints]
	}

	var sb strings.Builder
	for _, p := range proofs {
		sb.WriteString("- ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}

// truncateChars returns the first n characters of s, counting runes rather
// than bytes so multi-byte characters are never split.
func truncateChars(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
