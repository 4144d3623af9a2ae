package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexflow/campaign-engine/internal/types"
)

func TestPrintStrategy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrategy(&types.Strategy{
		Persona:                "Enterprise CMO",
		KeyInsight:             "Campaign data is fragmented",
		ValueProposition:       "Unify reporting",
		SupportingProofPoints:  []string{"38% more leads", "150+ customers"},
		StrategicCampaignAngle: "Compliance-first growth",
		Sources:                []types.SourceMetadata{{Source: "case_studies.md", Category: "case_studies"}},
	})

	out := buf.String()
	assert.Contains(t, out, "Campaign Strategy")
	assert.Contains(t, out, "Enterprise CMO")
	assert.Contains(t, out, "• 38% more leads")
	assert.Contains(t, out, "case_studies.md (case_studies)")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintStrategy_TruncatesLongProofPointList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStrategy(&types.Strategy{
		Persona:               "Enterprise CMO",
		SupportingProofPoints: []string{"a", "b", "c", "d", "e", "f", "g"},
	})

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestPrintStrategy_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStrategy(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(&types.ScoreResult{
		TotalScore: 85,
		Breakdown: map[string]int{
			types.DimensionPersona:     20,
			types.DimensionProofPoints: 20,
			types.DimensionTotal:       85,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Campaign Quality")
	assert.Contains(t, out, "Total: 85/100 (Excellent)")
	assert.Contains(t, out, "persona")
	assert.Contains(t, out, "proof_points")
}

func TestPrintScore_DimensionOrderIsStable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(&types.ScoreResult{TotalScore: 50, Breakdown: map[string]int{}})

	out := buf.String()
	assert.Less(t, strings.Index(out, "persona"), strings.Index(out, "key_insight"))
	assert.Less(t, strings.Index(out, "key_insight"), strings.Index(out, "sources"))
}

func TestPrintAssets_OnlyRenderedChannels(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAssets(&types.CampaignAssets{LinkedInPost: "post body"})

	out := buf.String()
	assert.Contains(t, out, "LinkedIn Post")
	assert.Contains(t, out, "post body")
	assert.NotContains(t, out, "Cold Email")
	assert.NotContains(t, out, "Paid Ad")
}

func TestPrintGreeting(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGreeting("Hello there")

	out := buf.String()
	assert.Contains(t, out, "Assistant")
	assert.Contains(t, out, "Hello there")
}
