// Package scoring evaluates a campaign strategy against a deterministic
// six-dimension rubric. The dimensions are independent keyword/length
// heuristics; they are weak proxies for quality, but they are the compatibility
// contract the refinement loop is tuned against, so the thresholds here must
// not drift.
package scoring

import (
	"encoding/json"
	"strings"

	"github.com/nexflow/campaign-engine/internal/types"
)

// Maximum points per dimension. Totals are clamped at 100.
const (
	maxPersonaPoints     = 20
	maxInsightPoints     = 15
	maxValuePropPoints   = 15
	maxProofPointsPoints = 20
	maxAnglePoints       = 15
	maxSourcesPoints     = 15

	partialInsightPoints     = 5
	partialValuePropPoints   = 5
	partialProofPointsPoints = 10
	partialAnglePoints       = 5
)

// Score computes the rubric result for a strategy. It is pure and
// deterministic: identical inputs always produce identical results, and
// nothing is cached or persisted.
func Score(strategy *types.Strategy, config types.ScoreConfig) *types.ScoreResult {
	breakdown := map[string]int{
		types.DimensionPersona:          scorePersona(strategy, config.Persona),
		types.DimensionKeyInsight:       scoreKeyInsight(strategy.KeyInsight),
		types.DimensionValueProposition: scoreValueProposition(strategy.ValueProposition),
		types.DimensionProofPoints:      scoreProofPoints(strategy.SupportingProofPoints),
		types.DimensionStrategicAngle:   scoreStrategicAngle(strategy.StrategicCampaignAngle),
		types.DimensionSources:          scoreSources(strategy.Sources),
	}

	total := 0
	for _, points := range breakdown {
		total += points
	}
	if total > 100 {
		total = 100
	}
	breakdown[types.DimensionTotal] = total

	return &types.ScoreResult{
		TotalScore: total,
		Breakdown:  breakdown,
	}
}

// scorePersona awards full points when the configured persona appears as a
// case-insensitive substring anywhere in the serialized strategy. Serializing
// the whole object (sources included) reproduces the historical behavior; the
// persona name can match unintended fields, and that quirk is part of the
// scoring contract.
func scorePersona(strategy *types.Strategy, persona string) int {
	if persona == "" {
		return 0
	}
	serialized, err := json.Marshal(strategy)
	if err != nil {
		return 0
	}
	if strings.Contains(strings.ToLower(string(serialized)), strings.ToLower(persona)) {
		return maxPersonaPoints
	}
	return 0
}

func scoreKeyInsight(insight string) int {
	lower := strings.ToLower(insight)
	if len(insight) > 60 && (strings.Contains(lower, "opportunity") || strings.Contains(lower, "growth")) {
		return maxInsightPoints
	}
	if len(insight) > 30 {
		return partialInsightPoints
	}
	return 0
}

func scoreValueProposition(prop string) int {
	lower := strings.ToLower(prop)
	if len(prop) > 60 && (strings.Contains(lower, "increase") || strings.Contains(lower, "improve")) {
		return maxValuePropPoints
	}
	if len(prop) > 30 {
		return partialValuePropPoints
	}
	return 0
}

func scoreProofPoints(proofs []string) int {
	switch {
	case len(proofs) >= 3:
		return maxProofPointsPoints
	case len(proofs) >= 1:
		return partialProofPointsPoints
	default:
		return 0
	}
}

func scoreStrategicAngle(angle string) int {
	lower := strings.ToLower(angle)
	if len(angle) > 50 && (strings.Contains(lower, "campaign") || strings.Contains(lower, "focus")) {
		return maxAnglePoints
	}
	if len(angle) > 20 {
		return partialAnglePoints
	}
	return 0
}

func scoreSources(sources []types.SourceMetadata) int {
	if len(sources) > 0 {
		return maxSourcesPoints
	}
	return 0
}
