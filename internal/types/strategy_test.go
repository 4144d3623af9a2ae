package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategy_JSONMarshaling(t *testing.T) {
	strategy := Strategy{
		Persona:                "Enterprise CMO",
		KeyInsight:             "Campaign data is fragmented across tools",
		ValueProposition:       "Unify reporting in one platform",
		SupportingProofPoints:  []string{"38% more qualified leads"},
		StrategicCampaignAngle: "Compliance-first growth",
		Sources: []SourceMetadata{
			{Source: "case_studies.md", Category: "case_studies"},
		},
	}

	jsonBytes, err := json.MarshalIndent(strategy, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"persona": "Enterprise CMO"`)
	assert.Contains(t, string(jsonBytes), `"key_insight": "Campaign data is fragmented across tools"`)
	assert.Contains(t, string(jsonBytes), `"value_proposition": "Unify reporting in one platform"`)
	assert.Contains(t, string(jsonBytes), `"supporting_proof_points": [`)
	assert.Contains(t, string(jsonBytes), `"strategic_campaign_angle": "Compliance-first growth"`)
	assert.Contains(t, string(jsonBytes), `"sources": [`)

	var unmarshaled Strategy
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, strategy, unmarshaled)
}

func TestScoreResult_Label(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Needs Improvement"},
		{40, "Needs Improvement"},
		{39, "Poor"},
		{0, "Poor"},
	}

	for _, tt := range tests {
		result := ScoreResult{TotalScore: tt.score}
		assert.Equal(t, tt.want, result.Label(), "score %d", tt.score)
	}
}

func TestChannelFocus_Inclusion(t *testing.T) {
	tests := []struct {
		name     string
		focus    ChannelFocus
		linkedin bool
		email    bool
		web      bool
	}{
		{name: "linkedin only", focus: ChannelLinkedIn, linkedin: true},
		{name: "email only", focus: ChannelEmail, email: true},
		{name: "multi-channel", focus: ChannelMulti, linkedin: true, email: true, web: true},
		{name: "empty focus includes all", focus: "", linkedin: true, email: true, web: true},
		{name: "unknown focus includes nothing", focus: "Carrier Pigeon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.linkedin, tt.focus.IncludesLinkedIn())
			assert.Equal(t, tt.email, tt.focus.IncludesEmail())
			assert.Equal(t, tt.web, tt.focus.IncludesWeb())
		})
	}
}
