package personas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_RecognizedPersonas(t *testing.T) {
	tests := []struct {
		name            string
		persona         string
		wantFilters     []string
		wantFocusPhrase string
	}{
		{
			name:            "Enterprise CMO",
			persona:         EnterpriseCMO,
			wantFilters:     []string{"case_studies", "company_info"},
			wantFocusPhrase: "ROI, scalability, compliance, enterprise impact",
		},
		{
			name:            "Startup Founder",
			persona:         StartupFounder,
			wantFilters:     []string{"pricing_plans", "product_features"},
			wantFocusPhrase: "affordability, flexibility, fast deployment",
		},
		{
			name:            "Marketing Manager",
			persona:         MarketingManager,
			wantFilters:     []string{"product_features", "case_studies"},
			wantFocusPhrase: "execution efficiency, automation, measurable results",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy, ok := Lookup(tt.persona)
			require.True(t, ok)
			assert.Equal(t, tt.wantFilters, policy.CategoryFilters)
			assert.Equal(t, tt.wantFocusPhrase, policy.Focus)
			assert.NotEmpty(t, policy.Tone)
		})
	}
}

func TestLookup_UnknownPersona(t *testing.T) {
	policy, ok := Lookup("Chief Happiness Officer")
	assert.False(t, ok)
	assert.Empty(t, policy.CategoryFilters)
	assert.Empty(t, policy.Focus)
	assert.Empty(t, policy.Tone)
}

func TestLookup_CaseSensitive(t *testing.T) {
	// Persona names are exact; callers pass the canonical strings.
	_, ok := Lookup("enterprise cmo")
	assert.False(t, ok)
}

func TestNames_StableOrder(t *testing.T) {
	assert.Equal(t, []string{EnterpriseCMO, StartupFounder, MarketingManager}, Names())

	for _, name := range Names() {
		_, ok := Lookup(name)
		assert.True(t, ok, "persona %q should resolve", name)
	}
}
