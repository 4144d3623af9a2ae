// Package personas provides the static persona policy table that maps a target
// buyer archetype to its retrieval filter, strategic focus, and tone.
package personas

// Policy controls how retrieval and prompting are shaped for a persona.
type Policy struct {
	// CategoryFilters is the allow-list of document categories eligible for retrieval.
	CategoryFilters []string
	// Focus is the strategic focus phrase injected into the generation prompt.
	Focus string
	// Tone is the communication tone phrase injected into the generation prompt.
	Tone string
}

// Recognized persona names.
const (
	EnterpriseCMO    = "Enterprise CMO"
	StartupFounder   = "Startup Founder"
	MarketingManager = "Marketing Manager"
)

var policyTable = map[string]Policy{
	EnterpriseCMO: {
		CategoryFilters: []string{"case_studies", "company_info"},
		Focus:           "ROI, scalability, compliance, enterprise impact",
		Tone:            "strategic, executive-level, data-driven",
	},
	StartupFounder: {
		CategoryFilters: []string{"pricing_plans", "product_features"},
		Focus:           "affordability, flexibility, fast deployment",
		Tone:            "practical, growth-focused, concise",
	},
	MarketingManager: {
		CategoryFilters: []string{"product_features", "case_studies"},
		Focus:           "execution efficiency, automation, measurable results",
		Tone:            "operational, performance-driven",
	},
}

// Lookup returns the policy for a persona name. An unrecognized persona
// returns a zero-value policy and false; callers must treat that as
// unfiltered retrieval with empty tone and focus, not as an error.
func Lookup(name string) (Policy, bool) {
	policy, ok := policyTable[name]
	return policy, ok
}

// Names returns the recognized persona names in a stable order.
func Names() []string {
	return []string{EnterpriseCMO, StartupFounder, MarketingManager}
}
