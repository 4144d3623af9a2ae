// Package types provides type definitions for structured data used throughout the campaign engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Strategy is the validated campaign thesis produced by the strategy generator.
// Sources are always attached from retrieval metadata, never taken from model
// output, so provenance cannot be fabricated.
type Strategy struct {
	Persona                string           `json:"persona"`
	KeyInsight             string           `json:"key_insight"`
	ValueProposition       string           `json:"value_proposition"`
	SupportingProofPoints  []string         `json:"supporting_proof_points"`
	StrategicCampaignAngle string           `json:"strategic_campaign_angle"`
	Sources                []SourceMetadata `json:"sources"`
}

// SourceMetadata identifies the knowledge-base chunk a strategy claim is grounded on.
// Source is the bare filename; Category is the filename without extension and
// must match persona policy filter values exactly.
type SourceMetadata struct {
	Source   string `json:"source"`
	Category string `json:"category"`
}

// RetrievedDocument is a single chunk returned by the retriever, ordered by
// relevance/diversity rank.
type RetrievedDocument struct {
	Content  string         `json:"content"`
	Metadata SourceMetadata `json:"metadata"`
}
