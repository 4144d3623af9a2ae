// Package generation produces validated campaign strategies from a user query
// and persona: persona-filtered retrieval, a single structured LLM call, JSON
// parsing, and schema validation with tagged errors on every failure path.
package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nexflow/campaign-engine/internal/llm"
	"github.com/nexflow/campaign-engine/internal/personas"
	"github.com/nexflow/campaign-engine/internal/prompts"
	"github.com/nexflow/campaign-engine/internal/schemas"
	"github.com/nexflow/campaign-engine/internal/types"
)

// Retriever is the document retrieval surface the generator depends on.
type Retriever interface {
	Retrieve(ctx context.Context, query string, categories []string) ([]types.RetrievedDocument, error)
}

// Outcome is the result of a generation call: either a greeting short-circuit
// (Greeting true, Message set) or a fully validated strategy.
type Outcome struct {
	Greeting bool
	Message  string
	Strategy *types.Strategy
}

// Generator builds persona-aware prompts and turns model output into
// validated strategies.
type Generator struct {
	client    llm.Client
	retriever Retriever
	tier      llm.ModelTier
}

// New creates a generator over the given LLM client and retriever.
func New(client llm.Client, retriever Retriever) *Generator {
	return &Generator{
		client:    client,
		retriever: retriever,
		tier:      llm.TierStandard,
	}
}

// strategyOutput mirrors the five fields the model is asked to emit. Sources
// are deliberately absent: provenance is attached locally from retrieval
// metadata so the model can neither fabricate nor omit citations.
type strategyOutput struct {
	Persona                string   `json:"persona"`
	KeyInsight             string   `json:"key_insight"`
	ValueProposition       string   `json:"value_proposition"`
	SupportingProofPoints  []string `json:"supporting_proof_points"`
	StrategicCampaignAngle string   `json:"strategic_campaign_angle"`
}

// Generate runs one generation attempt for the query and persona.
//
// Greeting queries short-circuit before any retrieval. Otherwise the persona
// policy shapes the retrieval filter and prompt, the model is called once, and
// the output is parsed and validated. Every failure is a tagged error:
// NoContextError, InvalidJSONError, SchemaError, or UpstreamError.
func (g *Generator) Generate(ctx context.Context, query, persona string) (*Outcome, error) {
	if IsGreeting(query) {
		return &Outcome{Greeting: true, Message: GreetingMessage}, nil
	}

	policy, _ := personas.Lookup(persona)

	docs, err := g.retriever.Retrieve(ctx, query, policy.CategoryFilters)
	if err != nil {
		return nil, &UpstreamError{Op: "retrieval", Cause: err}
	}
	if len(docs) == 0 {
		return nil, &NoContextError{Persona: persona}
	}

	prompt := buildPrompt(query, persona, policy, docs)

	raw, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, &UpstreamError{Op: "completion", Cause: err}
	}

	strategy, err := parseStrategy(raw, persona, docs)
	if err != nil {
		return nil, err
	}

	return &Outcome{Strategy: strategy}, nil
}

// buildPrompt renders the generation prompt from the embedded template.
// Retrieved document contents are concatenated in retrieval order, separated
// by blank lines.
func buildPrompt(query, persona string, policy personas.Policy, docs []types.RetrievedDocument) string {
	contents := make([]string, 0, len(docs))
	for _, doc := range docs {
		contents = append(contents, doc.Content)
	}

	template := prompts.MustGet("strategy.json", "generate-strategy")
	return prompts.Format(template, map[string]string{
		"Persona": persona,
		"Tone":    policy.Tone,
		"Focus":   policy.Focus,
		"Context": strings.Join(contents, "\n\n"),
		"Query":   query,
	})
}

// parseStrategy turns raw model output into a validated strategy. Missing
// string fields default to empty, a missing proof-point list defaults to an
// empty slice, and sources come from the retrieved documents.
func parseStrategy(raw, persona string, docs []types.RetrievedDocument) (*types.Strategy, error) {
	cleaned := llm.CleanJSONBlock(raw)

	var probe any
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, &InvalidJSONError{Raw: raw, Cause: err}
	}

	if err := schemas.ValidateStrategyOutput(cleaned); err != nil {
		return nil, &SchemaError{Raw: raw, Cause: err}
	}

	var output strategyOutput
	if err := json.Unmarshal([]byte(cleaned), &output); err != nil {
		// Schema validation already passed; a decode failure here means the
		// output shape and the schema have drifted apart.
		return nil, &SchemaError{Raw: raw, Cause: err}
	}

	if output.Persona == "" {
		output.Persona = persona
	}
	if output.SupportingProofPoints == nil {
		output.SupportingProofPoints = []string{}
	}

	sources := make([]types.SourceMetadata, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, doc.Metadata)
	}

	return &types.Strategy{
		Persona:                output.Persona,
		KeyInsight:             output.KeyInsight,
		ValueProposition:       output.ValueProposition,
		SupportingProofPoints:  output.SupportingProofPoints,
		StrategicCampaignAngle: output.StrategicCampaignAngle,
		Sources:                sources,
	}, nil
}
