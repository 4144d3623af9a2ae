package generation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexflow/campaign-engine/internal/llm"
	"github.com/nexflow/campaign-engine/internal/types"
)

type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return f.GenerateJSON(context.Background(), prompt, llm.TierStandard)
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

type fakeRetriever struct {
	docs           []types.RetrievedDocument
	err            error
	calls          int
	lastQuery      string
	lastCategories []string
}

func (f *fakeRetriever) Retrieve(_ context.Context, query string, categories []string) ([]types.RetrievedDocument, error) {
	f.calls++
	f.lastQuery = query
	f.lastCategories = categories
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func sampleDocs() []types.RetrievedDocument {
	return []types.RetrievedDocument{
		{Content: "Acme grew pipeline 38% using NexFlow.", Metadata: types.SourceMetadata{Source: "case_studies.md", Category: "case_studies"}},
		{Content: "NexFlow serves 150+ enterprise customers.", Metadata: types.SourceMetadata{Source: "company_info.md", Category: "company_info"}},
	}
}

const validOutput = `{
	"persona": "Enterprise CMO",
	"key_insight": "Enterprise teams have a growth opportunity in unified campaign data.",
	"value_proposition": "NexFlow helps enterprises increase qualified pipeline.",
	"supporting_proof_points": ["38% more qualified leads", "150+ customers"],
	"strategic_campaign_angle": "A compliance-first campaign targeting marketing leadership."
}`

func TestIsGreeting(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"hi", true},
		{"Hello", true},
		{"  HEY  ", true},
		{"Good Morning", true},
		{"good evening", true},
		{"good afternoon", false},
		{"hi there", false},
		{"", false},
		{"how do I grow pipeline?", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGreeting(tt.query))
		})
	}
}

func TestGenerate_GreetingShortCircuitsBeforeRetrieval(t *testing.T) {
	retriever := &fakeRetriever{}
	client := &fakeClient{}
	g := New(client, retriever)

	outcome, err := g.Generate(context.Background(), "  Hello  ", "Enterprise CMO")
	require.NoError(t, err)

	assert.True(t, outcome.Greeting)
	assert.Equal(t, GreetingMessage, outcome.Message)
	assert.Nil(t, outcome.Strategy)
	assert.Zero(t, retriever.calls)
	assert.Zero(t, client.calls)
}

func TestGenerate_Success(t *testing.T) {
	retriever := &fakeRetriever{docs: sampleDocs()}
	client := &fakeClient{response: validOutput}
	g := New(client, retriever)

	outcome, err := g.Generate(context.Background(), "How should we position NexFlow?", "Enterprise CMO")
	require.NoError(t, err)
	require.NotNil(t, outcome.Strategy)

	strategy := outcome.Strategy
	assert.Equal(t, "Enterprise CMO", strategy.Persona)
	assert.Equal(t, []string{"38% more qualified leads", "150+ customers"}, strategy.SupportingProofPoints)

	// Sources come from retrieval metadata, never from the model.
	require.Len(t, strategy.Sources, 2)
	assert.Equal(t, "case_studies.md", strategy.Sources[0].Source)
	assert.Equal(t, "company_info.md", strategy.Sources[1].Source)
}

func TestGenerate_PersonaPolicyShapesRetrievalAndPrompt(t *testing.T) {
	retriever := &fakeRetriever{docs: sampleDocs()}
	client := &fakeClient{response: validOutput}
	g := New(client, retriever)

	_, err := g.Generate(context.Background(), "How should we position NexFlow?", "Enterprise CMO")
	require.NoError(t, err)

	assert.Equal(t, []string{"case_studies", "company_info"}, retriever.lastCategories)
	assert.Contains(t, client.lastPrompt, "Enterprise CMO")
	assert.Contains(t, client.lastPrompt, "strategic, executive-level, data-driven")
	assert.Contains(t, client.lastPrompt, "ROI, scalability, compliance, enterprise impact")
	assert.Contains(t, client.lastPrompt, "Acme grew pipeline 38% using NexFlow.\n\nNexFlow serves 150+ enterprise customers.")
	assert.Contains(t, client.lastPrompt, "How should we position NexFlow?")
}

func TestGenerate_UnknownPersonaRetrievesUnfiltered(t *testing.T) {
	retriever := &fakeRetriever{docs: sampleDocs()}
	client := &fakeClient{response: validOutput}
	g := New(client, retriever)

	_, err := g.Generate(context.Background(), "position us", "VP of Vibes")
	require.NoError(t, err)
	assert.Nil(t, retriever.lastCategories)
}

func TestGenerate_RetrievalFailureIsUpstream(t *testing.T) {
	retriever := &fakeRetriever{err: errors.New("pool exhausted")}
	g := New(&fakeClient{}, retriever)

	_, err := g.Generate(context.Background(), "position us", "Enterprise CMO")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "retrieval", upstream.Op)
}

func TestGenerate_EmptyRetrievalIsNoContext(t *testing.T) {
	retriever := &fakeRetriever{}
	client := &fakeClient{response: validOutput}
	g := New(client, retriever)

	_, err := g.Generate(context.Background(), "position us", "Enterprise CMO")

	var noContext *NoContextError
	require.ErrorAs(t, err, &noContext)
	assert.Equal(t, "Enterprise CMO", noContext.Persona)
	assert.Zero(t, client.calls, "model must not be called without context")
}

func TestGenerate_CompletionFailureIsUpstream(t *testing.T) {
	retriever := &fakeRetriever{docs: sampleDocs()}
	client := &fakeClient{err: errors.New("rate limited")}
	g := New(client, retriever)

	_, err := g.Generate(context.Background(), "position us", "Enterprise CMO")

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "completion", upstream.Op)
}

func TestGenerate_InvalidJSONPreservesRaw(t *testing.T) {
	raw := "I think the strategy should be about growth, here it is: {broken"
	retriever := &fakeRetriever{docs: sampleDocs()}
	g := New(&fakeClient{response: raw}, retriever)

	_, err := g.Generate(context.Background(), "position us", "Enterprise CMO")

	var invalidJSON *InvalidJSONError
	require.ErrorAs(t, err, &invalidJSON)
	assert.Equal(t, raw, invalidJSON.Raw)
}

func TestGenerate_WrongTypedFieldIsSchemaError(t *testing.T) {
	raw := `{"persona": "Enterprise CMO", "key_insight": 42}`
	retriever := &fakeRetriever{docs: sampleDocs()}
	g := New(&fakeClient{response: raw}, retriever)

	_, err := g.Generate(context.Background(), "position us", "Enterprise CMO")

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, raw, schemaErr.Raw)
}

func TestGenerate_StripsMarkdownFences(t *testing.T) {
	retriever := &fakeRetriever{docs: sampleDocs()}
	client := &fakeClient{response: "```json\n" + validOutput + "\n```"}
	g := New(client, retriever)

	outcome, err := g.Generate(context.Background(), "position us", "Enterprise CMO")
	require.NoError(t, err)
	assert.NotNil(t, outcome.Strategy)
}

func TestGenerate_DefaultsMissingFields(t *testing.T) {
	retriever := &fakeRetriever{docs: sampleDocs()}
	client := &fakeClient{response: `{"key_insight": "insight only"}`}
	g := New(client, retriever)

	outcome, err := g.Generate(context.Background(), "position us", "Startup Founder")
	require.NoError(t, err)

	strategy := outcome.Strategy
	assert.Equal(t, "Startup Founder", strategy.Persona, "missing persona defaults to the request persona")
	assert.Equal(t, "insight only", strategy.KeyInsight)
	assert.Empty(t, strategy.ValueProposition)
	assert.NotNil(t, strategy.SupportingProofPoints)
	assert.Empty(t, strategy.SupportingProofPoints)
	assert.Len(t, strategy.Sources, 2)
}

func TestGenerate_ModelSuppliedSourcesIgnored(t *testing.T) {
	response := `{
		"key_insight": "insight",
		"sources": [{"source": "fabricated.md", "category": "made_up"}]
	}`
	retriever := &fakeRetriever{docs: sampleDocs()}
	g := New(&fakeClient{response: response}, retriever)

	outcome, err := g.Generate(context.Background(), "position us", "Enterprise CMO")
	require.NoError(t, err)

	require.Len(t, outcome.Strategy.Sources, 2)
	assert.Equal(t, "case_studies.md", outcome.Strategy.Sources[0].Source)
}
