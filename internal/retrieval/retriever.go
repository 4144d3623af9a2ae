// Package retrieval provides persona-filtered document retrieval over the
// vector store, using maximal marginal relevance to balance relevance and
// diversity of the returned context.
package retrieval

import (
	"context"
	"fmt"

	"github.com/nexflow/campaign-engine/internal/llm"
	"github.com/nexflow/campaign-engine/internal/types"
	"github.com/nexflow/campaign-engine/internal/vectorstore"
)

// Default search parameters: fetchK candidates are pulled from the store and
// narrowed to k results by MMR.
const (
	DefaultK      = 5
	DefaultFetchK = 15
	defaultLambda = 0.5
)

// Searcher is the read-only vector store surface the retriever depends on.
type Searcher interface {
	Search(ctx context.Context, embedding []float32, limit int, categories []string) ([]vectorstore.Candidate, error)
}

// Retriever embeds queries and selects a diverse top-k slice of the
// candidate pool.
type Retriever struct {
	store    Searcher
	embedder llm.Embedder
	k        int
	fetchK   int
	lambda   float64
}

// Option customizes retriever behavior.
type Option func(*Retriever)

// WithK overrides the number of documents returned.
func WithK(k int) Option {
	return func(r *Retriever) { r.k = k }
}

// WithFetchK overrides the size of the candidate pool fetched before MMR.
func WithFetchK(fetchK int) Option {
	return func(r *Retriever) { r.fetchK = fetchK }
}

// New creates a retriever over the given store and embedder.
func New(store Searcher, embedder llm.Embedder, opts ...Option) *Retriever {
	r := &Retriever{
		store:    store,
		embedder: embedder,
		k:        DefaultK,
		fetchK:   DefaultFetchK,
		lambda:   defaultLambda,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Retrieve returns up to k documents relevant to the query, restricted to the
// given categories when the set is non-empty. An empty result is a valid
// "no context" outcome, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, categories []string) ([]types.RetrievedDocument, error) {
	embedding, err := r.embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	candidates, err := r.store.Search(ctx, embedding, r.fetchK, categories)
	if err != nil {
		return nil, fmt.Errorf("failed to search vector store: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	selected := selectMMR(candidates, r.k, r.lambda)

	docs := make([]types.RetrievedDocument, 0, len(selected))
	for _, c := range selected {
		docs = append(docs, types.RetrievedDocument{
			Content: c.Content,
			Metadata: types.SourceMetadata{
				Source:   c.Source,
				Category: c.Category,
			},
		})
	}
	return docs, nil
}
