package main

import (
	"context"
	"fmt"
	"os"

	"github.com/nexflow/campaign-engine/internal/config"
	"github.com/nexflow/campaign-engine/internal/generation"
	"github.com/nexflow/campaign-engine/internal/llm"
	"github.com/nexflow/campaign-engine/internal/pipeline"
	"github.com/nexflow/campaign-engine/internal/refinement"
	"github.com/nexflow/campaign-engine/internal/retrieval"
	"github.com/nexflow/campaign-engine/internal/vectorstore"
)

// loadEngineConfig merges a config file (if given) over the built-in defaults
// and fills collaborator credentials from the environment.
func loadEngineConfig(configPath string) (config.Config, error) {
	cfg := config.Defaults()

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildPipeline wires the collaborators (LLM client, embedder, vector store)
// into a ready pipeline. The returned close function releases all of them.
func buildPipeline(ctx context.Context, cfg config.Config, opts ...pipeline.Option) (*pipeline.Pipeline, func(), error) {
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or api_key in config)")
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("database URL is required (set DATABASE_URL environment variable or database_url in config)")
	}

	llmConfig := llm.DefaultConfig()

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	embedder, err := llm.NewGeminiEmbedder(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	store, err := vectorstore.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		_ = client.Close()
		_ = embedder.Close()
		return nil, nil, fmt.Errorf("failed to connect to vector store: %w", err)
	}

	retriever := retrieval.New(store, embedder,
		retrieval.WithK(cfg.RetrievalK),
		retrieval.WithFetchK(cfg.RetrievalFetchK),
	)
	generator := generation.New(client, retriever)

	opts = append(opts, pipeline.WithRefinement(refinement.Options{
		ScoreThreshold: cfg.ScoreThreshold,
		MaxRefinements: cfg.MaxRefinements,
	}))

	closeFn := func() {
		_ = client.Close()
		_ = embedder.Close()
		store.Close()
	}

	return pipeline.New(generator, opts...), closeFn, nil
}
