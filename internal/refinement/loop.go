// Package refinement provides the bounded re-generation loop that retries
// low-scoring strategies with an augmented query before giving up.
package refinement

import (
	"context"
	"strconv"

	"github.com/nexflow/campaign-engine/internal/generation"
	"github.com/nexflow/campaign-engine/internal/prompts"
	"github.com/nexflow/campaign-engine/internal/scoring"
	"github.com/nexflow/campaign-engine/internal/types"
)

// Loop bounds: a strategy scoring at or above DefaultScoreThreshold is
// accepted as-is; below it, at most DefaultMaxRefinements re-generations run.
// Worst case is therefore three generation calls per request.
const (
	DefaultScoreThreshold = 75
	DefaultMaxRefinements = 2
)

// StrategyGenerator is the generation surface the loop drives.
type StrategyGenerator interface {
	Generate(ctx context.Context, query, persona string) (*generation.Outcome, error)
}

// Result is the final state of a refinement run. Exhausted is true when the
// attempt budget ran out with the score still below threshold; the last
// strategy and score are returned regardless.
type Result struct {
	Greeting    bool
	Message     string
	Strategy    *types.Strategy
	Score       *types.ScoreResult
	Refinements int
	Accepted    bool
	Exhausted   bool
}

// Options bounds a refinement run.
type Options struct {
	ScoreThreshold int
	MaxRefinements int
}

// DefaultOptions returns the standard loop bounds.
func DefaultOptions() Options {
	return Options{
		ScoreThreshold: DefaultScoreThreshold,
		MaxRefinements: DefaultMaxRefinements,
	}
}

// Run generates a strategy, scores it, and re-generates while the score is
// below threshold and the attempt budget allows.
//
// If the very first generation fails, the whole operation fails. If a
// refinement attempt fails, the loop terminates early and returns BOTH the
// last successfully scored result and the error; callers decide whether to
// serve the stale strategy or surface the failure.
func Run(ctx context.Context, gen StrategyGenerator, query, persona string, config types.ScoreConfig, opts Options) (*Result, error) {
	if opts.ScoreThreshold == 0 {
		opts.ScoreThreshold = DefaultScoreThreshold
	}

	outcome, err := gen.Generate(ctx, query, persona)
	if err != nil {
		return nil, err
	}
	if outcome.Greeting {
		return &Result{Greeting: true, Message: outcome.Message}, nil
	}

	strategy := outcome.Strategy
	score := scoring.Score(strategy, config)
	refinements := 0

	for score.TotalScore < opts.ScoreThreshold && refinements < opts.MaxRefinements {
		refined, err := gen.Generate(ctx, refineQuery(query, score.TotalScore), persona)
		if err != nil {
			return &Result{
				Strategy:    strategy,
				Score:       score,
				Refinements: refinements,
			}, err
		}

		strategy = refined.Strategy
		score = scoring.Score(strategy, config)
		refinements++
	}

	return &Result{
		Strategy:    strategy,
		Score:       score,
		Refinements: refinements,
		Accepted:    score.TotalScore >= opts.ScoreThreshold,
		Exhausted:   score.TotalScore < opts.ScoreThreshold,
	}, nil
}

// refineQuery appends the low-score note to the original query. Each attempt
// starts from the original query, not the previously augmented one.
func refineQuery(query string, previousScore int) string {
	note := prompts.MustGet("strategy.json", "refine-note")
	return query + prompts.Format(note, map[string]string{
		"Score": strconv.Itoa(previousScore),
	})
}
