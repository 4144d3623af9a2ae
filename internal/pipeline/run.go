// Package pipeline provides the high-level orchestration for one campaign
// request: fold campaign parameters into a query, generate and score a
// strategy with bounded refinement, then render channel assets.
//
// The pipeline is stateless per call. Callers hold the Result value and pass
// it explicitly to any follow-up operation; nothing is cached between
// requests, and identical inputs re-run retrieval and generation.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/nexflow/campaign-engine/internal/assets"
	"github.com/nexflow/campaign-engine/internal/refinement"
	"github.com/nexflow/campaign-engine/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// CampaignRequest holds one campaign generation request. Either Query is set
// directly, or the campaign parameters are folded into a query block the way
// the strategy prompt expects them.
type CampaignRequest struct {
	Persona         string             `json:"persona"`
	Query           string             `json:"query,omitempty"`
	CampaignType    string             `json:"campaign_type,omitempty"`
	Industry        string             `json:"industry,omitempty"`
	Region          string             `json:"region,omitempty"`
	BudgetLevel     string             `json:"budget_level,omitempty"`
	TonePreference  string             `json:"tone_preference,omitempty"`
	CustomerDetails string             `json:"customer_details,omitempty"`
	ChannelFocus    types.ChannelFocus `json:"channel_focus,omitempty"`
}

// BuildQuery returns the query string submitted to generation. A free-form
// Query wins; otherwise the campaign parameters are rendered as the fixed
// key-value block.
func (r *CampaignRequest) BuildQuery() string {
	if r.Query != "" {
		return r.Query
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Campaign Type: %s\n", r.CampaignType))
	sb.WriteString(fmt.Sprintf("Target Industry: %s\n", r.Industry))
	sb.WriteString(fmt.Sprintf("Target Region: %s\n", r.Region))
	sb.WriteString(fmt.Sprintf("Budget Level: %s\n", r.BudgetLevel))
	sb.WriteString(fmt.Sprintf("Primary Channel Focus: %s\n", r.ChannelFocus))
	sb.WriteString(fmt.Sprintf("Tone Preference: %s\n", r.TonePreference))
	sb.WriteString(fmt.Sprintf("Customer Details: %s\n", r.CustomerDetails))
	return sb.String()
}

// Result is everything a presentation caller needs from one request: the
// greeting short-circuit, or the final strategy with its score and rendered
// assets. Refinements counts extra generation calls beyond the first.
type Result struct {
	Greeting    bool                  `json:"greeting,omitempty"`
	Message     string                `json:"message,omitempty"`
	Strategy    *types.Strategy       `json:"strategy,omitempty"`
	Score       *types.ScoreResult    `json:"score,omitempty"`
	Assets      *types.CampaignAssets `json:"assets,omitempty"`
	Refinements int                   `json:"refinements"`
	Accepted    bool                  `json:"accepted"`
	Exhausted   bool                  `json:"exhausted,omitempty"`
}

// Pipeline wires the strategy generator into the refinement loop and asset
// rendering.
type Pipeline struct {
	gen        refinement.StrategyGenerator
	opts       refinement.Options
	onProgress ProgressCallback
}

// Option customizes pipeline behavior.
type Option func(*Pipeline)

// WithRefinement overrides the refinement loop bounds.
func WithRefinement(opts refinement.Options) Option {
	return func(p *Pipeline) { p.opts = opts }
}

// WithProgress registers a progress callback for verbose callers.
func WithProgress(cb ProgressCallback) Option {
	return func(p *Pipeline) { p.onProgress = cb }
}

// New creates a pipeline over the given strategy generator.
func New(gen refinement.StrategyGenerator, opts ...Option) *Pipeline {
	p := &Pipeline{
		gen:  gen,
		opts: refinement.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes the full sequence for one request. On a refinement failure the
// last successfully scored strategy is returned alongside the error (with no
// assets rendered); on a first-generation failure the whole call fails.
func (p *Pipeline) Run(ctx context.Context, req CampaignRequest) (*Result, error) {
	query := req.BuildQuery()
	config := types.ScoreConfig{Persona: req.Persona, Industry: req.Industry}

	p.progress("generate", "generating campaign strategy")

	loopResult, err := refinement.Run(ctx, p.gen, query, req.Persona, config, p.opts)
	if err != nil {
		if loopResult == nil {
			return nil, err
		}
		// Refinement failed mid-loop; preserve the last scored strategy.
		return &Result{
			Strategy:    loopResult.Strategy,
			Score:       loopResult.Score,
			Refinements: loopResult.Refinements,
		}, err
	}

	if loopResult.Greeting {
		return &Result{Greeting: true, Message: loopResult.Message}, nil
	}

	if loopResult.Refinements > 0 {
		p.progress("refine", fmt.Sprintf("refined %d time(s), final score %d/100",
			loopResult.Refinements, loopResult.Score.TotalScore))
	}

	p.progress("render", "rendering campaign assets")
	rendered := assets.Render(loopResult.Strategy, req.ChannelFocus)

	return &Result{
		Strategy:    loopResult.Strategy,
		Score:       loopResult.Score,
		Assets:      rendered,
		Refinements: loopResult.Refinements,
		Accepted:    loopResult.Accepted,
		Exhausted:   loopResult.Exhausted,
	}, nil
}

func (p *Pipeline) progress(step, message string) {
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{Step: step, Message: message})
	}
}
