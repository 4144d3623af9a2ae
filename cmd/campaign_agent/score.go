package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexflow/campaign-engine/internal/observability"
	"github.com/nexflow/campaign-engine/internal/scoring"
	"github.com/nexflow/campaign-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a saved strategy against the quality rubric",
	Long:  "Score a previously generated strategy JSON file against the deterministic quality rubric, without calling the model or the knowledge base.",
	RunE:  runScore,
}

var (
	scoreStrategyFile string
	scorePersona      string
	scoreIndustry     string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreStrategyFile, "strategy", "s", "", "Path to strategy JSON file (required)")
	scoreCmd.Flags().StringVarP(&scorePersona, "persona", "p", "", "Persona to score alignment against (defaults to the strategy's persona)")
	scoreCmd.Flags().StringVar(&scoreIndustry, "industry", "", "Target industry for context")

	_ = scoreCmd.MarkFlagRequired("strategy")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	strategy, err := readStrategyFile(scoreStrategyFile)
	if err != nil {
		return err
	}

	persona := scorePersona
	if persona == "" {
		persona = strategy.Persona
	}

	result := scoring.Score(strategy, types.ScoreConfig{
		Persona:  persona,
		Industry: scoreIndustry,
	})

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScore(result)
	return nil
}

// readStrategyFile loads a strategy JSON previously written by generate --out
// or saved directly from the API response.
func readStrategyFile(path string) (*types.Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read strategy file: %w", err)
	}

	// Accept either a bare strategy or a full result envelope.
	var envelope struct {
		Strategy *types.Strategy `json:"strategy"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Strategy != nil {
		return envelope.Strategy, nil
	}

	var strategy types.Strategy
	if err := json.Unmarshal(data, &strategy); err != nil {
		return nil, fmt.Errorf("failed to parse strategy file: %w", err)
	}
	return &strategy, nil
}
