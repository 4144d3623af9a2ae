package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexflow/campaign-engine/internal/observability"
	"github.com/nexflow/campaign-engine/internal/pipeline"
	"github.com/nexflow/campaign-engine/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a scored campaign strategy and channel assets",
	Long:  "Generate a campaign strategy for a persona from the knowledge base, score it against the quality rubric, refine if needed, and render channel assets.",
	RunE:  runGenerate,
}

var (
	genConfigPath      string
	genPersona         string
	genQuery           string
	genCampaignType    string
	genIndustry        string
	genRegion          string
	genBudgetLevel     string
	genTonePreference  string
	genCustomerDetails string
	genChannelFocus    string
	genOutputFile      string
	genVerbose         bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to JSON config file")
	generateCmd.Flags().StringVarP(&genPersona, "persona", "p", "", "Target persona (e.g. \"Enterprise CMO\")")
	generateCmd.Flags().StringVarP(&genQuery, "query", "q", "", "Free-form campaign question (overrides campaign parameter flags)")
	generateCmd.Flags().StringVar(&genCampaignType, "campaign-type", "", "Campaign type (Awareness, Lead Generation, ...)")
	generateCmd.Flags().StringVar(&genIndustry, "industry", "", "Target industry (B2B SaaS, FinTech, ...)")
	generateCmd.Flags().StringVar(&genRegion, "region", "", "Target region (DACH, Europe, ...)")
	generateCmd.Flags().StringVar(&genBudgetLevel, "budget", "", "Budget level (Low Budget, Mid-Range Budget, Enterprise Budget)")
	generateCmd.Flags().StringVar(&genTonePreference, "tone", "", "Tone preference (Bold & Aggressive, Executive & Strategic, ...)")
	generateCmd.Flags().StringVar(&genCustomerDetails, "customer-details", "", "Optional customer details folded into the query")
	generateCmd.Flags().StringVar(&genChannelFocus, "channel", string(types.ChannelMulti), "Channel focus (LinkedIn Only, Email Only, Multi-Channel)")
	generateCmd.Flags().StringVarP(&genOutputFile, "out", "o", "", "Path to write the full result JSON")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print formatted strategy, score, and assets")

	_ = generateCmd.MarkFlagRequired("persona")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if genQuery == "" && genCampaignType == "" && genIndustry == "" {
		return fmt.Errorf("either --query or campaign parameters (--campaign-type, --industry, ...) are required")
	}

	cfg, err := loadEngineConfig(genConfigPath)
	if err != nil {
		return err
	}
	if genVerbose {
		cfg.Verbose = true
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stdout)

	var opts []pipeline.Option
	if cfg.Verbose {
		opts = append(opts, pipeline.WithProgress(func(event pipeline.ProgressEvent) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Step, event.Message)
		}))
	}

	p, closeFn, err := buildPipeline(ctx, cfg, opts...)
	if err != nil {
		return err
	}
	defer closeFn()

	result, err := p.Run(ctx, pipeline.CampaignRequest{
		Persona:         genPersona,
		Query:           genQuery,
		CampaignType:    genCampaignType,
		Industry:        genIndustry,
		Region:          genRegion,
		BudgetLevel:     genBudgetLevel,
		TonePreference:  genTonePreference,
		CustomerDetails: genCustomerDetails,
		ChannelFocus:    types.ChannelFocus(genChannelFocus),
	})
	if err != nil {
		if result != nil && result.Strategy != nil {
			// Refinement failed after at least one scored generation; show
			// what we have before surfacing the error.
			fmt.Fprintf(os.Stderr, "Warning: refinement terminated early, keeping last scored strategy\n")
			printer.PrintStrategy(result.Strategy)
			printer.PrintScore(result.Score)
		}
		return fmt.Errorf("failed to generate campaign: %w", err)
	}

	if result.Greeting {
		printer.PrintGreeting(result.Message)
		return nil
	}

	if cfg.Verbose {
		printer.PrintStrategy(result.Strategy)
		printer.PrintScore(result.Score)
		printer.PrintAssets(result.Assets)
	} else {
		fmt.Fprintf(os.Stdout, "Final Score: %d/100 (%s, after %d refinements)\n",
			result.Score.TotalScore, result.Score.Label(), result.Refinements)
	}

	if genOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		if err := os.WriteFile(genOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", genOutputFile)
	}

	return nil
}
