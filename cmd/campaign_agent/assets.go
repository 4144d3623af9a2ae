package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexflow/campaign-engine/internal/assets"
	"github.com/nexflow/campaign-engine/internal/observability"
	"github.com/nexflow/campaign-engine/internal/types"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Render channel assets from a saved strategy",
	Long:  "Render channel assets (LinkedIn post, cold email, landing hero, paid ad) from a previously generated strategy JSON file, without calling the model.",
	RunE:  runAssets,
}

var (
	assetsStrategyFile string
	assetsChannelFocus string
	assetsOutputFile   string
)

func init() {
	assetsCmd.Flags().StringVarP(&assetsStrategyFile, "strategy", "s", "", "Path to strategy JSON file (required)")
	assetsCmd.Flags().StringVar(&assetsChannelFocus, "channel", string(types.ChannelMulti), "Channel focus (LinkedIn Only, Email Only, Multi-Channel)")
	assetsCmd.Flags().StringVarP(&assetsOutputFile, "out", "o", "", "Path to write the rendered assets JSON")

	_ = assetsCmd.MarkFlagRequired("strategy")

	rootCmd.AddCommand(assetsCmd)
}

func runAssets(_ *cobra.Command, _ []string) error {
	strategy, err := readStrategyFile(assetsStrategyFile)
	if err != nil {
		return err
	}

	rendered := assets.Render(strategy, types.ChannelFocus(assetsChannelFocus))

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAssets(rendered)

	if assetsOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(rendered, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal assets: %w", err)
		}
		if err := os.WriteFile(assetsOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Output: %s\n", assetsOutputFile)
	}

	return nil
}
