// Package main provides the entry point for the campaign engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campaign_agent",
	Short: "Persona-driven campaign strategy engine",
	Long:  "Campaign agent generates scored, persona-driven marketing campaign strategies from a retrieval-augmented knowledge base and derives channel assets (LinkedIn post, cold email, landing hero, paid ad).",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
