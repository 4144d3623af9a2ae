package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nexflow/campaign-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the campaign engine HTTP API",
	Long:  "Start the HTTP JSON API exposing campaign generation (POST /campaigns), persona listing (GET /personas), and health checks (GET /health).",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	p, closeFn, err := buildPipeline(context.Background(), cfg)
	if err != nil {
		return err
	}

	srv := server.New(p, server.Config{
		Port:  cfg.Port,
		Close: closeFn,
	})
	return srv.Start()
}
