package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cold-outreach/internal/logger"
	"github.com/jonathan/cold-outreach/internal/server"
)

var (
	servePort       int
	serveUseBrowser bool
	serveVerbose    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for job extraction, resume parsing, skill matching, and email composition.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Use a headless browser for JavaScript-rendered pages")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	log, err := logger.New(true, serveVerbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Composition is optional; /compose returns 503 without a key.
	apiKey := apiKeyFromEnv()
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY not set, /compose will be unavailable")
	}

	srv := server.New(server.Config{
		Port:       servePort,
		APIKey:     apiKey,
		UseBrowser: serveUseBrowser,
	}, log)

	return srv.Start()
}
