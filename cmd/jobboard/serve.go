package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes the skill, role and job enrichment endpoints.
The /jobs store routes are enabled when DATABASE_URL (or database_url in the config file) is set.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default from config, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	port := settings.Port
	if servePort != 0 {
		port = servePort
	}

	srv, err := server.New(server.Config{
		Port:        port,
		DatabaseURL: settings.DatabaseURL,
		SkillCache:  settings.SkillCache,
		Workers:     settings.Workers,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
