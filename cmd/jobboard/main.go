// Package main provides the jobboard CLI: skill normalization, energy role
// matching, posting enrichment and the REST API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/config"
	"github.com/jonathan/energy-jobboard/internal/logger"
)

var (
	configPath     string
	logLevelFlag   string
	logFormatFlag  string
	skillCacheFlag string

	// settings is the merged configuration, resolved before every command.
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "jobboard",
	Short: "Energy job board skill and role tooling",
	Long: "jobboard normalizes raw job-posting skills against an O*NET-based reference taxonomy, " +
		"classifies job titles into energy-sector roles and serves both over a REST API.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: console or json")
	rootCmd.PersistentFlags().StringVar(&skillCacheFlag, "skill-cache", "", "Path to the pre-built O*NET skill cache JSON")
}

// loadSettings merges flags over the config file over the environment and
// initializes the logger.
func loadSettings(_ *cobra.Command, _ []string) error {
	env, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to read environment: %w", err)
	}

	file := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		file = *loaded
	}

	flags := config.Config{
		LogLevel:   logLevelFlag,
		LogFormat:  logFormatFlag,
		SkillCache: skillCacheFlag,
	}
	base := file.MergeWithDefaults(env)
	settings = flags.MergeWithDefaults(base)
	if err := settings.Validate(); err != nil {
		return err
	}

	logger.Init(logger.Config{Level: settings.LogLevel, Format: settings.LogFormat})
	logger.Debug().Str("config", configPath).Msg("settings loaded")
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
