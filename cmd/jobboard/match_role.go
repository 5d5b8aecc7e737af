package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/roles"
)

var (
	matchRoleTitle       string
	matchRoleDescription string
	matchRoleIn          string
	matchRoleOut         string
	matchRoleStats       bool
)

var matchRoleCmd = &cobra.Command{
	Use:   "match-role",
	Short: "Classify job titles into energy-sector roles",
	Long: "Matches --title (and optionally --description) against the role table. " +
		"With --in, matches every job in a JSON array of {id, title, description}; " +
		"--stats prints the aggregate breakdown instead of the per-job matches.",
	RunE: runMatchRole,
}

func init() {
	matchRoleCmd.Flags().StringVarP(&matchRoleTitle, "title", "t", "", "Job title to classify")
	matchRoleCmd.Flags().StringVarP(&matchRoleDescription, "description", "d", "", "Job description searched after the title")
	matchRoleCmd.Flags().StringVarP(&matchRoleIn, "in", "i", "", "JSON file of jobs to classify ('-' for stdin)")
	matchRoleCmd.Flags().StringVarP(&matchRoleOut, "out", "o", "", "Output JSON file (default stdout)")
	matchRoleCmd.Flags().BoolVar(&matchRoleStats, "stats", false, "Print match statistics for --in")

	rootCmd.AddCommand(matchRoleCmd)
}

func runMatchRole(_ *cobra.Command, _ []string) error {
	m := roles.Default()

	if matchRoleIn == "" {
		if matchRoleTitle == "" && matchRoleDescription == "" {
			return fmt.Errorf("either --title or --in is required")
		}
		if matchRoleStats {
			return fmt.Errorf("--stats requires --in")
		}
		// A nil match encodes as null: no role applies.
		return writeJSON(matchRoleOut, m.Match(matchRoleTitle, matchRoleDescription))
	}

	data, err := readInput(matchRoleIn)
	if err != nil {
		return err
	}
	var jobs []roles.Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		return fmt.Errorf("failed to parse jobs JSON: %w", err)
	}

	matched := m.Batch(jobs)
	stats := roles.Summarize(matched)
	logger.Info().
		Int("total", stats.Total).
		Int("matched", stats.Matched).
		Float64("match_rate", stats.MatchRate).
		Msg("matched roles")

	if matchRoleStats {
		return writeJSON(matchRoleOut, stats)
	}
	return writeJSON(matchRoleOut, matched)
}
