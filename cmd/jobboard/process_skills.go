package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/enrich"
	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/skillcache"
)

var (
	processSkillsIn     string
	processSkillsOut    string
	processSkillsReport bool
)

var processSkillsCmd = &cobra.Command{
	Use:   "process-skills [skill...]",
	Short: "Canonicalize raw skill strings against the reference taxonomy",
	Long: "Splits compound skills, normalizes each part, resolves it through the skill cache " +
		"and the reference taxonomy, and prints the deduplicated canonical list. " +
		"Skills come from the arguments and from --in (a JSON array or one skill per line, '-' for stdin).",
	RunE: runProcessSkills,
}

func init() {
	processSkillsCmd.Flags().StringVarP(&processSkillsIn, "in", "i", "", "Input file of raw skills ('-' for stdin)")
	processSkillsCmd.Flags().StringVarP(&processSkillsOut, "out", "o", "", "Output JSON file (default stdout)")
	processSkillsCmd.Flags().BoolVar(&processSkillsReport, "report", false, "Include rejected fragments and reasons")

	rootCmd.AddCommand(processSkillsCmd)
}

// newEnricher builds the processing pipeline from the resolved settings.
func newEnricher() (*enrich.Enricher, error) {
	cache, err := skillcache.Load(settings.SkillCache)
	if err != nil {
		return nil, fmt.Errorf("failed to load skill cache: %w", err)
	}
	logger.Debug().Int("entries", cache.Len()).Str("path", settings.SkillCache).Msg("loaded skill cache")
	return enrich.New(cache, settings.Workers), nil
}

func runProcessSkills(_ *cobra.Command, args []string) error {
	raw, err := collectSkills(args, processSkillsIn)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("no skills given: pass them as arguments or with --in")
	}

	e, err := newEnricher()
	if err != nil {
		return err
	}

	if processSkillsReport {
		report := e.Processor.ProcessWithReport(raw)
		logger.Info().Int("input", report.Input).Int("kept", len(report.Kept)).Int("rejected", len(report.Rejected)).Msg("processed skills")
		return writeJSON(processSkillsOut, report)
	}

	kept := e.Processor.Process(raw)
	logger.Info().Int("input", len(raw)).Int("kept", len(kept)).Msg("processed skills")
	return writeJSON(processSkillsOut, kept)
}
