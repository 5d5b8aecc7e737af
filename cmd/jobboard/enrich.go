package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/db"
	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/schemas"
	"github.com/jonathan/energy-jobboard/internal/types"
)

var (
	enrichIn      string
	enrichOut     string
	enrichWorkers int
	enrichSave    bool
	enrichDB      string
	enrichLLM     bool
)

var enrichCmd = &cobra.Command{
	Use:   "enrich",
	Short: "Enrich job postings with canonical skills and roles",
	Long: "Reads a JSON array of job postings, canonicalizes their skills, builds weighted skill targets " +
		"and classifies each title into an energy-sector role. With --save the results are upserted " +
		"into PostgreSQL (DATABASE_URL, database_url in the config file, or --db).",
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().StringVarP(&enrichIn, "in", "i", "", "JSON file of job postings ('-' for stdin)")
	enrichCmd.Flags().StringVarP(&enrichOut, "out", "o", "", "Output JSON file (default stdout)")
	enrichCmd.Flags().IntVar(&enrichWorkers, "workers", 0, "Parallel workers (default from config)")
	enrichCmd.Flags().BoolVar(&enrichSave, "save", false, "Upsert enriched jobs into the database")
	enrichCmd.Flags().StringVar(&enrichDB, "db", "", "PostgreSQL URL, overrides DATABASE_URL")
	enrichCmd.Flags().BoolVar(&enrichLLM, "llm-skills", false, "Extract skills with Gemini for postings that list none")

	if err := enrichCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(enrichCmd)
}

func runEnrich(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	databaseURL := enrichDB
	if databaseURL == "" {
		databaseURL = settings.DatabaseURL
	}
	if enrichSave && databaseURL == "" {
		return fmt.Errorf("--save requires a database URL (DATABASE_URL or --db)")
	}

	data, err := readInput(enrichIn)
	if err != nil {
		return err
	}
	if err := schemas.Validate(schemas.JobPostings, data); err != nil {
		return fmt.Errorf("invalid job postings: %w", err)
	}
	var postings []types.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return fmt.Errorf("failed to parse job postings JSON: %w", err)
	}

	if enrichLLM {
		if _, err := fillMissingSkills(ctx, postings); err != nil {
			return err
		}
	}

	e, err := newEnricher()
	if err != nil {
		return err
	}
	if enrichWorkers > 0 {
		e.Workers = enrichWorkers
	}
	e.OnProgress = func(done, total int) {
		if done == total || done%100 == 0 {
			logger.Info().Int("done", done).Int("total", total).Msg("enrichment progress")
		}
	}

	jobs, summary, err := e.Run(ctx, postings)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}
	logger.Info().
		Int("postings", summary.Postings).
		Int("raw_skills", summary.RawSkills).
		Int("skills_kept", summary.SkillsKept).
		Float64("match_rate", summary.Roles.MatchRate).
		Str("duration", summary.Duration).
		Msg("enrichment complete")

	if enrichSave {
		if err := saveJobs(ctx, databaseURL, jobs); err != nil {
			return err
		}
	}

	return writeJSON(enrichOut, jobs)
}

// saveJobs upserts jobs, creating the schema first when needed.
func saveJobs(ctx context.Context, databaseURL string, jobs []types.EnrichedJob) error {
	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		return err
	}
	for i := range jobs {
		if err := store.UpsertEnrichedJob(ctx, &jobs[i]); err != nil {
			return fmt.Errorf("failed to save job %q: %w", jobs[i].ID, err)
		}
	}
	logger.Info().Int("saved", len(jobs)).Msg("stored enriched jobs")
	return nil
}
