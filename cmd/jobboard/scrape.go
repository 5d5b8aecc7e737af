package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/energy-jobboard/internal/fetch"
	"github.com/jonathan/energy-jobboard/internal/llm"
	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/types"
)

var (
	scrapeURL       string
	scrapeOut       string
	scrapeBrowser   bool
	scrapeLLM       bool
	scrapeEnrich    bool
	scrapeLLMSkills bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a job posting page",
	Long: "Fetches a posting URL and extracts its title, description and skill bullets. " +
		"--browser re-renders JavaScript-heavy pages with headless Chrome, --llm fills in structured " +
		"fields with Gemini (GEMINI_API_KEY), --llm-skills only asks Gemini for skills when the page " +
		"lists none, and --enrich runs the enrichment pipeline on the result.",
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().StringVarP(&scrapeURL, "url", "u", "", "Job posting URL")
	scrapeCmd.Flags().StringVarP(&scrapeOut, "out", "o", "", "Output JSON file (default stdout)")
	scrapeCmd.Flags().BoolVar(&scrapeBrowser, "browser", false, "Render with headless Chrome when the HTML is too thin")
	scrapeCmd.Flags().BoolVar(&scrapeLLM, "llm", false, "Extract structured fields with Gemini")
	scrapeCmd.Flags().BoolVar(&scrapeEnrich, "enrich", false, "Enrich the scraped posting")
	scrapeCmd.Flags().BoolVar(&scrapeLLMSkills, "llm-skills", false, "Extract skills with Gemini when the page lists none")

	if err := scrapeCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark flag as required: %v", err))
	}

	rootCmd.AddCommand(scrapeCmd)
}

func runScrape(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	timeout := settings.Timeout()
	opts := fetch.DefaultOptions()
	opts.Timeout = timeout

	posting, err := fetch.Scrape(ctx, scrapeURL, fetch.ScrapeOptions{
		Fetch:      opts,
		UseBrowser: scrapeBrowser || settings.UseBrowser,
		Timeout:    timeout,
	})
	if err != nil {
		return fmt.Errorf("failed to scrape %s: %w", scrapeURL, err)
	}
	if scrapeLLM {
		if err := applyLLMExtraction(ctx, posting); err != nil {
			return err
		}
	} else if scrapeLLMSkills {
		postings := []types.JobPosting{*posting}
		if _, err := fillMissingSkills(ctx, postings); err != nil {
			return err
		}
		*posting = postings[0]
	}
	logger.Info().
		Str("url", scrapeURL).
		Str("title", posting.Title).
		Int("raw_skills", len(posting.AllRawSkills())).
		Msg("scraped posting")

	if !scrapeEnrich {
		return writeJSON(scrapeOut, posting)
	}

	e, err := newEnricher()
	if err != nil {
		return err
	}
	enriched := e.Enrich(*posting)
	return writeJSON(scrapeOut, enriched)
}

// newLLMClient creates a Gemini client from the configured API key.
func newLLMClient(ctx context.Context) (llm.Client, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("LLM extraction requires GEMINI_API_KEY or api_key in the config file")
	}
	client, err := llm.NewClient(ctx, llm.DefaultConfig(), settings.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// fillMissingSkills asks Gemini for the skills of postings that list none.
func fillMissingSkills(ctx context.Context, postings []types.JobPosting) (int, error) {
	client, err := newLLMClient(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = client.Close() }()

	filled, err := llm.FillMissingSkills(ctx, client, postings)
	if err != nil {
		return filled, fmt.Errorf("skill extraction stopped: %w", err)
	}
	logger.Info().Int("filled", filled).Msg("extracted missing skills")
	return filled, nil
}

// applyLLMExtraction merges Gemini's structured reading of the posting text.
func applyLLMExtraction(ctx context.Context, posting *types.JobPosting) error {
	client, err := newLLMClient(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	extraction, err := llm.ExtractPosting(ctx, client, posting.Description)
	if err != nil {
		return err
	}
	extraction.Apply(posting)
	return nil
}
