package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/prompts"
	"github.com/jonathan/energy-jobboard/internal/types"
)

// maxInputChars bounds the posting text sent in one prompt.
const maxInputChars = 30000

// PostingExtraction is the structured form of a posting returned by ExtractPosting.
type PostingExtraction struct {
	Title           string   `json:"title"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
}

// ExtractSkills asks the model for the raw skill strings in text. The
// strings are returned as written; canonicalization happens downstream.
func ExtractSkills(ctx context.Context, client Client, text string) ([]string, error) {
	if client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	prompt, err := buildPrompt("extract-skills", text)
	if err != nil {
		return nil, err
	}

	resp, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to extract skills: %w", err)
	}

	var raw []string
	if err := json.Unmarshal([]byte(CleanJSONBlock(resp)), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills JSON: %w (content: %s)", err, resp)
	}
	return compact(raw), nil
}

// ExtractPosting asks the model for the title, company and skill lists of a
// posting.
func ExtractPosting(ctx context.Context, client Client, text string) (*PostingExtraction, error) {
	if client == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}
	prompt, err := buildPrompt("extract-posting", text)
	if err != nil {
		return nil, err
	}

	resp, err := client.GenerateJSON(ctx, prompt, TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to extract posting: %w", err)
	}

	var out PostingExtraction
	if err := json.Unmarshal([]byte(CleanJSONBlock(resp)), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal posting JSON: %w (content: %s)", err, resp)
	}
	out.RequiredSkills = compact(out.RequiredSkills)
	out.PreferredSkills = compact(out.PreferredSkills)
	out.Keywords = compact(out.Keywords)
	return &out, nil
}

// Apply copies extracted fields into posting, keeping any value it already has.
func (e *PostingExtraction) Apply(posting *types.JobPosting) {
	if posting.Title == "" {
		posting.Title = e.Title
	}
	if posting.Company == "" {
		posting.Company = e.Company
	}
	if posting.Location == "" {
		posting.Location = e.Location
	}
	posting.RequiredSkills = append(posting.RequiredSkills, e.RequiredSkills...)
	posting.PreferredSkills = append(posting.PreferredSkills, e.PreferredSkills...)
	posting.Keywords = append(posting.Keywords, e.Keywords...)
}

// FillMissingSkills runs ExtractSkills on the description of every posting
// that lists no raw skills and stores the result in Skills. It returns how
// many postings gained skills. A failure on one posting is logged and
// skipped; only a done ctx stops the loop.
func FillMissingSkills(ctx context.Context, client Client, postings []types.JobPosting) (int, error) {
	filled := 0
	for i := range postings {
		p := &postings[i]
		if len(p.AllRawSkills()) > 0 || strings.TrimSpace(p.Description) == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return filled, err
		}

		extracted, err := ExtractSkills(ctx, client, p.Description)
		if err != nil {
			if ctx.Err() != nil {
				return filled, ctx.Err()
			}
			logger.Warn().Err(err).Str("title", p.Title).Msg("skill extraction failed, posting left without skills")
			continue
		}
		if len(extracted) > 0 {
			p.Skills = extracted
			filled++
		}
	}
	return filled, nil
}

func buildPrompt(key, text string) (string, error) {
	template, err := prompts.Get(prompts.SkillsFile, key)
	if err != nil {
		return "", fmt.Errorf("failed to load prompt: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("no text to extract from")
	}
	if len(text) > maxInputChars {
		text = text[:maxInputChars]
	}
	return prompts.Format(template, map[string]string{"Text": text}), nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
