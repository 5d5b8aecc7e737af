// Package enrich attaches canonical skills, weighted skill targets and an
// energy role to batches of job postings.
package enrich

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/roles"
	"github.com/jonathan/energy-jobboard/internal/skills"
	"github.com/jonathan/energy-jobboard/internal/types"
)

// DefaultWorkers is used when Enricher.Workers is not positive.
const DefaultWorkers = 4

// Enricher processes postings in parallel. Processor and Matcher are
// stateless, so one Enricher can serve concurrent Run calls.
type Enricher struct {
	Processor *skills.Processor
	Matcher   *roles.Matcher
	Workers   int

	// Now stamps EnrichedAt. Defaults to time.Now.
	Now func() time.Time
	// OnProgress, when set, is called after each posting completes. It may
	// be called from several goroutines at once.
	OnProgress func(done, total int)
}

// Summary describes one Run.
type Summary struct {
	Postings    int         `json:"postings"`
	RawSkills   int         `json:"raw_skills"`
	SkillsKept  int         `json:"skills_kept"`
	WithTargets int         `json:"with_targets"`
	Roles       roles.Stats `json:"roles"`
	Duration    string      `json:"duration"`
}

// New returns an Enricher with the default taxonomy and role table. cache
// may be nil.
func New(cache skills.Cache, workers int) *Enricher {
	return &Enricher{
		Processor: skills.NewProcessor(nil, cache),
		Matcher:   roles.Default(),
		Workers:   workers,
	}
}

// Run enriches postings with up to Workers goroutines. Output order matches
// input order. Postings without an ID get a new UUID. When ctx is cancelled
// Run stops starting new postings and returns the context error.
func (e *Enricher) Run(ctx context.Context, postings []types.JobPosting) ([]types.EnrichedJob, Summary, error) {
	start := time.Now()
	out := make([]types.EnrichedJob, len(postings))

	workers := e.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var done atomic.Int64
	for i := range postings {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out[i] = e.Enrich(postings[i])
			if e.OnProgress != nil {
				e.OnProgress(int(done.Add(1)), len(postings))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Summary{}, fmt.Errorf("failed to enrich postings: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, Summary{}, fmt.Errorf("failed to enrich postings: %w", err)
	}

	summary := Summarize(postings, out)
	summary.Duration = time.Since(start).Round(time.Millisecond).String()

	logger.Info().
		Int("postings", summary.Postings).
		Int("raw_skills", summary.RawSkills).
		Int("skills_kept", summary.SkillsKept).
		Float64("role_match_rate", summary.Roles.MatchRate).
		Str("duration", summary.Duration).
		Msg("enrichment complete")

	return out, summary, nil
}

// Enrich processes a single posting.
func (e *Enricher) Enrich(posting types.JobPosting) types.EnrichedJob {
	processor := e.Processor
	if processor == nil {
		processor = skills.NewProcessor(nil, nil)
	}
	matcher := e.Matcher
	if matcher == nil {
		matcher = roles.Default()
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	if posting.ID == "" {
		posting.ID = uuid.NewString()
	}

	job := types.EnrichedJob{
		JobPosting:      posting,
		CanonicalSkills: processor.Process(posting.AllRawSkills()),
		EnrichedAt:      now().UTC(),
	}

	targets, err := skills.BuildSkillTargets(&posting, processor)
	if err != nil {
		logger.Debug().Str("posting_id", posting.ID).Err(err).Msg("no skill targets")
	} else {
		job.SkillTargets = targets
	}

	if m := matcher.Match(posting.Title, posting.Description); m != nil {
		job.Role = &types.RoleAssignment{
			RoleID:         m.RoleID,
			RoleName:       m.RoleName,
			Confidence:     string(m.Confidence),
			MatchedKeyword: m.MatchedKeyword,
		}
	}

	return job
}

// Summarize aggregates enriched postings. postings and enriched must be the
// same batch in the same order.
func Summarize(postings []types.JobPosting, enriched []types.EnrichedJob) Summary {
	s := Summary{Postings: len(enriched)}
	matched := make([]roles.MatchedJob, len(enriched))
	for i, job := range enriched {
		if i < len(postings) {
			s.RawSkills += len(postings[i].AllRawSkills())
		}
		s.SkillsKept += len(job.CanonicalSkills)
		if job.SkillTargets != nil {
			s.WithTargets++
		}
		matched[i] = roles.MatchedJob{
			Job:   roles.Job{ID: job.ID, Title: job.Title, Description: job.Description},
			Match: roleMatch(job.Role),
		}
	}
	s.Roles = roles.Summarize(matched)
	return s
}

func roleMatch(r *types.RoleAssignment) *roles.Match {
	if r == nil {
		return nil
	}
	return &roles.Match{
		RoleID:         r.RoleID,
		RoleName:       r.RoleName,
		Confidence:     roles.Confidence(r.Confidence),
		MatchedKeyword: r.MatchedKeyword,
	}
}
