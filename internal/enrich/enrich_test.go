package enrich

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/energy-jobboard/internal/skillcache"
	"github.com/jonathan/energy-jobboard/internal/types"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestEnricher(workers int) *Enricher {
	e := New(nil, workers)
	e.Now = func() time.Time { return fixedNow }
	return e
}

func TestEnrich(t *testing.T) {
	posting := types.JobPosting{
		ID:              "job-1",
		Title:           "Welder Helper",
		RequiredSkills:  []string{"Welding", "Hydraulics"},
		PreferredSkills: []string{"SCADA"},
		Keywords:        []string{"welding"},
	}

	got := newTestEnricher(1).Enrich(posting)

	assert.Equal(t, "job-1", got.ID)
	assert.Equal(t, []string{"Welding", "Hydraulics", "SCADA"}, got.CanonicalSkills)
	assert.Equal(t, fixedNow, got.EnrichedAt)

	require.NotNil(t, got.SkillTargets)
	assert.Equal(t, []types.Skill{
		{Name: "Welding", Weight: 1.0, Source: "required"},
		{Name: "Hydraulics", Weight: 1.0, Source: "required"},
		{Name: "SCADA", Weight: 0.5, Source: "preferred"},
	}, got.SkillTargets.Skills)

	require.NotNil(t, got.Role)
	assert.Equal(t, "welder", got.Role.RoleID)
	assert.Equal(t, "high", got.Role.Confidence)
	assert.Equal(t, "Welder", got.Role.MatchedKeyword)
}

func TestEnrich_NoSkillsNoRole(t *testing.T) {
	got := newTestEnricher(1).Enrich(types.JobPosting{Title: "Receptionist"})

	_, err := uuid.Parse(got.ID)
	assert.NoError(t, err, "missing IDs are filled with a UUID")
	assert.Equal(t, []string{}, got.CanonicalSkills)
	assert.Nil(t, got.SkillTargets)
	assert.Nil(t, got.Role)
}

func TestEnrich_ZeroValueEnricher(t *testing.T) {
	var e Enricher
	got := e.Enrich(types.JobPosting{Title: "ROV Tech III", Skills: []string{"Welding"}})
	assert.Equal(t, []string{"Welding"}, got.CanonicalSkills)
	require.NotNil(t, got.Role)
	assert.Equal(t, "rov-pilot-technician", got.Role.RoleID)
}

func TestEnrich_UsesCache(t *testing.T) {
	var entry skillcache.Entry
	entry.ONet.Name = "Welding"
	e := New(skillcache.FromEntries(map[string]skillcache.Entry{"stick welding": entry}), 1)
	got := e.Enrich(types.JobPosting{Title: "Welder", Skills: []string{"stick welding"}})
	assert.Equal(t, []string{"Welding"}, got.CanonicalSkills)
}

func TestRun_PreservesOrder(t *testing.T) {
	titles := []string{"Welder", "Receptionist", "Driller", "Landman", "Electrician"}
	var postings []types.JobPosting
	for i := 0; i < 50; i++ {
		postings = append(postings, types.JobPosting{
			ID:     fmt.Sprintf("job-%d", i),
			Title:  titles[i%len(titles)],
			Skills: []string{"Welding"},
		})
	}

	var mu sync.Mutex
	var calls []int
	e := newTestEnricher(3)
	e.OnProgress = func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 50, total)
		calls = append(calls, done)
	}

	out, summary, err := e.Run(context.Background(), postings)
	require.NoError(t, err)
	require.Len(t, out, 50)
	for i := range postings {
		assert.Equal(t, postings[i].ID, out[i].ID)
		assert.Equal(t, postings[i].Title, out[i].Title)
	}
	assert.Len(t, calls, 50)
	assert.ElementsMatch(t, seq(1, 50), calls)

	assert.Equal(t, 50, summary.Postings)
	assert.Equal(t, 50, summary.RawSkills)
	assert.Equal(t, 50, summary.SkillsKept)
	assert.Equal(t, 50, summary.WithTargets)
	assert.Equal(t, 40, summary.Roles.Matched)
	assert.Equal(t, 10, summary.Roles.Unmatched)
	assert.Equal(t, 80.0, summary.Roles.MatchRate)
	assert.Equal(t, 10, summary.Roles.ByRole["welder"])
	assert.NotEmpty(t, summary.Duration)
}

func TestRun_Empty(t *testing.T) {
	out, summary, err := newTestEnricher(0).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, summary.Postings)
	assert.Equal(t, 0.0, summary.Roles.MatchRate)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, _, err := newTestEnricher(2).Run(ctx, []types.JobPosting{{Title: "Welder"}, {Title: "Driller"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)
}

func TestRun_Concurrent(t *testing.T) {
	e := newTestEnricher(4)
	postings := []types.JobPosting{{Title: "Welder", Skills: []string{"Hydraulics and Pneumatics"}}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, _, err := e.Run(context.Background(), postings)
			assert.NoError(t, err)
			assert.Equal(t, []string{"Hydraulics", "Pneumatics"}, out[0].CanonicalSkills)
		}()
	}
	wg.Wait()
}

func TestSummarize(t *testing.T) {
	postings := []types.JobPosting{
		{Title: "Welder", Skills: []string{"Welding", "nonsense words here"}},
		{Title: "Receptionist"},
	}
	enriched := []types.EnrichedJob{
		{JobPosting: postings[0], CanonicalSkills: []string{"Welding"}, SkillTargets: &types.SkillTargets{}, Role: &types.RoleAssignment{RoleID: "welder", Confidence: "high"}},
		{JobPosting: postings[1], CanonicalSkills: []string{}},
	}

	s := Summarize(postings, enriched)
	assert.Equal(t, 2, s.Postings)
	assert.Equal(t, 2, s.RawSkills)
	assert.Equal(t, 1, s.SkillsKept)
	assert.Equal(t, 1, s.WithTargets)
	assert.Equal(t, 50.0, s.Roles.MatchRate)
	assert.Equal(t, map[string]int{"high": 1}, s.Roles.ByConfidence)
}

func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
