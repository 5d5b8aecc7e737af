//go:build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/energy-jobboard/internal/types"
)

func getTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	db, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := db.Migrate(ctx); err != nil {
		db.Close()
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Clean up test data before each test
	_, _ = db.pool.Exec(ctx, "DELETE FROM enriched_jobs WHERE source = 'integration-test'")

	return db
}

func testJob(title string, role *types.RoleAssignment, skills ...string) *types.EnrichedJob {
	return &types.EnrichedJob{
		JobPosting: types.JobPosting{
			ID:             uuid.New().String(),
			URL:            "https://test.example.com/jobs/" + uuid.New().String(),
			Title:          title,
			Company:        "Test Drilling Co",
			Location:       "Midland, TX",
			RequiredSkills: skills,
			Source:         "integration-test",
			PostedAt:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		CanonicalSkills: skills,
		Role:            role,
		EnrichedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestIntegration_EnrichedJob_CRUD(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	job := testJob("Derrickhand", &types.RoleAssignment{
		RoleID: "derrickhand", RoleName: "Derrickhand", Confidence: "high", MatchedKeyword: "Derrickhand",
	}, "Rigging", "Well Control")
	job.SkillTargets = &types.SkillTargets{Skills: []types.Skill{{Name: "Rigging", Weight: 1, Source: "required"}}}

	t.Run("upsert and get", func(t *testing.T) {
		if err := db.UpsertEnrichedJob(ctx, job); err != nil {
			t.Fatalf("UpsertEnrichedJob failed: %v", err)
		}

		got, err := db.GetEnrichedJob(ctx, job.ID)
		if err != nil {
			t.Fatalf("GetEnrichedJob failed: %v", err)
		}
		if got == nil {
			t.Fatal("expected job, got nil")
		}
		if got.Title != "Derrickhand" {
			t.Errorf("Title = %q, want Derrickhand", got.Title)
		}
		if got.Role == nil || got.Role.RoleID != "derrickhand" {
			t.Errorf("Role = %+v, want derrickhand", got.Role)
		}
		if len(got.CanonicalSkills) != 2 || got.CanonicalSkills[0] != "Rigging" {
			t.Errorf("CanonicalSkills = %v", got.CanonicalSkills)
		}
		if got.SkillTargets == nil || len(got.SkillTargets.Skills) != 1 {
			t.Errorf("SkillTargets = %+v", got.SkillTargets)
		}
		if !got.PostedAt.Equal(job.PostedAt) {
			t.Errorf("PostedAt = %v, want %v", got.PostedAt, job.PostedAt)
		}
	})

	t.Run("upsert replaces", func(t *testing.T) {
		job.Title = "Derrickhand - Land Rig"
		job.Role = nil
		if err := db.UpsertEnrichedJob(ctx, job); err != nil {
			t.Fatalf("UpsertEnrichedJob failed: %v", err)
		}

		got, err := db.GetEnrichedJob(ctx, job.ID)
		if err != nil {
			t.Fatalf("GetEnrichedJob failed: %v", err)
		}
		if got.Title != "Derrickhand - Land Rig" {
			t.Errorf("Title = %q", got.Title)
		}
		if got.Role != nil {
			t.Errorf("Role = %+v, want nil", got.Role)
		}
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := db.GetEnrichedJob(ctx, uuid.New().String())
		if err != nil {
			t.Fatalf("GetEnrichedJob failed: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := db.DeleteEnrichedJob(ctx, job.ID)
		if err != nil {
			t.Fatalf("DeleteEnrichedJob failed: %v", err)
		}
		if !deleted {
			t.Error("expected a row to be deleted")
		}
	})
}

func TestIntegration_ListAndCount(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	welder := &types.RoleAssignment{RoleID: "welder", RoleName: "Welder", Confidence: "high", MatchedKeyword: "Welder"}
	jobs := []*types.EnrichedJob{
		testJob("Welder", welder, "TIG Welding"),
		testJob("Pipe Welder", welder, "TIG Welding", "Rigging"),
		testJob("Receptionist", nil),
	}
	for _, j := range jobs {
		if err := db.UpsertEnrichedJob(ctx, j); err != nil {
			t.Fatalf("UpsertEnrichedJob failed: %v", err)
		}
	}

	t.Run("filter by role", func(t *testing.T) {
		got, total, err := db.ListEnrichedJobs(ctx, ListFilters{RoleID: "welder"})
		if err != nil {
			t.Fatalf("ListEnrichedJobs failed: %v", err)
		}
		if total < 2 || len(got) < 2 {
			t.Errorf("got %d jobs (total %d), want at least 2", len(got), total)
		}
	})

	t.Run("filter by skill", func(t *testing.T) {
		got, _, err := db.ListEnrichedJobs(ctx, ListFilters{Skill: "Rigging", RoleID: "welder"})
		if err != nil {
			t.Fatalf("ListEnrichedJobs failed: %v", err)
		}
		for _, j := range got {
			if j.Source == "integration-test" && j.Title != "Pipe Welder" {
				t.Errorf("unexpected job %q", j.Title)
			}
		}
	})

	t.Run("count by role", func(t *testing.T) {
		counts, err := db.CountByRole(ctx)
		if err != nil {
			t.Fatalf("CountByRole failed: %v", err)
		}
		if counts["welder"] < 2 {
			t.Errorf("welder count = %d, want at least 2", counts["welder"])
		}
		if counts[UnmatchedRole] < 1 {
			t.Errorf("unmatched count = %d, want at least 1", counts[UnmatchedRole])
		}
	})
}
