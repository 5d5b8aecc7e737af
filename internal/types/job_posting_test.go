package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobPosting_AllRawSkills(t *testing.T) {
	posting := JobPosting{
		Skills:          []string{"Welding"},
		RequiredSkills:  []string{"Rigging", "Forklift Operation"},
		PreferredSkills: []string{"AutoCAD"},
		Keywords:        []string{"pipeline"},
	}

	assert.Equal(t,
		[]string{"Welding", "Rigging", "Forklift Operation", "AutoCAD", "pipeline"},
		posting.AllRawSkills())
	assert.Empty(t, JobPosting{}.AllRawSkills())
}

func TestJobPosting_OmitsEmptyFields(t *testing.T) {
	jsonBytes, err := json.Marshal(JobPosting{Title: "Derrickhand"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"Derrickhand"}`, string(jsonBytes))
}

func TestEnrichedJob_FlattensPosting(t *testing.T) {
	job := EnrichedJob{
		JobPosting:      JobPosting{ID: "abc", Title: "ROV Tech III"},
		CanonicalSkills: []string{"ROV Piloting"},
		Role: &RoleAssignment{
			RoleID:         "rov-pilot-technician",
			RoleName:       "ROV Pilot/Technician",
			Confidence:     "high",
			MatchedKeyword: "ROV Tech",
		},
		EnrichedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	jsonBytes, err := json.Marshal(job)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, "abc", decoded["id"])
	assert.Equal(t, "ROV Tech III", decoded["title"])
	assert.Equal(t, []any{"ROV Piloting"}, decoded["canonical_skills"])
	role, ok := decoded["role"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "rov-pilot-technician", role["role_id"])
	assert.Equal(t, "2025-01-02T03:04:05Z", decoded["enriched_at"])
}
