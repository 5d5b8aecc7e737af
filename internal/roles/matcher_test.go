package roles

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch_DefaultTable(t *testing.T) {
	tests := []struct {
		title   string
		wantID  string
		keyword string
	}{
		{"Field Professional - MWD, II", "mwd-lwd", "MWD"},
		{"ROV Tech III", "rov-pilot-technician", "ROV Tech"},
		{"ROV Supervisor", "rov-supervisor", "ROV Supervisor"},
		{"Senior ROV Pilot Technician", "rov-pilot-technician", "ROV Pilot"},
		{"Subsea Controls Engineer", "subsea-engineer", "Subsea Controls Engineer"},
		{"Derrickhand - Land Rig", "derrickhand", "Derrickhand"},
		{"Floorhand", "floorhand", "Floorhand"},
		{"Directional Driller", "directional-driller", "Directional Driller"},
		{"Driller", "driller", "Driller"},
		{"Journeyman Electrician", "electrician", "Electrician"},
		{"Instrumentation & Electrical Technician", "instrumentation-technician", "Instrumentation & Electrical Technician"},
		{"Wind Turbine Technician", "wind-technician", "Wind Turbine Technician"},
		{"Solar PV Installer", "solar-installer", "Solar PV Installer"},
		{"Pipeline Controller", "pipeline-operator", "Pipeline Controller"},
		{"Lease Operator", "lease-operator", "Lease Operator"},
		{"Welder Helper", "welder", "Welder"},
		{"CWI Welding Inspector", "welding-inspector", "Welding Inspector"},
		{"Class A CDL Driver", "cdl-driver", "CDL"},
		{"HSE Coordinator", "hse", "HSE"},
		{"Landman", "landman", "Landman"},
		{"Production Engineer", "production-engineer", "Production Engineer"},
		{"Maintenance Technician", "maintenance-technician", "Maintenance Technician"},
		{"Data Analyst - Upstream", "data-analyst", "Data Analyst"},
		{"Carbon Capture Engineer", "ccus", "Carbon Capture"},
		{"Nuclear Reactor Operator", "nuclear", "Nuclear"},
		{"Power Plant Operator", "power-plant-operator", "Power Plant"},
		{"Operations Manager", "operations-manager", "Operations Manager"},
		{"rov tech", "rov-pilot-technician", "rov tech"},
	}

	m := Default()
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := m.Match(tt.title, "")
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.RoleID)
			assert.Equal(t, tt.keyword, got.MatchedKeyword)
		})
	}
}

func TestMatch_NoMatch(t *testing.T) {
	m := Default()

	for _, title := range []string{"Administrative Specialist", "Receptionist", "", "Accountant"} {
		assert.Nil(t, m.Match(title, ""), "title %q", title)
	}
}

func TestMatch_SearchesDescription(t *testing.T) {
	got := Default().Match("Technician", "Maintains MWD tools on land rigs")
	require.NotNil(t, got)
	assert.Equal(t, "mwd-lwd", got.RoleID)
	assert.Equal(t, High, got.Confidence)
}

func TestMatch_SpecificBeforeGeneral(t *testing.T) {
	m := Default()

	got := m.Match("ROV Supervisor / Pilot Technician", "")
	require.NotNil(t, got)
	assert.Equal(t, "rov-supervisor", got.RoleID)

	got = m.Match("Subsea Field Engineer", "")
	require.NotNil(t, got)
	assert.Equal(t, "subsea-engineer", got.RoleID)
}

func TestMatch_Deterministic(t *testing.T) {
	m := Default()
	first := m.Match("Frac Operator", "Class A CDL required")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Match("Frac Operator", "Class A CDL required"))
	}
	require.NotNil(t, first)
	assert.Equal(t, "frac-operator", first.RoleID)
}

func TestMatch_FirstPatternThenFirstKeyword(t *testing.T) {
	m := NewMatcher([]Pattern{
		{
			RoleID:     "first",
			RoleName:   "First",
			Confidence: Low,
			Keywords:   []*regexp.Regexp{regexp.MustCompile(`(?i)\bgamma\b`), regexp.MustCompile(`(?i)\balpha\b`)},
		},
		{
			RoleID:     "second",
			RoleName:   "Second",
			Confidence: High,
			Keywords:   []*regexp.Regexp{regexp.MustCompile(`(?i)\balpha\s+beta\b`)},
		},
	})

	got := m.Match("Alpha Beta Gamma", "")
	require.NotNil(t, got)
	assert.Equal(t, "first", got.RoleID)
	assert.Equal(t, "Gamma", got.MatchedKeyword)

	got = m.Match("Alpha Beta", "")
	require.NotNil(t, got)
	assert.Equal(t, "first", got.RoleID)
	assert.Equal(t, "Alpha", got.MatchedKeyword)
}

func TestDefaultPatterns_Table(t *testing.T) {
	patterns := DefaultPatterns()
	require.GreaterOrEqual(t, len(patterns), 70)

	seen := make(map[string]bool)
	for _, p := range patterns {
		assert.False(t, seen[p.RoleID], "duplicate role id %q", p.RoleID)
		seen[p.RoleID] = true
		assert.NotEmpty(t, p.RoleName)
		assert.NotEmpty(t, p.Keywords, "role %q has no keywords", p.RoleID)
		assert.Contains(t, []Confidence{High, Medium, Low}, p.Confidence)
	}

	patterns[0].RoleID = "changed"
	assert.Equal(t, "rov-supervisor", DefaultPatterns()[0].RoleID)
}

func TestRoles(t *testing.T) {
	roles := Default().Roles()
	require.Len(t, roles, len(DefaultPatterns()))
	assert.Equal(t, "rov-supervisor", roles[0].ID)
	assert.Equal(t, "ROV Supervisor", roles[0].Name)
}

func TestBatch(t *testing.T) {
	jobs := []Job{
		{ID: "1", Title: "ROV Tech III"},
		{ID: "2", Title: "Administrative Specialist"},
		{ID: "3", Title: "Welder"},
	}

	got := Default().Batch(jobs)
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID)
	require.NotNil(t, got[0].Match)
	assert.Equal(t, "rov-pilot-technician", got[0].Match.RoleID)
	assert.Nil(t, got[1].Match)
	assert.Equal(t, "welder", got[2].Match.RoleID)

	assert.Empty(t, Default().Batch(nil))
}

func TestStatistics(t *testing.T) {
	jobs := []Job{
		{Title: "ROV Tech III"},
		{Title: "Administrative Specialist"},
		{Title: "Welder"},
		{Title: "Field Professional - MWD, II"},
	}

	stats := Default().Statistics(jobs)
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 3, stats.Matched)
	assert.Equal(t, 1, stats.Unmatched)
	assert.Equal(t, 75.0, stats.MatchRate)
	assert.Equal(t, map[string]int{"rov-pilot-technician": 1, "welder": 1, "mwd-lwd": 1}, stats.ByRole)
	assert.Equal(t, map[string]int{"high": 3}, stats.ByConfidence)
}

func TestStatistics_Rounding(t *testing.T) {
	stats := Default().Statistics([]Job{{Title: "Welder"}, {Title: "Receptionist"}, {Title: "Accountant"}})
	assert.Equal(t, 33.3, stats.MatchRate)
}

func TestStatistics_Empty(t *testing.T) {
	stats := Default().Statistics(nil)
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.MatchRate)
	assert.NotNil(t, stats.ByRole)
	assert.NotNil(t, stats.ByConfidence)
}
