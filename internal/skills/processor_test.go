package skills

import (
	"strings"
	"testing"

	"github.com/jonathan/energy-jobboard/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureProcessor(cache Cache) *Processor {
	return NewProcessor(taxonomy.New([]string{
		"Communication", "Welding", "Rigging", "Presentation", "Problem Solving", "Pipeline Integrity",
	}), cache)
}

// mapCache is a Cache over lowercase keys.
type mapCache map[string]string

func (m mapCache) Lookup(key string) (string, bool) {
	name, ok := m[key]
	return name, ok
}

func (m mapCache) Canonical(name string) (string, bool) {
	for _, v := range m {
		if strings.EqualFold(v, name) {
			return v, true
		}
	}
	return "", false
}

// panicCache panics on the key "boom".
type panicCache struct{}

func (panicCache) Lookup(key string) (string, bool) {
	if key == "boom" {
		panic("cache corrupted")
	}
	return "", false
}

func (panicCache) Canonical(string) (string, bool) { return "", false }

func TestProcess_Basic(t *testing.T) {
	p := fixtureProcessor(nil)

	got := p.Process([]string{
		"Excellent communication skills",
		"Welding and Rigging",
		"Join our team",
		"welding",
		"5+ years experience",
		"Strong problem-solving abilities",
	})
	assert.Equal(t, []string{"Communication", "Welding", "Rigging", "Problem Solving"}, got)
}

func TestProcess_SplitsCompoundWithSharedSuffix(t *testing.T) {
	p := fixtureProcessor(nil)

	got := p.Process([]string{"Communication and Presentation Skills"})
	assert.Equal(t, []string{"Communication", "Presentation"}, got)
}

func TestProcess_EmptyInput(t *testing.T) {
	p := fixtureProcessor(nil)

	assert.Equal(t, []string{}, p.Process(nil))
	assert.Equal(t, []string{}, p.Process([]string{}))
	assert.Equal(t, []string{}, p.Process([]string{"", "   ", "!!"}))
}

func TestProcess_NoCaseInsensitiveDuplicates(t *testing.T) {
	p := fixtureProcessor(nil)

	got := p.Process([]string{"WELDING", "welding", "Welding", "strong welding skills"})
	assert.Equal(t, []string{"Welding"}, got)
}

func TestProcess_CacheWinsOverTaxonomy(t *testing.T) {
	p := fixtureProcessor(mapCache{
		"welding":                 "Welding and Cutting",
		"welding and cutting":     "Welding and Cutting",
		"pipeline integrity mgmt": "Integrity Management",
	})

	got := p.Process([]string{"Welding", "Pipeline Integrity Mgmt", "Rigging"})
	assert.Equal(t, []string{"Welding and Cutting", "Integrity Management", "Rigging"}, got)
}

func TestProcess_FixedPoint(t *testing.T) {
	raw := []string{
		"Excellent communication skills",
		"Judgment and Decision Making",
		"Hydraulics and Pneumatics",
		"TIG welding",
		"Strong problem-solving abilities",
		"Lockout/tagout",
		"Communications and Media",
		"Maintain equipment",
		"Critical thinking",
		"Project and Construction Management",
		"Written",
		"Telecommunications",
		"SQL",
		"Computer Programming",
	}

	tests := []struct {
		name string
		p    *Processor
	}{
		{"default taxonomy", NewProcessor(nil, nil)},
		{"with cache", NewProcessor(nil, mapCache{
			"tig welding":              "Gas Tungsten Arc Welding",
			"gas tungsten arc welding": "Gas Tungsten Arc Welding",
		})},
		{"cache name that is also a key", NewProcessor(nil, mapCache{
			"programming":          "Computers and Electronics",
			"computer programming": "Programming",
		})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := tt.p.Process(raw)
			require.NotEmpty(t, once)
			assert.Equal(t, once, tt.p.Process(once))
		})
	}
}

func TestProcess_DefaultTaxonomy(t *testing.T) {
	p := NewProcessor(nil, nil)

	got := p.Process([]string{
		"Judgment and Decision Making",
		"Excellent communication skills",
		"Hydraulics and Pneumatics",
		"Telecommunications",
		"SQL",
		"Key Responsibilities",
	})
	assert.Equal(t, []string{
		"Judgment and Decision Making", "Communication", "Hydraulics", "Pneumatics", "Telecommunications", "SQL",
	}, got)
}

func TestProcessWithReport(t *testing.T) {
	p := fixtureProcessor(nil)

	report := p.ProcessWithReport([]string{"Welding", "Maintain equipment", "Carpentry", "welding"})

	assert.Equal(t, 4, report.Input)
	assert.Equal(t, 4, report.Parts)
	assert.Equal(t, []string{"Welding"}, report.Kept)
	require.Len(t, report.Rejected, 3)
	assert.Equal(t, Rejection{Raw: "Maintain equipment", Part: "Maintain equipment", Reason: "action-verb"}, report.Rejected[0])
	assert.Equal(t, Rejection{Raw: "Carpentry", Part: "Carpentry", Reason: ReasonNoMatch}, report.Rejected[1])
	assert.Equal(t, ReasonDuplicate, report.Rejected[2].Reason)
}

func TestProcess_RecoversFromPanickingLookup(t *testing.T) {
	p := fixtureProcessor(panicCache{})

	report := p.ProcessWithReport([]string{"boom", "Welding"})
	assert.Equal(t, []string{"Welding"}, report.Kept)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "boom", report.Rejected[0].Raw)
	assert.True(t, strings.HasPrefix(report.Rejected[0].Reason, ReasonPanic))
}

func TestNewProcessor_DefaultsTaxonomy(t *testing.T) {
	p := NewProcessor(nil, nil)
	assert.Same(t, taxonomy.Default(), p.Taxonomy())
}

func TestProcess_CacheNameThatIsAlsoAKey(t *testing.T) {
	p := fixtureProcessor(mapCache{
		"programming":          "Computers and Electronics",
		"computer programming": "Programming",
	})

	once := p.Process([]string{"Computer Programming"})
	assert.Equal(t, []string{"Programming"}, once)
	assert.Equal(t, once, p.Process(once))
	assert.Equal(t, []string{"Computers and Electronics"}, p.Process([]string{"programming skills"}))
}
