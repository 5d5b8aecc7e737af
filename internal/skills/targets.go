package skills

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/energy-jobboard/internal/types"
)

const (
	// Weight constants for skill sources (requirement level)
	weightRequired  = 1.0
	weightPreferred = 0.5
	weightKeyword   = 0.3

	// Source constants
	SourceRequired  = "required"
	SourcePreferred = "preferred"
	SourceKeyword   = "keyword"
)

// BuildSkillTargets builds a weighted list of canonical skills from a posting.
// Untyped Skills count as required. Each list is canonicalized through p,
// duplicates keep their highest weight, and the result is sorted by weight
// (descending) then first appearance.
func BuildSkillTargets(posting *types.JobPosting, p *Processor) (*types.SkillTargets, error) {
	if posting == nil {
		return nil, fmt.Errorf("no job posting given")
	}
	if p == nil {
		p = NewProcessor(nil, nil)
	}

	// Map: lowercase canonical name -> skill info (weight, source)
	skillMap := make(map[string]*skillInfo)
	var order []string

	groups := []struct {
		raw    []string
		weight float64
		source string
	}{
		{append(append([]string{}, posting.Skills...), posting.RequiredSkills...), weightRequired, SourceRequired},
		{posting.PreferredSkills, weightPreferred, SourcePreferred},
		{posting.Keywords, weightKeyword, SourceKeyword},
	}
	for _, g := range groups {
		for _, name := range p.Process(g.raw) {
			key := strings.ToLower(name)
			if _, exists := skillMap[key]; !exists {
				order = append(order, key)
			}
			addOrUpdateSkill(skillMap, key, name, g.weight, g.source)
		}
	}

	if len(order) == 0 {
		return nil, fmt.Errorf("no recognized skills found in job posting")
	}

	skills := make([]types.Skill, 0, len(order))
	for _, key := range order {
		info := skillMap[key]
		skills = append(skills, types.Skill{
			Name:   info.name,
			Weight: info.weight,
			Source: info.source,
		})
	}

	// Sort by weight (descending); ties keep first appearance
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Weight > skills[j].Weight
	})

	return &types.SkillTargets{Skills: skills}, nil
}

// skillInfo holds temporary information about a skill during building
type skillInfo struct {
	name   string
	weight float64
	source string
}

// addOrUpdateSkill adds a skill to the map or updates it if it exists,
// taking the maximum weight when duplicates are found.
func addOrUpdateSkill(skillMap map[string]*skillInfo, key, name string, weight float64, source string) {
	existing, exists := skillMap[key]
	if !exists {
		skillMap[key] = &skillInfo{name: name, weight: weight, source: source}
		return
	}
	if weight > existing.weight {
		existing.weight = weight
		existing.source = source
	}
	// If weights are equal, prioritize source by: required > preferred > keyword
	if weight == existing.weight && getSourcePriority(source) > getSourcePriority(existing.source) {
		existing.source = source
	}
}

// getSourcePriority returns a numeric priority for source types.
// Higher numbers indicate higher priority.
func getSourcePriority(source string) int {
	switch source {
	case SourceRequired:
		return 3
	case SourcePreferred:
		return 2
	case SourceKeyword:
		return 1
	default:
		return 0
	}
}
