// Package types provides type definitions for structured data used throughout the job board.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillTargets represents a weighted list of canonical skills for a posting
type SkillTargets struct {
	Skills []Skill `json:"skills"`
}

// Skill represents a single canonical skill with weight and source
type Skill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Source string  `json:"source"` // required, preferred or keyword
}
