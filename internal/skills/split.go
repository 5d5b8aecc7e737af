package skills

import (
	"regexp"
	"strings"
)

var (
	connective = regexp.MustCompile(`(?i)\s+(?:and|&|or)\s+`)

	// sharedSuffix is looked for on the last part of a compound only.
	sharedSuffix = regexp.MustCompile(`(?i)\s+(skills|experience|knowledge|ability|abilities|engineering|management|analysis)$`)

	// hasSuffix reports whether an earlier part already carries a suffix noun.
	hasSuffix = regexp.MustCompile(`(?i)\b(skills?|experience|knowledge|abilit(?:y|ies)|engineering|management|analysis)$`)
)

// SplitCompound splits a raw skill on the connectives "and", "&" and "or".
// A suffix noun on the last part ("Skills", "Management", ...) is carried
// onto every earlier part that lacks one, so
// "Communication and Presentation Skills" yields
// ["Communication Skills", "Presentation Skills"].
// Input without a connective comes back as a single-element slice.
func SplitCompound(skill string) []string {
	if !connective.MatchString(skill) {
		return []string{skill}
	}

	var parts []string
	for _, part := range connective.Split(skill, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return []string{}
	}

	last := parts[len(parts)-1]
	m := sharedSuffix.FindStringSubmatch(last)
	if m == nil {
		return parts
	}
	suffix := m[1]
	for i := 0; i < len(parts)-1; i++ {
		if !hasSuffix.MatchString(parts[i]) {
			parts[i] = parts[i] + " " + suffix
		}
	}
	return parts
}
