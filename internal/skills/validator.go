package skills

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxSkillWords      = 4
	maxSkillLength     = 50
	minSkillLength     = 2
	maxFillerRatio     = 0.30
	maxSentenceMarkers = 2
)

var (
	moneyOrNumber    = regexp.MustCompile(`(?i)\$|\b(usd|eur|gbp|cad|aud)\b|\b\d+k\b|\d{3,}`)
	relativeClause   = regexp.MustCompile(`(?i)\b(that|which|who|whom|whose)\b`)
	capitalGerund    = regexp.MustCompile(`^[A-Z][a-z]+ing$`)
	requirementTerms = regexp.MustCompile(`(?i)\b(degree|bachelor'?s?|master'?s|ph\.?d|diploma|years?\s+of\s+experience|\d+\+?\s*years?|clearance|internships?|citizens?|citizenship|sponsorship|authorized\s+to\s+work)\b|\d+\s*%\s*travel|travel\s+\d+\s*%|travel\s+required|willing(ness)?\s+to\s+travel`)
	thisRole         = regexp.MustCompile(`(?i)^this\s+(role|position|job|opportunity)\b`)
)

// IsValid reports whether s is shaped like a skill. It looks only at
// structure and word classes, never at the reference taxonomy.
func IsValid(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(s); !unicode.IsLetter(r) {
		return false
	}

	words := strings.Fields(s)
	if len(words) > maxSkillWords || len(s) > maxSkillLength || len(s) < minSkillLength {
		return false
	}
	if strings.ContainsAny(s[len(s)-1:], ":.!?") {
		return false
	}
	if moneyOrNumber.MatchString(s) {
		return false
	}

	lower := strings.ToLower(s)
	if blacklisted(lower) {
		return false
	}
	if relativeClause.MatchString(s) {
		return false
	}

	first := strings.ToLower(words[0])
	if capitalGerund.MatchString(words[0]) && !gerundSkills[first] {
		return false
	}
	if imperativeVerbs[first] {
		return false
	}
	if vagueAbstractStarts[first] && len(words) > 1 {
		return false
	}
	if requirementTerms.MatchString(s) || thisRole.MatchString(s) {
		return false
	}
	if genericStarts[first] {
		return false
	}

	fillers, markers := 0, 0
	for _, w := range words {
		lw := strings.ToLower(w)
		if validatorFillers[lw] {
			fillers++
		}
		if sentenceIndicators[lw] {
			markers++
		}
	}
	if len(words) > 2 && float64(fillers)/float64(len(words)) > maxFillerRatio {
		return false
	}
	if markers >= maxSentenceMarkers {
		return false
	}

	if len(words) >= 4 && allCapitalized(words) {
		return false
	}
	return true
}

// FilterValid keeps the entries of skills that pass IsValid, in order.
// It never returns nil.
func FilterValid(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if IsValid(s) {
			out = append(out, s)
		}
	}
	return out
}

func blacklisted(lower string) bool {
	for _, entry := range validatorBlacklist {
		if lower == entry {
			return true
		}
		if strings.Contains(entry, " ") && strings.Contains(lower, entry) {
			return true
		}
	}
	return false
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
