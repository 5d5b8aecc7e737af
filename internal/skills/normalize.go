package skills

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// rule is one step of the normalization chain. apply returns the rewritten
// string, or false when the candidate is rejected.
type rule struct {
	name  string
	apply func(s string) (string, bool)
}

var (
	spaceRun         = regexp.MustCompile(`\s+`)
	yearsPattern     = regexp.MustCompile(`(?i)\d+\+?\s*(years?|yrs?|months?)`)
	companyPronoun   = regexp.MustCompile(`(?i)\b(our|we|us)\b`)
	adjectivePattern = wholeWords(adjectives)
	skillSuffix      = regexp.MustCompile(`(?i)\s+(skills?|abilit(?:y|ies))$`)
	understandingPre = regexp.MustCompile(`(?i)^understanding\b(\s+of\b)?\s*`)
	verbEnumeration  = regexp.MustCompile(`^[A-Z][a-z]+,\s*[A-Z][a-z]+`)
	passiveClause    = regexp.MustCompile(`(?i)\b(that\s+)?(has|have|had)\s+been\b`)
	abilityTo        = regexp.MustCompile(`(?i)^(the\s+)?ability\s+to\b`)
	withThe          = regexp.MustCompile(`(?i)^(with|for)\s+the\b`)
	leadingFiller    = regexp.MustCompile(`(?i)^((and|or|with|the|a|an|of)\s+)+`)
	trailingFiller   = regexp.MustCompile(`(?i)(\s+(and|or|with|the|a|an|of))+$`)
	credentialNouns  = regexp.MustCompile(`(?i)\b(degree|bachelor'?s?|master'?s|ph\.?d|diploma|ged|certifications?|certificates?|certified|licen[sc]es?|licensed|licensure)\b`)
	romanSuffix      = regexp.MustCompile(`(?i)\s+(i{1,3}|iv|v|vi{1,3}|ix|x)$`)
	brandTool        = regexp.MustCompile(`^([A-Za-z]*[a-z][A-Z][A-Za-z]*|\S*\d\S*)\s+(?i:systems?|software|tools?|platforms?)$`)
	letterDashCode   = regexp.MustCompile(`(?i)^[a-z]-`)
	infinitive       = regexp.MustCompile(`(?i)^to\s`)
	verbWith         = regexp.MustCompile(`(?i)^(interact|collaborate|work|partner|engage|communicate|liaise|coordinate|cooperate|deal|assist|help|comply|align|connect|consult|familiar|comfortable)s?\s+(with|across)\b`)
	frequencyAdverb  = regexp.MustCompile(`(?i)^(continuously|constantly|regularly|routinely)\b`)
	tokenSplit       = regexp.MustCompile(`[\s/-]+`)
)

// normalizationRules run in order; later rules assume earlier cleanup.
var normalizationRules = []rule{
	{"leading-letter", func(s string) (string, bool) {
		r, _ := utf8.DecodeRuneInString(s)
		return s, s != "" && unicode.IsLetter(r)
	}},
	{"comma", rejectIf(func(s string) bool { return strings.Contains(s, ",") })},
	{"years-of-experience", rejectIf(yearsPattern.MatchString)},
	{"parentheses", rejectIf(func(s string) bool { return strings.ContainsAny(s, "()") })},
	{"marketing-phrase", rejectIf(func(s string) bool { return containsAny(strings.ToLower(s), marketingPhrases) })},
	{"company-pronoun", rejectIf(companyPronoun.MatchString)},
	{"adjectives", func(s string) (string, bool) {
		return squeeze(adjectivePattern.ReplaceAllString(s, " ")), true
	}},
	{"word-forms", func(s string) (string, bool) { return applyWordForms(s), true }},
	{"skill-suffix", func(s string) (string, bool) {
		s = skillSuffix.ReplaceAllString(s, "")
		if understandingPre.MatchString(s) {
			s = strings.TrimSpace(understandingPre.ReplaceAllString(s, ""))
			return s, s != ""
		}
		return s, true
	}},
	{"incomplete-skill", func(s string) (string, bool) {
		if full, ok := incompleteSkills[strings.ToLower(s)]; ok {
			return full, true
		}
		return s, true
	}},
	{"verb-enumeration", rejectIf(verbEnumeration.MatchString)},
	{"action-verb", rejectIf(func(s string) bool { return actionVerbs[firstWord(s)] })},
	{"passive-clause", rejectIf(passiveClause.MatchString)},
	{"ability-to", rejectIf(abilityTo.MatchString)},
	{"with-the", rejectIf(withThe.MatchString)},
	{"filler-trim", func(s string) (string, bool) {
		s = leadingFiller.ReplaceAllString(s, "")
		s = trailingFiller.ReplaceAllString(s, "")
		if fillerWords[strings.ToLower(s)] {
			return "", true
		}
		return strings.TrimSpace(s), true
	}},
	{"too-short", rejectIf(func(s string) bool { return len(s) < 2 })},
	{"singularize", func(s string) (string, bool) { return singularizeLast(s), true }},
	{"too-generic", rejectIf(func(s string) bool { return tooGeneric[strings.ToLower(s)] })},
	{"meaningful-token", func(s string) (string, bool) {
		tokens := meaningfulTokens(s)
		switch len(tokens) {
		case 0:
			return s, false
		case 1:
			return s, len(tokens[0]) >= 4 && !vagueSingleWords[tokens[0]]
		}
		return s, true
	}},
	{"credential", rejectIf(credentialNouns.MatchString)},
	{"roman-suffix", rejectIf(romanSuffix.MatchString)},
	{"brand-tool", rejectIf(brandTool.MatchString)},
	{"requirement-artifact", rejectIf(func(s string) bool { return containsAny(strings.ToLower(s), requirementArtifacts) })},
	{"letter-dash-code", rejectIf(func(s string) bool {
		if !letterDashCode.MatchString(s) {
			return false
		}
		lower := strings.ToLower(s)
		for _, w := range letterDashWords {
			if strings.HasPrefix(lower, w) {
				return false
			}
		}
		return true
	})},
	{"dangling-punctuation", rejectIf(func(s string) bool {
		return strings.HasSuffix(s, ",") || (strings.HasSuffix(s, ")") && !strings.Contains(s, "("))
	})},
	{"vague-noun", rejectIf(func(s string) bool {
		tokens := meaningfulTokens(s)
		return len(tokens) == 1 && vagueNouns[tokens[0]]
	})},
	{"infinitive", rejectIf(infinitive.MatchString)},
	{"verb-with", rejectIf(verbWith.MatchString)},
	{"frequency-adverb", rejectIf(frequencyAdverb.MatchString)},
	{"quantifier-pair", rejectIf(func(s string) bool {
		words := strings.Fields(strings.ToLower(s))
		return len(words) == 2 && quantifiers[words[0]]
	})},
	{"adjective-thinking", rejectIf(func(s string) bool {
		words := strings.Fields(strings.ToLower(s))
		return len(words) == 2 && words[1] == "thinking" && !thinkingAllowed[words[0]]
	})},
	{"programs-values", rejectIf(func(s string) bool {
		words := strings.Fields(strings.ToLower(s))
		return len(words) == 2 && (words[1] == "programs" || words[1] == "values")
	})},
	{"title-case", func(s string) (string, bool) {
		return cases.Title(language.English, cases.NoLower).String(s), true
	}},
}

// Normalize cleans one raw skill fragment into a title-cased candidate for
// taxonomy lookup. It returns false when the fragment is not skill-shaped.
func Normalize(skill string) (string, bool) {
	out, rejectedBy := NormalizeWithRule(skill)
	return out, rejectedBy == ""
}

// NormalizeWithRule is Normalize, but it also names the rule that rejected
// the fragment. The name is empty when the fragment survives.
func NormalizeWithRule(skill string) (string, string) {
	s := squeeze(norm.NFKC.String(skill))
	for _, r := range normalizationRules {
		next, ok := r.apply(s)
		if !ok {
			return "", r.name
		}
		s = next
	}
	return s, ""
}

// RuleNames lists the normalization rules in the order they run.
func RuleNames() []string {
	names := make([]string, len(normalizationRules))
	for i, r := range normalizationRules {
		names[i] = r.name
	}
	return names
}

func rejectIf(pred func(string) bool) func(string) (string, bool) {
	return func(s string) (string, bool) {
		return s, !pred(s)
	}
}

// wholeWords compiles a case-insensitive alternation of words, longest first
// so that "well-rounded" wins over a shorter overlapping entry.
func wholeWords(words []string) *regexp.Regexp {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

func squeeze(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	words := strings.Fields(strings.ToLower(s))
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

func applyWordForms(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		lower := strings.ToLower(w)
		if keptForms[lower] {
			continue
		}
		form, ok := wordForms[lower]
		if !ok {
			continue
		}
		if lower == "analytical" && i+1 < len(words) && strings.EqualFold(words[i+1], "thinking") {
			continue
		}
		words[i] = form
	}
	return strings.Join(words, " ")
}

func singularizeLast(s string) string {
	idx := strings.LastIndex(s, " ")
	last := s[idx+1:]
	lower := strings.ToLower(last)
	if keepPlural[lower] {
		return s
	}
	switch {
	case strings.HasSuffix(lower, "ications"),
		strings.HasSuffix(lower, "ions") && !strings.HasSuffix(lower, "sions"):
		return s[:len(s)-1]
	}
	return s
}

// meaningfulTokens returns the lowercase words of at least three characters
// that are not filler.
func meaningfulTokens(s string) []string {
	var out []string
	for _, tok := range tokenSplit.Split(strings.ToLower(s), -1) {
		if len(tok) >= 3 && !fillerWords[tok] {
			out = append(out, tok)
		}
	}
	return out
}
