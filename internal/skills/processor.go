package skills

import (
	"fmt"
	"strings"

	"github.com/jonathan/energy-jobboard/internal/taxonomy"
)

// Cache is a pre-built map from normalized lowercase skills to canonical
// names. Canonical reports whether name is one of the names the cache
// produces, case-insensitively, and returns its cached spelling.
type Cache interface {
	Lookup(key string) (string, bool)
	Canonical(name string) (string, bool)
}

// Rejection reasons reported by ProcessWithReport besides normalization rule names.
const (
	ReasonNoMatch   = "no-match"
	ReasonDuplicate = "duplicate"
	ReasonPanic     = "panic"
)

// Processor turns raw skill strings into deduplicated canonical terms.
// It holds no mutable state and is safe for concurrent use.
type Processor struct {
	taxonomy *taxonomy.Taxonomy
	cache    Cache
}

// NewProcessor returns a Processor matching against tx, consulting cache
// first when it is non-nil. A nil tx selects taxonomy.Default().
func NewProcessor(tx *taxonomy.Taxonomy, cache Cache) *Processor {
	if tx == nil {
		tx = taxonomy.Default()
	}
	return &Processor{taxonomy: tx, cache: cache}
}

// Taxonomy returns the reference taxonomy the processor matches against.
func (p *Processor) Taxonomy() *taxonomy.Taxonomy {
	return p.taxonomy
}

// Rejection records one fragment that did not produce a kept term.
type Rejection struct {
	Raw    string `json:"raw"`
	Part   string `json:"part,omitempty"`
	Reason string `json:"reason"`
}

// Report is the outcome of ProcessWithReport.
type Report struct {
	Input    int         `json:"input"`
	Parts    int         `json:"parts"`
	Kept     []string    `json:"kept"`
	Rejected []Rejection `json:"rejected"`
}

// Process canonicalizes raw skills, dropping anything that neither the cache
// nor the taxonomy recognizes. The result holds no case-insensitive
// duplicates, keeps first-seen order and is never nil.
func (p *Processor) Process(raw []string) []string {
	return p.ProcessWithReport(raw).Kept
}

// ProcessWithReport is Process with a per-fragment account of what was dropped.
func (p *Processor) ProcessWithReport(raw []string) Report {
	report := Report{Input: len(raw), Kept: []string{}, Rejected: []Rejection{}}
	seen := make(map[string]bool)

	keep := func(rawSkill, part, name string) {
		key := strings.ToLower(name)
		if seen[key] {
			report.Rejected = append(report.Rejected, Rejection{Raw: rawSkill, Part: part, Reason: ReasonDuplicate})
			return
		}
		seen[key] = true
		report.Kept = append(report.Kept, name)
	}

	for _, rawSkill := range raw {
		p.processOne(rawSkill, &report, keep)
	}
	return report
}

func (p *Processor) processOne(rawSkill string, report *Report, keep func(raw, part, name string)) {
	defer func() {
		if r := recover(); r != nil {
			report.Rejected = append(report.Rejected, Rejection{
				Raw:    rawSkill,
				Reason: fmt.Sprintf("%s: %v", ReasonPanic, r),
			})
		}
	}()

	// Already-canonical input resolves directly so that processed output
	// is a fixed point.
	if name, ok := p.canonicalOf(rawSkill); ok {
		report.Parts++
		keep(rawSkill, "", name)
		return
	}

	for _, part := range SplitCompound(rawSkill) {
		report.Parts++
		normalized, rejectedBy := NormalizeWithRule(part)
		if rejectedBy != "" {
			report.Rejected = append(report.Rejected, Rejection{Raw: rawSkill, Part: part, Reason: rejectedBy})
			continue
		}
		name, ok := p.resolve(normalized)
		if !ok {
			report.Rejected = append(report.Rejected, Rejection{Raw: rawSkill, Part: normalized, Reason: ReasonNoMatch})
			continue
		}
		keep(rawSkill, part, name)
	}
}

// canonicalOf returns raw's canonical form when raw already is one. A name
// the cache produces counts even when the same spelling is also a cache key
// for a different name.
func (p *Processor) canonicalOf(raw string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	if p.cache != nil {
		if name, ok := p.cache.Canonical(key); ok {
			return name, true
		}
		if _, ok := p.cache.Lookup(key); ok {
			return "", false
		}
	}
	return p.taxonomy.Lookup(key)
}

// resolve maps a normalized candidate to a canonical name: cache first,
// then the taxonomy.
func (p *Processor) resolve(normalized string) (string, bool) {
	if p.cache != nil {
		if name, ok := p.cache.Lookup(strings.ToLower(normalized)); ok && name != "" {
			return name, true
		}
	}
	return p.taxonomy.Match(normalized)
}
