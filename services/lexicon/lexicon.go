// Package lexicon holds the static phrase tables the resolution engine
// matches against: service aliases, known cities, fuzzy time rules,
// delegation and urgency phrases, and a small non-Latin token map.
// All tables are immutable after init and safe for concurrent reads.
package lexicon

import (
	"sort"
	"strings"
)

// ServiceEntry maps a canonical service to its matching aliases and default
// appointment duration.
type ServiceEntry struct {
	Canonical   string
	DurationMin int
	Aliases     []string
}

var serviceTable = []ServiceEntry{
	{Canonical: "spa", DurationMin: 90, Aliases: []string{"spa"}},
	{Canonical: "head spa", DurationMin: 60, Aliases: []string{"head spa"}},
	{Canonical: "salon", DurationMin: 60, Aliases: []string{"salon", "haircut"}},
	{Canonical: "facial", DurationMin: 60, Aliases: []string{"facial", "skincare"}},
	{Canonical: "dental", DurationMin: 45, Aliases: []string{"dental", "dentist"}},
	{Canonical: "doctor", DurationMin: 30, Aliases: []string{"doctor", "hospital", "clinic"}},
	{Canonical: "hotel", DurationMin: 60, Aliases: []string{"hotel"}},
	{Canonical: "travel", DurationMin: 60, Aliases: []string{"travel", "trip"}},
	{Canonical: "flight", DurationMin: 60, Aliases: []string{"flight"}},
	{Canonical: "appointment", DurationMin: 60, Aliases: []string{"appointment", "booking"}},
}

// narrowings refine the generic "appointment" service when a sub-type
// keyword appears in the same utterance.
var narrowings = []struct {
	Canonical string
	Keywords  []string
}{
	{Canonical: "facial", Keywords: []string{"facial", "face", "skincare", "derma"}},
	{Canonical: "dental", Keywords: []string{"dental", "dentist", "tooth", "teeth"}},
}

// DefaultService is the service auto-filled under full delegation when the
// user named none.
const DefaultService = "facial"

// ServiceMatch is one detected service, in order of appearance in the text.
type ServiceMatch struct {
	Canonical  string
	Matched    string // the alias that matched
	Confidence float64
	Exact      bool // matched on a word boundary
}

// Match confidence tiers: exact word-boundary lexicon hits score high,
// substring hits medium.
const (
	ConfidenceExact   = 0.95
	ConfidencePartial = 0.7
)

// MatchServices returns every service mentioned in text, ordered by first
// appearance. Aliases match longest first and every matched span is
// consumed, so "head spa" never also counts as a "spa" mention. The generic
// "appointment" entry is dropped whenever a specific service was also named,
// and narrowed to its sub-type when one is implied.
func MatchServices(text string) []ServiceMatch {
	lower := strings.ToLower(text)
	type hit struct {
		match ServiceMatch
		pos   int
	}

	type aliasRef struct {
		canonical string
		alias     string
	}
	var refs []aliasRef
	for _, entry := range serviceTable {
		for _, alias := range entry.Aliases {
			refs = append(refs, aliasRef{entry.Canonical, alias})
		}
	}
	// Longest alias first; table order breaks length ties.
	sort.SliceStable(refs, func(i, j int) bool {
		return len(refs[i].alias) > len(refs[j].alias)
	})

	type span struct{ start, end int }
	var consumed []span
	isFree := func(pos, length int) bool {
		for _, s := range consumed {
			if pos < s.end && s.start < pos+length {
				return false
			}
		}
		return true
	}

	var hits []hit
	seen := map[string]bool{}
	for _, ref := range refs {
		if seen[ref.canonical] {
			continue
		}
		// First occurrence outside every already-consumed span.
		pos := -1
		for from := 0; ; {
			i := strings.Index(lower[from:], ref.alias)
			if i < 0 {
				break
			}
			i += from
			if isFree(i, len(ref.alias)) {
				pos = i
				break
			}
			from = i + 1
		}
		if pos < 0 {
			continue
		}
		exact := isWordBounded(lower, pos, len(ref.alias))
		conf := ConfidencePartial
		if exact {
			conf = ConfidenceExact
		}
		seen[ref.canonical] = true
		consumed = append(consumed, span{pos, pos + len(ref.alias)})
		hits = append(hits, hit{
			match: ServiceMatch{Canonical: ref.canonical, Matched: ref.alias, Confidence: conf, Exact: exact},
			pos:   pos,
		})
	}

	// Order by appearance in the utterance.
	for i := 1; i < len(hits); i++ {
		for j := i; j > 0 && hits[j].pos < hits[j-1].pos; j-- {
			hits[j], hits[j-1] = hits[j-1], hits[j]
		}
	}

	matches := make([]ServiceMatch, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, h.match)
	}

	// Drop the generic entry when specific services were also named.
	if len(matches) > 1 {
		filtered := matches[:0]
		for _, m := range matches {
			if m.Canonical != "appointment" {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) > 0 {
			matches = filtered
		}
	}

	// A lone generic "appointment" narrows to its sub-type when implied.
	if len(matches) == 1 && matches[0].Canonical == "appointment" {
		for _, n := range narrowings {
			for _, kw := range n.Keywords {
				if strings.Contains(lower, kw) {
					matches[0].Canonical = n.Canonical
					matches[0].Matched = kw
					matches[0].Confidence = 0.9
					return matches
				}
			}
		}
	}
	return matches
}

// ServiceDuration returns the default duration for a canonical service.
func ServiceDuration(canonical string) int {
	for _, entry := range serviceTable {
		if entry.Canonical == canonical {
			return entry.DurationMin
		}
	}
	return 60
}

// KnownServices lists the canonical services, table order.
func KnownServices() []string {
	out := make([]string, 0, len(serviceTable))
	for _, entry := range serviceTable {
		out = append(out, entry.Canonical)
	}
	return out
}

func isWordBounded(s string, pos, length int) bool {
	before := pos == 0 || !isAlnum(s[pos-1])
	end := pos + length
	after := end >= len(s) || !isAlnum(s[end])
	return before && after
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
