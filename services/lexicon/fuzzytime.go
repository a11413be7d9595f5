package lexicon

import "strings"

// FuzzyRule maps one vague time phrase to a concrete rule: an intra-day
// window (minutes from midnight) and/or a day-offset range from today.
// DayOnly rules ("next week") constrain only the date; the intra-day window
// stays open and needs either delegation or a clarifying answer.
type FuzzyRule struct {
	Token    string
	StartMin int
	EndMin   int
	DayLo    int // inclusive day offset from today
	DayHi    int
	DayOnly  bool
}

// Width is the intra-day window size; narrower rules win tie-breaks.
func (r FuzzyRule) Width() int {
	return r.EndMin - r.StartMin
}

// Ordered so that multi-word tokens match before their substrings
// ("after lunch" before any future "lunch" entry).
var fuzzyRules = []FuzzyRule{
	{Token: "before lunch", StartMin: 630, EndMin: 720},
	{Token: "after lunch", StartMin: 840, EndMin: 960},
	{Token: "noon", StartMin: 720, EndMin: 780},
	{Token: "morning", StartMin: 540, EndMin: 720},
	{Token: "afternoon", StartMin: 720, EndMin: 960},
	{Token: "evening", StartMin: 960, EndMin: 1080},
	{Token: "night", StartMin: 1080, EndMin: 1140},
	{Token: "next week", DayLo: 7, DayHi: 13, DayOnly: true},
}

// MatchFuzzyTimes returns every fuzzy rule whose token appears in text,
// in table order. Tokens must match on word boundaries so that "afternoon"
// does not also trigger the "noon" rule.
func MatchFuzzyTimes(text string) []FuzzyRule {
	lower := strings.ToLower(text)
	var out []FuzzyRule
	for _, rule := range fuzzyRules {
		if containsWord(lower, rule.Token) {
			out = append(out, rule)
		}
	}
	return out
}

// containsWord reports whether token occurs in s on word boundaries.
func containsWord(s, token string) bool {
	for from := 0; ; {
		pos := strings.Index(s[from:], token)
		if pos < 0 {
			return false
		}
		pos += from
		if isWordBounded(s, pos, len(token)) {
			return true
		}
		from = pos + 1
	}
}

// FuzzyRange describes a fuzzy token as a human range for clarifying
// questions ("when you say 'evening', do you mean between 4 PM and 7 PM?").
func FuzzyRange(token string) (string, bool) {
	ranges := map[string]string{
		"morning":      "between 9 AM and 12 PM",
		"before lunch": "between 10:30 AM and 12 PM",
		"noon":         "around 12 PM",
		"afternoon":    "between 12 PM and 4 PM",
		"after lunch":  "between 2 PM and 4 PM",
		"evening":      "between 4 PM and 6 PM",
		"night":        "after 6 PM",
	}
	r, ok := ranges[token]
	return r, ok
}
