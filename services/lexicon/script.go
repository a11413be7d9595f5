package lexicon

import "strings"

// teluguTokens maps Telugu booking vocabulary onto the canonical English
// token space. This is a fixed lookup, not translation: coverage is exactly
// what the table enumerates.
var teluguTokens = map[string]string{
	"స్పా":          "spa",
	"సెలూన్":        "salon",
	"డాక్టర్":       "doctor",
	"దంత":           "dental",
	"ఫేషియల్":       "facial",
	"హోటల్":         "hotel",
	"అపాయింట్మెంట్": "appointment",
	"ఉదయం":          "morning",
	"మధ్యాహ్నం":     "afternoon",
	"సాయంత్రం":      "evening",
	"రాత్రి":        "night",
	"ఈరోజు":         "today",
	"రేపు":          "tomorrow",
	"బుక్":          "book",
	"రద్దు":         "cancel",
	"మీరే నిర్ణయించండి": "you decide",
}

// NormalizeScript rewrites known non-Latin tokens into their canonical
// English forms so the rest of the pipeline matches one token space.
func NormalizeScript(text string) string {
	out := text
	for token, canonical := range teluguTokens {
		if strings.Contains(out, token) {
			out = strings.ReplaceAll(out, token, " "+canonical+" ")
		}
	}
	return out
}
