package engine

import (
	"strings"

	"concierge/services/lexicon"
)

// Response style tags surfaced to the presentation layer.
const (
	StyleConcise  = "concise"
	StyleFormal   = "formal"
	StyleFriendly = "friendly"
)

// detectUrgencyAndStyle reads lightweight signals off the utterance: whether
// the request is urgent, and what response style the wording suggests.
func detectUrgencyAndStyle(text string) (urgent bool, style string) {
	urgent = lexicon.ContainsUrgency(text)

	switch {
	case len(strings.Fields(text)) < 4:
		style = StyleConcise
	case lexicon.ContainsPoliteness(text):
		style = StyleFormal
	default:
		style = StyleFriendly
	}
	return urgent, style
}
