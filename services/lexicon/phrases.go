package lexicon

import "strings"

// Phrases that grant the assistant decision-making authority.
var delegationPhrases = []string{
	"you decide",
	"you pick",
	"you choose",
	"book it",
	"do it",
	"go ahead",
	"finalize",
	"surprise me",
	"anything works",
	"i don't care",
	"i dont care",
	"up to you",
	"whatever you think",
	"resolve conflicts automatically",
}

var urgencyPhrases = []string{
	"urgent", "asap", "immediately", "right away", "emergency",
}

var politePhrases = []string{
	"please", "thank you", "thanks",
}

var cancelPhrases = []string{"cancel", "cancelled", "delete"}

var modifyPhrases = []string{"change", "modify", "reschedule"}

// ContainsDelegation reports whether text grants the assistant autonomy.
func ContainsDelegation(text string) bool {
	return containsAny(text, delegationPhrases)
}

// ContainsUrgency reports whether text signals an urgent request.
func ContainsUrgency(text string) bool {
	return containsAny(text, urgencyPhrases)
}

// ContainsPoliteness reports whether text carries polite markers.
func ContainsPoliteness(text string) bool {
	return containsAny(text, politePhrases)
}

// ContainsCancelIntent reports whether text asks to cancel a booking.
func ContainsCancelIntent(text string) bool {
	return containsAny(text, cancelPhrases)
}

// ContainsModifyIntent reports whether text asks to change a booking.
func ContainsModifyIntent(text string) bool {
	return containsAny(text, modifyPhrases)
}

func containsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
