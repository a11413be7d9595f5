package engine

import (
	"fmt"
	"strings"
	"time"

	"concierge/models"
	"concierge/services/lexicon"
)

// extraction is the working state for one sub-request as it moves through
// the pipeline. Signals shared by every service named in the utterance
// (delegation, dates, fuzzy tokens, location) are scanned once and cloned
// into each sub-request.
type extraction struct {
	req models.BookingRequest

	fuzzy          []lexicon.FuzzyRule // intra-day fuzzy tokens, table order
	dayRange       [2]int              // day-offset range from a day-only token
	hasDayRange    bool
	explicitStart  int    // explicit clock time, -1 when absent
	preferredStart int    // ranking preference for the slot engine, -1 when none
	explicitPlace  string // freeform "in <x>" capture that is not a known city

	ambiguities []string
	notes       []string
}

func (x *extraction) note(format string, args ...any) {
	x.notes = append(x.notes, fmt.Sprintf(format, args...))
}

// extract scans the utterance and returns one sub-request per detected
// service (or a single incomplete one when no service matched). Extraction
// never fails; it degrades to partial results with zero-confidence fields.
func (e *DefaultResolutionEngine) extract(rawText string, now time.Time) []extraction {
	text := strings.ToLower(lexicon.NormalizeScript(rawText))

	base := extraction{explicitStart: -1, preferredStart: -1}
	base.req.RawText = rawText
	base.req.Service = models.Field{Status: models.FieldUnresolved}
	base.req.Date = models.Field{Status: models.FieldUnresolved}
	base.req.Time = models.Field{Status: models.FieldUnresolved}
	base.req.Location = models.Field{Status: models.FieldUnresolved}

	// Intent.
	switch {
	case lexicon.ContainsCancelIntent(text):
		base.req.Intent = models.IntentCancel
	case lexicon.ContainsModifyIntent(text):
		base.req.Intent = models.IntentModify
	default:
		base.req.Intent = models.IntentBook
	}

	// Delegation context, shared by every sub-request.
	if lexicon.ContainsDelegation(text) {
		base.req.Delegated = true
		base.note("User delegated decision-making to the assistant")
	}
	base.req.Urgent, base.req.Style = detectUrgencyAndStyle(text)
	if base.req.Urgent {
		base.note("Urgency detected; earliest open slots will be preferred")
	}

	// Explicit calendar date.
	if date, past, ok := parseDateMention(text, now); ok {
		if past {
			base.note("Date %s lies in the past and was ignored", date)
		} else {
			base.req.Date = models.Field{
				Status:     models.FieldResolved,
				Value:      date,
				Confidence: 0.9,
				Source:     models.SourceExtracted,
			}
			base.note("Date parsed as %s", date)
		}
	}

	// Fuzzy time tokens; day-only rules constrain the date instead.
	for _, rule := range lexicon.MatchFuzzyTimes(text) {
		if rule.DayOnly {
			if !base.req.Date.Resolved() {
				base.dayRange = [2]int{rule.DayLo, rule.DayHi}
				base.hasDayRange = true
				base.note("Relative date '%s' allows days %d-%d from today", rule.Token, rule.DayLo, rule.DayHi)
			}
			continue
		}
		base.fuzzy = append(base.fuzzy, rule)
	}

	// Explicit clock time.
	if mins, ok := parseClockTime(text); ok {
		base.explicitStart = mins
		base.preferredStart = mins
	}

	// Location: known city first, then a freeform "in <place>" capture.
	if city, ok := lexicon.MatchCity(text); ok {
		base.req.Location = models.Field{
			Status:     models.FieldResolved,
			Value:      city,
			Confidence: 0.9,
			Source:     models.SourceExtracted,
		}
		base.note("Location matched: %s", city)
	} else if place, ok := parseInPlace(text); ok {
		if lexicon.IsKnownCity(place) {
			base.req.Location = models.Field{
				Status:     models.FieldResolved,
				Value:      place,
				Confidence: 0.9,
				Source:     models.SourceExtracted,
			}
			base.note("Location matched: %s", place)
		} else {
			base.explicitPlace = place
			base.req.Location = models.Field{
				Status:     models.FieldResolved,
				Value:      place,
				Confidence: 0.7,
				Source:     models.SourceExtracted,
			}
			base.note("Explicit location mentioned: %s", place)
		}
	}

	// Services: one sub-request per match, sharing the context above.
	matches := lexicon.MatchServices(text)
	if len(matches) == 0 {
		// The whole request is incomplete; carried forward for the
		// delegation policy rather than failed.
		return []extraction{base}
	}

	subs := make([]extraction, 0, len(matches))
	for _, m := range matches {
		x := cloneExtraction(base)
		x.req.Service = models.Field{
			Status:     models.FieldResolved,
			Value:      m.Canonical,
			Confidence: m.Confidence,
			Source:     models.SourceExtracted,
		}
		if m.Canonical == m.Matched {
			x.note("Service matched by keyword '%s'", m.Matched)
		} else {
			x.note("Service '%s' matched via keyword '%s'", m.Canonical, m.Matched)
		}
		subs = append(subs, x)
	}
	return subs
}

// cloneExtraction deep-copies the shared scan state so sub-requests cannot
// alias each other's slices.
func cloneExtraction(base extraction) extraction {
	x := base
	x.fuzzy = append([]lexicon.FuzzyRule(nil), base.fuzzy...)
	x.ambiguities = append([]string(nil), base.ambiguities...)
	x.notes = append([]string(nil), base.notes...)
	return x
}
