package engine

import (
	"time"

	"concierge/models"
	"concierge/services/lexicon"
)

func (e *DefaultResolutionEngine) durationFor(req *models.BookingRequest) int {
	if req.Service.Resolved() {
		return lexicon.ServiceDuration(req.Service.Value)
	}
	return 60
}

func clockRange(start, end int) string {
	return models.MinutesToClock(start) + "-" + models.MinutesToClock(end)
}

// resolveTime turns the utterance's time signals into a concrete Time field.
// An explicit clock time always wins over fuzzy phrases; among fuzzy phrases
// the narrowest window wins, and an exact tie between different windows is
// ambiguity to be clarified, not an error.
func (e *DefaultResolutionEngine) resolveTime(x *extraction, now time.Time) {
	req := &x.req
	dur := e.durationFor(req)
	date := req.Date.Value // empty until the date resolves

	if x.explicitStart >= 0 {
		end := x.explicitStart + dur
		req.Time = models.Field{
			Status:     models.FieldResolved,
			Value:      clockRange(x.explicitStart, end),
			Window:     &models.TimeWindow{Date: date, Start: x.explicitStart, End: end},
			Confidence: 0.95,
			Source:     models.SourceExtracted,
		}
		x.note("Time normalized to %s", models.MinutesToClock(x.explicitStart))
		if len(x.fuzzy) > 0 {
			x.note("Explicit time overrides fuzzy phrase '%s'", x.fuzzy[0].Token)
		}
		return
	}

	if len(x.fuzzy) == 0 {
		return
	}

	best := x.fuzzy[0]
	var tied []lexicon.FuzzyRule
	for _, rule := range x.fuzzy[1:] {
		switch {
		case rule.Width() < best.Width():
			best = rule
			tied = nil
		case rule.Width() == best.Width() &&
			(rule.StartMin != best.StartMin || rule.EndMin != best.EndMin):
			tied = append(tied, rule)
		}
	}

	if len(tied) > 0 {
		// Equally specific tokens pointing at different windows: the user
		// stated two preferences, so always ask. Delegation never picks one.
		x.ambiguities = append(x.ambiguities, best.Token)
		for _, rule := range tied {
			x.ambiguities = append(x.ambiguities, rule.Token)
		}
		req.Time.Status = models.FieldPendingQuestion
		x.note("Time phrases '%s' and '%s' are equally specific; clarification needed", best.Token, tied[0].Token)
		return
	}

	start, end := clampWindow(best.StartMin, best.EndMin, e.Cfg.BusinessOpenMin, e.Cfg.BusinessCloseMin)
	req.Time = models.Field{
		Status:     models.FieldResolved,
		Value:      clockRange(start, end),
		Window:     &models.TimeWindow{Date: date, Start: start, End: end},
		Confidence: 0.7,
		Source:     models.SourceFuzzyResolved,
	}
	x.preferredStart = start
	x.note("Fuzzy time '%s' resolved to %s", best.Token, clockRange(start, end))
}

// clampWindow bounds a fuzzy window to business hours.
func clampWindow(start, end, open, close int) (int, int) {
	if start < open {
		start = open
	}
	if end > close {
		end = close
	}
	if end <= start {
		return open, close
	}
	return start, end
}

// daysFrom renders a day-offset range as concrete dates.
func daysFrom(now time.Time, lo, hi int) []string {
	dates := make([]string, 0, hi-lo+1)
	for off := lo; off <= hi; off++ {
		dates = append(dates, now.AddDate(0, 0, off).Format("2006-01-02"))
	}
	return dates
}
