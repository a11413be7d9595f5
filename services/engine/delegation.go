package engine

import (
	"time"

	"concierge/models"
	"concierge/services/lexicon"
)

// mayAutoFill is the single guard in front of every auto-fill: a field may
// only be filled without asking when the user delegated or the extracted
// confidence already clears the threshold. Keeping the guard in one place
// makes a delegation violation structurally impossible.
func (e *DefaultResolutionEngine) mayAutoFill(req *models.BookingRequest, confidence float64) bool {
	return req.Delegated || confidence >= e.Cfg.AutoFillThreshold
}

// allowedDates is the date range the slot engine may scan for this request.
func (e *DefaultResolutionEngine) allowedDates(x *extraction, now time.Time) []string {
	if x.req.Date.Resolved() {
		return []string{x.req.Date.Value}
	}
	if x.hasDayRange {
		return daysFrom(now, x.dayRange[0], x.dayRange[1])
	}
	return daysFrom(now, 0, e.Cfg.HorizonDays-1)
}

// applyDelegation walks every unresolved field through the per-field policy:
// auto-fill, slot-engine selection, or a pending clarifying question. Fields
// never regress once resolved. The returned ConflictResult reflects the
// user's original request so the caller can always see what was in the way.
func (e *DefaultResolutionEngine) applyDelegation(x *extraction, now time.Time, snapshot []models.ExistingBooking) models.ConflictResult {
	req := &x.req

	// Service.
	if !req.Service.Resolved() {
		if e.mayAutoFill(req, req.Service.Confidence) {
			req.Service = models.Field{
				Status:     models.FieldResolved,
				Value:      lexicon.DefaultService,
				Confidence: 0.6,
				Source:     models.SourceAutoFilled,
				Rule:       "delegation-default-service",
			}
			x.note("Service auto-filled as '%s': user granted autonomy and named no service", lexicon.DefaultService)
		} else {
			req.Service.Status = models.FieldPendingQuestion
		}
	}

	// Location.
	if !req.Location.Resolved() {
		if e.mayAutoFill(req, req.Location.Confidence) {
			req.Location = models.Field{
				Status:     models.FieldResolved,
				Value:      lexicon.DefaultCity(),
				Confidence: 0.5,
				Source:     models.SourceAutoFilled,
				Rule:       "delegation-default-location",
			}
			x.note("Location auto-selected as %s due to delegation (assistant-chosen)", lexicon.DefaultCity())
		} else {
			req.Location.Status = models.FieldPendingQuestion
		}
	}

	// Date default under delegation when nothing constrains the day.
	if !req.Date.Resolved() && !x.hasDayRange && e.mayAutoFill(req, req.Date.Confidence) {
		today := now.Format("2006-01-02")
		req.Date = models.Field{
			Status:     models.FieldResolved,
			Value:      today,
			Confidence: 0.6,
			Source:     models.SourceAutoFilled,
			Rule:       "delegation-default-date",
		}
		x.note("Date auto-filled as %s due to delegation", today)
	}

	// Two equally specific time preferences always ask; the slot engine never
	// picks one of them on the user's behalf.
	ambiguousTime := len(x.ambiguities) > 0

	dur := e.durationFor(req)
	location := ""
	if req.Location.Resolved() {
		location = req.Location.Value
	}

	// Keep the time window's date in sync once the date is known.
	if req.Time.Window != nil && req.Date.Resolved() {
		req.Time.Window.Date = req.Date.Value
	}

	q := slotQuery{
		DurationMin:    dur,
		Location:       location,
		Dates:          e.allowedDates(x, now),
		PreferredStart: x.preferredStart,
		Today:          now.Format("2006-01-02"),
		NowMin:         now.Hour()*60 + now.Minute(),
	}
	// A resolved fuzzy window wider than the service duration constrains the
	// scan; an exact-duration window is the user's concrete request.
	if req.Time.Resolved() && req.Time.Window != nil {
		w := req.Time.Window
		if w.End-w.Start > dur {
			q.WithinStart, q.WithinEnd = w.Start, w.End
		} else if req.Date.Resolved() {
			requested := *w
			requested.Date = req.Date.Value
			q.Requested = &requested
		}
	}
	result := e.FindSlots(q, snapshot)

	switch {
	case q.Requested != nil && len(result.Conflicts) > 0:
		// The stated window is taken.
		if req.Delegated && len(result.CandidateSlots) > 0 {
			top := result.CandidateSlots[0]
			e.selectSlot(x, top, dur)
			x.note("Requested window %s conflicts with booking %s; rescheduled to %s under delegation",
				q.Requested.String(), result.Conflicts[0].ID, top.String())
		} else {
			x.note("Requested window %s conflicts with %d existing booking(s); alternatives proposed",
				q.Requested.String(), len(result.Conflicts))
		}

	case req.Date.Resolved() && req.Time.Resolved() && q.Requested == nil:
		// A fuzzy window wider than one appointment: narrow it to a concrete
		// slot when autonomy allows, otherwise it stands as a preference.
		if e.mayAutoFill(req, 0) && len(result.CandidateSlots) > 0 {
			top := result.CandidateSlots[0]
			window := req.Time.Value
			e.selectSlot(x, top, dur)
			x.note("Time narrowed to %s within the preferred %s window under delegation",
				clockRange(top.Start, top.End), window)
		}

	case req.Date.Resolved() && !req.Time.Resolved():
		if e.mayAutoFill(req, req.Time.Confidence) && !ambiguousTime {
			if len(result.CandidateSlots) > 0 {
				top := result.CandidateSlots[0]
				e.selectSlot(x, top, dur)
				x.note("Time auto-selected as %s: user granted autonomy and this was the top-ranked open slot",
					clockRange(top.Start, top.End))
			} else {
				req.Time.Status = models.FieldPendingQuestion
				x.note("No open slot remains on %s; clarification needed", req.Date.Value)
			}
		} else {
			req.Time.Status = models.FieldPendingQuestion
		}

	case !req.Date.Resolved():
		// Day known only as a range ("next week") or not at all.
		if e.mayAutoFill(req, req.Date.Confidence) && !ambiguousTime && len(result.CandidateSlots) > 0 {
			top := result.CandidateSlots[0]
			e.selectSlot(x, top, dur)
			x.note("Date and time auto-selected as %s: earliest open slot in the allowed range under delegation",
				top.String())
		} else {
			if req.Date.Status == models.FieldUnresolved {
				req.Date.Status = models.FieldPendingQuestion
			}
			if req.Time.Status == models.FieldUnresolved {
				req.Time.Status = models.FieldPendingQuestion
			}
		}
	}

	return result
}

// selectSlot resolves the date and time fields onto one concrete slot chosen
// by the slot engine.
func (e *DefaultResolutionEngine) selectSlot(x *extraction, slot models.TimeWindow, dur int) {
	req := &x.req
	window := slot
	req.Date = models.Field{
		Status:     models.FieldResolved,
		Value:      slot.Date,
		Confidence: 0.75,
		Source:     models.SourceSlotSelected,
	}
	req.Time = models.Field{
		Status:     models.FieldResolved,
		Value:      clockRange(slot.Start, slot.End),
		Window:     &window,
		Confidence: 0.75,
		Source:     models.SourceSlotSelected,
	}
}
