package engine

import (
	"sort"

	"concierge/models"
)

// maxCandidates bounds the ranked slot list returned to callers.
const maxCandidates = 20

// slotQuery describes one slot search: which dates to scan, how long a
// window is needed, and what the user already said about when and where.
type slotQuery struct {
	DurationMin    int
	Location       string // empty matches every location (conservative)
	Dates          []string
	PreferredStart int                // -1 when the user stated no preference
	WithinStart    int                // intra-day bound from a resolved fuzzy window
	WithinEnd      int                // 0 means unbounded
	Requested      *models.TimeWindow // the user's fully-specified window, if any
	Today          string             // current date; slots before NowMin on it are skipped
	NowMin         int
}

// FindSlots detects conflicts for the requested window and proposes ranked
// alternatives. Two windows conflict iff they overlap half-open on the same
// date and location; candidates never overlap a confirmed booking. An
// exhausted range yields an empty candidate list plus the full conflicting
// set, never an error.
func (e *DefaultResolutionEngine) FindSlots(q slotQuery, snapshot []models.ExistingBooking) models.ConflictResult {
	result := models.ConflictResult{
		Conflicts:      []models.ExistingBooking{},
		CandidateSlots: []models.TimeWindow{},
	}
	if q.DurationMin <= 0 {
		q.DurationMin = 60
	}

	blockers := map[string]bool{}
	for _, date := range q.Dates {
		for start := e.Cfg.BusinessOpenMin; start+q.DurationMin <= e.Cfg.BusinessCloseMin; start += e.Cfg.SlotStepMin {
			if q.WithinEnd > 0 && (start < q.WithinStart || start+q.DurationMin > q.WithinEnd) {
				continue
			}
			if date == q.Today && start < q.NowMin {
				continue
			}
			w := models.TimeWindow{Date: date, Start: start, End: start + q.DurationMin}
			if b, blocked := firstConflict(w, q.Location, snapshot); blocked {
				blockers[b.ID] = true
				continue
			}
			result.CandidateSlots = append(result.CandidateSlots, w)
		}
	}

	// Conflicts: bookings overlapping the requested window when one exists,
	// otherwise everything that blocked the scan.
	if q.Requested != nil {
		for _, b := range snapshot {
			if b.Status != models.BookingStatusConfirmed {
				continue
			}
			if !sameLocation(q.Location, b.Location) {
				continue
			}
			if q.Requested.Overlaps(b.Window()) {
				result.Conflicts = append(result.Conflicts, b)
			}
		}
	} else if len(result.CandidateSlots) == 0 {
		for _, b := range snapshot {
			if b.Status == models.BookingStatusConfirmed && blockers[b.ID] {
				result.Conflicts = append(result.Conflicts, b)
			}
		}
	}
	sort.SliceStable(result.Conflicts, func(i, j int) bool {
		a, b := result.Conflicts[i], result.Conflicts[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Start < b.Start
	})

	rankCandidates(result.CandidateSlots, q)
	if len(result.CandidateSlots) > maxCandidates {
		result.CandidateSlots = result.CandidateSlots[:maxCandidates]
	}
	return result
}

// rankCandidates orders candidates by proximity to the user's stated
// preference when one exists, else earliest date and time.
func rankCandidates(candidates []models.TimeWindow, q slotQuery) {
	preferredDate := ""
	if q.Requested != nil {
		preferredDate = q.Requested.Date
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if q.PreferredStart >= 0 {
			da, db := slotDistance(a, q.PreferredStart, preferredDate), slotDistance(b, q.PreferredStart, preferredDate)
			if da != db {
				return da < db
			}
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.Start < b.Start
	})
}

// slotDistance measures how far a candidate lies from the stated preference:
// date distance dominates, then minutes within the day.
func slotDistance(w models.TimeWindow, preferredStart int, preferredDate string) int {
	d := w.Start - preferredStart
	if d < 0 {
		d = -d
	}
	if preferredDate != "" && w.Date != preferredDate {
		d += 24 * 60
	}
	return d
}

// firstConflict returns the confirmed booking blocking window w, if any.
// An empty query location is conservative: bookings at any location block.
func firstConflict(w models.TimeWindow, location string, snapshot []models.ExistingBooking) (models.ExistingBooking, bool) {
	for _, b := range snapshot {
		if b.Status != models.BookingStatusConfirmed {
			continue
		}
		if !sameLocation(location, b.Location) {
			continue
		}
		if w.Overlaps(b.Window()) {
			return b, true
		}
	}
	return models.ExistingBooking{}, false
}

func sameLocation(query, booked string) bool {
	return query == "" || booked == "" || query == booked
}
