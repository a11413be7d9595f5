package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reTime12    = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reTime24    = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	reDateSlash = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}/\d{2,4})\b`)
	reDateISO   = regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`)
	reInPlace   = regexp.MustCompile(`\bin\s+([a-z][a-z ]{2,29})`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// parseClockTime finds an explicit time of day ("9am", "9:30 AM", "14:00")
// and returns it as minutes from midnight.
func parseClockTime(text string) (int, bool) {
	if m := reTime12.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour >= 1 && hour <= 12 {
			if m[3] == "pm" && hour != 12 {
				hour += 12
			}
			if m[3] == "am" && hour == 12 {
				hour = 0
			}
			return hour*60 + minute, true
		}
	}
	if m := reTime24.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		return hour*60 + minute, true
	}
	return 0, false
}

// parseDateMention finds an explicit calendar date: "today", "tomorrow",
// dd/mm/yyyy, dd/mm/yy or yyyy-mm-dd. past is true when the date lies
// before today (no past bookings are allowed).
func parseDateMention(text string, now time.Time) (date string, past bool, ok bool) {
	today := now.Format("2006-01-02")
	if strings.Contains(text, "today") {
		return today, false, true
	}
	if strings.Contains(text, "tomorrow") {
		return now.AddDate(0, 0, 1).Format("2006-01-02"), false, true
	}

	var parsed time.Time
	found := false
	if m := reDateSlash.FindStringSubmatch(text); m != nil {
		for _, layout := range []string{"2/1/2006", "2/1/06"} {
			if t, err := time.Parse(layout, m[1]); err == nil {
				parsed = t
				found = true
				break
			}
		}
	}
	if !found {
		if m := reDateISO.FindStringSubmatch(text); m != nil {
			if t, err := time.Parse("2006-1-2", m[1]); err == nil {
				parsed = t
				found = true
			}
		}
	}
	if !found {
		return "", false, false
	}
	date = parsed.Format("2006-01-02")
	return date, date < today, true
}

// parseInPlace captures a freeform "in <place>" mention.
func parseInPlace(text string) (string, bool) {
	m := reInPlace.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	candidate := strings.TrimSpace(m[1])
	// trim trailing stopwords picked up by the greedy match ("in delhi on monday")
	for _, cut := range []string{" on ", " at ", " in ", " for ", " and ", " this ", " next ", " tomorrow", " today"} {
		if idx := strings.Index(candidate, cut); idx > 0 {
			candidate = candidate[:idx]
		}
	}
	candidate = strings.TrimSpace(candidate)
	// discard time-of-day captures like "in the morning"
	for _, skip := range []string{"the", "a", "an"} {
		if candidate == skip || strings.HasPrefix(candidate, skip+" ") {
			return "", false
		}
	}
	if len(candidate) < 3 {
		return "", false
	}
	return candidate, true
}
