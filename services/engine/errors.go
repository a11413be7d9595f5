package engine

import (
	"errors"
	"fmt"
	"time"

	"concierge/models"
)

// Hard failures. Ordinary ambiguity (missing fields, fuzzy tokens, exhausted
// slots) is data, not an error; only a structurally unusable input gets one
// of these.
var (
	ErrEmptyInput        = errors.New("engine: empty booking request")
	ErrMalformedSnapshot = errors.New("engine: malformed booking snapshot")
)

// validateSnapshot rejects booking snapshots the persistence layer should
// never have produced: missing IDs, inverted windows, unknown statuses or
// unparseable dates.
func validateSnapshot(snapshot []models.ExistingBooking) error {
	for i, b := range snapshot {
		if b.ID == "" {
			return fmt.Errorf("%w: booking %d has no id", ErrMalformedSnapshot, i)
		}
		if b.End <= b.Start {
			return fmt.Errorf("%w: booking %s window [%d,%d) is inverted", ErrMalformedSnapshot, b.ID, b.Start, b.End)
		}
		if b.Status != models.BookingStatusConfirmed && b.Status != models.BookingStatusCancelled {
			return fmt.Errorf("%w: booking %s has unknown status %q", ErrMalformedSnapshot, b.ID, b.Status)
		}
		if _, err := time.Parse("2006-01-02", b.Date); err != nil {
			return fmt.Errorf("%w: booking %s has unparseable date %q", ErrMalformedSnapshot, b.ID, b.Date)
		}
	}
	return nil
}
