package booking

import (
	"context"

	"concierge/models"
)

// SessionService drives the conversational booking flow: resolve a user
// turn into structured outcomes, hold them in a short-lived session, and
// confirm or discard them.
type SessionService interface {
	ResolveRequest(ctx context.Context, userID, text string) (*models.ResolutionSession, error)
	ConfirmOutcome(ctx context.Context, sessionID string, outcomeIndex int) (*models.ExistingBooking, error)
	CancelSession(ctx context.Context, sessionID string) error
	ListBookings(ctx context.Context, userID string) ([]models.ExistingBooking, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

// SessionStore persists in-flight resolution sessions between the resolve
// and confirm phases.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.ResolutionSession, error)
	Set(ctx context.Context, session *models.ResolutionSession) error
	Delete(ctx context.Context, sessionID string) error
}

// ReminderScheduler enqueues a reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleReminder(booking models.ExistingBooking) error
}
