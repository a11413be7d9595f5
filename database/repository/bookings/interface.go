package bookingsRepo

import (
	"context"

	"concierge/models"
)

// Repository defines persistence operations for confirmed bookings.
type Repository interface {
	// Create inserts a new booking document.
	Create(ctx context.Context, booking *models.ExistingBooking) error
	// GetByID retrieves a booking by its ID.
	GetByID(ctx context.Context, bookingID string) (*models.ExistingBooking, error)
	// ListConfirmedInRange returns all confirmed bookings whose date falls
	// within [from, to] inclusive. Dates are "YYYY-MM-DD" strings.
	ListConfirmedInRange(ctx context.Context, from, to string) ([]models.ExistingBooking, error)
	// ListByUser returns all bookings owned by the given user, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.ExistingBooking, error)
	// Cancel marks a booking as cancelled. It fails if the booking does not
	// exist or its timeslot has already started.
	Cancel(ctx context.Context, bookingID string) error
}
