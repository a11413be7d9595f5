package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingsRepo "concierge/database/repository/bookings"
	"concierge/models"
	"concierge/services/engine"
	"concierge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSlotTaken is returned when the selected slot was booked by someone else
// between resolve and confirm.
var ErrSlotTaken = errors.New("booking: selected slot is no longer available")

// ErrOutcomeIncomplete is returned when the caller confirms an outcome that
// still has pending fields.
var ErrOutcomeIncomplete = errors.New("booking: outcome has unresolved fields")

// ErrSessionNotFound is returned when a resolution session does not exist or
// its TTL expired.
var ErrSessionNotFound = errors.New("booking: resolution session not found or expired")

// DefaultSessionService implements SessionService on top of the resolution
// engine, the bookings repository and a redis session store.
type DefaultSessionService struct {
	Engine      engine.ResolutionEngine
	Repo        bookingsRepo.Repository
	Store       SessionStore
	Reminders   ReminderScheduler
	Horizon     int              // snapshot lookahead in days
	LoyaltyTier string           // applied to every quote; no per-user profiles yet
	Clock       func() time.Time // overridable in tests
}

func (s *DefaultSessionService) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// ResolveRequest runs one conversation turn: load the confirmed-bookings
// snapshot, resolve the text, price each outcome, and cache the session.
func (s *DefaultSessionService) ResolveRequest(ctx context.Context, userID, text string) (*models.ResolutionSession, error) {
	now := s.now()
	horizon := s.Horizon
	if horizon <= 0 {
		horizon = 14
	}
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 0, horizon).Format("2006-01-02")

	snapshot, err := s.Repo.ListConfirmedInRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking snapshot: %w", err)
	}

	outcomes, err := s.Engine.Resolve(text, now, snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve request: %w", err)
	}
	for i := range outcomes {
		out := &outcomes[i]
		if out.Request.Service.Resolved() {
			quote := Quote(out.Request.Service.Value, out.Report.OverallConfidence*100, out.Request.Location.Value, s.LoyaltyTier)
			out.Quote = &quote
		}
	}

	session := &models.ResolutionSession{
		SessionID: uuid.New().String(),
		UserID:    userID,
		RawText:   text,
		Outcomes:  outcomes,
		CreatedAt: now,
	}
	if err := s.Store.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store resolution session: %w", err)
	}
	return session, nil
}

// ConfirmOutcome finalizes one outcome of a session: re-check the chosen
// slot against a fresh snapshot, persist the booking, schedule a reminder
// and drop the session.
func (s *DefaultSessionService) ConfirmOutcome(ctx context.Context, sessionID string, outcomeIndex int) (*models.ExistingBooking, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSessionNotFound, err)
	}
	if outcomeIndex < 0 || outcomeIndex >= len(session.Outcomes) {
		return nil, fmt.Errorf("outcome index %d out of range", outcomeIndex)
	}
	outcome := session.Outcomes[outcomeIndex]
	req := outcome.Request
	if !req.Complete() || req.Time.Window == nil {
		return nil, ErrOutcomeIncomplete
	}
	window := *req.Time.Window

	// Re-check against current bookings; the snapshot used at resolve time
	// may be stale by now.
	existing, err := s.Repo.ListConfirmedInRange(ctx, window.Date, window.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to re-check availability: %w", err)
	}
	for _, b := range existing {
		if locationsCollide(b.Location, req.Location.Value) && window.Overlaps(b.Window()) {
			return nil, fmt.Errorf("%w: overlaps booking %s", ErrSlotTaken, b.ID)
		}
	}

	record := models.ExistingBooking{
		ID:        "bkg_" + uuidHex(),
		UserID:    session.UserID,
		Service:   req.Service.Value,
		Date:      window.Date,
		Start:     window.Start,
		End:       window.End,
		Location:  req.Location.Value,
		Status:    models.BookingStatusConfirmed,
		CreatedAt: s.now(),
	}
	if outcome.Quote != nil {
		record.Price = outcome.Quote.Amount
		record.Currency = outcome.Quote.Currency
	}
	if err := s.Repo.Create(ctx, &record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(record); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("bookingID", record.ID), zap.Error(err))
		}
	}

	if err := s.Store.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to drop resolution session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return &record, nil
}

// CancelSession discards an in-flight resolution session.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Store.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel resolution session: %w", err)
	}
	return nil
}

// ListBookings returns a user's bookings, newest first.
func (s *DefaultSessionService) ListBookings(ctx context.Context, userID string) ([]models.ExistingBooking, error) {
	bookings, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// CancelBooking cancels a persisted booking.
func (s *DefaultSessionService) CancelBooking(ctx context.Context, bookingID string) error {
	if err := s.Repo.Cancel(ctx, bookingID); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}

// locationsCollide matches the slot engine's conservative rule: a booking
// with no recorded location blocks every location.
func locationsCollide(booked, requested string) bool {
	return booked == "" || requested == "" || booked == requested
}

func uuidHex() string {
	id := uuid.New()
	return fmt.Sprintf("%x", id[:])
}
