package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"concierge/models"
	"concierge/services/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 08:00; "tomorrow" is 2026-03-03.
var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type fakeRepo struct {
	bookings  []models.ExistingBooking
	createErr error
}

func (r *fakeRepo) Create(ctx context.Context, booking *models.ExistingBooking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings = append(r.bookings, *booking)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, bookingID string) (*models.ExistingBooking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == bookingID {
			return &r.bookings[i], nil
		}
	}
	return nil, errors.New("booking not found")
}

func (r *fakeRepo) ListConfirmedInRange(ctx context.Context, from, to string) ([]models.ExistingBooking, error) {
	var out []models.ExistingBooking
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusConfirmed && b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListByUser(ctx context.Context, userID string) ([]models.ExistingBooking, error) {
	var out []models.ExistingBooking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) Cancel(ctx context.Context, bookingID string) error {
	for i := range r.bookings {
		if r.bookings[i].ID == bookingID {
			r.bookings[i].Status = models.BookingStatusCancelled
			return nil
		}
	}
	return errors.New("booking not found")
}

type fakeStore struct {
	sessions map[string]*models.ResolutionSession
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: make(map[string]*models.ResolutionSession)}
}

func (s *fakeStore) Get(ctx context.Context, sessionID string) (*models.ResolutionSession, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, errors.New("redis: nil")
	}
	return session, nil
}

func (s *fakeStore) Set(ctx context.Context, session *models.ResolutionSession) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

type fakeScheduler struct {
	scheduled []models.ExistingBooking
}

func (s *fakeScheduler) ScheduleReminder(booking models.ExistingBooking) error {
	s.scheduled = append(s.scheduled, booking)
	return nil
}

func newTestService(repo *fakeRepo) (*DefaultSessionService, *fakeStore, *fakeScheduler) {
	store := newFakeStore()
	sched := &fakeScheduler{}
	svc := &DefaultSessionService{
		Engine:    engine.NewDefaultResolutionEngine(engine.DefaultConfig()),
		Repo:      repo,
		Store:     store,
		Reminders: sched,
		Horizon:   14,
		Clock:     func() time.Time { return testNow },
	}
	return svc, store, sched
}

func TestResolveRequest_StoresSessionWithQuote(t *testing.T) {
	svc, store, _ := newTestService(&fakeRepo{})
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "Book a doctor tomorrow at 9 am in delhi")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "user-1", session.UserID)
	require.Len(t, session.Outcomes, 1)

	out := session.Outcomes[0]
	require.NotNil(t, out.Quote)
	assert.Equal(t, "doctor", out.Quote.Service)
	// Overall confidence 0.9 lands in the 15% tier; delhi is priced in INR.
	assert.Equal(t, 15.0, out.Quote.DiscountPct)
	assert.Equal(t, "INR", out.Quote.Currency)
	assert.InDelta(t, 6970.0, out.Quote.Amount, 0.01)

	stored, err := store.Get(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, stored.SessionID)
}

func TestResolveRequest_EmptyText(t *testing.T) {
	svc, _, _ := newTestService(&fakeRepo{})
	_, err := svc.ResolveRequest(context.Background(), "user-1", "  ")
	assert.ErrorIs(t, err, engine.ErrEmptyInput)
}

func TestConfirmOutcome_PersistsBookingAndSchedulesReminder(t *testing.T) {
	repo := &fakeRepo{}
	svc, store, sched := newTestService(repo)
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "Book a doctor tomorrow at 9 am in delhi")
	require.NoError(t, err)

	record, err := svc.ConfirmOutcome(ctx, session.SessionID, 0)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.True(t, strings.HasPrefix(record.ID, "bkg_"))
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, "doctor", record.Service)
	assert.Equal(t, "2026-03-03", record.Date)
	assert.Equal(t, 540, record.Start)
	assert.Equal(t, 570, record.End)
	assert.Equal(t, "delhi", record.Location)
	assert.Equal(t, models.BookingStatusConfirmed, record.Status)
	assert.Equal(t, "INR", record.Currency)

	require.Len(t, repo.bookings, 1)
	require.Len(t, sched.scheduled, 1)
	assert.Equal(t, record.ID, sched.scheduled[0].ID)

	// Session is consumed by confirmation.
	_, err = store.Get(ctx, session.SessionID)
	assert.Error(t, err)
}

func TestConfirmOutcome_IncompleteOutcome(t *testing.T) {
	svc, _, _ := newTestService(&fakeRepo{})
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "I need a haircut")
	require.NoError(t, err)

	_, err = svc.ConfirmOutcome(ctx, session.SessionID, 0)
	assert.ErrorIs(t, err, ErrOutcomeIncomplete)
}

func TestConfirmOutcome_SlotTakenBetweenResolveAndConfirm(t *testing.T) {
	repo := &fakeRepo{}
	svc, _, _ := newTestService(repo)
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "Book a doctor tomorrow at 9 am in delhi")
	require.NoError(t, err)

	// Someone else takes the slot before confirmation.
	repo.bookings = append(repo.bookings, models.ExistingBooking{
		ID: "bkg_other", UserID: "user-2", Service: "doctor",
		Date: "2026-03-03", Start: 530, End: 600, Location: "delhi",
		Status: models.BookingStatusConfirmed,
	})

	_, err = svc.ConfirmOutcome(ctx, session.SessionID, 0)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestConfirmOutcome_BookingWithoutLocationBlocks(t *testing.T) {
	repo := &fakeRepo{}
	svc, _, _ := newTestService(repo)
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "Book a doctor tomorrow at 9 am in delhi")
	require.NoError(t, err)

	// A legacy record with no location blocks every location.
	repo.bookings = append(repo.bookings, models.ExistingBooking{
		ID: "bkg_legacy", UserID: "user-2", Service: "spa",
		Date: "2026-03-03", Start: 540, End: 630,
		Status: models.BookingStatusConfirmed,
	})

	_, err = svc.ConfirmOutcome(ctx, session.SessionID, 0)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestConfirmOutcome_UnknownSession(t *testing.T) {
	svc, _, _ := newTestService(&fakeRepo{})
	_, err := svc.ConfirmOutcome(context.Background(), "nope", 0)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmOutcome_IndexOutOfRange(t *testing.T) {
	svc, _, _ := newTestService(&fakeRepo{})
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "Book a doctor tomorrow at 9 am in delhi")
	require.NoError(t, err)

	_, err = svc.ConfirmOutcome(ctx, session.SessionID, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestCancelSession(t *testing.T) {
	svc, store, _ := newTestService(&fakeRepo{})
	ctx := context.Background()

	session, err := svc.ResolveRequest(ctx, "user-1", "Book a doctor tomorrow at 9 am in delhi")
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, session.SessionID))
	_, err = store.Get(ctx, session.SessionID)
	assert.Error(t, err)
}

func TestListAndCancelBookings(t *testing.T) {
	repo := &fakeRepo{bookings: []models.ExistingBooking{
		{ID: "bkg_1", UserID: "user-1", Date: "2026-03-03", Start: 540, End: 600, Status: models.BookingStatusConfirmed},
		{ID: "bkg_2", UserID: "user-2", Date: "2026-03-03", Start: 600, End: 660, Status: models.BookingStatusConfirmed},
	}}
	svc, _, _ := newTestService(repo)
	ctx := context.Background()

	mine, err := svc.ListBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "bkg_1", mine[0].ID)

	require.NoError(t, svc.CancelBooking(ctx, "bkg_1"))
	assert.Equal(t, models.BookingStatusCancelled, repo.bookings[0].Status)

	err = svc.CancelBooking(ctx, "bkg_missing")
	assert.Error(t, err)
}
