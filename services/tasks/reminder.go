package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"concierge/config"
	"concierge/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds the asynq task for a booking reminder, scheduled to
// run at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues reminder tasks on the asynq queue.
type Scheduler struct {
	client  *asynq.Client
	leadMin int
}

// NewScheduler constructs a Scheduler backed by the configured Redis queue.
func NewScheduler() *Scheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &Scheduler{
		client:  client,
		leadMin: config.AppConfig.ReminderLeadMin,
	}
}

// ScheduleReminder enqueues a reminder to fire shortly before the booking
// starts. Bookings already inside the lead window get no reminder.
func (s *Scheduler) ScheduleReminder(booking models.ExistingBooking) error {
	date, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	startTime := date.Add(time.Duration(booking.Start) * time.Minute)
	fireAt := startTime.Add(-time.Duration(s.leadMin) * time.Minute)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		Service:   booking.Service,
		Date:      booking.Date,
		Start:     booking.Start,
		Location:  booking.Location,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", booking.ID, err)
	}
	return nil
}

// Close releases the underlying queue client.
func (s *Scheduler) Close() error {
	return s.client.Close()
}
