package notification

import (
	"context"

	"concierge/models"
	"concierge/utils"

	"go.uber.org/zap"
)

// DefaultNotificationService logs reminders through the application logger.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

// SendBookingReminder emits the reminder for a confirmed booking.
func (s *DefaultNotificationService) SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error {
	logger := utils.GetLogger()
	logger.Info("booking reminder",
		zap.String("bookingId", payload.BookingID),
		zap.String("userId", payload.UserID),
		zap.String("service", payload.Service),
		zap.String("date", payload.Date),
		zap.String("start", models.MinutesToClock(payload.Start)),
		zap.String("location", payload.Location),
	)
	return nil
}
