package notification

import (
	"context"

	"concierge/models"
)

// NotificationService defines methods for delivering booking reminders to
// the user. The default implementation writes structured logs; swapping in a
// push or email sender only requires a new implementation of this interface.
type NotificationService interface {
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}
