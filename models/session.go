package models

import "time"

// ResolutionSession holds resolved outcomes between the resolve and confirm
// phases of a conversation turn. Stored in Redis with a short TTL.
type ResolutionSession struct {
	SessionID string              `json:"sessionId"`
	UserID    string              `json:"userId"`
	RawText   string              `json:"rawText"`
	Outcomes  []ResolutionOutcome `json:"outcomes"`
	CreatedAt time.Time           `json:"createdAt"`
}

// ReminderPayload is the task payload for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	Service   string `json:"service"`
	Date      string `json:"date"`
	Start     int    `json:"start"`
	Location  string `json:"location"`
}
