package models

import "time"

// Booking status values. A booking is immutable once confirmed, except for
// cancellation.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// ExistingBooking represents a persisted booking record. Inside the
// resolution engine these are a read-only snapshot; only the persistence
// layer creates or mutates them.
type ExistingBooking struct {
	ID        string    `bson:"id" json:"id"` // portable identifier, "bkg_" + uuid hex
	UserID    string    `bson:"user_id" json:"user_id"`
	Service   string    `bson:"service" json:"service"`
	Date      string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	Start     int       `bson:"start" json:"start"`
	End       int       `bson:"end" json:"end"`
	Location  string    `bson:"location" json:"location"`
	Status    string    `bson:"status" json:"status"`
	Price     float64   `bson:"price,omitempty" json:"price,omitempty"`
	Currency  string    `bson:"currency,omitempty" json:"currency,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Window returns the booking's occupied time window.
func (b ExistingBooking) Window() TimeWindow {
	return TimeWindow{Date: b.Date, Start: b.Start, End: b.End}
}
