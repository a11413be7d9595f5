package bookingsRepo

import (
	"context"
	"fmt"
	"time"

	"concierge/database"
	"concierge/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements Repository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() Repository {
	db := database.MongoClient.Database("concierge")
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.ExistingBooking) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.bookingColl.InsertOne(ctxWithTimeout, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.ExistingBooking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.ExistingBooking
	if err := repo.bookingColl.FindOne(ctxWithTimeout, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// ListConfirmedInRange returns all confirmed bookings dated within [from, to].
func (repo *MongoBookingRepo) ListConfirmedInRange(ctx context.Context, from, to string) ([]models.ExistingBooking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.BookingStatusConfirmed,
		"date":   bson.M{"$gte": from, "$lte": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := repo.bookingColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings in range: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.ExistingBooking
	for cursor.Next(ctxWithTimeout) {
		var b models.ExistingBooking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// ListByUser returns all bookings owned by the given user, newest first.
func (repo *MongoBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.ExistingBooking, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.bookingColl.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var bookings []models.ExistingBooking
	for cursor.Next(ctxWithTimeout) {
		var b models.ExistingBooking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// Cancel marks a booking as cancelled if its timeslot has not started yet.
func (repo *MongoBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.ExistingBooking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctxWithTimeout, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return fmt.Errorf("booking with id %s not found", bookingID)
		}
		return fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}

	bookingDate, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	startTime := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, time.Local).
		Add(time.Duration(booking.Start) * time.Minute)
	if time.Now().After(startTime) {
		return fmt.Errorf("cannot cancel booking %s: timeslot has already started", bookingID)
	}

	update := bson.M{"$set": bson.M{"status": models.BookingStatusCancelled}}
	result, err := repo.bookingColl.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error cancelling booking %s: %w", bookingID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s could not be cancelled", bookingID)
	}
	return nil
}
