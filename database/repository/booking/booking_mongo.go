package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"fixmate/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository persists bookings created by the intake flow.
type BookingRepository interface {
	// InsertBooking stores the payload and returns it with identity and createdAt assigned.
	InsertBooking(ctx context.Context, payload *models.Booking) (*models.Booking, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoBookingRepo creates a repository over the "bookings" collection.
func NewMongoBookingRepo(coll *mongo.Collection) *MongoBookingRepo {
	return &MongoBookingRepo{coll: coll, now: time.Now}
}

func (r *MongoBookingRepo) InsertBooking(ctx context.Context, payload *models.Booking) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	booking := *payload
	booking.ID = uuid.New().String()
	booking.CreatedAt = r.now().UTC()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("error creating booking: %w", err)
	}
	return &booking, nil
}
