package bookingRepo

import (
	"context"
	"testing"
	"time"

	"fixmate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoBookingRepo_InsertBooking(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("assigns identity and createdAt", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.Coll)
		repo.now = func() time.Time { return fixed }
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		payload := &models.Booking{CustomerID: "c1", WorkerID: "w1", Status: models.BookingStatusPending}
		created, err := repo.InsertBooking(context.Background(), payload)
		require.NoError(mt, err)

		assert.NotEmpty(mt, created.ID)
		assert.Equal(mt, fixed, created.CreatedAt)
		assert.Equal(mt, "c1", created.CustomerID)
		assert.Empty(mt, payload.ID, "caller payload must not be mutated")
	})

	mt.Run("write error propagates", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		_, err := repo.InsertBooking(context.Background(), &models.Booking{})
		assert.Error(mt, err)
	})
}
