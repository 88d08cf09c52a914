package matching

import (
	"context"
	"fmt"
	"strings"
	"time"

	bookingRepo "fixmate/database/repository/booking"
	"fixmate/metrics"
	"fixmate/models"

	"go.uber.org/zap"
)

const titleDescriptionLimit = 50

// BookingNotifier is told about every booking the materializer creates.
type BookingNotifier interface {
	NotifyBookingPending(ctx context.Context, booking *models.Booking) error
}

type BookingMaterializer struct {
	Bookings  bookingRepo.BookingRepository
	Estimator *CostEstimator
	// Notifier is optional; failures are logged and never fail the booking.
	Notifier BookingNotifier
	Logger   *zap.Logger
	Now      func() time.Time
}

// CreateBooking persists a PENDING booking for the confirmed worker. Store failures are
// returned as *BookingCreationError and are not retried.
func (m *BookingMaterializer) CreateBooking(
	ctx context.Context,
	customerID string,
	worker models.WorkerCandidate,
	intent models.BookingIntent,
	scheduledDate *time.Time,
	notes string,
) (*models.Booking, error) {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}

	when := scheduleFor(intent.PreferredTimeframe, now())
	if scheduledDate != nil {
		when = *scheduledDate
	}
	estimate := m.Estimator.Estimate(worker, intent)

	payload := &models.Booking{
		CustomerID:      customerID,
		WorkerID:        worker.ID,
		ServiceCategory: intent.ServiceType,
		Title:           bookingTitle(intent),
		Description:     bookingDescription(intent, notes),
		ScheduledDate:   when,
		Budget:          estimate.MaxCost,
		Status:          models.BookingStatusPending,
	}

	booking, err := m.Bookings.InsertBooking(ctx, payload)
	if err != nil {
		return nil, &BookingCreationError{Code: "bookingCreationFailed", Message: "failed to create booking", Err: err}
	}
	metrics.BookingsCreated.Inc()
	m.logger().Info("CreateBooking: booking created",
		zap.String("bookingId", booking.ID),
		zap.String("workerId", booking.WorkerID),
		zap.Time("scheduledDate", booking.ScheduledDate))

	if m.Notifier != nil {
		if err := m.Notifier.NotifyBookingPending(ctx, booking); err != nil {
			m.logger().Warn("CreateBooking: failed to queue booking notification",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
	return booking, nil
}

func (m *BookingMaterializer) logger() *zap.Logger {
	if m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

// scheduleFor derives a visit time from the preferred timeframe.
func scheduleFor(timeframe string, now time.Time) time.Time {
	switch timeframe {
	case models.TimeframeToday:
		return now
	case models.TimeframeThisWeek:
		return now.Add(48 * time.Hour)
	default:
		return now.Add(24 * time.Hour)
	}
}

func bookingTitle(intent models.BookingIntent) string {
	desc := []rune(strings.TrimSpace(intent.ProblemDescription))
	if len(desc) > titleDescriptionLimit {
		desc = desc[:titleDescriptionLimit]
	}
	return fmt.Sprintf("%s - %s", intent.ServiceType, strings.TrimSpace(string(desc)))
}

func bookingDescription(intent models.BookingIntent, notes string) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimSpace(intent.ProblemDescription))
	sb.WriteString("\n\nUrgency: ")
	sb.WriteString(intent.Urgency)
	if notes = strings.TrimSpace(notes); notes != "" {
		sb.WriteString("\nNotes: ")
		sb.WriteString(notes)
	}
	return sb.String()
}
