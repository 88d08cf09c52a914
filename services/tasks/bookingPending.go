package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixmate/models"

	"github.com/hibiken/asynq"
)

const TypeBookingPending = "booking:pending"

// BookingPendingPayload is what the notification worker needs to alert the worker.
type BookingPendingPayload struct {
	BookingID     string    `json:"bookingId"`
	CustomerID    string    `json:"customerId"`
	WorkerID      string    `json:"workerId"`
	Title         string    `json:"title"`
	ScheduledDate time.Time `json:"scheduledDate"`
}

func NewBookingPendingTask(booking *models.Booking) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(BookingPendingPayload{
		BookingID:     booking.ID,
		CustomerID:    booking.CustomerID,
		WorkerID:      booking.WorkerID,
		Title:         booking.Title,
		ScheduledDate: booking.ScheduledDate,
	})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingPending, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
		// One notification per booking even if creation is reported twice.
		asynq.TaskID(TypeBookingPending + ":" + booking.ID),
	}

	return task, opts, nil
}

// Enqueuer is the subset of *asynq.Client used to queue tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueNotifier queues a booking:pending task for every created booking.
type QueueNotifier struct {
	client Enqueuer
}

func NewQueueNotifier(client Enqueuer) *QueueNotifier {
	return &QueueNotifier{client: client}
}

func (n *QueueNotifier) NotifyBookingPending(ctx context.Context, booking *models.Booking) error {
	task, opts, err := NewBookingPendingTask(booking)
	if err != nil {
		return fmt.Errorf("failed to build booking task: %w", err)
	}
	if _, err := n.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking task: %w", err)
	}
	return nil
}
