package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"fixmate/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func TestQueueNotifier_EnqueuesPayload(t *testing.T) {
	enqueuer := &recordingEnqueuer{}
	when := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)

	err := NewQueueNotifier(enqueuer).NotifyBookingPending(context.Background(), &models.Booking{
		ID:            "b1",
		CustomerID:    "c1",
		WorkerID:      "w1",
		Title:         "plumber - leak",
		ScheduledDate: when,
	})
	require.NoError(t, err)
	require.Len(t, enqueuer.tasks, 1)
	assert.Equal(t, TypeBookingPending, enqueuer.tasks[0].Type())

	var payload BookingPendingPayload
	require.NoError(t, json.Unmarshal(enqueuer.tasks[0].Payload(), &payload))
	assert.Equal(t, "b1", payload.BookingID)
	assert.Equal(t, "w1", payload.WorkerID)
	assert.True(t, when.Equal(payload.ScheduledDate))
}

func TestQueueNotifier_EnqueueError(t *testing.T) {
	queueErr := errors.New("redis down")
	err := NewQueueNotifier(&recordingEnqueuer{err: queueErr}).NotifyBookingPending(context.Background(), &models.Booking{ID: "b1"})
	assert.ErrorIs(t, err, queueErr)
}
