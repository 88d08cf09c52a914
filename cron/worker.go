package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixmate/config"
	"fixmate/services/notification"
	"fixmate/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection shared by the API (producer) and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitBookingWorker starts the booking:pending consumer in the background and returns the
// server so the caller can shut it down.
func InitBookingWorker(notifSvc notification.NotificationService, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingPending, handleBookingPendingTask(notifSvc, logger))

	go func() {
		logger.Info("BookingWorker: starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("BookingWorker: failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("BookingWorker: max retry attempts reached, booking notifications are disabled")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleBookingPendingTask(notifSvc notification.NotificationService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BookingPendingPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("BookingPendingHandler: invalid payload", zap.Error(err))
			return fmt.Errorf("invalid booking payload: %v: %w", err, asynq.SkipRetry)
		}

		body := fmt.Sprintf("New booking request for %s", p.ScheduledDate.Format("Mon 2 Jan 15:04"))
		data := map[string]string{
			"bookingId":  p.BookingID,
			"customerId": p.CustomerID,
		}
		if err := notifSvc.SendWorkerNotification(ctx, p.WorkerID, p.Title, body, data); err != nil {
			logger.Warn("BookingPendingHandler: failed to send notification",
				zap.String("bookingId", p.BookingID), zap.Error(err))
			return err
		}
		return nil
	}
}
