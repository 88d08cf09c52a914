package notification

import (
	"context"

	"go.uber.org/zap"
)

// NotificationService delivers alerts to workers about new bookings.
type NotificationService interface {
	SendWorkerNotification(ctx context.Context, workerID, title, body string, data map[string]string) error
}

// LogNotificationService records notifications in the service log. It stands in for a push
// provider until workers have device registrations.
type LogNotificationService struct {
	logger *zap.Logger
}

func NewLogNotificationService(logger *zap.Logger) *LogNotificationService {
	return &LogNotificationService{logger: logger}
}

func (s *LogNotificationService) SendWorkerNotification(_ context.Context, workerID, title, body string, data map[string]string) error {
	fields := []zap.Field{
		zap.String("workerId", workerID),
		zap.String("title", title),
		zap.String("body", body),
	}
	for k, v := range data {
		fields = append(fields, zap.String(k, v))
	}
	s.logger.Info("SendWorkerNotification: notification sent", fields...)
	return nil
}
