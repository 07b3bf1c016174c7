package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/service"
)

// StartNotificationWorker subscribes the notification handlers and, when a
// follow-up worker is given, starts its schedule. The returned stop function
// waits for a running scan to finish.
func StartNotificationWorker(notificationService *service.NotificationService, followUps *FollowUpWorker, schedule string, logger *zap.Logger) (stop func(), err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notificationService != nil {
		notificationService.RegisterHandlers()
	}
	if followUps == nil {
		return func() {}, nil
	}
	if err := followUps.Start(schedule); err != nil {
		return nil, err
	}
	logger.Info("follow-up reminders scheduled", zap.String("cron", schedule))
	return followUps.Stop, nil
}
