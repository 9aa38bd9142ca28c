package worker

import (
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/service"
)

// StartNotificationWorker wires the notification handlers into the event
// stream. Registration, posting and application events fan out from here.
func StartNotificationWorker(notificationService *service.NotificationService, logger *zap.Logger) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
	logger.Info("notification worker started")
}
