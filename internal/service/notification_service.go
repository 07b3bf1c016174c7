package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/showroom-crm/internal/config"
	"github.com/spec-kit/showroom-crm/internal/events"
)

// NotificationService emits notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventInteractionCreated, n.logOnly)
	n.dispatcher.Subscribe(events.EventInteractionEscalated, n.notifyByWebhook)
	n.dispatcher.Subscribe(events.EventEscalationStatusChanged, n.notifyByWebhook)
	n.dispatcher.Subscribe(events.EventAccountCreated, n.notifyByEmail)
	n.dispatcher.Subscribe(events.EventAccountStatusChanged, n.notifyByEmail)
	n.dispatcher.Subscribe(events.EventFollowUpDue, n.notifyByEmail)
}

func (n *NotificationService) logOnly(_ context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("subject_id", event.SubjectID),
		zap.String("actor_id", event.Actor.ID),
		zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) notifyByWebhook(ctx context.Context, event events.Event) error {
	_ = n.logOnly(ctx, event)
	n.sendWebhook(event)
	return nil
}

func (n *NotificationService) notifyByEmail(ctx context.Context, event events.Event) error {
	_ = n.logOnly(ctx, event)
	n.sendEmail(event)
	return nil
}

func (n *NotificationService) sendEmail(event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotification",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhook(event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
