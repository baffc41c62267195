package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fieldops/installation-service/internal/config"
	"github.com/fieldops/installation-service/internal/events"
)

// NotificationService emits notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
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
	n.dispatcher.Subscribe(events.EventStatusCreated, n.handleStatusCreated)
	n.dispatcher.Subscribe(events.EventInstallationCreated, n.handleInstallationCreated)
	n.dispatcher.Subscribe(events.EventInstallationStatusChanged, n.handleInstallationStatusChanged)
}

func (n *NotificationService) handleStatusCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("StatusCreated", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInstallationCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("InstallationCreated", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInstallationStatusChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("InstallationStatusChanged", zap.String("user_id", event.UserID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// sendWebhookNotificationStub logs instead of calling the webhook; delivery is
// out of scope until an endpoint is configured.
func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Info("webhook notification",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
	)
}
