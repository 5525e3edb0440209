package service

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/labtrack/labtrack-service/internal/events"
)

// EventPublisher forwards encoded events to an external channel.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// NotificationService logs domain events and fans them out to subscribers
// outside the process.
type NotificationService struct {
	dispatcher events.Dispatcher
	publisher  EventPublisher
	channel    string
	logger     *zap.Logger
}

// NewNotificationService creates the service. A nil publisher disables
// fan-out.
func NewNotificationService(dispatcher events.Dispatcher, publisher EventPublisher, channel string, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		publisher:  publisher,
		channel:    channel,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, eventType := range []events.EventType{
		events.EventTicketCreated,
		events.EventTicketStatusChanged,
		events.EventTicketAssigned,
		events.EventTicketCommentAdded,
		events.EventAssetCreated,
		events.EventAssetDeleted,
	} {
		n.dispatcher.Subscribe(eventType, n.handle)
	}
}

// handle never fails the originating request; publish errors are logged.
func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("resource_id", event.ResourceID),
		zap.String("actor_id", event.Actor.UserID),
		zap.Any("payload", event.Payload))

	if n.publisher == nil || n.channel == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Warn("encode event", zap.String("event_id", event.ID), zap.Error(err))
		return nil
	}
	if err := n.publisher.Publish(ctx, n.channel, body); err != nil {
		n.logger.Warn("publish event",
			zap.String("channel", n.channel),
			zap.String("event_id", event.ID),
			zap.Error(err))
	}
	return nil
}
