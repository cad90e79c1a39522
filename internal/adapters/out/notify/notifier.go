// Package notify implements the outbound notification port. Notifications
// fan out to structured logs, the Kafka event stream and a Telegram channel
// for merchant alerts. Every sink is best-effort: a failed send is logged
// and never surfaces to the caller, so notification trouble can not roll
// back a committed status transition.
package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// EventPublisher publishes a status change to the event stream.
type EventPublisher interface {
	Publish(notification ports.Notification) error
}

// MerchantAlerter pushes an alert to the merchant channel.
type MerchantAlerter interface {
	Alert(notification ports.Notification) error
}

// CompositeNotifier dispatches notifications to all configured sinks.
// Publisher and alerter are optional; a nil sink is skipped.
type CompositeNotifier struct {
	logger    *slog.Logger
	publisher EventPublisher
	alerter   MerchantAlerter
}

// NewCompositeNotifier creates a notifier that logs every notification and
// forwards it to the configured sinks. Pass nil for sinks that are not
// configured in the environment.
func NewCompositeNotifier(
	logger *slog.Logger,
	publisher EventPublisher,
	alerter MerchantAlerter,
) *CompositeNotifier {
	return &CompositeNotifier{
		logger:    logger.With("component", "notifier"),
		publisher: publisher,
		alerter:   alerter,
	}
}

// Notify dispatches one notification to every sink.
func (n *CompositeNotifier) Notify(ctx context.Context, notification ports.Notification) {
	n.logger.InfoContext(ctx, "Order status changed",
		"order_id", notification.OrderID.String(),
		"recipient", notification.Recipient.String(),
		"from", notification.From.String(),
		"to", notification.To.String(),
		"reason", notification.Reason,
	)

	if n.publisher != nil {
		if err := n.publisher.Publish(notification); err != nil {
			n.logger.ErrorContext(ctx, "Failed to publish status change event",
				"order_id", notification.OrderID.String(), "error", err)
		}
	}

	if n.alerter != nil && notification.Recipient == ports.MerchantRecipient {
		if err := n.alerter.Alert(notification); err != nil {
			n.logger.ErrorContext(ctx, "Failed to send merchant alert",
				"order_id", notification.OrderID.String(), "error", err)
		}
	}
}
