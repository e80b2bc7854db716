// Package notifier turns lifecycle events into emails and websocket pushes.
// Delivery is best effort: a failed channel is logged and the event is
// considered handled.
package notifier

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/domain/models"
)

var subjects = map[domain.EventType]string{
	domain.EventBookingCreated:     "Your booking has been received",
	domain.EventBookingCancelled:   "Your booking has been cancelled",
	domain.EventPaymentSucceeded:   "Payment received",
	domain.EventPaymentFailed:      "Payment failed",
	domain.EventRefundCompleted:    "Your refund has been sent",
	domain.EventPayoutCompleted:    "Your payout has been sent",
	domain.EventPayoutFailed:       "Your payout could not be completed",
	domain.EventFundsDistributed:   "Funds added to your wallet",
	domain.EventDistributionFailed: "Wallet distribution failed",
}

type Notifier struct {
	email  interfaces.NotificationClient
	hub    interfaces.WebSocketManager
	logger zerolog.Logger
}

// New accepts a nil hub when websocket pushes are disabled.
func New(email interfaces.NotificationClient, hub interfaces.WebSocketManager, logger zerolog.Logger) *Notifier {
	return &Notifier{
		email:  email,
		hub:    hub,
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

// Handle delivers event to each recipient. It never returns an error.
func (n *Notifier) Handle(ctx context.Context, event domain.Event) error {
	subject, ok := subjects[event.Type]
	if !ok {
		n.logger.Debug().Str("event_type", string(event.Type)).Msg("No template for event, skipping")
		return nil
	}

	seen := make(map[string]bool, len(event.Recipients))
	for _, recipient := range event.Recipients {
		if recipient == "" || seen[recipient] {
			continue
		}
		seen[recipient] = true

		n.sendEmail(ctx, event, recipient, subject)
		n.push(event, recipient)
	}
	return nil
}

func (n *Notifier) sendEmail(ctx context.Context, event domain.Event, recipient, subject string) {
	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	if event.ReservationID != "" {
		data["reservation_id"] = event.ReservationID
	}
	if event.TransactionID != "" {
		data["transaction_id"] = event.TransactionID
	}

	err := n.email.Send(ctx, domain.Notification{
		RecipientID: recipient,
		Template:    string(event.Type),
		Subject:     subject,
		Data:        data,
	})
	if err != nil {
		n.logger.Warn().
			Err(err).
			Str("event_type", string(event.Type)).
			Str("event_id", event.ID).
			Str("recipient_id", recipient).
			Msg("Failed to send notification email")
	}
}

func (n *Notifier) push(event domain.Event, recipient string) {
	if n.hub == nil {
		return
	}
	update := &models.StatusUpdate{
		Type:          string(event.Type),
		UserID:        recipient,
		ReservationID: event.ReservationID,
		TransactionID: event.TransactionID,
		Status:        event.Data["status"],
		Message:       subjects[event.Type],
		Data:          event.Data,
		Timestamp:     event.OccurredAt,
	}
	if err := n.hub.SendToUser(recipient, update); err != nil {
		n.logger.Warn().
			Err(err).
			Str("event_type", string(event.Type)).
			Str("recipient_id", recipient).
			Msg("Failed to push status update")
	}
}
