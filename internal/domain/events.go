package domain

import "time"

type EventType string

const (
	EventBookingCreated     EventType = "booking.created"
	EventBookingCancelled   EventType = "booking.cancelled"
	EventPaymentSucceeded   EventType = "payment.succeeded"
	EventPaymentFailed      EventType = "payment.failed"
	EventRefundCompleted    EventType = "refund.completed"
	EventPayoutCompleted    EventType = "payout.completed"
	EventPayoutFailed       EventType = "payout.failed"
	EventFundsDistributed   EventType = "wallet.distributed"
	EventDistributionFailed EventType = "wallet.distribution_failed"
)

// Event is emitted after the owning state change has committed.
type Event struct {
	ID            string            `json:"id"`
	Type          EventType         `json:"type"`
	ReservationID string            `json:"reservation_id,omitempty"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Recipients    []string          `json:"recipients"`
	Data          map[string]string `json:"data,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// PartitionKey groups events of one booking or transaction on the broker.
func (e Event) PartitionKey() string {
	if e.ReservationID != "" {
		return e.ReservationID
	}
	return e.TransactionID
}

type Notification struct {
	RecipientID string            `json:"recipient_id"`
	Template    string            `json:"template"`
	Subject     string            `json:"subject"`
	Data        map[string]string `json:"data,omitempty"`
}
