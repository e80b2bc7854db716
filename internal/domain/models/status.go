package models

import (
	"time"
)

// StatusUpdate is pushed to websocket clients when a booking, payment or
// wallet changes state.
type StatusUpdate struct {
	Type          string      `json:"type"`
	UserID        string      `json:"-"`
	ReservationID string      `json:"reservation_id,omitempty"`
	TransactionID string      `json:"transaction_id,omitempty"`
	Status        string      `json:"status"`
	Message       string      `json:"message,omitempty"`
	Data          interface{} `json:"data,omitempty"`
	Timestamp     time.Time   `json:"timestamp"`
}
