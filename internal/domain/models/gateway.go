package models

import (
	"time"

	"github.com/tuncanbit/bss/internal/domain"
)

type Payer struct {
	Type    string  `json:"type"`
	Address Address `json:"address"`
}

type Address struct {
	Value string `json:"value"`
}

type DepositRequest struct {
	DepositID            string                 `json:"depositId"`
	Amount               string                 `json:"amount"`
	Currency             string                 `json:"currency"`
	Correspondent        string                 `json:"correspondent"`
	Payer                Payer                  `json:"payer"`
	CustomerTimestamp    time.Time              `json:"customerTimestamp"`
	StatementDescription string                 `json:"statementDescription,omitempty"`
	Metadata             []domain.MetadataField `json:"metadata,omitempty"`
}

type PayoutRequest struct {
	PayoutID             string                 `json:"payoutId"`
	Amount               string                 `json:"amount"`
	Currency             string                 `json:"currency"`
	Correspondent        string                 `json:"correspondent"`
	Recipient            Payer                  `json:"recipient"`
	CustomerTimestamp    time.Time              `json:"customerTimestamp"`
	StatementDescription string                 `json:"statementDescription,omitempty"`
	Metadata             []domain.MetadataField `json:"metadata,omitempty"`
}

type RefundRequest struct {
	RefundID  string                 `json:"refundId"`
	DepositID string                 `json:"depositId"`
	Amount    string                 `json:"amount,omitempty"`
	Metadata  []domain.MetadataField `json:"metadata,omitempty"`
}

type FailureReason struct {
	Code    string `json:"failureCode"`
	Message string `json:"failureMessage"`
}

// GatewayTransaction is the provider's view of a deposit, payout or refund,
// returned both as the initiation acknowledgement and by status queries.
type GatewayTransaction struct {
	ID                    string         `json:"id"`
	Status                string         `json:"status"`
	Amount                string         `json:"amount,omitempty"`
	Currency              string         `json:"currency,omitempty"`
	Correspondent         string         `json:"correspondent,omitempty"`
	ProviderTransactionID string         `json:"providerTransactionId,omitempty"`
	Created               *time.Time     `json:"created,omitempty"`
	ReceivedByProviderAt  *time.Time     `json:"receivedByRecipient,omitempty"`
	RejectionReason       *FailureReason `json:"rejectionReason,omitempty"`
	FailureReason         *FailureReason `json:"failureReason,omitempty"`
}

// Failure returns whichever failure block the provider populated.
func (t *GatewayTransaction) Failure() *FailureReason {
	if t.FailureReason != nil {
		return t.FailureReason
	}
	return t.RejectionReason
}
