package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string
type TransactionStatus string

const (
	TransactionDeposit TransactionType = "DEPOSIT"
	TransactionPayout  TransactionType = "PAYOUT"
	TransactionRefund  TransactionType = "REFUND"
)

// Intermediate labels are provider-defined and stored verbatim; only
// COMPLETED and FAILED are terminal.
const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionAccepted  TransactionStatus = "ACCEPTED"
	TransactionSubmitted TransactionStatus = "SUBMITTED"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionCompleted || s == TransactionFailed
}

type PaymentTransaction struct {
	ID                    string            `json:"id" db:"id"`
	ExternalID            string            `json:"external_id" db:"external_id"`
	Type                  TransactionType   `json:"type" db:"type"`
	Amount                string            `json:"amount" db:"amount"`
	Currency              string            `json:"currency" db:"currency"`
	Status                TransactionStatus `json:"status" db:"status"`
	InternalReference     string            `json:"internal_reference" db:"internal_reference"`
	Correspondent         string            `json:"correspondent" db:"correspondent"`
	ProviderTransactionID *string           `json:"provider_transaction_id,omitempty" db:"provider_transaction_id"`
	FailureCode           *string           `json:"failure_code,omitempty" db:"failure_code"`
	FailureMessage        *string           `json:"failure_message,omitempty" db:"failure_message"`
	ReceivedByProviderAt  *time.Time        `json:"received_by_provider_at,omitempty" db:"received_by_provider_at"`
	CompletedAt           *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	Version               int64             `json:"version" db:"version"`
	Metadata              json.RawMessage   `json:"metadata,omitempty" db:"metadata"`
	CreatedAt             time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at" db:"updated_at"`
}

// MetadataValue returns the named metadata field, or "" when it is absent.
func (t *PaymentTransaction) MetadataValue(name string) string {
	if len(t.Metadata) == 0 {
		return ""
	}
	var fields []MetadataField
	if err := json.Unmarshal(t.Metadata, &fields); err != nil {
		return ""
	}
	for _, f := range fields {
		if f.FieldName == name {
			return f.FieldValue
		}
	}
	return ""
}

// MetadataField is one entry of the provider metadata list.
type MetadataField struct {
	FieldName  string `json:"fieldName"`
	FieldValue string `json:"fieldValue"`
	IsPII      bool   `json:"isPII,omitempty"`
}

type Party struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone" binding:"required"`
}

type DepositInput struct {
	ReservationID string `json:"reservation_id"`
	Payer         Party  `json:"payer" binding:"required"`
	Correspondent string `json:"correspondent" binding:"required"`
}

type PayoutInput struct {
	WalletID      string          `json:"wallet_id"`
	OwnerID       string          `json:"owner_id"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Payee         Party           `json:"payee" binding:"required"`
	Correspondent string          `json:"correspondent" binding:"required"`
}

type RefundInput struct {
	ReservationID        string          `json:"reservation_id"`
	DepositTransactionID string          `json:"deposit_transaction_id"`
	Amount               decimal.Decimal `json:"amount"`
}

type ReconcileResult struct {
	TransactionID  string              `json:"transaction_id"`
	Type           TransactionType     `json:"type"`
	PreviousStatus TransactionStatus   `json:"previous_status"`
	NewStatus      TransactionStatus   `json:"new_status"`
	Changed        bool                `json:"changed"`
	ReservationID  string              `json:"reservation_id,omitempty"`
	Distribution   *DistributionResult `json:"distribution,omitempty"`
	Note           string              `json:"note,omitempty"`
}

type ReconcileSummary struct {
	Scanned   int `json:"scanned"`
	Changed   int `json:"changed"`
	Failed    int `json:"failed"`
	Unchanged int `json:"unchanged"`
}

type GatewayErrorKind string

const (
	// GatewayUnreachable means the request never reached the provider.
	GatewayUnreachable GatewayErrorKind = "unreachable"
	// GatewayRejected means the provider refused the request as invalid.
	GatewayRejected GatewayErrorKind = "rejected"
	// GatewayTimeout means the request was sent but no answer arrived in time.
	GatewayTimeout GatewayErrorKind = "timeout"
)

type GatewayError struct {
	Kind       GatewayErrorKind
	StatusCode int
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway %s: %s", e.Kind, e.Message)
}

func (e *GatewayError) Unwrap() error { return e.Err }

func IsGatewayError(err error, kind GatewayErrorKind) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == kind
}
