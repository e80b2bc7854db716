package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionCredit Direction = "credit"
	DirectionDebit  Direction = "debit"
)

type Wallet struct {
	ID        string          `json:"id" db:"id"`
	OwnerID   string          `json:"owner_id" db:"owner_id"`
	Balance   decimal.Decimal `json:"balance" db:"balance"`
	Currency  string          `json:"currency" db:"currency"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"`
}

type WalletTransaction struct {
	ID            string          `json:"id" db:"id"`
	WalletID      string          `json:"wallet_id" db:"wallet_id"`
	Direction     Direction       `json:"direction" db:"direction"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	BalanceBefore decimal.Decimal `json:"balance_before" db:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after" db:"balance_after"`
	Reference     string          `json:"reference" db:"reference"`
	Description   string          `json:"description" db:"description"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
}

// LedgerEntry is a requested wallet mutation before it is applied.
type LedgerEntry struct {
	OwnerID     string
	Direction   Direction
	Amount      decimal.Decimal
	Reference   string
	Description string
}

type RecipientRole string

const (
	RecipientPlatform RecipientRole = "platform"
	RecipientOwner    RecipientRole = "owner"
	RecipientAgent    RecipientRole = "agent"
)

type Split struct {
	Role     RecipientRole   `json:"role"`
	OwnerID  string          `json:"owner_id"`
	Amount   decimal.Decimal `json:"amount"`
	WalletID string          `json:"wallet_id,omitempty"`
	Applied  bool            `json:"applied"`
}

const (
	DistributionAlreadyDone = "already_distributed"
	DistributionNotPaid     = "not_paid"
)

type DistributionResult struct {
	ReservationID string  `json:"reservation_id"`
	Success       bool    `json:"success"`
	Reason        string  `json:"reason,omitempty"`
	Splits        []Split `json:"splits,omitempty"`
}

type DistributionSummary struct {
	Total     int                  `json:"total"`
	Succeeded int                  `json:"succeeded"`
	Failed    int                  `json:"failed"`
	Skipped   int                  `json:"skipped"`
	Results   []DistributionResult `json:"results"`
}

type BalanceAudit struct {
	WalletID       string          `json:"wallet_id"`
	StoredBalance  decimal.Decimal `json:"stored_balance"`
	LedgerBalance  decimal.Decimal `json:"ledger_balance"`
	Consistent     bool            `json:"consistent"`
	TransactionCnt int             `json:"transaction_count"`
}

// PayoutLedgerReference ties a wallet debit and its reversal to one payout.
func PayoutLedgerReference(transactionID string) string {
	return "payout:" + transactionID
}
