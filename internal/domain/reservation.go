package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ResourceType string
type ReservationStatus string
type PaymentStatus string
type CancelRole string

const (
	ResourceProperty ResourceType = "property"
	ResourceTour     ResourceType = "tour"
)

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
	ReservationRefunded  ReservationStatus = "refunded"
	ReservationDisputed  ReservationStatus = "disputed"
	ReservationNoShow    ReservationStatus = "no_show"
)

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
)

const (
	CancelledByOwner     CancelRole = "owner"
	CancelledByRequester CancelRole = "requester"
)

var paymentStatuses = []PaymentStatus{
	PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentCancelled, PaymentRefunded,
}

// AcceptsOutcome reports whether a settled transaction may move the payment
// status from s to next. A completed payment never becomes failed, and a
// refunded one stays refunded.
func (s PaymentStatus) AcceptsOutcome(next PaymentStatus) bool {
	switch next {
	case PaymentRefunded:
		return true
	case PaymentCompleted:
		return s != PaymentRefunded
	default:
		return s != PaymentCompleted && s != PaymentRefunded
	}
}

// PaymentStatusesAccepting lists the payment statuses next may overwrite.
func PaymentStatusesAccepting(next PaymentStatus) []PaymentStatus {
	accepting := make([]PaymentStatus, 0, len(paymentStatuses))
	for _, status := range paymentStatuses {
		if status.AcceptsOutcome(next) {
			accepting = append(accepting, status)
		}
	}
	return accepting
}

// ActiveReservationStatuses are the statuses that hold a resource's dates.
var ActiveReservationStatuses = []ReservationStatus{ReservationPending, ReservationConfirmed}

func (s ReservationStatus) IsActive() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

type PriceBreakdown struct {
	Nights      int             `json:"nights"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	CleaningFee decimal.Decimal `json:"cleaning_fee"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	Taxes       decimal.Decimal `json:"taxes"`
	Total       decimal.Decimal `json:"total"`
	Currency    string          `json:"currency"`
}

type Reservation struct {
	ID                   string            `json:"id" db:"id"`
	ResourceID           string            `json:"resource_id" db:"resource_id" binding:"required"`
	ResourceType         ResourceType      `json:"resource_type" db:"resource_type" binding:"required"`
	RequesterID          string            `json:"requester_id" db:"requester_id" binding:"required"`
	OwnerID              string            `json:"owner_id" db:"owner_id"`
	AgentID              *string           `json:"agent_id,omitempty" db:"agent_id"`
	StartDate            time.Time         `json:"start_date" db:"start_date" binding:"required"`
	EndDate              time.Time         `json:"end_date" db:"end_date" binding:"required"`
	Guests               int               `json:"guests" db:"guests"`
	Price                PriceBreakdown    `json:"price" db:"price"`
	Status               ReservationStatus `json:"status" db:"status"`
	PaymentStatus        PaymentStatus     `json:"payment_status" db:"payment_status"`
	WalletDistributed    bool              `json:"wallet_distributed" db:"wallet_distributed"`
	WalletDistributedAt  *time.Time        `json:"wallet_distributed_at,omitempty" db:"wallet_distributed_at"`
	DistributionAttempts int               `json:"distribution_attempts" db:"distribution_attempts"`
	DistributionError    *string           `json:"distribution_error,omitempty" db:"distribution_error"`
	CancelledBy          *CancelRole       `json:"cancelled_by,omitempty" db:"cancelled_by"`
	CancelledAt          *time.Time        `json:"cancelled_at,omitempty" db:"cancelled_at"`
	Version              int64             `json:"version" db:"version"`
	CreatedAt            time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at" db:"updated_at"`
}

func (r *Reservation) HasAgent() bool {
	return r.AgentID != nil && *r.AgentID != ""
}

type BlockedRange struct {
	ID         string    `json:"id" db:"id"`
	ResourceID string    `json:"resource_id" db:"resource_id" binding:"required"`
	StartDate  time.Time `json:"start_date" db:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" db:"end_date" binding:"required"`
	IsActive   bool      `json:"is_active" db:"is_active"`
	Reason     string    `json:"reason" db:"reason"`
	CreatedBy  string    `json:"created_by" db:"created_by"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type AvailabilityResult struct {
	ResourceID       string         `json:"resource_id"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	Available        bool           `json:"available"`
	Reason           string         `json:"reason,omitempty"`
	Conflicts        []Reservation  `json:"conflicts"`
	BlockedConflicts []BlockedRange `json:"blocked_conflicts"`
}

const (
	ReasonResourceInactive = "resource_inactive"
	ReasonReservedDates    = "dates_reserved"
	ReasonBlockedDates     = "dates_blocked"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type BookingRequest struct {
	ResourceID  string    `json:"resource_id" binding:"required"`
	RequesterID string    `json:"-"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
	Guests      int       `json:"guests"`
}

type BlockRequest struct {
	ResourceID string    `json:"resource_id" binding:"required"`
	StartDate  time.Time `json:"start_date" binding:"required"`
	EndDate    time.Time `json:"end_date" binding:"required"`
	Reason     string    `json:"reason"`
	CreatedBy  string    `json:"-"`
}

type Quote struct {
	ResourceID string         `json:"resource_id"`
	StartDate  time.Time      `json:"start_date"`
	EndDate    time.Time      `json:"end_date"`
	Available  bool           `json:"available"`
	Reason     string         `json:"reason,omitempty"`
	Price      PriceBreakdown `json:"price"`
}

type CancellationResult struct {
	Reservation  *Reservation        `json:"reservation"`
	RefundAmount decimal.Decimal     `json:"refund_amount"`
	Refund       *PaymentTransaction `json:"refund,omitempty"`
	RefundError  string              `json:"refund_error,omitempty"`
}
