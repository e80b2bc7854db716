package reservationrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=reservation_repo.go -destination=mocks/reservation_repo_mock.go -package=mock_reservationrepo

// ErrOverlap is returned when the store's exclusion constraint rejects an insert.
var ErrOverlap = errors.New("reservation overlaps an active reservation")

// Methods taking a *sql.Tx run on it when non-nil and on the pool otherwise.
type IReservationRepository interface {
	LockResourceTx(ctx context.Context, tx *sql.Tx, resourceID string) error
	FindOverlappingTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time, excludeID string) ([]domain.Reservation, error)
	FindBlockedOverlappingTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time) ([]domain.BlockedRange, error)
	CreateTx(ctx context.Context, tx *sql.Tx, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	GetForUpdateTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Reservation, error)
	// ApplyPaymentOutcome sets the payment status when the current one accepts
	// it, and the reservation status when that is in onlyFrom. It returns the
	// current reservation and whether the payment status was written.
	ApplyPaymentOutcome(ctx context.Context, id string, paymentStatus domain.PaymentStatus, status domain.ReservationStatus, onlyFrom []domain.ReservationStatus) (*domain.Reservation, bool, error)
	Cancel(ctx context.Context, id string, by domain.CancelRole, at time.Time) (*domain.Reservation, error)
	MarkDistributedTx(ctx context.Context, tx *sql.Tx, id string, at time.Time) (bool, error)
	RecordDistributionFailure(ctx context.Context, id string, message string) error
	FindUndistributed(ctx context.Context, since time.Time, limit int) ([]domain.Reservation, error)
	CreateBlockedRangeTx(ctx context.Context, tx *sql.Tx, blocked *domain.BlockedRange) error
	GetBlockedRange(ctx context.Context, id string) (*domain.BlockedRange, error)
	DeactivateBlockedRange(ctx context.Context, id string) error
}
