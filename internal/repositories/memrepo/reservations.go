package memrepo

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
)

type ReservationRepository struct {
	s *Store
}

func NewReservationRepository(s *Store) *ReservationRepository {
	return &ReservationRepository{s: s}
}

var _ reservationrepo.IReservationRepository = (*ReservationRepository)(nil)

// Put stores a reservation as-is, bypassing overlap checks.
func (r *ReservationRepository) Put(res domain.Reservation) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.reservations[res.ID] = res
}

// All returns every stored reservation ordered by start date.
func (r *ReservationRepository) All() []domain.Reservation {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]domain.Reservation, 0, len(r.s.reservations))
	for _, res := range r.s.reservations {
		out = append(out, res)
	}
	sortByStart(out)
	return out
}

func (r *ReservationRepository) LockResourceTx(ctx context.Context, tx *sql.Tx, resourceID string) error {
	return nil
}

func (r *ReservationRepository) FindOverlappingTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time, excludeID string) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.overlapping(resourceID, start, end, excludeID), nil
}

func (r *ReservationRepository) overlapping(resourceID string, start, end time.Time, excludeID string) []domain.Reservation {
	var out []domain.Reservation
	for _, res := range r.s.reservations {
		if res.ResourceID != resourceID || res.ID == excludeID || !res.Status.IsActive() {
			continue
		}
		if domain.Overlaps(start, end, res.StartDate, res.EndDate) {
			out = append(out, res)
		}
	}
	sortByStart(out)
	return out
}

func (r *ReservationRepository) FindBlockedOverlappingTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time) ([]domain.BlockedRange, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.BlockedRange
	for _, b := range r.s.blocked {
		if b.ResourceID == resourceID && b.IsActive && domain.Overlaps(start, end, b.StartDate, b.EndDate) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

// CreateTx rejects overlapping active reservations the way the exclusion
// constraint does.
func (r *ReservationRepository) CreateTx(ctx context.Context, tx *sql.Tx, res *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if res.Status.IsActive() && len(r.overlapping(res.ResourceID, res.StartDate, res.EndDate, res.ID)) > 0 {
		return reservationrepo.ErrOverlap
	}
	r.s.reservations[res.ID] = *res
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, domain.NewNotFoundError("reservation", id)
	}
	return &res, nil
}

func (r *ReservationRepository) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Reservation, error) {
	return r.GetByID(ctx, id)
}

func (r *ReservationRepository) ApplyPaymentOutcome(ctx context.Context, id string, paymentStatus domain.PaymentStatus, status domain.ReservationStatus, onlyFrom []domain.ReservationStatus) (*domain.Reservation, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, false, domain.NewNotFoundError("reservation", id)
	}
	if !res.PaymentStatus.AcceptsOutcome(paymentStatus) {
		return &res, false, nil
	}
	res.PaymentStatus = paymentStatus
	if status != "" && containsStatus(onlyFrom, res.Status) {
		res.Status = status
	}
	res.Version++
	res.UpdatedAt = time.Now()
	r.s.reservations[id] = res
	return &res, true, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string, by domain.CancelRole, at time.Time) (*domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok || !res.Status.IsActive() {
		return nil, &domain.ConflictError{Message: "reservation is not active"}
	}
	res.Status = domain.ReservationCancelled
	if res.PaymentStatus == domain.PaymentPending || res.PaymentStatus == domain.PaymentProcessing {
		res.PaymentStatus = domain.PaymentCancelled
	}
	res.CancelledBy = &by
	res.CancelledAt = &at
	res.Version++
	r.s.reservations[id] = res
	return &res, nil
}

func (r *ReservationRepository) MarkDistributedTx(ctx context.Context, tx *sql.Tx, id string, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok || res.WalletDistributed {
		return false, nil
	}
	res.WalletDistributed = true
	res.WalletDistributedAt = &at
	res.DistributionAttempts++
	res.DistributionError = nil
	res.Version++
	r.s.reservations[id] = res
	return true, nil
}

func (r *ReservationRepository) RecordDistributionFailure(ctx context.Context, id string, message string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok || res.WalletDistributed {
		return nil
	}
	res.DistributionAttempts++
	res.DistributionError = &message
	r.s.reservations[id] = res
	return nil
}

func (r *ReservationRepository) FindUndistributed(ctx context.Context, since time.Time, limit int) ([]domain.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.Reservation
	for _, res := range r.s.reservations {
		if res.WalletDistributed || res.PaymentStatus != domain.PaymentCompleted || res.CreatedAt.Before(since) {
			continue
		}
		if res.Status != domain.ReservationConfirmed && res.Status != domain.ReservationCompleted {
			continue
		}
		out = append(out, res)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ReservationRepository) CreateBlockedRangeTx(ctx context.Context, tx *sql.Tx, blocked *domain.BlockedRange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.blocked[blocked.ID] = *blocked
	return nil
}

func (r *ReservationRepository) GetBlockedRange(ctx context.Context, id string) (*domain.BlockedRange, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.blocked[id]
	if !ok {
		return nil, domain.NewNotFoundError("blocked range", id)
	}
	return &b, nil
}

func (r *ReservationRepository) DeactivateBlockedRange(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.blocked[id]
	if !ok {
		return domain.NewNotFoundError("blocked range", id)
	}
	b.IsActive = false
	r.s.blocked[id] = b
	return nil
}

func containsStatus(set []domain.ReservationStatus, status domain.ReservationStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func sortByStart(rs []domain.Reservation) {
	sort.Slice(rs, func(i, j int) bool {
		if rs[i].StartDate.Equal(rs[j].StartDate) {
			return rs[i].ID < rs[j].ID
		}
		return rs[i].StartDate.Before(rs[j].StartDate)
	})
}
