package reservationrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type scanner interface {
	Scan(dest ...interface{}) error
}

const reservationColumns = `id, resource_id, resource_type, requester_id, owner_id, agent_id,
	start_date, end_date, guests, nights, nightly_rate, subtotal, cleaning_fee, service_fee,
	taxes, total, currency, status, payment_status, wallet_distributed, wallet_distributed_at,
	distribution_attempts, distribution_error, cancelled_by, cancelled_at, version, created_at, updated_at`

const blockedColumns = `id, resource_id, start_date, end_date, is_active, reason, created_by, created_at`

type ReservationRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IReservationRepository {
	return &ReservationRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *ReservationRepository) conn(tx *sql.Tx) dbtx {
	if tx != nil {
		return tx
	}
	return r.db
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func (r *ReservationRepository) LockResourceTx(ctx context.Context, tx *sql.Tx, resourceID string) error {
	if _, err := r.conn(tx).ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, resourceID); err != nil {
		r.logger.Error().Err(err).Str("resource_id", resourceID).Msg("Failed to take resource advisory lock")
		return fmt.Errorf("failed to lock resource %s: %w", resourceID, err)
	}
	return nil
}

func (r *ReservationRepository) FindOverlappingTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time, excludeID string) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE resource_id = $1
		  AND status = ANY($2)
		  AND start_date < $4
		  AND end_date > $3
		  AND ($5 = '' OR id::text <> $5)
		ORDER BY start_date`

	rows, err := r.conn(tx).QueryContext(ctx, query, resourceID, pq.Array(statusStrings(domain.ActiveReservationStatuses)), start, end, excludeID)
	if err != nil {
		r.logger.Error().Err(err).Str("resource_id", resourceID).Msg("Failed to query overlapping reservations")
		return nil, fmt.Errorf("failed to query overlapping reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) FindBlockedOverlappingTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time) ([]domain.BlockedRange, error) {
	query := `SELECT ` + blockedColumns + `
		FROM blocked_ranges
		WHERE resource_id = $1
		  AND is_active
		  AND start_date < $3
		  AND end_date > $2
		ORDER BY start_date`

	rows, err := r.conn(tx).QueryContext(ctx, query, resourceID, start, end)
	if err != nil {
		r.logger.Error().Err(err).Str("resource_id", resourceID).Msg("Failed to query blocked ranges")
		return nil, fmt.Errorf("failed to query blocked ranges: %w", err)
	}
	defer rows.Close()

	var result []domain.BlockedRange
	for rows.Next() {
		b, err := scanBlocked(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *b)
	}
	return result, rows.Err()
}

func (r *ReservationRepository) CreateTx(ctx context.Context, tx *sql.Tx, res *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`

	_, err := r.conn(tx).ExecContext(ctx, query,
		res.ID, res.ResourceID, string(res.ResourceType), res.RequesterID, res.OwnerID, nullString(res.AgentID),
		res.StartDate, res.EndDate, res.Guests, res.Price.Nights, res.Price.NightlyRate, res.Price.Subtotal,
		res.Price.CleaningFee, res.Price.ServiceFee, res.Price.Taxes, res.Price.Total, res.Price.Currency,
		string(res.Status), string(res.PaymentStatus), res.WalletDistributed, nullTime(res.WalletDistributedAt),
		res.DistributionAttempts, nullString(res.DistributionError), nullRole(res.CancelledBy), nullTime(res.CancelledAt),
		res.Version, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if database.IsExclusionViolation(err) {
			return ErrOverlap
		}
		r.logger.Error().Err(err).Str("resource_id", res.ResourceID).Msg("Failed to create reservation")
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.get(ctx, r.db, id, false)
}

func (r *ReservationRepository) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Reservation, error) {
	return r.get(ctx, r.conn(tx), id, true)
}

func (r *ReservationRepository) get(ctx context.Context, q dbtx, id string, forUpdate bool) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id::text = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	res, err := scanReservation(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("reservation", id)
		}
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to get reservation")
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) ApplyPaymentOutcome(ctx context.Context, id string, paymentStatus domain.PaymentStatus, status domain.ReservationStatus, onlyFrom []domain.ReservationStatus) (*domain.Reservation, bool, error) {
	query := `UPDATE reservations
		SET payment_status = $2,
		    status = CASE WHEN $3 <> '' AND status = ANY($4) THEN $3 ELSE status END,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id::text = $1 AND payment_status = ANY($5)
		RETURNING ` + reservationColumns

	accepting := domain.PaymentStatusesAccepting(paymentStatus)
	from := make([]string, len(accepting))
	for i, s := range accepting {
		from[i] = string(s)
	}

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id, string(paymentStatus), string(status),
		pq.Array(statusStrings(onlyFrom)), pq.Array(from)))
	if errors.Is(err, sql.ErrNoRows) {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, false, err
		}
		r.logger.Warn().
			Str("id", id).
			Str("payment_status", string(current.PaymentStatus)).
			Str("outcome", string(paymentStatus)).
			Msg("Payment outcome does not apply to settled reservation")
		return current, false, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Str("payment_status", string(paymentStatus)).Msg("Failed to update reservation payment status")
		return nil, false, fmt.Errorf("failed to update reservation payment status: %w", err)
	}
	return res, true, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, id string, by domain.CancelRole, at time.Time) (*domain.Reservation, error) {
	query := `UPDATE reservations
		SET status = 'cancelled',
		    payment_status = CASE WHEN payment_status IN ('pending', 'processing') THEN 'cancelled' ELSE payment_status END,
		    cancelled_by = $2,
		    cancelled_at = $3,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id::text = $1 AND status = ANY($4)
		RETURNING ` + reservationColumns

	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id, string(by), at, pq.Array(statusStrings(domain.ActiveReservationStatuses))))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ConflictError{Message: "reservation is not active"}
		}
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to cancel reservation")
		return nil, fmt.Errorf("failed to cancel reservation: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) MarkDistributedTx(ctx context.Context, tx *sql.Tx, id string, at time.Time) (bool, error) {
	query := `UPDATE reservations
		SET wallet_distributed = TRUE,
		    wallet_distributed_at = $2,
		    distribution_attempts = distribution_attempts + 1,
		    distribution_error = NULL,
		    version = version + 1,
		    updated_at = NOW()
		WHERE id::text = $1 AND wallet_distributed = FALSE`

	result, err := r.conn(tx).ExecContext(ctx, query, id, at)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to mark reservation distributed")
		return false, fmt.Errorf("failed to mark reservation distributed: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	return n == 1, nil
}

func (r *ReservationRepository) RecordDistributionFailure(ctx context.Context, id string, message string) error {
	query := `UPDATE reservations
		SET distribution_attempts = distribution_attempts + 1,
		    distribution_error = $2,
		    updated_at = NOW()
		WHERE id::text = $1 AND wallet_distributed = FALSE`

	if _, err := r.db.ExecContext(ctx, query, id, message); err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to record distribution failure")
		return fmt.Errorf("failed to record distribution failure: %w", err)
	}
	return nil
}

func (r *ReservationRepository) FindUndistributed(ctx context.Context, since time.Time, limit int) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM reservations
		WHERE wallet_distributed = FALSE
		  AND payment_status = 'completed'
		  AND status = ANY($1)
		  AND created_at >= $2
		ORDER BY created_at
		LIMIT $3`

	statuses := []domain.ReservationStatus{domain.ReservationConfirmed, domain.ReservationCompleted}
	rows, err := r.db.QueryContext(ctx, query, pq.Array(statusStrings(statuses)), since, limit)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to query undistributed reservations")
		return nil, fmt.Errorf("failed to query undistributed reservations: %w", err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func (r *ReservationRepository) CreateBlockedRangeTx(ctx context.Context, tx *sql.Tx, b *domain.BlockedRange) error {
	query := `INSERT INTO blocked_ranges (` + blockedColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err := r.conn(tx).ExecContext(ctx, query, b.ID, b.ResourceID, b.StartDate, b.EndDate, b.IsActive, b.Reason, b.CreatedBy, b.CreatedAt); err != nil {
		r.logger.Error().Err(err).Str("resource_id", b.ResourceID).Msg("Failed to create blocked range")
		return fmt.Errorf("failed to create blocked range: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetBlockedRange(ctx context.Context, id string) (*domain.BlockedRange, error) {
	query := `SELECT ` + blockedColumns + ` FROM blocked_ranges WHERE id::text = $1`

	b, err := scanBlocked(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("blocked range", id)
		}
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to get blocked range")
		return nil, fmt.Errorf("failed to get blocked range: %w", err)
	}
	return b, nil
}

func (r *ReservationRepository) DeactivateBlockedRange(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE blocked_ranges SET is_active = FALSE WHERE id::text = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("Failed to deactivate blocked range")
		return fmt.Errorf("failed to deactivate blocked range: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return domain.NewNotFoundError("blocked range", id)
	}
	return nil
}

func scanReservations(rows *sql.Rows) ([]domain.Reservation, error) {
	var result []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		result = append(result, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reservations: %w", err)
	}
	return result, nil
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var (
		res                   domain.Reservation
		resourceType          string
		status, paymentStatus string
		agentID, distErr      sql.NullString
		cancelledBy           sql.NullString
		distributedAt         sql.NullTime
		cancelledAt           sql.NullTime
	)

	err := row.Scan(
		&res.ID, &res.ResourceID, &resourceType, &res.RequesterID, &res.OwnerID, &agentID,
		&res.StartDate, &res.EndDate, &res.Guests, &res.Price.Nights, &res.Price.NightlyRate, &res.Price.Subtotal,
		&res.Price.CleaningFee, &res.Price.ServiceFee, &res.Price.Taxes, &res.Price.Total, &res.Price.Currency,
		&status, &paymentStatus, &res.WalletDistributed, &distributedAt,
		&res.DistributionAttempts, &distErr, &cancelledBy, &cancelledAt,
		&res.Version, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.ResourceType = domain.ResourceType(resourceType)
	res.Status = domain.ReservationStatus(status)
	res.PaymentStatus = domain.PaymentStatus(paymentStatus)
	res.StartDate = domain.DateOnly(res.StartDate)
	res.EndDate = domain.DateOnly(res.EndDate)
	if agentID.Valid {
		res.AgentID = &agentID.String
	}
	if distErr.Valid {
		res.DistributionError = &distErr.String
	}
	if cancelledBy.Valid {
		role := domain.CancelRole(cancelledBy.String)
		res.CancelledBy = &role
	}
	if distributedAt.Valid {
		res.WalletDistributedAt = &distributedAt.Time
	}
	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	return &res, nil
}

func scanBlocked(row scanner) (*domain.BlockedRange, error) {
	var b domain.BlockedRange
	if err := row.Scan(&b.ID, &b.ResourceID, &b.StartDate, &b.EndDate, &b.IsActive, &b.Reason, &b.CreatedBy, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.StartDate = domain.DateOnly(b.StartDate)
	b.EndDate = domain.DateOnly(b.EndDate)
	return &b, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullRole(r *domain.CancelRole) sql.NullString {
	if r == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*r), Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
