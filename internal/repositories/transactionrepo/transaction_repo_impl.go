package transactionrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/sqlc-dev/pqtype"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
)

const transactionColumns = `id, external_id, type, amount, currency, status, internal_reference,
	correspondent, provider_transaction_id, failure_code, failure_message,
	received_by_provider_at, completed_at, version, metadata, created_at, updated_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

type transactionRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) ITransactionRepository {
	return &transactionRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.PaymentTransaction) error {
	query := `INSERT INTO payment_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.ExternalID, string(tx.Type), tx.Amount, tx.Currency, string(tx.Status), tx.InternalReference,
		tx.Correspondent, nullString(tx.ProviderTransactionID), nullString(tx.FailureCode), nullString(tx.FailureMessage),
		nullTime(tx.ReceivedByProviderAt), nullTime(tx.CompletedAt), tx.Version,
		pqtype.NullRawMessage{RawMessage: tx.Metadata, Valid: len(tx.Metadata) > 0},
		tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("external_id", tx.ExternalID).Str("type", string(tx.Type)).Msg("Failed to create payment transaction")
		return fmt.Errorf("failed to create payment transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM payment_transactions WHERE id::text = $1`, id)
}

func (r *transactionRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentTransaction, error) {
	return r.getOne(ctx, `SELECT `+transactionColumns+` FROM payment_transactions WHERE external_id::text = $1`, externalID)
}

func (r *transactionRepository) getOne(ctx context.Context, query, key string) (*domain.PaymentTransaction, error) {
	tx, err := scanTransaction(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("payment transaction", key)
		}
		r.logger.Error().Err(err).Str("id", key).Msg("Failed to get payment transaction")
		return nil, fmt.Errorf("failed to get payment transaction: %w", err)
	}
	return tx, nil
}

func (r *transactionRepository) UpdateStatus(ctx context.Context, tx *domain.PaymentTransaction, expectedVersion int64) (bool, error) {
	query := `UPDATE payment_transactions
		SET status = $3,
		    provider_transaction_id = COALESCE($4, provider_transaction_id),
		    failure_code = COALESCE($5, failure_code),
		    failure_message = COALESCE($6, failure_message),
		    received_by_provider_at = COALESCE($7, received_by_provider_at),
		    completed_at = COALESCE($8, completed_at),
		    version = version + 1,
		    updated_at = NOW()
		WHERE id::text = $1 AND version = $2`

	result, err := r.db.ExecContext(ctx, query,
		tx.ID, expectedVersion, string(tx.Status),
		nullString(tx.ProviderTransactionID), nullString(tx.FailureCode), nullString(tx.FailureMessage),
		nullTime(tx.ReceivedByProviderAt), nullTime(tx.CompletedAt),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("id", tx.ID).Str("status", string(tx.Status)).Msg("Failed to update payment transaction status")
		return false, fmt.Errorf("failed to update payment transaction status: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 1 {
		tx.Version = expectedVersion + 1
	}
	return n == 1, nil
}

func (r *transactionRepository) ListByReference(ctx context.Context, reference string) ([]domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM payment_transactions
		WHERE internal_reference = $1
		ORDER BY created_at`

	return r.list(ctx, query, reference)
}

func (r *transactionRepository) ListNonTerminal(ctx context.Context, createdBefore time.Time, limit int) ([]domain.PaymentTransaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM payment_transactions
		WHERE status <> ALL($1)
		  AND created_at <= $2
		ORDER BY updated_at
		LIMIT $3`

	terminal := []string{string(domain.TransactionCompleted), string(domain.TransactionFailed)}
	return r.list(ctx, query, pq.Array(terminal), createdBefore, limit)
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.PaymentTransaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to list payment transactions")
		return nil, fmt.Errorf("failed to list payment transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.PaymentTransaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment transaction: %w", err)
		}
		result = append(result, *tx)
	}
	return result, rows.Err()
}

func scanTransaction(row scanner) (*domain.PaymentTransaction, error) {
	var (
		tx             domain.PaymentTransaction
		txType, status string
		providerID     sql.NullString
		failureCode    sql.NullString
		failureMessage sql.NullString
		receivedAt     sql.NullTime
		completedAt    sql.NullTime
		metadata       pqtype.NullRawMessage
	)

	err := row.Scan(
		&tx.ID, &tx.ExternalID, &txType, &tx.Amount, &tx.Currency, &status, &tx.InternalReference,
		&tx.Correspondent, &providerID, &failureCode, &failureMessage,
		&receivedAt, &completedAt, &tx.Version, &metadata, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	tx.Type = domain.TransactionType(txType)
	tx.Status = domain.TransactionStatus(status)
	if providerID.Valid {
		tx.ProviderTransactionID = &providerID.String
	}
	if failureCode.Valid {
		tx.FailureCode = &failureCode.String
	}
	if failureMessage.Valid {
		tx.FailureMessage = &failureMessage.String
	}
	if receivedAt.Valid {
		tx.ReceivedByProviderAt = &receivedAt.Time
	}
	if completedAt.Valid {
		tx.CompletedAt = &completedAt.Time
	}
	if metadata.Valid {
		tx.Metadata = metadata.RawMessage
	}
	return &tx, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
