package walletrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
)

const walletColumns = `id, owner_id, balance, currency, is_active, created_at, updated_at`

const walletTransactionColumns = `id, wallet_id, direction, amount, balance_before, balance_after,
	reference, description, created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

type WalletRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *database.DBManager, logger zerolog.Logger) IWalletRepository {
	return &WalletRepository{
		db:     db.Db,
		logger: logger,
	}
}

func (r *WalletRepository) GetOrCreateForUpdateTx(ctx context.Context, tx *sql.Tx, ownerID, currency string) (*domain.Wallet, error) {
	insert := `INSERT INTO wallets (id, owner_id, balance, currency, is_active)
		VALUES ($1, $2, 0, $3, TRUE)
		ON CONFLICT (owner_id) DO NOTHING`

	if _, err := tx.ExecContext(ctx, insert, uuid.New().String(), ownerID, currency); err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to create wallet")
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	query := `SELECT ` + walletColumns + ` FROM wallets WHERE owner_id = $1 FOR UPDATE`
	wallet, err := scanWallet(tx.QueryRowContext(ctx, query, ownerID))
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to lock wallet")
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}
	return wallet, nil
}

func (r *WalletRepository) InsertTransactionTx(ctx context.Context, tx *sql.Tx, entry *domain.WalletTransaction) (bool, error) {
	query := `INSERT INTO wallet_transactions (` + walletTransactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (wallet_id, reference, direction) DO NOTHING
		RETURNING id`

	var id string
	err := tx.QueryRowContext(ctx, query,
		entry.ID, entry.WalletID, string(entry.Direction), entry.Amount, entry.BalanceBefore, entry.BalanceAfter,
		entry.Reference, entry.Description, entry.CreatedAt,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Str("wallet_id", entry.WalletID).Str("reference", entry.Reference).Msg("Failed to append wallet transaction")
		return false, fmt.Errorf("failed to append wallet transaction: %w", err)
	}
	return true, nil
}

func (r *WalletRepository) UpdateBalanceTx(ctx context.Context, tx *sql.Tx, walletID string, balance decimal.Decimal) error {
	query := `UPDATE wallets SET balance = $2, updated_at = NOW() WHERE id::text = $1`
	if _, err := tx.ExecContext(ctx, query, walletID, balance); err != nil {
		r.logger.Error().Err(err).Str("wallet_id", walletID).Msg("Failed to update wallet balance")
		return fmt.Errorf("failed to update wallet balance: %w", err)
	}
	return nil
}

func (r *WalletRepository) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	return r.getOne(ctx, `SELECT `+walletColumns+` FROM wallets WHERE id::text = $1`, id)
}

func (r *WalletRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	return r.getOne(ctx, `SELECT `+walletColumns+` FROM wallets WHERE owner_id = $1`, ownerID)
}

func (r *WalletRepository) getOne(ctx context.Context, query, key string) (*domain.Wallet, error) {
	wallet, err := scanWallet(r.db.QueryRowContext(ctx, query, key))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("wallet", key)
		}
		r.logger.Error().Err(err).Str("key", key).Msg("Failed to get wallet")
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

func (r *WalletRepository) ListTransactions(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error) {
	query := `SELECT ` + walletTransactionColumns + `
		FROM wallet_transactions
		WHERE wallet_id::text = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, walletID, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Str("wallet_id", walletID).Msg("Failed to list wallet transactions")
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}
	defer rows.Close()

	var result []domain.WalletTransaction
	for rows.Next() {
		var (
			entry     domain.WalletTransaction
			direction string
		)
		if err := rows.Scan(&entry.ID, &entry.WalletID, &direction, &entry.Amount, &entry.BalanceBefore,
			&entry.BalanceAfter, &entry.Reference, &entry.Description, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan wallet transaction: %w", err)
		}
		entry.Direction = domain.Direction(direction)
		result = append(result, entry)
	}
	return result, rows.Err()
}

func (r *WalletRepository) LedgerBalance(ctx context.Context, walletID string) (decimal.Decimal, int, error) {
	query := `SELECT
		    COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE -amount END), 0),
		    COUNT(*)
		FROM wallet_transactions
		WHERE wallet_id::text = $1`

	var (
		sum   decimal.Decimal
		count int
	)
	if err := r.db.QueryRowContext(ctx, query, walletID).Scan(&sum, &count); err != nil {
		r.logger.Error().Err(err).Str("wallet_id", walletID).Msg("Failed to sum wallet ledger")
		return decimal.Zero, 0, fmt.Errorf("failed to sum wallet ledger: %w", err)
	}
	return sum, count, nil
}

func scanWallet(row scanner) (*domain.Wallet, error) {
	var w domain.Wallet
	if err := row.Scan(&w.ID, &w.OwnerID, &w.Balance, &w.Currency, &w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}
