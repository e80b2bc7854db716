package walletrepo

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=wallet_repo.go -destination=mocks/wallet_repo_mock.go -package=mock_walletrepo

type IWalletRepository interface {
	// GetOrCreateForUpdateTx returns the owner's wallet, creating it on first
	// use, with the row locked until tx ends.
	GetOrCreateForUpdateTx(ctx context.Context, tx *sql.Tx, ownerID, currency string) (*domain.Wallet, error)
	// InsertTransactionTx appends a ledger entry. It returns false without error
	// when an entry with the same wallet, reference and direction exists.
	InsertTransactionTx(ctx context.Context, tx *sql.Tx, entry *domain.WalletTransaction) (bool, error)
	UpdateBalanceTx(ctx context.Context, tx *sql.Tx, walletID string, balance decimal.Decimal) error
	GetByID(ctx context.Context, id string) (*domain.Wallet, error)
	GetByOwner(ctx context.Context, ownerID string) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error)
	LedgerBalance(ctx context.Context, walletID string) (decimal.Decimal, int, error)
}
