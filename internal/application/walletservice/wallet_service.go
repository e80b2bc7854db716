package walletservice

import (
	"context"
	"database/sql"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=wallet_service.go -destination=mocks/wallet_service_mock.go -package=mock_walletservice

type IWalletService interface {
	// ApplyTx appends entry to the owner's ledger inside tx and moves the
	// balance. An entry already recorded under the same reference and
	// direction is skipped and reported as not applied.
	ApplyTx(ctx context.Context, tx *sql.Tx, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error)
	Credit(ctx context.Context, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error)
	Debit(ctx context.Context, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error)
	GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error)
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error)
	VerifyBalance(ctx context.Context, walletID string) (*domain.BalanceAudit, error)
}
