package walletservice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
	"github.com/tuncanbit/bss/internal/repositories/walletrepo"
	"github.com/tuncanbit/bss/pkg/currency"
)

const maxListLimit = 200

type walletService struct {
	walletRepo walletrepo.IWalletRepository
	transactor database.Transactor
	currency   string
	logger     zerolog.Logger
}

func New(walletRepo walletrepo.IWalletRepository, transactor database.Transactor, settlementCurrency string, logger zerolog.Logger) IWalletService {
	return &walletService{
		walletRepo: walletRepo,
		transactor: transactor,
		currency:   settlementCurrency,
		logger:     logger.With().Str("component", "wallet_service").Logger(),
	}
}

func (s *walletService) ApplyTx(ctx context.Context, tx *sql.Tx, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error) {
	if err := validateEntry(entry); err != nil {
		return nil, false, err
	}

	wallet, err := s.walletRepo.GetOrCreateForUpdateTx(ctx, tx, entry.OwnerID, s.currency)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load wallet for %s: %w", entry.OwnerID, err)
	}
	if !wallet.IsActive {
		return nil, false, domain.NewValidationError("wallet", "wallet %s is inactive", wallet.ID)
	}

	amount := entry.Amount.Round(currency.SettlementDecimals)
	after := wallet.Balance.Add(amount)
	if entry.Direction == domain.DirectionDebit {
		after = wallet.Balance.Sub(amount)
		if after.IsNegative() {
			return nil, false, domain.NewValidationError("amount", "insufficient wallet balance: %s available", wallet.Balance.StringFixed(currency.SettlementDecimals))
		}
	}

	record := &domain.WalletTransaction{
		ID:            uuid.New().String(),
		WalletID:      wallet.ID,
		Direction:     entry.Direction,
		Amount:        amount,
		BalanceBefore: wallet.Balance,
		BalanceAfter:  after,
		Reference:     entry.Reference,
		Description:   entry.Description,
		CreatedAt:     time.Now().UTC(),
	}

	inserted, err := s.walletRepo.InsertTransactionTx(ctx, tx, record)
	if err != nil {
		return nil, false, fmt.Errorf("failed to record wallet transaction: %w", err)
	}
	if !inserted {
		s.logger.Info().
			Str("wallet_id", wallet.ID).
			Str("reference", entry.Reference).
			Str("direction", string(entry.Direction)).
			Msg("Ledger entry already applied, skipping")
		return nil, false, nil
	}

	if err := s.walletRepo.UpdateBalanceTx(ctx, tx, wallet.ID, after); err != nil {
		return nil, false, fmt.Errorf("failed to update wallet balance: %w", err)
	}

	s.logger.Info().
		Str("wallet_id", wallet.ID).
		Str("owner_id", entry.OwnerID).
		Str("direction", string(entry.Direction)).
		Str("amount", amount.String()).
		Str("balance_after", after.String()).
		Str("reference", entry.Reference).
		Msg("Applied ledger entry")

	return record, true, nil
}

func (s *walletService) Credit(ctx context.Context, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error) {
	entry.Direction = domain.DirectionCredit
	return s.apply(ctx, entry)
}

func (s *walletService) Debit(ctx context.Context, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error) {
	entry.Direction = domain.DirectionDebit
	return s.apply(ctx, entry)
}

func (s *walletService) apply(ctx context.Context, entry domain.LedgerEntry) (*domain.WalletTransaction, bool, error) {
	var (
		record  *domain.WalletTransaction
		applied bool
	)
	err := s.transactor.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		record, applied, err = s.ApplyTx(ctx, tx, entry)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return record, applied, nil
}

func (s *walletService) GetWallet(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	if ownerID == "" {
		return nil, domain.NewValidationError("owner_id", "is required")
	}
	return s.walletRepo.GetByOwner(ctx, ownerID)
}

func (s *walletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return s.walletRepo.GetByID(ctx, walletID)
}

func (s *walletService) ListTransactions(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.walletRepo.ListTransactions(ctx, walletID, limit, offset)
}

// VerifyBalance rebuilds a wallet's balance from its ledger and compares it
// with the stored balance.
func (s *walletService) VerifyBalance(ctx context.Context, walletID string) (*domain.BalanceAudit, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, err
	}

	ledger, count, err := s.walletRepo.LedgerBalance(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild wallet balance: %w", err)
	}

	audit := &domain.BalanceAudit{
		WalletID:       walletID,
		StoredBalance:  wallet.Balance,
		LedgerBalance:  ledger,
		Consistent:     wallet.Balance.Equal(ledger),
		TransactionCnt: count,
	}
	if !audit.Consistent {
		s.logger.Error().
			Str("wallet_id", walletID).
			Str("stored", wallet.Balance.String()).
			Str("ledger", ledger.String()).
			Msg("Wallet balance drifted from ledger")
	}
	return audit, nil
}

func validateEntry(entry domain.LedgerEntry) error {
	if entry.OwnerID == "" {
		return domain.NewValidationError("owner_id", "is required")
	}
	if entry.Reference == "" {
		return domain.NewValidationError("reference", "is required")
	}
	if entry.Direction != domain.DirectionCredit && entry.Direction != domain.DirectionDebit {
		return domain.NewValidationError("direction", "unknown direction %q", entry.Direction)
	}
	if !entry.Amount.IsPositive() {
		return domain.NewValidationError("amount", "must be positive")
	}
	return nil
}
