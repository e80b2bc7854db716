package memrepo

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/repositories/walletrepo"
)

type WalletRepository struct {
	s *Store
}

func NewWalletRepository(s *Store) *WalletRepository {
	return &WalletRepository{s: s}
}

var _ walletrepo.IWalletRepository = (*WalletRepository)(nil)

func (r *WalletRepository) GetOrCreateForUpdateTx(ctx context.Context, tx *sql.Tx, ownerID, currency string) (*domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if w, ok := r.byOwner(ownerID); ok {
		return &w, nil
	}
	now := time.Now()
	w := domain.Wallet{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Balance:   decimal.Zero,
		Currency:  currency,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.wallets[w.ID] = w
	return &w, nil
}

func (r *WalletRepository) InsertTransactionTx(ctx context.Context, tx *sql.Tx, entry *domain.WalletTransaction) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if hook := r.s.FailLedgerEntry; hook != nil {
		if err := hook(r.s.wallets[entry.WalletID].OwnerID, *entry); err != nil {
			return false, err
		}
	}
	for _, existing := range r.s.ledger {
		if existing.WalletID == entry.WalletID && existing.Reference == entry.Reference && existing.Direction == entry.Direction {
			return false, nil
		}
	}
	r.s.ledger = append(r.s.ledger, *entry)
	return true, nil
}

func (r *WalletRepository) UpdateBalanceTx(ctx context.Context, tx *sql.Tx, walletID string, balance decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.wallets[walletID]
	if !ok {
		return domain.NewNotFoundError("wallet", walletID)
	}
	w.Balance = balance
	w.UpdatedAt = time.Now()
	r.s.wallets[walletID] = w
	return nil
}

func (r *WalletRepository) GetByID(ctx context.Context, id string) (*domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.wallets[id]
	if !ok {
		return nil, domain.NewNotFoundError("wallet", id)
	}
	return &w, nil
}

func (r *WalletRepository) GetByOwner(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.byOwner(ownerID)
	if !ok {
		return nil, domain.NewNotFoundError("wallet", ownerID)
	}
	return &w, nil
}

func (r *WalletRepository) byOwner(ownerID string) (domain.Wallet, bool) {
	for _, w := range r.s.wallets {
		if w.OwnerID == ownerID {
			return w, true
		}
	}
	return domain.Wallet{}, false
}

func (r *WalletRepository) ListTransactions(ctx context.Context, walletID string, limit, offset int) ([]domain.WalletTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.WalletTransaction
	for _, entry := range r.s.ledger {
		if entry.WalletID == walletID {
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *WalletRepository) LedgerBalance(ctx context.Context, walletID string) (decimal.Decimal, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sum, count := decimal.Zero, 0
	for _, entry := range r.s.ledger {
		if entry.WalletID != walletID {
			continue
		}
		count++
		if entry.Direction == domain.DirectionCredit {
			sum = sum.Add(entry.Amount)
		} else {
			sum = sum.Sub(entry.Amount)
		}
	}
	return sum, count, nil
}

// SetBalance overwrites a stored balance without a ledger entry, for drift tests.
func (r *WalletRepository) SetBalance(walletID string, balance decimal.Decimal) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w := r.s.wallets[walletID]
	w.Balance = balance
	r.s.wallets[walletID] = w
}
