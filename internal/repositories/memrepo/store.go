// Package memrepo holds in-memory implementations of the repository
// interfaces. Service tests use them where the behaviour under test depends
// on stored state rather than on individual calls.
package memrepo

import (
	"context"
	"database/sql"
	"sync"

	"github.com/tuncanbit/bss/internal/domain"
)

// Store is shared by the repositories of one test. WithTx serialises
// transactions and restores every table when fn fails.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	reservations map[string]domain.Reservation
	blocked      map[string]domain.BlockedRange
	transactions map[string]domain.PaymentTransaction
	wallets      map[string]domain.Wallet
	ledger       []domain.WalletTransaction

	// FailLedgerEntry, when set, is consulted before each wallet ledger
	// insert and aborts it with the returned error.
	FailLedgerEntry func(ownerID string, entry domain.WalletTransaction) error
}

func NewStore() *Store {
	return &Store{
		reservations: make(map[string]domain.Reservation),
		blocked:      make(map[string]domain.BlockedRange),
		transactions: make(map[string]domain.PaymentTransaction),
		wallets:      make(map[string]domain.Wallet),
	}
}

type snapshot struct {
	reservations map[string]domain.Reservation
	blocked      map[string]domain.BlockedRange
	transactions map[string]domain.PaymentTransaction
	wallets      map[string]domain.Wallet
	ledger       []domain.WalletTransaction
}

// WithTx runs fn with a nil *sql.Tx; the repositories treat nil as the pool.
func (s *Store) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := s.snapshot()
	if err := fn(nil); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		reservations: make(map[string]domain.Reservation, len(s.reservations)),
		blocked:      make(map[string]domain.BlockedRange, len(s.blocked)),
		transactions: make(map[string]domain.PaymentTransaction, len(s.transactions)),
		wallets:      make(map[string]domain.Wallet, len(s.wallets)),
		ledger:       append([]domain.WalletTransaction(nil), s.ledger...),
	}
	for k, v := range s.reservations {
		snap.reservations[k] = v
	}
	for k, v := range s.blocked {
		snap.blocked[k] = v
	}
	for k, v := range s.transactions {
		snap.transactions[k] = v
	}
	for k, v := range s.wallets {
		snap.wallets[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = snap.reservations
	s.blocked = snap.blocked
	s.transactions = snap.transactions
	s.wallets = snap.wallets
	s.ledger = snap.ledger
}
