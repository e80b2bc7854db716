package memrepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/repositories/transactionrepo"
)

type TransactionRepository struct {
	s *Store
}

func NewTransactionRepository(s *Store) *TransactionRepository {
	return &TransactionRepository{s: s}
}

var _ transactionrepo.ITransactionRepository = (*TransactionRepository)(nil)

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.PaymentTransaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.transactions {
		if existing.ExternalID == tx.ExternalID {
			return fmt.Errorf("failed to create payment transaction: duplicate external id %s", tx.ExternalID)
		}
	}
	r.s.transactions[tx.ID] = *tx
	return nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	tx, ok := r.s.transactions[id]
	if !ok {
		return nil, domain.NewNotFoundError("payment transaction", id)
	}
	return &tx, nil
}

func (r *TransactionRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentTransaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, tx := range r.s.transactions {
		if tx.ExternalID == externalID {
			return &tx, nil
		}
	}
	return nil, domain.NewNotFoundError("payment transaction", externalID)
}

func (r *TransactionRepository) UpdateStatus(ctx context.Context, tx *domain.PaymentTransaction, expectedVersion int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.transactions[tx.ID]
	if !ok || stored.Version != expectedVersion {
		return false, nil
	}

	stored.Status = tx.Status
	if tx.ProviderTransactionID != nil {
		stored.ProviderTransactionID = tx.ProviderTransactionID
	}
	if tx.FailureCode != nil {
		stored.FailureCode = tx.FailureCode
	}
	if tx.FailureMessage != nil {
		stored.FailureMessage = tx.FailureMessage
	}
	if tx.ReceivedByProviderAt != nil {
		stored.ReceivedByProviderAt = tx.ReceivedByProviderAt
	}
	if tx.CompletedAt != nil {
		stored.CompletedAt = tx.CompletedAt
	}
	stored.Version = expectedVersion + 1
	stored.UpdatedAt = time.Now()
	r.s.transactions[tx.ID] = stored

	tx.Version = stored.Version
	return true, nil
}

func (r *TransactionRepository) ListByReference(ctx context.Context, reference string) ([]domain.PaymentTransaction, error) {
	return r.filter(func(tx domain.PaymentTransaction) bool { return tx.InternalReference == reference }, 0), nil
}

func (r *TransactionRepository) ListNonTerminal(ctx context.Context, createdBefore time.Time, limit int) ([]domain.PaymentTransaction, error) {
	return r.filter(func(tx domain.PaymentTransaction) bool {
		return !tx.Status.IsTerminal() && !tx.CreatedAt.After(createdBefore)
	}, limit), nil
}

func (r *TransactionRepository) filter(keep func(domain.PaymentTransaction) bool, limit int) []domain.PaymentTransaction {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var out []domain.PaymentTransaction
	for _, tx := range r.s.transactions {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
