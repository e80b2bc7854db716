package transactionrepo

import (
	"context"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=transaction_repo.go -destination=mocks/transaction_repo_mock.go -package=mock_transactionrepo

type ITransactionRepository interface {
	Create(ctx context.Context, tx *domain.PaymentTransaction) error
	GetByID(ctx context.Context, id string) (*domain.PaymentTransaction, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentTransaction, error)
	// UpdateStatus writes the provider view of tx only if the stored version
	// still equals expectedVersion. It reports whether the write won.
	UpdateStatus(ctx context.Context, tx *domain.PaymentTransaction, expectedVersion int64) (bool, error)
	ListByReference(ctx context.Context, reference string) ([]domain.PaymentTransaction, error)
	ListNonTerminal(ctx context.Context, createdBefore time.Time, limit int) ([]domain.PaymentTransaction, error)
}
