package reconciliationservice

import (
	"context"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=reconciliation_service.go -destination=mocks/reconciliation_service_mock.go -package=mock_reconciliationservice

type IReconciliationService interface {
	// Reconcile brings one transaction in line with the provider. It is safe
	// to call repeatedly and concurrently; side effects run once per
	// transition.
	Reconcile(ctx context.Context, transactionID string) (*domain.ReconcileResult, error)
	ReconcilePending(ctx context.Context) (*domain.ReconcileSummary, error)
	// Start polls non-terminal transactions until ctx is cancelled.
	Start(ctx context.Context) error
}
