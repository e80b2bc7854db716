package distributionservice

import (
	"context"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=distribution_service.go -destination=mocks/distribution_service_mock.go -package=mock_distributionservice

type IDistributionService interface {
	// Distribute credits the platform, owner and agent wallets for a paid
	// reservation exactly once.
	Distribute(ctx context.Context, reservationID string) (*domain.DistributionResult, error)
	FindUndistributed(ctx context.Context) ([]domain.Reservation, error)
	DistributeAll(ctx context.Context) (*domain.DistributionSummary, error)
}
