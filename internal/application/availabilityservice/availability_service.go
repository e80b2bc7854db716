package availabilityservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=availability_service.go -destination=mocks/availability_service_mock.go -package=mock_availabilityservice

type IAvailabilityService interface {
	CheckAvailability(ctx context.Context, resourceID string, start, end time.Time, excludeReservationID string) (*domain.AvailabilityResult, error)
	// ConflictsTx reads overlapping reservations and blocked ranges inside tx
	// without consulting the catalog.
	ConflictsTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time, excludeReservationID string) (*domain.AvailabilityResult, error)
}
