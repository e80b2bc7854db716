package availabilityservice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
)

type availabilityService struct {
	reservationRepo reservationrepo.IReservationRepository
	catalog         interfaces.ResourceCatalog
	logger          zerolog.Logger
}

func New(reservationRepo reservationrepo.IReservationRepository, catalog interfaces.ResourceCatalog, logger zerolog.Logger) IAvailabilityService {
	return &availabilityService{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		logger:          logger.With().Str("component", "availability_service").Logger(),
	}
}

// ValidateInterval rejects empty and inverted stays.
func ValidateInterval(resourceID string, start, end time.Time) error {
	if resourceID == "" {
		return domain.NewValidationError("resource_id", "is required")
	}
	if start.IsZero() || end.IsZero() {
		return domain.NewValidationError("start_date", "start_date and end_date are required")
	}
	if !end.After(start) {
		return domain.NewValidationError("end_date", "must be after start_date")
	}
	return nil
}

func (s *availabilityService) CheckAvailability(ctx context.Context, resourceID string, start, end time.Time, excludeReservationID string) (*domain.AvailabilityResult, error) {
	if err := ValidateInterval(resourceID, start, end); err != nil {
		return nil, err
	}

	resource, err := s.catalog.GetResource(ctx, resourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up resource %s: %w", resourceID, err)
	}
	if !resource.IsActive {
		return &domain.AvailabilityResult{
			ResourceID:       resourceID,
			StartDate:        start,
			EndDate:          end,
			Reason:           domain.ReasonResourceInactive,
			Conflicts:        []domain.Reservation{},
			BlockedConflicts: []domain.BlockedRange{},
		}, nil
	}

	return s.ConflictsTx(ctx, nil, resourceID, start, end, excludeReservationID)
}

func (s *availabilityService) ConflictsTx(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time, excludeReservationID string) (*domain.AvailabilityResult, error) {
	if err := ValidateInterval(resourceID, start, end); err != nil {
		return nil, err
	}

	conflicts, err := s.reservationRepo.FindOverlappingTx(ctx, tx, resourceID, start, end, excludeReservationID)
	if err != nil {
		return nil, domain.NewDependencyError("reservation_store", err)
	}
	blocked, err := s.reservationRepo.FindBlockedOverlappingTx(ctx, tx, resourceID, start, end)
	if err != nil {
		return nil, domain.NewDependencyError("reservation_store", err)
	}

	result := &domain.AvailabilityResult{
		ResourceID:       resourceID,
		StartDate:        start,
		EndDate:          end,
		Conflicts:        nonNil(conflicts),
		BlockedConflicts: nonNilBlocked(blocked),
	}
	switch {
	case len(conflicts) > 0:
		result.Reason = domain.ReasonReservedDates
	case len(blocked) > 0:
		result.Reason = domain.ReasonBlockedDates
	default:
		result.Available = true
	}

	s.logger.Debug().
		Str("resource_id", resourceID).
		Time("start", start).
		Time("end", end).
		Bool("available", result.Available).
		Int("conflicts", len(conflicts)).
		Int("blocked", len(blocked)).
		Msg("Checked availability")

	return result, nil
}

func nonNil(rs []domain.Reservation) []domain.Reservation {
	if rs == nil {
		return []domain.Reservation{}
	}
	return rs
}

func nonNilBlocked(bs []domain.BlockedRange) []domain.BlockedRange {
	if bs == nil {
		return []domain.BlockedRange{}
	}
	return bs
}
