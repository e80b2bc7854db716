package bookingservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/availabilityservice"
	"github.com/tuncanbit/bss/internal/application/paymentservice"
	"github.com/tuncanbit/bss/internal/application/pricing"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/infrastructure/cache"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
	"github.com/tuncanbit/bss/pkg/config"
)

type bookingService struct {
	reservationRepo reservationrepo.IReservationRepository
	availability    availabilityservice.IAvailabilityService
	payments        paymentservice.IPaymentService
	catalog         interfaces.ResourceCatalog
	transactor      database.Transactor
	locker          cache.Locker
	publisher       interfaces.EventPublisher
	settlement      config.SettlementConfig
	now             func() time.Time
	logger          zerolog.Logger
}

func New(
	reservationRepo reservationrepo.IReservationRepository,
	availability availabilityservice.IAvailabilityService,
	payments paymentservice.IPaymentService,
	catalog interfaces.ResourceCatalog,
	transactor database.Transactor,
	locker cache.Locker,
	publisher interfaces.EventPublisher,
	settlement config.SettlementConfig,
	logger zerolog.Logger,
) IBookingService {
	return &bookingService{
		reservationRepo: reservationRepo,
		availability:    availability,
		payments:        payments,
		catalog:         catalog,
		transactor:      transactor,
		locker:          locker,
		publisher:       publisher,
		settlement:      settlement,
		now:             time.Now,
		logger:          logger.With().Str("component", "booking_service").Logger(),
	}
}

// stay snaps a requested interval to whole dates: the start date, and as many
// nights after it as the interval covers, partial days rounding up.
func stay(resourceID string, start, end time.Time) (time.Time, time.Time, error) {
	if err := availabilityservice.ValidateInterval(resourceID, start, end); err != nil {
		return time.Time{}, time.Time{}, err
	}
	from := domain.DateOnly(start)
	return from, from.AddDate(0, 0, pricing.Nights(start, end)), nil
}

func (s *bookingService) price(resource *domain.Resource, start, end time.Time) (domain.PriceBreakdown, error) {
	currency := resource.Currency
	if currency == "" {
		currency = s.settlement.Currency
	}
	return pricing.PriceBreakdown(resource.NightlyRate, start, end, resource.TwoNightRate, currency)
}

func (s *bookingService) Quote(ctx context.Context, resourceID string, start, end time.Time) (*domain.Quote, error) {
	start, end, err := stay(resourceID, start, end)
	if err != nil {
		return nil, err
	}

	resource, err := s.catalog.GetResource(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	price, err := s.price(resource, start, end)
	if err != nil {
		return nil, err
	}
	availability, err := s.availability.CheckAvailability(ctx, resourceID, start, end, "")
	if err != nil {
		return nil, err
	}

	return &domain.Quote{
		ResourceID: resourceID,
		StartDate:  start,
		EndDate:    end,
		Available:  availability.Available,
		Reason:     availability.Reason,
		Price:      price,
	}, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.Reservation, error) {
	start, end, err := stay(req.ResourceID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.RequesterID == "" {
		return nil, domain.NewValidationError("requester_id", "is required")
	}
	if req.Guests < 1 {
		return nil, domain.NewValidationError("guests", "must be at least 1")
	}

	resource, err := s.catalog.GetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if !resource.IsActive {
		return nil, &domain.ConflictError{Message: "resource is not accepting bookings"}
	}
	if resource.MaxCapacity > 0 && req.Guests > resource.MaxCapacity {
		return nil, domain.NewValidationError("guests", "exceeds capacity of %d", resource.MaxCapacity)
	}
	if resource.OwnerID == req.RequesterID {
		return nil, domain.NewValidationError("requester_id", "owners cannot book their own resource")
	}

	price, err := s.price(resource, start, end)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	reservation := &domain.Reservation{
		ID:            uuid.New().String(),
		ResourceID:    resource.ID,
		ResourceType:  resource.Type,
		RequesterID:   req.RequesterID,
		OwnerID:       resource.OwnerID,
		AgentID:       resource.AgentID,
		StartDate:     start,
		EndDate:       end,
		Guests:        req.Guests,
		Price:         price,
		Status:        domain.ReservationPending,
		PaymentStatus: domain.PaymentPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	release := s.locker.Acquire(ctx, "resource:"+resource.ID)
	defer release()

	err = s.transactor.WithTx(ctx, func(tx *sql.Tx) error {
		if err := s.reservationRepo.LockResourceTx(ctx, tx, resource.ID); err != nil {
			return err
		}
		if err := s.ensureFree(ctx, tx, resource.ID, start, end); err != nil {
			return err
		}
		return s.reservationRepo.CreateTx(ctx, tx, reservation)
	})
	if errors.Is(err, reservationrepo.ErrOverlap) {
		return nil, s.overlapConflict(ctx, resource.ID, start, end)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info().Ctx(ctx).
		Str("reservation_id", reservation.ID).
		Str("resource_id", resource.ID).
		Str("requester_id", req.RequesterID).
		Str("total", price.Total.String()).
		Msg("Booking created")

	s.publish(ctx, domain.Event{
		ID:            uuid.New().String(),
		Type:          domain.EventBookingCreated,
		ReservationID: reservation.ID,
		Recipients:    []string{reservation.RequesterID, reservation.OwnerID},
		Data: map[string]string{
			"resource_id": resource.ID,
			"start_date":  start.Format(time.DateOnly),
			"end_date":    end.Format(time.DateOnly),
			"total":       price.Total.StringFixed(2),
			"currency":    price.Currency,
		},
		OccurredAt: now,
	})
	return reservation, nil
}

func (s *bookingService) ensureFree(ctx context.Context, tx *sql.Tx, resourceID string, start, end time.Time) error {
	result, err := s.availability.ConflictsTx(ctx, tx, resourceID, start, end, "")
	if err != nil {
		return err
	}
	if !result.Available {
		return &domain.ConflictError{
			Message:      "requested dates are not available",
			Reservations: result.Conflicts,
			Blocked:      result.BlockedConflicts,
		}
	}
	return nil
}

// overlapConflict reports the reservations that won when the store's
// exclusion constraint rejected an insert the locked check let through.
func (s *bookingService) overlapConflict(ctx context.Context, resourceID string, start, end time.Time) error {
	conflict := &domain.ConflictError{Message: "requested dates are not available"}
	result, err := s.availability.ConflictsTx(ctx, nil, resourceID, start, end, "")
	if err != nil {
		s.logger.Warn().Err(err).Str("resource_id", resourceID).Msg("Failed to load conflicting reservations after overlap")
		return conflict
	}
	conflict.Reservations = result.Conflicts
	conflict.Blocked = result.BlockedConflicts
	return conflict
}

func (s *bookingService) GetBooking(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *bookingService) CancelBooking(ctx context.Context, id string, by domain.CancelRole, actorID string) (*domain.CancellationResult, error) {
	if by != domain.CancelledByOwner && by != domain.CancelledByRequester {
		return nil, domain.NewValidationError("cancelled_by", "must be owner or requester")
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != "" {
		if by == domain.CancelledByOwner && actorID != res.OwnerID {
			return nil, &domain.ForbiddenError{Message: "only the owner can cancel as owner"}
		}
		if by == domain.CancelledByRequester && actorID != res.RequesterID {
			return nil, &domain.ForbiddenError{Message: "only the requester can cancel as requester"}
		}
	}

	now := s.now().UTC()
	refund := pricing.RefundAmount(res, by, now)

	cancelled, err := s.reservationRepo.Cancel(ctx, id, by, now)
	if err != nil {
		return nil, err
	}

	result := &domain.CancellationResult{Reservation: cancelled, RefundAmount: refund}
	if res.PaymentStatus == domain.PaymentCompleted && refund.IsPositive() {
		tx, err := s.payments.InitiateRefund(ctx, domain.RefundInput{ReservationID: id, Amount: refund})
		if err != nil {
			s.logger.Error().Err(err).Str("reservation_id", id).Str("amount", refund.String()).Msg("Failed to initiate refund for cancelled booking")
			result.RefundError = err.Error()
		} else {
			result.Refund = tx
		}
	}

	s.logger.Info().Ctx(ctx).
		Str("reservation_id", id).
		Str("cancelled_by", string(by)).
		Str("refund", refund.String()).
		Msg("Booking cancelled")

	s.publish(ctx, domain.Event{
		ID:            uuid.New().String(),
		Type:          domain.EventBookingCancelled,
		ReservationID: id,
		Recipients:    []string{res.RequesterID, res.OwnerID},
		Data: map[string]string{
			"cancelled_by":  string(by),
			"refund_amount": refund.StringFixed(2),
		},
		OccurredAt: now,
	})
	return result, nil
}

func (s *bookingService) BlockDates(ctx context.Context, req domain.BlockRequest) (*domain.BlockedRange, error) {
	start, end, err := stay(req.ResourceID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	resource, err := s.catalog.GetResource(ctx, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if req.CreatedBy != "" && req.CreatedBy != resource.OwnerID {
		return nil, &domain.ForbiddenError{Message: "only the owner can block dates"}
	}

	blocked := &domain.BlockedRange{
		ID:         uuid.New().String(),
		ResourceID: resource.ID,
		StartDate:  start,
		EndDate:    end,
		IsActive:   true,
		Reason:     req.Reason,
		CreatedBy:  req.CreatedBy,
		CreatedAt:  s.now().UTC(),
	}

	release := s.locker.Acquire(ctx, "resource:"+resource.ID)
	defer release()

	err = s.transactor.WithTx(ctx, func(tx *sql.Tx) error {
		if err := s.reservationRepo.LockResourceTx(ctx, tx, resource.ID); err != nil {
			return err
		}
		conflicts, err := s.reservationRepo.FindOverlappingTx(ctx, tx, resource.ID, start, end, "")
		if err != nil {
			return fmt.Errorf("failed to check reservations: %w", err)
		}
		if len(conflicts) > 0 {
			return &domain.ConflictError{Message: "dates overlap active reservations", Reservations: conflicts}
		}
		return s.reservationRepo.CreateBlockedRangeTx(ctx, tx, blocked)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("blocked_range_id", blocked.ID).Str("resource_id", resource.ID).Msg("Dates blocked")
	return blocked, nil
}

func (s *bookingService) UnblockDates(ctx context.Context, id, actorID string) error {
	blocked, err := s.reservationRepo.GetBlockedRange(ctx, id)
	if err != nil {
		return err
	}
	if actorID != "" && blocked.CreatedBy != actorID {
		return &domain.ForbiddenError{Message: "only the owner who blocked these dates can unblock them"}
	}
	return s.reservationRepo.DeactivateBlockedRange(ctx, id)
}

func (s *bookingService) publish(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("event", string(event.Type)).Str("reservation_id", event.ReservationID).Msg("Failed to publish event")
	}
}
