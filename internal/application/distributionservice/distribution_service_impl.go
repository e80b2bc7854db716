package distributionservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/infrastructure/database"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
	"github.com/tuncanbit/bss/pkg/config"
)

// errLostRace rolls back a distribution whose flag was set by someone else
// between the row lock and the conditional update.
var errLostRace = errors.New("reservation distributed concurrently")

type distributionService struct {
	reservationRepo reservationrepo.IReservationRepository
	walletService   walletservice.IWalletService
	transactor      database.Transactor
	publisher       interfaces.EventPublisher
	config          config.DistributionConfig
	platformOwner   string
	logger          zerolog.Logger
}

func New(
	reservationRepo reservationrepo.IReservationRepository,
	walletService walletservice.IWalletService,
	transactor database.Transactor,
	publisher interfaces.EventPublisher,
	cfg config.DistributionConfig,
	platformOwner string,
	logger zerolog.Logger,
) IDistributionService {
	return &distributionService{
		reservationRepo: reservationRepo,
		walletService:   walletService,
		transactor:      transactor,
		publisher:       publisher,
		config:          cfg,
		platformOwner:   platformOwner,
		logger:          logger.With().Str("component", "distribution_service").Logger(),
	}
}

func (s *distributionService) Distribute(ctx context.Context, reservationID string) (*domain.DistributionResult, error) {
	result := &domain.DistributionResult{ReservationID: reservationID}
	var reservation *domain.Reservation

	err := s.transactor.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := s.reservationRepo.GetForUpdateTx(ctx, tx, reservationID)
		if err != nil {
			return err
		}
		reservation = res

		if res.WalletDistributed {
			result.Reason = domain.DistributionAlreadyDone
			return nil
		}
		if res.PaymentStatus != domain.PaymentCompleted {
			result.Reason = domain.DistributionNotPaid
			return nil
		}

		splits := Splits(res, s.platformOwner)
		for i := range splits {
			split := &splits[i]
			if !split.Amount.IsPositive() {
				continue
			}
			record, applied, err := s.walletService.ApplyTx(ctx, tx, domain.LedgerEntry{
				OwnerID:     split.OwnerID,
				Direction:   domain.DirectionCredit,
				Amount:      split.Amount,
				Reference:   shareReference(res.ID, split.Role),
				Description: fmt.Sprintf("%s share of reservation %s", split.Role, res.ID),
			})
			if err != nil {
				return fmt.Errorf("failed to credit %s wallet: %w", split.Role, err)
			}
			split.Applied = applied
			if record != nil {
				split.WalletID = record.WalletID
			}
		}

		won, err := s.reservationRepo.MarkDistributedTx(ctx, tx, res.ID, time.Now().UTC())
		if err != nil {
			return err
		}
		if !won {
			return errLostRace
		}

		result.Success = true
		result.Splits = splits
		return nil
	})

	switch {
	case errors.Is(err, errLostRace):
		return &domain.DistributionResult{ReservationID: reservationID, Reason: domain.DistributionAlreadyDone}, nil
	case domain.IsNotFound(err):
		return nil, err
	case err != nil:
		return s.recordFailure(ctx, reservation, reservationID, err)
	}

	if result.Success {
		s.logger.Info().
			Str("reservation_id", reservationID).
			Int("recipients", len(result.Splits)).
			Msg("Distributed reservation funds")
		s.publish(ctx, distributedEvent(reservation, result.Splits))
	}
	return result, nil
}

// shareReference keys a credit by reservation and role, so recipients that
// share a wallet each get their own ledger entry.
func shareReference(reservationID string, role domain.RecipientRole) string {
	return "reservation:" + reservationID + ":" + string(role)
}

func (s *distributionService) recordFailure(ctx context.Context, reservation *domain.Reservation, reservationID string, cause error) (*domain.DistributionResult, error) {
	s.logger.Error().Err(cause).Str("reservation_id", reservationID).Msg("Failed to distribute reservation funds")

	if err := s.reservationRepo.RecordDistributionFailure(ctx, reservationID, cause.Error()); err != nil {
		s.logger.Error().Err(err).Str("reservation_id", reservationID).Msg("Failed to record distribution failure")
	}

	event := domain.Event{
		ID:            uuid.New().String(),
		Type:          domain.EventDistributionFailed,
		ReservationID: reservationID,
		Recipients:    []string{s.platformOwner},
		Data:          map[string]string{"error": cause.Error()},
		OccurredAt:    time.Now().UTC(),
	}
	if reservation != nil {
		event.Data["owner_id"] = reservation.OwnerID
	}
	s.publish(ctx, event)

	return &domain.DistributionResult{ReservationID: reservationID, Reason: cause.Error()},
		fmt.Errorf("failed to distribute reservation %s: %w", reservationID, cause)
}

func (s *distributionService) FindUndistributed(ctx context.Context) ([]domain.Reservation, error) {
	since := time.Now().UTC().AddDate(0, 0, -s.config.BackfillWindowDays)
	return s.reservationRepo.FindUndistributed(ctx, since, s.config.BatchSize)
}

func (s *distributionService) DistributeAll(ctx context.Context) (*domain.DistributionSummary, error) {
	pending, err := s.FindUndistributed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find undistributed reservations: %w", err)
	}

	summary := &domain.DistributionSummary{Total: len(pending)}
	for _, res := range pending {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result, err := s.Distribute(ctx, res.ID)
		switch {
		case err != nil:
			summary.Failed++
			if result == nil {
				result = &domain.DistributionResult{ReservationID: res.ID, Reason: err.Error()}
			}
		case result.Success:
			summary.Succeeded++
		default:
			summary.Skipped++
		}
		summary.Results = append(summary.Results, *result)
	}

	s.logger.Info().
		Int("total", summary.Total).
		Int("succeeded", summary.Succeeded).
		Int("failed", summary.Failed).
		Msg("Distribution backfill finished")
	return summary, nil
}

func (s *distributionService) publish(ctx context.Context, event domain.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("event", string(event.Type)).Str("reservation_id", event.ReservationID).Msg("Failed to publish event")
	}
}

func distributedEvent(res *domain.Reservation, splits []domain.Split) domain.Event {
	event := domain.Event{
		ID:            uuid.New().String(),
		Type:          domain.EventFundsDistributed,
		ReservationID: res.ID,
		Data:          map[string]string{"total": res.Price.Total.StringFixed(2)},
		OccurredAt:    time.Now().UTC(),
	}
	for _, split := range splits {
		event.Data[string(split.Role)] = split.Amount.StringFixed(2)
		if split.Role != domain.RecipientPlatform {
			event.Recipients = append(event.Recipients, split.OwnerID)
		}
	}
	return event
}
