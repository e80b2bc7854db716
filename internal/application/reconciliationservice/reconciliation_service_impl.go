package reconciliationservice

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/application/distributionservice"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/internal/infrastructure/cache"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
	"github.com/tuncanbit/bss/internal/repositories/transactionrepo"
	"github.com/tuncanbit/bss/pkg/config"
)

type reconciliationService struct {
	transactionRepo transactionrepo.ITransactionRepository
	reservationRepo reservationrepo.IReservationRepository
	distribution    distributionservice.IDistributionService
	walletService   walletservice.IWalletService
	gateway         interfaces.PaymentGateway
	publisher       interfaces.EventPublisher
	locker          cache.Locker
	config          config.ReconciliationConfig
	logger          zerolog.Logger
}

func New(
	transactionRepo transactionrepo.ITransactionRepository,
	reservationRepo reservationrepo.IReservationRepository,
	distribution distributionservice.IDistributionService,
	walletService walletservice.IWalletService,
	gateway interfaces.PaymentGateway,
	publisher interfaces.EventPublisher,
	locker cache.Locker,
	cfg config.ReconciliationConfig,
	logger zerolog.Logger,
) IReconciliationService {
	return &reconciliationService{
		transactionRepo: transactionRepo,
		reservationRepo: reservationRepo,
		distribution:    distribution,
		walletService:   walletService,
		gateway:         gateway,
		publisher:       publisher,
		locker:          locker,
		config:          cfg,
		logger:          logger.With().Str("component", "reconciliation_service").Logger(),
	}
}

func (s *reconciliationService) Reconcile(ctx context.Context, transactionID string) (*domain.ReconcileResult, error) {
	release := s.locker.Acquire(ctx, "reconcile:"+transactionID)
	defer release()

	stored, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	result := &domain.ReconcileResult{
		TransactionID:  stored.ID,
		Type:           stored.Type,
		PreviousStatus: stored.Status,
		NewStatus:      stored.Status,
	}
	if stored.Type != domain.TransactionPayout {
		result.ReservationID = stored.InternalReference
	}
	if stored.Status.IsTerminal() {
		result.Note = "transaction already final"
		return result, nil
	}

	remote, err := s.fetchStatus(ctx, stored)
	if domain.IsNotFound(err) {
		s.logger.Warn().Str("transaction_id", stored.ID).Str("external_id", stored.ExternalID).Msg("Transaction unknown to provider")
		result.Note = "unknown to provider"
		return result, nil
	}
	if err != nil {
		return nil, err
	}

	updated := observe(stored, remote)
	if updated == nil {
		result.Note = "no change"
		return result, nil
	}
	result.NewStatus = updated.Status

	// State changes that are idempotent run before the version bump, so a
	// failure here leaves the transaction non-final and it is retried.
	var reservation *domain.Reservation
	if updated.Status.IsTerminal() {
		reservation, result.Note, err = s.applyOutcome(ctx, updated)
		if err != nil {
			return nil, err
		}
	}

	won, err := s.transactionRepo.UpdateStatus(ctx, updated, stored.Version)
	if err != nil {
		return nil, err
	}
	if !won {
		s.logger.Info().Str("transaction_id", stored.ID).Msg("Transaction updated concurrently, skipping side effects")
		result.NewStatus = stored.Status
		result.Note = "updated concurrently"
		return result, nil
	}
	result.Changed = updated.Status != stored.Status
	if !result.Changed {
		return result, nil
	}

	s.logger.Info().
		Str("transaction_id", stored.ID).
		Str("type", string(stored.Type)).
		Str("previous_status", string(stored.Status)).
		Str("new_status", string(updated.Status)).
		Msg("Transaction status changed")

	if updated.Status.IsTerminal() {
		s.afterTransition(ctx, updated, reservation, result)
	}
	return result, nil
}

func (s *reconciliationService) fetchStatus(ctx context.Context, tx *domain.PaymentTransaction) (*models.GatewayTransaction, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.GatewayTimeout)
	defer cancel()

	var (
		remote *models.GatewayTransaction
		err    error
	)
	switch tx.Type {
	case domain.TransactionDeposit:
		remote, err = s.gateway.GetDepositStatus(ctx, tx.ExternalID)
	case domain.TransactionPayout:
		remote, err = s.gateway.GetPayoutStatus(ctx, tx.ExternalID)
	case domain.TransactionRefund:
		remote, err = s.gateway.GetRefundStatus(ctx, tx.ExternalID)
	default:
		return nil, fmt.Errorf("unknown transaction type %q", tx.Type)
	}
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, err
		}
		return nil, domain.NewDependencyError("payment_gateway", err)
	}
	return remote, nil
}

// observe returns the stored transaction updated with the provider's view,
// or nil when nothing differs.
func observe(stored *domain.PaymentTransaction, remote *models.GatewayTransaction) *domain.PaymentTransaction {
	status := domain.TransactionStatus(remote.Status)
	switch status {
	case "":
		return nil
	case "REJECTED":
		status = domain.TransactionFailed
	}

	updated := *stored
	changed := status != stored.Status
	updated.Status = status

	if remote.ProviderTransactionID != "" && (stored.ProviderTransactionID == nil || *stored.ProviderTransactionID != remote.ProviderTransactionID) {
		id := remote.ProviderTransactionID
		updated.ProviderTransactionID = &id
		changed = true
	}
	if remote.ReceivedByProviderAt != nil && stored.ReceivedByProviderAt == nil {
		updated.ReceivedByProviderAt = remote.ReceivedByProviderAt
		changed = true
	}
	if f := remote.Failure(); f != nil && status == domain.TransactionFailed {
		code, msg := f.Code, f.Message
		updated.FailureCode = &code
		updated.FailureMessage = &msg
	}
	if status == domain.TransactionCompleted {
		now := time.Now().UTC()
		updated.CompletedAt = &now
	}

	if !changed {
		return nil
	}
	return &updated
}

// applyOutcome moves the reservation or wallet to match a final transaction.
// It returns a nil reservation, with a note, when the reservation is missing
// or its payment is already settled another way; the caller then skips the
// reservation's events.
func (s *reconciliationService) applyOutcome(ctx context.Context, tx *domain.PaymentTransaction) (*domain.Reservation, string, error) {
	var (
		res     *domain.Reservation
		applied = true
		err     error
	)
	switch {
	case tx.Type == domain.TransactionDeposit && tx.Status == domain.TransactionCompleted:
		res, applied, err = s.reservationRepo.ApplyPaymentOutcome(ctx, tx.InternalReference, domain.PaymentCompleted,
			domain.ReservationConfirmed, []domain.ReservationStatus{domain.ReservationPending})
	case tx.Type == domain.TransactionDeposit && tx.Status == domain.TransactionFailed:
		res, applied, err = s.reservationRepo.ApplyPaymentOutcome(ctx, tx.InternalReference, domain.PaymentFailed, "", nil)
	case tx.Type == domain.TransactionRefund && tx.Status == domain.TransactionCompleted:
		res, applied, err = s.reservationRepo.ApplyPaymentOutcome(ctx, tx.InternalReference, domain.PaymentRefunded,
			domain.ReservationRefunded, []domain.ReservationStatus{
				domain.ReservationCancelled, domain.ReservationConfirmed, domain.ReservationCompleted, domain.ReservationDisputed,
			})
	case tx.Type == domain.TransactionRefund:
		res, err = s.reservationRepo.GetByID(ctx, tx.InternalReference)
	case tx.Type == domain.TransactionPayout && tx.Status == domain.TransactionFailed:
		return nil, "", s.reversePayout(ctx, tx)
	default:
		return nil, "", nil
	}

	if domain.IsNotFound(err) {
		s.logger.Warn().
			Str("transaction_id", tx.ID).
			Str("reservation_id", tx.InternalReference).
			Msg("Reservation for transaction not found, skipping reservation update")
		return nil, "reservation not found", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to apply %s %s to reservation %s: %w", tx.Type, tx.Status, tx.InternalReference, err)
	}
	if !applied {
		s.logger.Warn().
			Str("transaction_id", tx.ID).
			Str("reservation_id", res.ID).
			Str("payment_status", string(res.PaymentStatus)).
			Str("outcome", string(tx.Status)).
			Msg("Reservation payment already settled, outcome not applied")
		return nil, fmt.Sprintf("reservation payment already %s", res.PaymentStatus), nil
	}
	return res, "", nil
}

func (s *reconciliationService) reversePayout(ctx context.Context, tx *domain.PaymentTransaction) error {
	ownerID := tx.MetadataValue("ownerId")
	amount, err := decimal.NewFromString(tx.MetadataValue("settlementAmount"))
	if ownerID == "" || err != nil {
		s.logger.Error().Str("transaction_id", tx.ID).Msg("Failed payout has no owner or amount metadata, cannot reverse debit")
		return nil
	}

	_, applied, err := s.walletService.Credit(ctx, domain.LedgerEntry{
		OwnerID:     ownerID,
		Amount:      amount,
		Reference:   domain.PayoutLedgerReference(tx.ID),
		Description: "payout reversal: provider reported failure",
	})
	if err != nil {
		return fmt.Errorf("failed to reverse payout %s: %w", tx.ID, err)
	}
	if applied {
		s.logger.Info().Str("transaction_id", tx.ID).Str("owner_id", ownerID).Str("amount", amount.String()).Msg("Reversed failed payout")
	}
	return nil
}

// afterTransition runs the effects owned by the CAS winner.
func (s *reconciliationService) afterTransition(ctx context.Context, tx *domain.PaymentTransaction, res *domain.Reservation, result *domain.ReconcileResult) {
	event := domain.Event{
		ID:            uuid.New().String(),
		TransactionID: tx.ID,
		ReservationID: result.ReservationID,
		Data: map[string]string{
			"amount":   tx.Amount,
			"currency": tx.Currency,
			"status":   string(tx.Status),
		},
		OccurredAt: time.Now().UTC(),
	}
	if tx.FailureMessage != nil {
		event.Data["failure_reason"] = *tx.FailureMessage
	}

	switch tx.Type {
	case domain.TransactionDeposit:
		if res == nil {
			return
		}
		event.Recipients = []string{res.RequesterID, res.OwnerID}
		event.Type = domain.EventPaymentSucceeded
		if tx.Status == domain.TransactionFailed {
			event.Type = domain.EventPaymentFailed
			event.Recipients = []string{res.RequesterID}
		} else if res.Status != domain.ReservationConfirmed && res.Status != domain.ReservationCompleted {
			s.logger.Warn().
				Str("reservation_id", res.ID).
				Str("status", string(res.Status)).
				Msg("Payment completed for a reservation that is no longer pending; funds held for refund")
		} else {
			distribution, err := s.distribution.Distribute(ctx, res.ID)
			if err != nil {
				s.logger.Error().Err(err).Str("reservation_id", res.ID).Msg("Distribution after payment failed; left for backfill")
			}
			result.Distribution = distribution
		}
	case domain.TransactionRefund:
		if res == nil {
			return
		}
		event.Recipients = []string{res.RequesterID}
		event.Type = domain.EventRefundCompleted
		if tx.Status == domain.TransactionFailed {
			event.Type = domain.EventPaymentFailed
			event.Data["type"] = string(domain.TransactionRefund)
		}
	case domain.TransactionPayout:
		event.Recipients = []string{tx.MetadataValue("ownerId")}
		event.Data["wallet_id"] = tx.InternalReference
		event.Type = domain.EventPayoutCompleted
		if tx.Status == domain.TransactionFailed {
			event.Type = domain.EventPayoutFailed
		}
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn().Err(err).Str("event", string(event.Type)).Str("transaction_id", tx.ID).Msg("Failed to publish event")
	}
}

func (s *reconciliationService) ReconcilePending(ctx context.Context) (*domain.ReconcileSummary, error) {
	pending, err := s.transactionRepo.ListNonTerminal(ctx, time.Now().UTC(), s.config.BatchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending transactions: %w", err)
	}

	summary := &domain.ReconcileSummary{Scanned: len(pending)}
	var mu sync.Mutex

	workers := s.config.ConcurrentWorkers
	if workers <= 0 {
		workers = 1
	}
	semaphore := make(chan struct{}, workers)
	for _, tx := range pending {
		semaphore <- struct{}{}
		go func(tx domain.PaymentTransaction) {
			defer func() { <-semaphore }()

			result, err := s.Reconcile(ctx, tx.ID)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				summary.Failed++
				s.logger.Error().Err(err).Str("transaction_id", tx.ID).Msg("Failed to reconcile transaction")
			case result.Changed:
				summary.Changed++
			default:
				summary.Unchanged++
			}
		}(tx)
	}
	for i := 0; i < cap(semaphore); i++ {
		semaphore <- struct{}{}
	}

	if summary.Scanned > 0 {
		s.logger.Info().
			Int("scanned", summary.Scanned).
			Int("changed", summary.Changed).
			Int("failed", summary.Failed).
			Msg("Reconciled pending transactions")
	}
	return summary, nil
}

func (s *reconciliationService) Start(ctx context.Context) error {
	s.logger.Info().Int("interval_seconds", s.config.PollingInterval).Msg("Starting reconciliation poller")

	ticker := time.NewTicker(time.Duration(s.config.PollingInterval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Reconciliation poller stopped")
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.ReconcilePending(ctx); err != nil {
				s.logger.Error().Err(err).Msg("Failed to reconcile pending transactions")
			}
		}
	}
}
