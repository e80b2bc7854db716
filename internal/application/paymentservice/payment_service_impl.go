package paymentservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/tuncanbit/bss/internal/application/conversionservice"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/internal/domain/interfaces"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/internal/repositories/reservationrepo"
	"github.com/tuncanbit/bss/internal/repositories/transactionrepo"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/currency"
)

const (
	payerTypeMSISDN    = "MSISDN"
	statusRejected     = "REJECTED"
	maxStatementLength = 22
)

type paymentService struct {
	transactionRepo transactionrepo.ITransactionRepository
	reservationRepo reservationrepo.IReservationRepository
	walletService   walletservice.IWalletService
	conversion      conversionservice.IConversionService
	gateway         interfaces.PaymentGateway
	settlement      config.SettlementConfig
	currencyUtils   *currency.CurrencyUtils
	logger          zerolog.Logger
}

func New(
	transactionRepo transactionrepo.ITransactionRepository,
	reservationRepo reservationrepo.IReservationRepository,
	walletService walletservice.IWalletService,
	conversion conversionservice.IConversionService,
	gateway interfaces.PaymentGateway,
	settlement config.SettlementConfig,
	logger zerolog.Logger,
) IPaymentService {
	return &paymentService{
		transactionRepo: transactionRepo,
		reservationRepo: reservationRepo,
		walletService:   walletService,
		conversion:      conversion,
		gateway:         gateway,
		settlement:      settlement,
		currencyUtils:   currency.NewCurrencyUtils(settlement.LocalDecimals),
		logger:          logger.With().Str("component", "payment_service").Logger(),
	}
}

func (s *paymentService) InitiateDeposit(ctx context.Context, input domain.DepositInput) (*domain.PaymentTransaction, error) {
	if input.ReservationID == "" {
		return nil, domain.NewValidationError("reservation_id", "is required")
	}
	if input.Correspondent == "" {
		return nil, domain.NewValidationError("correspondent", "is required")
	}
	msisdn, err := normalizeMSISDN("payer.phone", input.Payer.Phone, s.settlement.PhoneRegion)
	if err != nil {
		return nil, err
	}

	res, err := s.reservationRepo.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}
	if !res.Status.IsActive() {
		return nil, &domain.ConflictError{Message: fmt.Sprintf("reservation is %s", res.Status)}
	}
	if res.PaymentStatus == domain.PaymentCompleted || res.PaymentStatus == domain.PaymentRefunded {
		return nil, &domain.ConflictError{Message: "reservation is already paid"}
	}

	related, err := s.transactionRepo.ListByReference(ctx, res.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for reservation %s: %w", res.ID, err)
	}
	for i := range related {
		if related[i].Type == domain.TransactionDeposit && !related[i].Status.IsTerminal() {
			return nil, &domain.ConflictError{Message: fmt.Sprintf("deposit %s is still in progress", related[i].ID)}
		}
	}

	conv, err := s.conversion.ToLocal(ctx, res.Price.Total, domain.ConversionDeposit)
	if err != nil {
		return nil, err
	}

	fields := metadata(
		domain.MetadataField{FieldName: "reservationId", FieldValue: res.ID},
		domain.MetadataField{FieldName: "requesterId", FieldValue: res.RequesterID},
		domain.MetadataField{FieldName: "settlementAmount", FieldValue: res.Price.Total.StringFixed(currency.SettlementDecimals)},
		domain.MetadataField{FieldName: "settlementCurrency", FieldValue: s.settlement.Currency},
		domain.MetadataField{FieldName: "rate", FieldValue: conv.Rate.String()},
		domain.MetadataField{FieldName: "payerName", FieldValue: input.Payer.Name, IsPII: true},
		domain.MetadataField{FieldName: "payerEmail", FieldValue: input.Payer.Email, IsPII: true},
	)

	tx := newTransaction(domain.TransactionDeposit, conv.LocalAmount, conv.LocalCurrency, res.ID, input.Correspondent, fields)
	req := &models.DepositRequest{
		DepositID:            tx.ExternalID,
		Amount:               tx.Amount,
		Currency:             tx.Currency,
		Correspondent:        tx.Correspondent,
		Payer:                models.Payer{Type: payerTypeMSISDN, Address: models.Address{Value: msisdn}},
		CustomerTimestamp:    tx.CreatedAt,
		StatementDescription: statement("Booking", res.ID),
		Metadata:             fields,
	}

	ack, gwErr := s.gateway.InitiateDeposit(ctx, req)
	if gwErr != nil && !domain.IsGatewayError(gwErr, domain.GatewayTimeout) {
		return nil, s.rejection(tx, gwErr)
	}
	return s.record(ctx, tx, ack, gwErr)
}

type preparedPayout struct {
	tx      *domain.PaymentTransaction
	req     *models.PayoutRequest
	ownerID string
	amount  decimal.Decimal
}

func (s *paymentService) InitiatePayout(ctx context.Context, input domain.PayoutInput) (*domain.PaymentTransaction, error) {
	p, err := s.preparePayout(ctx, input)
	if err != nil {
		return nil, err
	}

	ack, gwErr := s.gateway.InitiatePayout(ctx, p.req)
	if gwErr != nil && !domain.IsGatewayError(gwErr, domain.GatewayTimeout) {
		s.releasePayout(ctx, p, gwErr.Error())
		return nil, s.rejection(p.tx, gwErr)
	}
	return s.record(ctx, p.tx, ack, gwErr)
}

func (s *paymentService) InitiateBulkPayout(ctx context.Context, inputs []domain.PayoutInput) ([]*domain.PaymentTransaction, error) {
	if len(inputs) == 0 {
		return nil, domain.NewValidationError("payouts", "at least one payout is required")
	}

	prepared := make([]*preparedPayout, 0, len(inputs))
	reqs := make([]*models.PayoutRequest, 0, len(inputs))
	for i, input := range inputs {
		p, err := s.preparePayout(ctx, input)
		if err != nil {
			for _, done := range prepared {
				s.releasePayout(ctx, done, "bulk payout aborted")
			}
			return nil, fmt.Errorf("payout %d: %w", i, err)
		}
		prepared = append(prepared, p)
		reqs = append(reqs, p.req)
	}

	acks, gwErr := s.gateway.InitiateBulkPayout(ctx, reqs)
	if gwErr != nil && !domain.IsGatewayError(gwErr, domain.GatewayTimeout) {
		for _, p := range prepared {
			s.releasePayout(ctx, p, gwErr.Error())
		}
		return nil, s.rejection(nil, gwErr)
	}

	// Every entry past this point was sent to the provider, so a storage
	// failure on one must not stop the others from being recorded.
	results := make([]*domain.PaymentTransaction, 0, len(prepared))
	var unrecorded []error
	for i, p := range prepared {
		var ack *models.GatewayTransaction
		if gwErr == nil && i < len(acks) {
			ack = acks[i]
		}
		if gwErr == nil && ack == nil {
			ack = &models.GatewayTransaction{ID: p.tx.ExternalID, Status: string(domain.TransactionPending)}
		}
		if ack != nil && ack.Status == statusRejected {
			s.releasePayout(ctx, p, "rejected by provider")
			s.logger.Warn().Str("external_id", p.tx.ExternalID).Msg("Provider rejected payout in bulk request")
			continue
		}

		tx, err := s.record(ctx, p.tx, ack, gwErr)
		if err != nil {
			// The debit stays reserved: the provider may still pay this out.
			s.logger.Error().Err(err).
				Str("transaction_id", p.tx.ID).
				Str("external_id", p.tx.ExternalID).
				Str("owner_id", p.ownerID).
				Str("amount", p.amount.String()).
				Msg("Bulk payout sent but not recorded, needs manual reconciliation")
			unrecorded = append(unrecorded, fmt.Errorf("payout %d (external id %s): %w", i, p.tx.ExternalID, err))
			continue
		}
		results = append(results, tx)
	}
	if len(unrecorded) > 0 {
		return results, fmt.Errorf("failed to record %d of %d payouts: %w", len(unrecorded), len(prepared), errors.Join(unrecorded...))
	}
	return results, nil
}

func (s *paymentService) preparePayout(ctx context.Context, input domain.PayoutInput) (*preparedPayout, error) {
	if !input.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be positive")
	}
	if input.Correspondent == "" {
		return nil, domain.NewValidationError("correspondent", "is required")
	}
	msisdn, err := normalizeMSISDN("payee.phone", input.Payee.Phone, s.settlement.PhoneRegion)
	if err != nil {
		return nil, err
	}

	var wallet *domain.Wallet
	switch {
	case input.WalletID != "":
		wallet, err = s.walletService.GetWalletByID(ctx, input.WalletID)
	case input.OwnerID != "":
		wallet, err = s.walletService.GetWallet(ctx, input.OwnerID)
	default:
		return nil, domain.NewValidationError("wallet_id", "wallet_id or owner_id is required")
	}
	if err != nil {
		return nil, err
	}

	amount := s.currencyUtils.RoundHalfUp(input.Amount)
	tx := newTransaction(domain.TransactionPayout, "", s.conversion.LocalCurrency(), wallet.ID, input.Correspondent, nil)
	p := &preparedPayout{tx: tx, ownerID: wallet.OwnerID, amount: amount}

	if _, _, err := s.walletService.Debit(ctx, domain.LedgerEntry{
		OwnerID:     wallet.OwnerID,
		Amount:      amount,
		Reference:   domain.PayoutLedgerReference(tx.ID),
		Description: "payout " + tx.ID,
	}); err != nil {
		return nil, err
	}

	conv, err := s.conversion.ToLocal(ctx, amount, domain.ConversionPayout)
	if err != nil {
		s.releasePayout(ctx, p, err.Error())
		return nil, err
	}

	tx.Amount = conv.LocalAmount
	tx.Metadata = encodeMetadata(metadata(
		domain.MetadataField{FieldName: "walletId", FieldValue: wallet.ID},
		domain.MetadataField{FieldName: "ownerId", FieldValue: wallet.OwnerID},
		domain.MetadataField{FieldName: "settlementAmount", FieldValue: amount.StringFixed(currency.SettlementDecimals)},
		domain.MetadataField{FieldName: "settlementCurrency", FieldValue: s.settlement.Currency},
		domain.MetadataField{FieldName: "rate", FieldValue: conv.Rate.String()},
		domain.MetadataField{FieldName: "payeeName", FieldValue: input.Payee.Name, IsPII: true},
		domain.MetadataField{FieldName: "payeeEmail", FieldValue: input.Payee.Email, IsPII: true},
	))

	p.req = &models.PayoutRequest{
		PayoutID:             tx.ExternalID,
		Amount:               tx.Amount,
		Currency:             tx.Currency,
		Correspondent:        tx.Correspondent,
		Recipient:            models.Payer{Type: payerTypeMSISDN, Address: models.Address{Value: msisdn}},
		CustomerTimestamp:    tx.CreatedAt,
		StatementDescription: statement("Payout", tx.ID),
		Metadata:             decodeMetadata(tx.Metadata),
	}
	return p, nil
}

// releasePayout reverses the wallet debit taken when a payout was prepared.
func (s *paymentService) releasePayout(ctx context.Context, p *preparedPayout, reason string) {
	_, _, err := s.walletService.Credit(ctx, domain.LedgerEntry{
		OwnerID:     p.ownerID,
		Amount:      p.amount,
		Reference:   domain.PayoutLedgerReference(p.tx.ID),
		Description: "payout reversal: " + reason,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Str("transaction_id", p.tx.ID).
			Str("owner_id", p.ownerID).
			Str("amount", p.amount.String()).
			Msg("Failed to reverse payout debit")
	}
}

func (s *paymentService) InitiateRefund(ctx context.Context, input domain.RefundInput) (*domain.PaymentTransaction, error) {
	if input.ReservationID == "" {
		return nil, domain.NewValidationError("reservation_id", "is required")
	}
	if !input.Amount.IsPositive() {
		return nil, domain.NewValidationError("amount", "must be positive")
	}

	res, err := s.reservationRepo.GetByID(ctx, input.ReservationID)
	if err != nil {
		return nil, err
	}

	related, err := s.transactionRepo.ListByReference(ctx, res.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for reservation %s: %w", res.ID, err)
	}

	deposit, err := completedDeposit(related, input.DepositTransactionID)
	if err != nil {
		return nil, err
	}

	amount := s.currencyUtils.RoundHalfUp(input.Amount)
	refunded := decimal.Zero
	for i := range related {
		if related[i].Type == domain.TransactionRefund && related[i].Status != domain.TransactionFailed {
			prior, _ := decimal.NewFromString(related[i].MetadataValue("settlementAmount"))
			refunded = refunded.Add(prior)
		}
	}
	if refunded.Add(amount).GreaterThan(res.Price.Total) {
		return nil, domain.NewValidationError("amount", "refunds would exceed the reservation total of %s", res.Price.Total.StringFixed(currency.SettlementDecimals))
	}

	paid, err := currency.FromMinorUnits(deposit.Amount, s.currencyUtils.LocalDecimals())
	if err != nil {
		return nil, fmt.Errorf("failed to read deposit amount: %w", err)
	}
	local := paid
	if !amount.Equal(res.Price.Total) {
		local = paid.Mul(amount).Div(res.Price.Total)
	}

	fields := metadata(
		domain.MetadataField{FieldName: "reservationId", FieldValue: res.ID},
		domain.MetadataField{FieldName: "depositId", FieldValue: deposit.ID},
		domain.MetadataField{FieldName: "settlementAmount", FieldValue: amount.StringFixed(currency.SettlementDecimals)},
		domain.MetadataField{FieldName: "settlementCurrency", FieldValue: s.settlement.Currency},
	)
	tx := newTransaction(domain.TransactionRefund, s.currencyUtils.LocalMinor(local), deposit.Currency, res.ID, deposit.Correspondent, fields)
	req := &models.RefundRequest{
		RefundID:  tx.ExternalID,
		DepositID: deposit.ExternalID,
		Amount:    tx.Amount,
		Metadata:  fields,
	}

	ack, gwErr := s.gateway.InitiateRefund(ctx, req)
	if gwErr != nil && !domain.IsGatewayError(gwErr, domain.GatewayTimeout) {
		return nil, s.rejection(tx, gwErr)
	}
	return s.record(ctx, tx, ack, gwErr)
}

func completedDeposit(related []domain.PaymentTransaction, depositID string) (*domain.PaymentTransaction, error) {
	for i := range related {
		tx := &related[i]
		if tx.Type != domain.TransactionDeposit || tx.Status != domain.TransactionCompleted {
			continue
		}
		if depositID == "" || tx.ID == depositID {
			return tx, nil
		}
	}
	if depositID != "" {
		return nil, domain.NewValidationError("deposit_transaction_id", "no completed deposit %s for this reservation", depositID)
	}
	return nil, domain.NewValidationError("reservation_id", "reservation has no completed deposit")
}

func (s *paymentService) GetTransaction(ctx context.Context, id string) (*domain.PaymentTransaction, error) {
	return s.transactionRepo.GetByID(ctx, id)
}

func (s *paymentService) ListForReference(ctx context.Context, reference string) ([]domain.PaymentTransaction, error) {
	return s.transactionRepo.ListByReference(ctx, reference)
}

// record persists a transaction the provider accepted, or one whose request
// timed out after it was sent. The latter is stored as PENDING and left to
// reconciliation.
func (s *paymentService) record(ctx context.Context, tx *domain.PaymentTransaction, ack *models.GatewayTransaction, gwErr error) (*domain.PaymentTransaction, error) {
	if gwErr != nil {
		tx.Status = domain.TransactionPending
		s.logger.Warn().Ctx(ctx).Err(gwErr).
			Str("transaction_id", tx.ID).
			Str("external_id", tx.ExternalID).
			Str("type", string(tx.Type)).
			Msg("Gateway outcome unknown, recording transaction as pending")
	} else {
		applyAcknowledgement(tx, ack)
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		s.logger.Error().Ctx(ctx).Err(err).
			Str("transaction_id", tx.ID).
			Str("external_id", tx.ExternalID).
			Str("type", string(tx.Type)).
			Msg("Gateway accepted request but transaction could not be stored")
		return nil, err
	}

	s.logger.Info().Ctx(ctx).
		Str("transaction_id", tx.ID).
		Str("external_id", tx.ExternalID).
		Str("type", string(tx.Type)).
		Str("status", string(tx.Status)).
		Str("amount", tx.Amount).
		Str("currency", tx.Currency).
		Msg("Payment transaction initiated")
	return tx, nil
}

func (s *paymentService) rejection(tx *domain.PaymentTransaction, gwErr error) error {
	event := s.logger.Warn().Err(gwErr)
	if tx != nil {
		event = event.Str("external_id", tx.ExternalID).Str("type", string(tx.Type))
	}
	event.Msg("Gateway did not accept request")

	if domain.IsGatewayError(gwErr, domain.GatewayRejected) {
		return &domain.ValidationError{Field: "gateway", Message: gwErr.Error()}
	}
	return domain.NewDependencyError("payment_gateway", gwErr)
}

// applyAcknowledgement copies the provider's view onto tx. A terminal status
// in the acknowledgement is held back as SUBMITTED so the first reconcile
// observes the transition and runs its side effects.
func applyAcknowledgement(tx *domain.PaymentTransaction, ack *models.GatewayTransaction) {
	status := domain.TransactionStatus(ack.Status)
	switch {
	case status == "":
		status = domain.TransactionPending
	case status.IsTerminal():
		status = domain.TransactionSubmitted
	}
	tx.Status = status

	if ack.ProviderTransactionID != "" {
		id := ack.ProviderTransactionID
		tx.ProviderTransactionID = &id
	}
	tx.ReceivedByProviderAt = ack.ReceivedByProviderAt
}

func newTransaction(txType domain.TransactionType, amount, currency, reference, correspondent string, fields []domain.MetadataField) *domain.PaymentTransaction {
	now := time.Now().UTC()
	return &domain.PaymentTransaction{
		ID:                uuid.New().String(),
		ExternalID:        uuid.New().String(),
		Type:              txType,
		Amount:            amount,
		Currency:          currency,
		Status:            domain.TransactionPending,
		InternalReference: reference,
		Correspondent:     correspondent,
		Version:           1,
		Metadata:          encodeMetadata(fields),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// metadata drops empty fields so optional PII is never sent blank.
func metadata(fields ...domain.MetadataField) []domain.MetadataField {
	out := make([]domain.MetadataField, 0, len(fields))
	for _, f := range fields {
		if f.FieldValue != "" {
			out = append(out, f)
		}
	}
	return out
}

func encodeMetadata(fields []domain.MetadataField) json.RawMessage {
	if len(fields) == 0 {
		return nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil
	}
	return raw
}

func decodeMetadata(raw json.RawMessage) []domain.MetadataField {
	var fields []domain.MetadataField
	_ = json.Unmarshal(raw, &fields)
	return fields
}

func statement(prefix, id string) string {
	s := prefix + " " + id
	if len(s) > maxStatementLength {
		s = s[:maxStatementLength]
	}
	return s
}
