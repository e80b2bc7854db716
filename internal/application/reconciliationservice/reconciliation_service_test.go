package reconciliationservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/application/distributionservice"
	"github.com/tuncanbit/bss/internal/application/walletservice"
	"github.com/tuncanbit/bss/internal/domain"
	mock_interfaces "github.com/tuncanbit/bss/internal/domain/interfaces/mocks"
	"github.com/tuncanbit/bss/internal/domain/models"
	"github.com/tuncanbit/bss/internal/infrastructure/cache"
	"github.com/tuncanbit/bss/internal/repositories/memrepo"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

// eventLog records published events by type.
type eventLog struct {
	mu     sync.Mutex
	events []domain.Event
}

func (l *eventLog) Publish(_ context.Context, e domain.Event) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
	return nil
}

func (l *eventLog) count(t domain.EventType) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	svc          IReconciliationService
	gateway      *mock_interfaces.MockPaymentGateway
	reservations *memrepo.ReservationRepository
	transactions *memrepo.TransactionRepository
	wallets      walletservice.IWalletService
	events       *eventLog
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	store := memrepo.NewStore()
	reservations := memrepo.NewReservationRepository(store)
	transactions := memrepo.NewTransactionRepository(store)
	wallets := walletservice.New(memrepo.NewWalletRepository(store), store, "USD", logger.Nop())
	events := &eventLog{}
	distribution := distributionservice.New(reservations, wallets, store, events,
		config.DistributionConfig{BackfillWindowDays: 30, BatchSize: 100}, "platform", logger.Nop())
	gateway := mock_interfaces.NewMockPaymentGateway(ctrl)

	cfg := config.ReconciliationConfig{PollingInterval: 1, ConcurrentWorkers: 4, BatchSize: 50, GatewayTimeout: time.Second}
	svc := New(transactions, reservations, distribution, wallets, gateway, events, cache.NoopLocker{}, cfg, logger.Nop())

	return &fixture{svc: svc, gateway: gateway, reservations: reservations, transactions: transactions, wallets: wallets, events: events}
}

func (f *fixture) pendingBooking(status domain.ReservationStatus, payment domain.PaymentStatus) {
	f.reservations.Put(domain.Reservation{
		ID:            "res-1",
		ResourceID:    "prop-1",
		RequesterID:   "guest-1",
		OwnerID:       "owner-1",
		Status:        status,
		PaymentStatus: payment,
		Price:         domain.PriceBreakdown{Total: decimal.NewFromInt(1000), Currency: "USD"},
		CreatedAt:     time.Now().UTC(),
	})
}

func (f *fixture) transaction(t *testing.T, id string, txType domain.TransactionType, status domain.TransactionStatus, reference string, metadata string) {
	t.Helper()
	require.NoError(t, f.transactions.Create(context.Background(), &domain.PaymentTransaction{
		ID:                id,
		ExternalID:        "ext-" + id,
		Type:              txType,
		Amount:            "1306500",
		Currency:          "RWF",
		Status:            status,
		InternalReference: reference,
		Version:           1,
		Metadata:          []byte(metadata),
		CreatedAt:         time.Now().UTC().Add(-time.Minute),
	}))
}

func remote(status string) *models.GatewayTransaction {
	return &models.GatewayTransaction{Status: status, ProviderTransactionID: "prov-123"}
}

func ownerBalance(t *testing.T, f *fixture, owner string) string {
	t.Helper()
	w, err := f.wallets.GetWallet(context.Background(), owner)
	if domain.IsNotFound(err) {
		return "0.00"
	}
	require.NoError(t, err)
	return w.Balance.StringFixed(2)
}

func TestReconcile_DepositCompleted(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil).Times(1)

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, domain.TransactionStatus("ACCEPTED"), result.PreviousStatus)
	assert.Equal(t, domain.TransactionCompleted, result.NewStatus)
	require.NotNil(t, result.Distribution)
	assert.True(t, result.Distribution.Success)

	res, err := f.reservations.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, res.Status)
	assert.Equal(t, domain.PaymentCompleted, res.PaymentStatus)
	assert.True(t, res.WalletDistributed)

	tx, err := f.transactions.GetByID(context.Background(), "tx-1")
	require.NoError(t, err)
	require.NotNil(t, tx.ProviderTransactionID)
	assert.Equal(t, "prov-123", *tx.ProviderTransactionID)
	assert.NotNil(t, tx.CompletedAt)

	assert.Equal(t, "833.30", ownerBalance(t, f, "owner-1"))
	assert.Equal(t, 1, f.events.count(domain.EventPaymentSucceeded))
	assert.Equal(t, 1, f.events.count(domain.EventFundsDistributed))

	again, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.False(t, again.Changed)
	assert.Equal(t, 1, f.events.count(domain.EventPaymentSucceeded))
	assert.Equal(t, "833.30", ownerBalance(t, f, "owner-1"))
}

func TestReconcile_ConcurrentCallsFireSideEffectsOnce(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil).AnyTimes()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		changed int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := f.svc.Reconcile(context.Background(), "tx-1")
			if assert.NoError(t, err) && result.Changed {
				mu.Lock()
				changed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, changed)
	assert.Equal(t, 1, f.events.count(domain.EventPaymentSucceeded))
	assert.Equal(t, "833.30", ownerBalance(t, f, "owner-1"))
	assert.Equal(t, "166.70", ownerBalance(t, f, "platform"))
}

func TestReconcile_DepositFailed(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "SUBMITTED", "res-1", "")

	failed := remote("FAILED")
	failed.FailureReason = &models.FailureReason{Code: "INSUFFICIENT_BALANCE", Message: "payer has insufficient funds"}
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(failed, nil)

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Nil(t, result.Distribution)

	res, err := f.reservations.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentFailed, res.PaymentStatus)
	assert.Equal(t, domain.ReservationPending, res.Status)
	assert.False(t, res.WalletDistributed)

	tx, err := f.transactions.GetByID(context.Background(), "tx-1")
	require.NoError(t, err)
	require.NotNil(t, tx.FailureCode)
	assert.Equal(t, "INSUFFICIENT_BALANCE", *tx.FailureCode)
	assert.Equal(t, 1, f.events.count(domain.EventPaymentFailed))
}

func TestReconcile_IntermediateAndUnchanged(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, domain.TransactionPending, "res-1", "")

	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("ACCEPTED"), nil)
	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, domain.TransactionAccepted, result.NewStatus)

	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("ACCEPTED"), nil)
	result, err = f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.False(t, result.Changed)

	res, err := f.reservations.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, res.PaymentStatus)
	assert.Empty(t, f.events.events)
}

func TestReconcile_MissingReservationIsNotAnError(t *testing.T) {
	f := newFixture(t)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-gone", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil)

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Empty(t, f.events.events)
}

func TestReconcile_LateFailedDepositKeepsPaidReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.transaction(t, "tx-2", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil)
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-2").Return(remote("FAILED"), nil)

	_, err := f.svc.Reconcile(ctx, "tx-1")
	require.NoError(t, err)

	result, err := f.svc.Reconcile(ctx, "tx-2")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, domain.TransactionFailed, result.NewStatus)
	assert.Equal(t, "reservation payment already completed", result.Note)

	res, err := f.reservations.GetByID(ctx, "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationConfirmed, res.Status)
	assert.Equal(t, domain.PaymentCompleted, res.PaymentStatus)
	assert.True(t, res.WalletDistributed)
	assert.Equal(t, 0, f.events.count(domain.EventPaymentFailed))
	assert.Equal(t, 1, f.events.count(domain.EventPaymentSucceeded))
}

func TestReconcile_ProviderDetailsWithoutStatusChange(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, domain.TransactionAccepted, "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("ACCEPTED"), nil)

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, domain.TransactionAccepted, result.NewStatus)

	tx, err := f.transactions.GetByID(context.Background(), "tx-1")
	require.NoError(t, err)
	require.NotNil(t, tx.ProviderTransactionID)
	assert.Equal(t, "prov-123", *tx.ProviderTransactionID)
	assert.Empty(t, f.events.events)
}

func TestReconcile_GatewayDown(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").
		Return(nil, &domain.GatewayError{Kind: domain.GatewayUnreachable, Message: "503"})

	_, err := f.svc.Reconcile(context.Background(), "tx-1")
	assert.True(t, domain.IsDependency(err))

	tx, err := f.transactions.GetByID(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionAccepted, tx.Status)
}

func TestReconcile_UnknownToProvider(t *testing.T) {
	f := newFixture(t)
	f.transaction(t, "tx-1", domain.TransactionDeposit, domain.TransactionPending, "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").
		Return(nil, domain.NewNotFoundError("gateway transaction", "ext-tx-1"))

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.Equal(t, "unknown to provider", result.Note)
}

func TestReconcile_PayoutFailedReversesDebit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, err := f.wallets.Credit(ctx, domain.LedgerEntry{OwnerID: "owner-1", Amount: decimal.NewFromInt(500), Reference: "reservation:seed"})
	require.NoError(t, err)
	_, _, err = f.wallets.Debit(ctx, domain.LedgerEntry{OwnerID: "owner-1", Amount: decimal.NewFromInt(200), Reference: domain.PayoutLedgerReference("tx-1")})
	require.NoError(t, err)
	require.Equal(t, "300.00", ownerBalance(t, f, "owner-1"))

	wallet, err := f.wallets.GetWallet(ctx, "owner-1")
	require.NoError(t, err)
	f.transaction(t, "tx-1", domain.TransactionPayout, "ACCEPTED", wallet.ID,
		`[{"fieldName":"ownerId","fieldValue":"owner-1"},{"fieldName":"settlementAmount","fieldValue":"200.00"}]`)
	f.gateway.EXPECT().GetPayoutStatus(gomock.Any(), "ext-tx-1").Return(remote("FAILED"), nil)

	result, err := f.svc.Reconcile(ctx, "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Empty(t, result.ReservationID)

	assert.Equal(t, "500.00", ownerBalance(t, f, "owner-1"))
	assert.Equal(t, 1, f.events.count(domain.EventPayoutFailed))

	audit, err := f.wallets.VerifyBalance(ctx, wallet.ID)
	require.NoError(t, err)
	assert.True(t, audit.Consistent)
}

func TestReconcile_PayoutCompletedKeepsDebit(t *testing.T) {
	f := newFixture(t)
	f.transaction(t, "tx-1", domain.TransactionPayout, "ACCEPTED", "wallet-1",
		`[{"fieldName":"ownerId","fieldValue":"owner-1"},{"fieldName":"settlementAmount","fieldValue":"200.00"}]`)
	f.gateway.EXPECT().GetPayoutStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil)

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, f.events.count(domain.EventPayoutCompleted))
	assert.Equal(t, "0.00", ownerBalance(t, f, "owner-1"))
}

func TestReconcile_RefundCompleted(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationCancelled, domain.PaymentCompleted)
	f.transaction(t, "tx-1", domain.TransactionRefund, "ACCEPTED", "res-1", "")
	f.gateway.EXPECT().GetRefundStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil)

	_, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)

	res, err := f.reservations.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationRefunded, res.Status)
	assert.Equal(t, domain.PaymentRefunded, res.PaymentStatus)
	assert.Equal(t, 1, f.events.count(domain.EventRefundCompleted))
}

func TestReconcile_CompletedAfterCancellationDoesNotDistribute(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationCancelled, domain.PaymentCancelled)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil)

	result, err := f.svc.Reconcile(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Nil(t, result.Distribution)

	res, err := f.reservations.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ReservationCancelled, res.Status)
	assert.Equal(t, domain.PaymentCompleted, res.PaymentStatus)
	assert.False(t, res.WalletDistributed)
}

func TestReconcilePending(t *testing.T) {
	f := newFixture(t)
	f.pendingBooking(domain.ReservationPending, domain.PaymentPending)
	f.transaction(t, "tx-1", domain.TransactionDeposit, "ACCEPTED", "res-1", "")
	f.transaction(t, "tx-2", domain.TransactionDeposit, "ACCEPTED", "res-other", "")
	f.transaction(t, "tx-3", domain.TransactionDeposit, "ACCEPTED", "res-other", "")
	f.transaction(t, "tx-4", domain.TransactionDeposit, domain.TransactionFailed, "res-other", "")

	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-1").Return(remote("COMPLETED"), nil)
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-2").Return(&models.GatewayTransaction{Status: "ACCEPTED"}, nil)
	f.gateway.EXPECT().GetDepositStatus(gomock.Any(), "ext-tx-3").Return(nil, errors.New("connection reset"))

	summary, err := f.svc.ReconcilePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Scanned)
	assert.Equal(t, 1, summary.Changed)
	assert.Equal(t, 1, summary.Unchanged)
	assert.Equal(t, 1, summary.Failed)
}

func TestStart_StopsOnCancel(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.svc.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}
}
