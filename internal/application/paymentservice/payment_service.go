package paymentservice

import (
	"context"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=payment_service.go -destination=mocks/payment_service_mock.go -package=mock_paymentservice

// IPaymentService submits deposits, payouts and refunds to the gateway and
// records exactly one transaction per accepted or possibly-sent request.
// It never changes reservations; reconciliation does.
type IPaymentService interface {
	InitiateDeposit(ctx context.Context, input domain.DepositInput) (*domain.PaymentTransaction, error)
	InitiatePayout(ctx context.Context, input domain.PayoutInput) (*domain.PaymentTransaction, error)
	InitiateRefund(ctx context.Context, input domain.RefundInput) (*domain.PaymentTransaction, error)
	InitiateBulkPayout(ctx context.Context, inputs []domain.PayoutInput) ([]*domain.PaymentTransaction, error)
	GetTransaction(ctx context.Context, id string) (*domain.PaymentTransaction, error)
	ListForReference(ctx context.Context, reference string) ([]domain.PaymentTransaction, error)
}
